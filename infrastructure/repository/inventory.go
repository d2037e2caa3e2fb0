package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/dumar-app/dumar-api/infrastructure/database/postgres"
	"github.com/dumar-app/dumar-api/internal/domain"
)

const inventoryItemsTable = "inventory_items"

type InventoryRepository interface {
	CreateItem(item *domain.InventoryItem) (*domain.InventoryItem, error)
	GetItemByID(itemID string) (*domain.InventoryItem, error)
	ListItemsByBusiness(businessID string) ([]*domain.InventoryItem, error)
	UpdateItem(item *domain.InventoryItem) error
	DeleteItem(itemID string) error
}

type inventoryRepository struct {
	conn *postgres.Connection
}

func NewInventoryRepository(conn *postgres.Connection) InventoryRepository {
	return &inventoryRepository{
		conn: conn,
	}
}

func (r *inventoryRepository) CreateItem(item *domain.InventoryItem) (*domain.InventoryItem, error) {
	queryBuilder := squirrel.
		Insert(inventoryItemsTable).
		Columns("id", "business_id", "name", "quantity", "unit", "comments").
		Values(item.ID, item.BusinessID, item.Name, item.Quantity, item.Unit, item.Comments).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	itemSQL, itemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(itemSQL, itemArgs...).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *inventoryRepository) GetItemByID(itemID string) (*domain.InventoryItem, error) {
	row := r.conn.QueryRow(
		"SELECT id, business_id, name, quantity, unit, comments, created_at, updated_at FROM inventory_items WHERE id = $1",
		itemID,
	)

	item, err := scanInventoryItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *inventoryRepository) ListItemsByBusiness(businessID string) ([]*domain.InventoryItem, error) {
	rows, err := r.conn.Query(
		"SELECT id, business_id, name, quantity, unit, comments, created_at, updated_at FROM inventory_items WHERE business_id = $1 ORDER BY name ASC",
		businessID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows.Scan)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *inventoryRepository) UpdateItem(item *domain.InventoryItem) error {
	queryBuilder := squirrel.
		Update(inventoryItemsTable).
		Set("name", item.Name).
		Set("quantity", item.Quantity).
		Set("unit", item.Unit).
		Set("comments", item.Comments).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": item.ID}).
		PlaceholderFormat(squirrel.Dollar)

	itemSQL, itemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(itemSQL, itemArgs...)
	return err
}

func (r *inventoryRepository) DeleteItem(itemID string) error {
	_, err := r.conn.Exec("DELETE FROM inventory_items WHERE id = $1", itemID)
	return err
}

func scanInventoryItem(scan func(dest ...any) error) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	var comments sql.NullString

	err := scan(
		&item.ID,
		&item.BusinessID,
		&item.Name,
		&item.Quantity,
		&item.Unit,
		&comments,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Comments = comments.String
	return &item, nil
}
