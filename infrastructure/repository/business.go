package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/dumar-app/dumar-api/infrastructure/database/postgres"
	"github.com/dumar-app/dumar-api/internal/domain"
)

const businessesTable = "businesses"

type BusinessRepository interface {
	CreateBusiness(business *domain.Business) (*domain.Business, error)
	GetBusinessByID(businessID string) (*domain.Business, error)
	ListBusinessesByOwner(ownerID string) ([]*domain.Business, error)
	ListAllBusinesses() ([]*domain.Business, error)
	UpdateBusiness(business *domain.Business) error
	DeleteBusiness(businessID string) error
}

type businessRepository struct {
	conn *postgres.Connection
}

func NewBusinessRepository(conn *postgres.Connection) BusinessRepository {
	return &businessRepository{
		conn: conn,
	}
}

func (r *businessRepository) CreateBusiness(business *domain.Business) (*domain.Business, error) {
	queryBuilder := squirrel.
		Insert(businessesTable).
		Columns("id", "owner_id", "name", "type", "description", "image_url").
		Values(business.ID, business.OwnerID, business.Name, business.Type, business.Description, business.ImageURL).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	businessSQL, businessArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(businessSQL, businessArgs...).Scan(&business.CreatedAt, &business.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return business, nil
}

func (r *businessRepository) GetBusinessByID(businessID string) (*domain.Business, error) {
	var business domain.Business
	err := r.conn.QueryRow(
		"SELECT id, owner_id, name, type, description, image_url, created_at, updated_at FROM businesses WHERE id = $1",
		businessID,
	).Scan(
		&business.ID,
		&business.OwnerID,
		&business.Name,
		&business.Type,
		&business.Description,
		&business.ImageURL,
		&business.CreatedAt,
		&business.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &business, nil
}

func (r *businessRepository) ListBusinessesByOwner(ownerID string) ([]*domain.Business, error) {
	queryBuilder := squirrel.
		Select("id", "owner_id", "name", "type", "description", "image_url", "created_at", "updated_at").
		From(businessesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	businessSQL, businessArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(businessSQL, businessArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []*domain.Business
	for rows.Next() {
		var business domain.Business
		if err := rows.Scan(
			&business.ID,
			&business.OwnerID,
			&business.Name,
			&business.Type,
			&business.Description,
			&business.ImageURL,
			&business.CreatedAt,
			&business.UpdatedAt,
		); err != nil {
			return nil, err
		}

		businesses = append(businesses, &business)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return businesses, nil
}

// ListAllBusinesses devuelve todos los negocios; lo usa el recálculo
// nocturno de métricas.
func (r *businessRepository) ListAllBusinesses() ([]*domain.Business, error) {
	rows, err := r.conn.Query(
		"SELECT id, owner_id, name, type, description, image_url, created_at, updated_at FROM businesses ORDER BY created_at ASC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []*domain.Business
	for rows.Next() {
		var business domain.Business
		if err := rows.Scan(
			&business.ID,
			&business.OwnerID,
			&business.Name,
			&business.Type,
			&business.Description,
			&business.ImageURL,
			&business.CreatedAt,
			&business.UpdatedAt,
		); err != nil {
			return nil, err
		}

		businesses = append(businesses, &business)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return businesses, nil
}

func (r *businessRepository) UpdateBusiness(business *domain.Business) error {
	queryBuilder := squirrel.
		Update(businessesTable).
		Set("name", business.Name).
		Set("type", business.Type).
		Set("description", business.Description).
		Set("image_url", business.ImageURL).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": business.ID}).
		PlaceholderFormat(squirrel.Dollar)

	businessSQL, businessArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(businessSQL, businessArgs...)
	return err
}

func (r *businessRepository) DeleteBusiness(businessID string) error {
	queryBuilder := squirrel.
		Delete(businessesTable).
		Where(squirrel.Eq{"id": businessID}).
		PlaceholderFormat(squirrel.Dollar)

	businessSQL, businessArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(businessSQL, businessArgs...)
	return err
}
