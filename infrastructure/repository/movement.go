package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/dumar-app/dumar-api/infrastructure/database/postgres"
	"github.com/dumar-app/dumar-api/internal/domain"
)

const movementsTable = "movements"

type MovementRepository interface {
	CreateMovement(movement *domain.Movement) (*domain.Movement, error)
	GetMovementByID(movementID string) (*domain.Movement, error)
	ListMovementsByBusiness(businessID string, filter domain.MovementFilter) ([]*domain.Movement, error)
	ListMovementsByVertical(verticalID string) ([]*domain.Movement, error)
	UpdateMovement(movement *domain.Movement) error
	DeleteMovement(movementID string) error
}

type movementRepository struct {
	conn *postgres.Connection
}

func NewMovementRepository(conn *postgres.Connection) MovementRepository {
	return &movementRepository{
		conn: conn,
	}
}

func (r *movementRepository) CreateMovement(movement *domain.Movement) (*domain.Movement, error) {
	productionJSON, err := marshalProductionData(movement.ProductionData)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Insert(movementsTable).
		Columns("id", "business_id", "vertical_id", "date", "type", "amount", "description", "production_data").
		Values(movement.ID, movement.BusinessID, movement.VerticalID, movement.Date, movement.Type, movement.Amount, movement.Description, productionJSON).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	movementSQL, movementArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(movementSQL, movementArgs...).Scan(&movement.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "error al insertar movimiento")
	}

	return movement, nil
}

func (r *movementRepository) GetMovementByID(movementID string) (*domain.Movement, error) {
	row := r.conn.QueryRow(
		"SELECT id, business_id, vertical_id, date, type, amount, description, production_data, created_at FROM movements WHERE id = $1",
		movementID,
	)

	movement, err := scanMovement(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return movement, nil
}

func (r *movementRepository) ListMovementsByBusiness(businessID string, filter domain.MovementFilter) ([]*domain.Movement, error) {
	queryBuilder := squirrel.
		Select("id", "business_id", "vertical_id", "date", "type", "amount", "description", "production_data", "created_at").
		From(movementsTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("date DESC, created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Type != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"type": filter.Type})
	}

	if filter.StartDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"date": filter.StartDate})
	}

	if filter.EndDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"date": filter.EndDate})
	}

	if filter.MinAmount != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"amount": *filter.MinAmount})
	}

	if filter.MaxAmount != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"amount": *filter.MaxAmount})
	}

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filter.Limit)
	}

	return r.queryMovements(queryBuilder)
}

func (r *movementRepository) ListMovementsByVertical(verticalID string) ([]*domain.Movement, error) {
	queryBuilder := squirrel.
		Select("id", "business_id", "vertical_id", "date", "type", "amount", "description", "production_data", "created_at").
		From(movementsTable).
		Where(squirrel.Eq{"vertical_id": verticalID}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryMovements(queryBuilder)
}

func (r *movementRepository) queryMovements(queryBuilder squirrel.SelectBuilder) ([]*domain.Movement, error) {
	movementSQL, movementArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(movementSQL, movementArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []*domain.Movement
	for rows.Next() {
		movement, err := scanMovement(rows.Scan)
		if err != nil {
			return nil, err
		}

		movements = append(movements, movement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}

func (r *movementRepository) UpdateMovement(movement *domain.Movement) error {
	productionJSON, err := marshalProductionData(movement.ProductionData)
	if err != nil {
		return err
	}

	queryBuilder := squirrel.
		Update(movementsTable).
		Set("vertical_id", movement.VerticalID).
		Set("date", movement.Date).
		Set("type", movement.Type).
		Set("amount", movement.Amount).
		Set("description", movement.Description).
		Set("production_data", productionJSON).
		Where(squirrel.Eq{"id": movement.ID}).
		PlaceholderFormat(squirrel.Dollar)

	movementSQL, movementArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(movementSQL, movementArgs...)
	return err
}

func (r *movementRepository) DeleteMovement(movementID string) error {
	queryBuilder := squirrel.
		Delete(movementsTable).
		Where(squirrel.Eq{"id": movementID}).
		PlaceholderFormat(squirrel.Dollar)

	movementSQL, movementArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(movementSQL, movementArgs...)
	return err
}

func marshalProductionData(data *domain.ProductionData) ([]byte, error) {
	if data == nil {
		return nil, nil
	}
	return json.Marshal(data)
}

func scanMovement(scan func(dest ...any) error) (*domain.Movement, error) {
	var movement domain.Movement
	var productionJSON []byte

	err := scan(
		&movement.ID,
		&movement.BusinessID,
		&movement.VerticalID,
		&movement.Date,
		&movement.Type,
		&movement.Amount,
		&movement.Description,
		&productionJSON,
		&movement.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(productionJSON) > 0 {
		var data domain.ProductionData
		if err := json.Unmarshal(productionJSON, &data); err != nil {
			return nil, errors.Wrap(err, "error al decodificar production_data")
		}
		movement.ProductionData = &data
	}

	return &movement, nil
}
