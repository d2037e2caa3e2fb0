package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/dumar-app/dumar-api/infrastructure/database/postgres"
	"github.com/dumar-app/dumar-api/internal/domain"
)

const verticalsTable = "verticals"

// ErrVersionConflict se devuelve cuando una escritura compare-and-swap del
// esquema pierde contra otra escritura concurrente.
var ErrVersionConflict = errors.New("conflicto de versión al actualizar el esquema")

type VerticalRepository interface {
	CreateVertical(vertical *domain.Vertical) (*domain.Vertical, error)
	GetVerticalByID(verticalID string) (*domain.Vertical, error)
	ListVerticalsByBusiness(businessID string, activeOnly bool) ([]*domain.Vertical, error)
	ListTemplates() ([]*domain.Vertical, error)
	UpdateVertical(vertical *domain.Vertical) error
	// UpdateSchema escribe el esquema completo sólo si la versión persistida
	// coincide con expectedVersion; devuelve ErrVersionConflict si no.
	UpdateSchema(verticalID string, schema domain.Schema, expectedVersion int) error
}

type verticalRepository struct {
	conn *postgres.Connection
}

func NewVerticalRepository(conn *postgres.Connection) VerticalRepository {
	return &verticalRepository{
		conn: conn,
	}
}

func (r *verticalRepository) CreateVertical(vertical *domain.Vertical) (*domain.Vertical, error) {
	schemaJSON, err := json.Marshal(vertical.Schema)
	if err != nil {
		return nil, errors.Wrap(err, "error al serializar variables_schema")
	}

	queryBuilder := squirrel.
		Insert(verticalsTable).
		Columns("id", "business_id", "name", "description", "is_template", "active", "variables_schema", "version").
		Values(vertical.ID, vertical.BusinessID, vertical.Name, vertical.Description, vertical.IsTemplate, vertical.Active, schemaJSON, 1).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	verticalSQL, verticalArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(verticalSQL, verticalArgs...).Scan(&vertical.CreatedAt, &vertical.UpdatedAt)
	if err != nil {
		return nil, err
	}

	vertical.Version = 1
	return vertical, nil
}

func (r *verticalRepository) GetVerticalByID(verticalID string) (*domain.Vertical, error) {
	row := r.conn.QueryRow(
		"SELECT id, business_id, name, description, is_template, active, variables_schema, version, created_at, updated_at FROM verticals WHERE id = $1",
		verticalID,
	)

	vertical, err := scanVertical(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return vertical, nil
}

func (r *verticalRepository) ListVerticalsByBusiness(businessID string, activeOnly bool) ([]*domain.Vertical, error) {
	queryBuilder := squirrel.
		Select("id", "business_id", "name", "description", "is_template", "active", "variables_schema", "version", "created_at", "updated_at").
		From(verticalsTable).
		Where(squirrel.Eq{"business_id": businessID, "is_template": false}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if activeOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"active": true})
	}

	return r.queryVerticals(queryBuilder)
}

func (r *verticalRepository) ListTemplates() ([]*domain.Vertical, error) {
	queryBuilder := squirrel.
		Select("id", "business_id", "name", "description", "is_template", "active", "variables_schema", "version", "created_at", "updated_at").
		From(verticalsTable).
		Where(squirrel.Eq{"is_template": true}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryVerticals(queryBuilder)
}

func (r *verticalRepository) queryVerticals(queryBuilder squirrel.SelectBuilder) ([]*domain.Vertical, error) {
	verticalSQL, verticalArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(verticalSQL, verticalArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var verticals []*domain.Vertical
	for rows.Next() {
		vertical, err := scanVertical(rows.Scan)
		if err != nil {
			return nil, err
		}

		verticals = append(verticals, vertical)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return verticals, nil
}

func (r *verticalRepository) UpdateVertical(vertical *domain.Vertical) error {
	queryBuilder := squirrel.
		Update(verticalsTable).
		Set("name", vertical.Name).
		Set("description", vertical.Description).
		Set("active", vertical.Active).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": vertical.ID}).
		PlaceholderFormat(squirrel.Dollar)

	verticalSQL, verticalArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(verticalSQL, verticalArgs...)
	return err
}

func (r *verticalRepository) UpdateSchema(verticalID string, schema domain.Schema, expectedVersion int) error {
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return errors.Wrap(err, "error al serializar variables_schema")
	}

	queryBuilder := squirrel.
		Update(verticalsTable).
		Set("variables_schema", schemaJSON).
		Set("version", expectedVersion+1).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": verticalID, "version": expectedVersion}).
		PlaceholderFormat(squirrel.Dollar)

	verticalSQL, verticalArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(verticalSQL, verticalArgs...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrVersionConflict
	}

	return nil
}

func scanVertical(scan func(dest ...any) error) (*domain.Vertical, error) {
	var vertical domain.Vertical
	var businessID sql.NullString
	var description sql.NullString
	var schemaJSON []byte

	err := scan(
		&vertical.ID,
		&businessID,
		&vertical.Name,
		&description,
		&vertical.IsTemplate,
		&vertical.Active,
		&schemaJSON,
		&vertical.Version,
		&vertical.CreatedAt,
		&vertical.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	vertical.BusinessID = businessID.String
	vertical.Description = description.String

	if len(schemaJSON) > 0 {
		if err := json.Unmarshal(schemaJSON, &vertical.Schema); err != nil {
			return nil, errors.Wrap(err, "error al decodificar variables_schema")
		}
	}

	return &vertical, nil
}
