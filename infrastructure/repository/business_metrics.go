package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/dumar-app/dumar-api/infrastructure/database/postgres"
	"github.com/dumar-app/dumar-api/internal/domain"
)

const businessMetricsTable = "business_metrics"

type BusinessMetricsRepository interface {
	UpsertMetrics(metrics *domain.BusinessMetrics) error
	GetMetricsByBusiness(businessID string) (*domain.BusinessMetrics, error)
}

type businessMetricsRepository struct {
	conn *postgres.Connection
}

func NewBusinessMetricsRepository(conn *postgres.Connection) BusinessMetricsRepository {
	return &businessMetricsRepository{
		conn: conn,
	}
}

func (r *businessMetricsRepository) UpsertMetrics(metrics *domain.BusinessMetrics) error {
	queryBuilder := squirrel.
		Insert(businessMetricsTable).
		Columns("business_id", "total_income", "total_expense", "balance", "total_production", "movement_count", "computed_at").
		Values(metrics.BusinessID, metrics.TotalIncome, metrics.TotalExpense, metrics.Balance, metrics.TotalProduction, metrics.MovementCount, metrics.ComputedAt).
		Suffix(`ON CONFLICT (business_id) DO UPDATE SET
			total_income = EXCLUDED.total_income,
			total_expense = EXCLUDED.total_expense,
			balance = EXCLUDED.balance,
			total_production = EXCLUDED.total_production,
			movement_count = EXCLUDED.movement_count,
			computed_at = EXCLUDED.computed_at`).
		PlaceholderFormat(squirrel.Dollar)

	metricsSQL, metricsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(metricsSQL, metricsArgs...)
	return err
}

func (r *businessMetricsRepository) GetMetricsByBusiness(businessID string) (*domain.BusinessMetrics, error) {
	var metrics domain.BusinessMetrics

	err := r.conn.QueryRow(
		"SELECT business_id, total_income, total_expense, balance, total_production, movement_count, computed_at FROM business_metrics WHERE business_id = $1",
		businessID,
	).Scan(
		&metrics.BusinessID,
		&metrics.TotalIncome,
		&metrics.TotalExpense,
		&metrics.Balance,
		&metrics.TotalProduction,
		&metrics.MovementCount,
		&metrics.ComputedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &metrics, nil
}
