package repo

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/inventory-panel/internal/db"
	"github.com/rogerio-castellano/inventory-panel/internal/models"
)

type SQLMetricsRepository struct {
	db *db.Database
}

func NewSQLMetricsRepository(database *db.Database) *SQLMetricsRepository {
	return &SQLMetricsRepository{db: database}
}

// GetDashboardStats computes the three aggregates in one statement.
func (r *SQLMetricsRepository) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	query, args, err := r.db.Builder().
		Select(
			"COUNT(*) AS total",
			"COALESCE(SUM(quantidade), 0) AS estoque_total",
			"COALESCE(SUM(preco * quantidade), 0) AS valor_total",
		).
		From(productsTable).
		ToSql()
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("build aggregate: %w", err)
	}

	var row struct {
		Total int64   `db:"total"`
		Stock int64   `db:"estoque_total"`
		Value float64 `db:"valor_total"`
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard aggregates: %w", err)
	}

	return models.NewDashboardStats(row.Total, row.Stock, row.Value), nil
}
