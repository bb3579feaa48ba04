package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-panel/internal/models"
)

type MetricsRepository interface {
	GetDashboardStats(ctx context.Context) (models.DashboardStats, error)
}
