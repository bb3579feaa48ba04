package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-panel/internal/models"
)

type InMemoryMetricsRepository struct {
	productRepo *InMemoryProductRepository
}

// GetDashboardStats implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardStats(context.Context) (models.DashboardStats, error) {
	var total, stock int64
	var value float64

	for _, p := range i.productRepo.Snapshot() {
		total++
		stock += p.Quantity
		value += p.StockValue()
	}

	return models.NewDashboardStats(total, stock, value), nil
}

func NewInMemoryMetricsRepository(productRepo *InMemoryProductRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{productRepo: productRepo}
}
