package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/inventory-panel/internal/models"
)

func strPtr(s string) *string { return &s }

func TestInMemoryProductRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryProductRepository()

	for _, name := range []string{"Keyboard", "Mouse", "Monitor"} {
		_, err := r.Create(ctx, models.Product{Name: strPtr(name)})
		require.NoError(t, err)
	}

	list, err := r.List(ctx, ProductFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.EqualValues(t, 3, list[0].ID)
	require.EqualValues(t, 1, list[2].ID)
}

func TestInMemoryProductRepository_SearchIgnoresCase(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryProductRepository()

	_, err := r.Create(ctx, models.Product{Name: strPtr("Widget")})
	require.NoError(t, err)

	list, err := r.List(ctx, ProductFilter{Query: "widg"})
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestInMemoryProductRepository_ClearKeepsIDsMonotonic(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryProductRepository()

	first, err := r.Create(ctx, models.Product{Name: strPtr("A")})
	require.NoError(t, err)
	r.Clear()
	second, err := r.Create(ctx, models.Product{Name: strPtr("B")})
	require.NoError(t, err)

	require.Greater(t, second.ID, first.ID)
}

func TestInMemoryMetricsRepository(t *testing.T) {
	ctx := context.Background()
	products := NewInMemoryProductRepository()
	metrics := NewInMemoryMetricsRepository(products)

	stats, err := metrics.GetDashboardStats(ctx)
	require.NoError(t, err)
	require.Equal(t, "0.00", stats.Value)

	_, _ = products.Create(ctx, models.Product{Name: strPtr("Keyboard"), Price: 0.1, Quantity: 3})
	stats, err = metrics.GetDashboardStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.Total)
	require.EqualValues(t, 3, stats.Stock)
	require.Equal(t, "0.30", stats.Value)
}

func TestInMemoryProductRepository_NameRequired(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryProductRepository()

	_, err := r.Create(ctx, models.Product{Price: 1})
	require.ErrorIs(t, err, ErrNameRequired)

	p, err := r.Create(ctx, models.Product{Name: strPtr("")})
	require.NoError(t, err)

	require.ErrorIs(t, r.Update(ctx, models.Product{ID: p.ID}), ErrNameRequired)
	require.NoError(t, r.Update(ctx, models.Product{ID: 999}))
}
