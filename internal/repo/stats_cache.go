package repo

import (
	"context"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-panel/internal/models"
)

// StatsCache stores the last computed dashboard stats. InvalidateStats bumps a
// version; SetStats only stores stats computed at the current version, so a
// read racing a write cannot put stale stats back.
type StatsCache interface {
	GetStats(ctx context.Context) (models.DashboardStats, bool, error)
	StatsVersion(ctx context.Context) (int64, error)
	SetStats(ctx context.Context, stats models.DashboardStats, version int64) error
	InvalidateStats(ctx context.Context) error
}

// CachedMetricsRepository serves dashboard stats from a cache, falling back to
// the wrapped repository on a miss or a cache failure.
type CachedMetricsRepository struct {
	inner MetricsRepository
	cache StatsCache
	log   *zap.Logger
}

func NewCachedMetricsRepository(inner MetricsRepository, cache StatsCache, log *zap.Logger) *CachedMetricsRepository {
	return &CachedMetricsRepository{inner: inner, cache: cache, log: log}
}

func (r *CachedMetricsRepository) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	stats, ok, err := r.cache.GetStats(ctx)
	if err != nil {
		r.log.Warn("stats cache read failed", zap.Error(err))
	}
	if ok {
		return stats, nil
	}

	version, err := r.cache.StatsVersion(ctx)
	if err != nil {
		r.log.Warn("stats cache version read failed", zap.Error(err))
		return r.inner.GetDashboardStats(ctx)
	}

	stats, err = r.inner.GetDashboardStats(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	if err := r.cache.SetStats(ctx, stats, version); err != nil {
		r.log.Warn("stats cache write failed", zap.Error(err))
	}
	return stats, nil
}

// InvalidatingProductRepository drops the cached dashboard stats after every
// successful write.
type InvalidatingProductRepository struct {
	ProductRepository
	cache StatsCache
	log   *zap.Logger
}

func NewInvalidatingProductRepository(inner ProductRepository, cache StatsCache, log *zap.Logger) *InvalidatingProductRepository {
	return &InvalidatingProductRepository{ProductRepository: inner, cache: cache, log: log}
}

func (r *InvalidatingProductRepository) invalidate(ctx context.Context) {
	if err := r.cache.InvalidateStats(ctx); err != nil {
		r.log.Warn("stats cache invalidation failed", zap.Error(err))
	}
}

func (r *InvalidatingProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	created, err := r.ProductRepository.Create(ctx, p)
	if err == nil {
		r.invalidate(ctx)
	}
	return created, err
}

func (r *InvalidatingProductRepository) Update(ctx context.Context, p models.Product) error {
	err := r.ProductRepository.Update(ctx, p)
	if err == nil {
		r.invalidate(ctx)
	}
	return err
}

func (r *InvalidatingProductRepository) Delete(ctx context.Context, id int64) error {
	err := r.ProductRepository.Delete(ctx, id)
	if err == nil {
		r.invalidate(ctx)
	}
	return err
}
