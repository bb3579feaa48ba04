package redissvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/inventory-panel/internal/config"
	"github.com/rogerio-castellano/inventory-panel/internal/models"
)

const (
	DashboardStatsKey = "inventory:dashboard:stats"
	// StatsVersionKey is bumped on every invalidation.
	StatsVersionKey = "inventory:dashboard:stats:version"
)

type RedisService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisService(rdb *redis.Client, ttl time.Duration) *RedisService {
	return &RedisService{
		rdb: rdb,
		ttl: ttl,
	}
}

// Connect opens a client and verifies it answers PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (*RedisService, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	return NewRedisService(rdb, cfg.StatsTTL), nil
}

func (s *RedisService) Close() error {
	return s.rdb.Close()
}

// GetStats returns the cached dashboard stats. ok is false on a cache miss.
func (s *RedisService) GetStats(ctx context.Context) (stats models.DashboardStats, ok bool, err error) {
	data, err := s.rdb.Get(ctx, DashboardStatsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.DashboardStats{}, false, nil
	}
	if err != nil {
		return models.DashboardStats{}, false, err
	}
	if err := json.Unmarshal(data, &stats); err != nil {
		return models.DashboardStats{}, false, fmt.Errorf("decode cached stats: %w", err)
	}
	return stats, true, nil
}

// StatsVersion returns the current invalidation counter, 0 if never bumped.
func (s *RedisService) StatsVersion(ctx context.Context) (int64, error) {
	v, err := s.rdb.Get(ctx, StatsVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// SetStats stores stats computed while the counter was at version. If an
// invalidation happened since, nothing is stored.
func (s *RedisService) SetStats(ctx context.Context, stats models.DashboardStats, version int64) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, StatsVersionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, DashboardStatsKey, data, s.ttl)
			return nil
		})
		return err
	}, StatsVersionKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (s *RedisService) InvalidateStats(ctx context.Context) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, StatsVersionKey)
		pipe.Del(ctx, DashboardStatsKey)
		return nil
	})
	return err
}
