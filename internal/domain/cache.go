package domain

import (
	"context"
	"time"
)

// CacheRepository defines the cache operations used by the services.
// Implementations are best-effort: callers treat any error as a miss.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	GetDashboardStats(ctx context.Context, dest interface{}) error
	SetDashboardStats(ctx context.Context, stats interface{}, ttl time.Duration) error
	InvalidateDashboardStats(ctx context.Context) error

	GetSettings(ctx context.Context, dest interface{}) error
	SetSettings(ctx context.Context, settings interface{}, ttl time.Duration) error
	InvalidateSettings(ctx context.Context) error
}
