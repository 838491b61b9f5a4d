package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	dashboardStatsKey = "dashboard:stats"
	settingsKey       = "settings:company"
)

// ErrCacheMiss signals that a key is absent or expired
var ErrCacheMiss = fmt.Errorf("cache miss")

// RedisCacheRepository caches dashboard snapshots and the settings document
type RedisCacheRepository struct {
	client *redis.Client
}

// NewRedisCacheRepository creates a new Redis cache repository
func NewRedisCacheRepository(client *redis.Client) *RedisCacheRepository {
	return &RedisCacheRepository{
		client: client,
	}
}

// Get retrieves a value from cache by key with OTel tracing
func (r *RedisCacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Get",
		trace.WithAttributes(attribute.String("cache.key", key)),
	)
	defer span.End()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			span.SetAttributes(attribute.String("cache.result", "miss"))
			return ErrCacheMiss
		}
		span.RecordError(err)
		return fmt.Errorf("redis get error: %w", err)
	}

	span.SetAttributes(attribute.String("cache.result", "hit"))
	if err := json.Unmarshal(data, dest); err != nil {
		span.RecordError(err)
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// Set stores a value in cache with TTL and OTel tracing
func (r *RedisCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Set",
		trace.WithAttributes(
			attribute.String("cache.key", key),
			attribute.Int64("cache.ttl_seconds", int64(ttl.Seconds())),
		),
	)
	defer span.End()

	data, err := json.Marshal(value)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis set error: %w", err)
	}

	return nil
}

// Delete removes keys from cache with OTel tracing
func (r *RedisCacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Delete",
		trace.WithAttributes(attribute.Int("cache.key_count", len(keys))),
	)
	defer span.End()

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis delete error: %w", err)
	}

	return nil
}

// SetDashboardStats caches the aggregated dashboard snapshot
func (r *RedisCacheRepository) SetDashboardStats(ctx context.Context, stats interface{}, ttl time.Duration) error {
	return r.Set(ctx, dashboardStatsKey, stats, ttl)
}

// GetDashboardStats retrieves the cached dashboard snapshot
func (r *RedisCacheRepository) GetDashboardStats(ctx context.Context, dest interface{}) error {
	return r.Get(ctx, dashboardStatsKey, dest)
}

// InvalidateDashboardStats drops the cached dashboard snapshot. Called after
// any booking/package/blog/team mutation so the next dashboard read is fresh.
func (r *RedisCacheRepository) InvalidateDashboardStats(ctx context.Context) error {
	return r.Delete(ctx, dashboardStatsKey)
}

// SetSettings caches the settings document
func (r *RedisCacheRepository) SetSettings(ctx context.Context, settings interface{}, ttl time.Duration) error {
	return r.Set(ctx, settingsKey, settings, ttl)
}

// GetSettings retrieves the cached settings document
func (r *RedisCacheRepository) GetSettings(ctx context.Context, dest interface{}) error {
	return r.Get(ctx, settingsKey, dest)
}

// InvalidateSettings drops the cached settings document
func (r *RedisCacheRepository) InvalidateSettings(ctx context.Context) error {
	return r.Delete(ctx, settingsKey)
}
