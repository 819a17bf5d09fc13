package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/headless-commerce/storefront-gateway/internal/metrics"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (r *redisCache) Get(ctx context.Context, key string, value any) Outcome {

	outcome := r.get(ctx, key, value)
	metrics.RecordCacheLookup(outcome.String())

	return outcome
}

func (r *redisCache) get(ctx context.Context, key string, value any) Outcome {

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {

		if err == redis.Nil {
			return Miss
		}

		slog.Warn("Cache read failed", slog.String("key", key), slog.String("error", err.Error()))

		return Unavailable
	}

	if err := json.Unmarshal(data, value); err != nil {
		slog.Warn("Cache entry is not valid JSON", slog.String("key", key), slog.String("error", err.Error()))

		return Unavailable
	}

	return Hit
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {

	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("Cache write skipped, value not serializable", slog.String("key", key), slog.String("error", err.Error()))

		return
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		slog.Warn("Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// DeleteByPattern walks matching keys with SCAN and removes them. Used for
// coarse invalidation buckets such as "products:*".
func (r *redisCache) DeleteByPattern(ctx context.Context, pattern string) {

	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		slog.Warn("Cache scan failed", slog.String("pattern", pattern), slog.String("error", err.Error()))

		return
	}

	if len(keys) == 0 {
		return
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("Cache eviction failed", slog.String("pattern", pattern), slog.String("error", err.Error()))

		return
	}

	slog.Debug("Cache entries evicted", slog.String("pattern", pattern), slog.Int("count", len(keys)))
}

func (r *redisCache) HealthCheck(ctx context.Context) Health {

	start := time.Now()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return Health{OK: false}
	}

	return Health{OK: true, Latency: time.Since(start)}
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
