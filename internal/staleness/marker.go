// Package staleness tracks rendered-content tags invalidated by catalog
// webhooks. Each tag has a monotonically increasing version in Redis; the
// render tier compares the version it rendered against the current one to
// decide whether a page is stale.
package staleness

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const (
	TagProducts   = "products"
	TagCategories = "categories"
)

func ProductTag(slug string) string {
	return "product:" + slug
}

type Marker interface {
	MarkStale(ctx context.Context, tags ...string)
	Version(ctx context.Context, tag string) (int64, bool)
}

type redisMarker struct {
	client *redis.Client
}

func NewRedisMarker(client *redis.Client) Marker {
	return &redisMarker{client: client}
}

// MarkStale bumps each tag's version. Failures are swallowed under the same
// contract as the cache layer: staleness marking is best-effort and never
// fails the webhook response.
func (m *redisMarker) MarkStale(ctx context.Context, tags ...string) {

	for _, tag := range tags {
		if err := m.client.Incr(ctx, versionKey(tag)).Err(); err != nil {
			slog.Warn("Failed to mark tag stale", slog.String("tag", tag), slog.String("error", err.Error()))
		}
	}
}

func (m *redisMarker) Version(ctx context.Context, tag string) (int64, bool) {

	version, err := m.client.Get(ctx, versionKey(tag)).Int64()
	if err != nil {
		return 0, false
	}

	return version, true
}

func versionKey(tag string) string {
	return "stale:" + tag
}
