package cache

import (
	"context"
	"time"
)

// Outcome classifies a cache read. Miss and Unavailable are deliberately
// indistinguishable to callers' control flow (both mean "go to upstream");
// the distinction exists for logging and metrics only.
type Outcome int

const (
	Hit Outcome = iota
	Miss
	Unavailable
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return "unavailable"
	}
}

type Health struct {
	OK      bool          `json:"ok"`
	Latency time.Duration `json:"-"`
}

// Cache is a best-effort key/value store. No method other than Close ever
// returns an error: a failed read behaves as a miss and a failed write is
// dropped, so the cache can never fail a request.
type Cache interface {
	Get(ctx context.Context, key string, value any) Outcome
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	DeleteByPattern(ctx context.Context, pattern string)
	HealthCheck(ctx context.Context) Health
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	ProductListKeyPrefix = "products"
	ProductKeyPrefix     = "product"
	CategoriesKeyPrefix  = "categories"

	CategoriesKey = "categories:all"
)
