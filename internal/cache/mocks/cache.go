package mocks

import (
	"context"
	"time"

	"github.com/headless-commerce/storefront-gateway/internal/cache"
	"github.com/stretchr/testify/mock"
)

type Cache struct {
	mock.Mock
}

func (m *Cache) Get(ctx context.Context, key string, value any) cache.Outcome {
	args := m.Called(ctx, key, value)

	return args.Get(0).(cache.Outcome)
}

func (m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	m.Called(ctx, key, value, ttl)
}

func (m *Cache) DeleteByPattern(ctx context.Context, pattern string) {
	m.Called(ctx, pattern)
}

func (m *Cache) HealthCheck(ctx context.Context) cache.Health {
	args := m.Called(ctx)

	return args.Get(0).(cache.Health)
}

func (m *Cache) Close() error {
	args := m.Called()

	return args.Error(0)
}
