package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/headless-commerce/storefront-gateway/internal/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	return cache.NewRedisCache(client), mock
}

// setupMini backs the cache with a real in-process Redis for the operations
// redismock cannot express well (SCAN iteration, liveness).
func setupMini(t *testing.T) (cache.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	c := cache.NewRedisCache(client)
	t.Cleanup(func() { c.Close() })

	return c, mr
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	testKey := "product:blue-mug"
	testValue := testEntry{Name: "Blue Mug", Count: 3}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Hit", func(t *testing.T) {
		// Arrange
		c, mock := setup(t)

		var result testEntry

		mock.ExpectGet(testKey).SetVal(string(jsonData))

		// Act
		outcome := c.Get(ctx, testKey, &result)

		// Assert
		assert.Equal(t, cache.Hit, outcome)
		assert.Equal(t, testValue, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		// Arrange
		c, mock := setup(t)

		var result testEntry

		mock.ExpectGet(testKey).SetErr(redis.Nil)

		// Act
		outcome := c.Get(ctx, testKey, &result)

		// Assert
		assert.Equal(t, cache.Miss, outcome)
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unavailable - Connection Error", func(t *testing.T) {
		// Arrange
		c, mock := setup(t)

		var result testEntry

		mock.ExpectGet(testKey).SetErr(errors.New("connection refused"))

		// Act
		outcome := c.Get(ctx, testKey, &result)

		// Assert
		assert.Equal(t, cache.Unavailable, outcome)
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unavailable - Corrupt Entry", func(t *testing.T) {
		// Arrange
		c, mock := setup(t)

		var result testEntry

		mock.ExpectGet(testKey).SetVal("{not json")

		// Act
		outcome := c.Get(ctx, testKey, &result)

		// Assert
		assert.Equal(t, cache.Unavailable, outcome)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	testKey := "categories:all"
	testValue := testEntry{Name: "Categories", Count: 12}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		c, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, time.Hour).SetVal("OK")

		// Act
		c.Set(ctx, testKey, testValue, time.Hour)

		// Assert
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure Is Swallowed", func(t *testing.T) {
		// Arrange
		c, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, time.Hour).SetErr(errors.New("connection refused"))

		// Act: must not panic or surface anything.
		c.Set(ctx, testKey, testValue, time.Hour)

		// Assert
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unserializable Value Is Skipped", func(t *testing.T) {
		// Arrange
		c, _ := setup(t)

		// Act: channels have no JSON encoding; no command must be issued.
		c.Set(ctx, testKey, make(chan int), time.Hour)
	})
}

func TestDeleteByPattern(t *testing.T) {
	ctx := t.Context()

	t.Run("Evicts Matching Keys Only", func(t *testing.T) {
		// Arrange
		c, mr := setupMini(t)

		require.NoError(t, mr.Set("products:{\"per_page\":20,\"page\":1}", "a"))
		require.NoError(t, mr.Set("products:{\"per_page\":20,\"page\":2}", "b"))
		require.NoError(t, mr.Set("product:blue-mug", "c"))

		// Act
		c.DeleteByPattern(ctx, "products:*")

		// Assert
		assert.False(t, mr.Exists("products:{\"per_page\":20,\"page\":1}"))
		assert.False(t, mr.Exists("products:{\"per_page\":20,\"page\":2}"))
		assert.True(t, mr.Exists("product:blue-mug"))
	})

	t.Run("No Matches Is A No-Op", func(t *testing.T) {
		// Arrange
		c, mr := setupMini(t)

		require.NoError(t, mr.Set("categories:all", "x"))

		// Act
		c.DeleteByPattern(ctx, "products:*")

		// Assert
		assert.True(t, mr.Exists("categories:all"))
	})

	t.Run("Unreachable Cache Is Swallowed", func(t *testing.T) {
		// Arrange
		c, mr := setupMini(t)
		mr.Close()

		// Act: must not panic.
		c.DeleteByPattern(ctx, "products:*")
	})
}

func TestHealthCheck(t *testing.T) {
	ctx := t.Context()

	t.Run("Healthy", func(t *testing.T) {
		// Arrange
		c, _ := setupMini(t)

		// Act
		health := c.HealthCheck(ctx)

		// Assert
		assert.True(t, health.OK)
	})

	t.Run("Unreachable", func(t *testing.T) {
		// Arrange
		c, mr := setupMini(t)
		mr.Close()

		// Act
		health := c.HealthCheck(ctx)

		// Assert
		assert.False(t, health.OK)
	})
}

func TestRoundTrip(t *testing.T) {
	// Arrange
	ctx := t.Context()
	c, _ := setupMini(t)

	original := testEntry{Name: "Blue Mug", Count: 2}

	// Act
	c.Set(ctx, "product:blue-mug", original, time.Minute)

	var restored testEntry
	outcome := c.Get(ctx, "product:blue-mug", &restored)

	// Assert
	assert.Equal(t, cache.Hit, outcome)
	assert.Equal(t, original, restored)
}
