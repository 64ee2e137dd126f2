//go:build integration

package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/uniedit/landing/internal/shared/config"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.Run(ctx, "redis:7-alpine",
		testcontainers.WithExposedPorts("6379/tcp"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").WithStartupTimeout(60*time.Second)),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := NewRedisClient(&config.RedisConfig{Address: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(client) })

	return client
}

func TestRateLimiter_Redis(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	now := time.Now()
	limiter := NewRateLimiter(client)
	limiter.now = func() time.Time { return now }

	tick := func() {
		now = now.Add(time.Millisecond)
	}

	t.Run("allows up to the limit", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			tick()
			ok, err := limiter.Allow(ctx, "ip:1", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, ok, "request %d", i)
		}

		tick()
		ok, err := limiter.Allow(ctx, "ip:1", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		remaining, err := limiter.GetRemaining(ctx, "ip:1", 3, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("window slides", func(t *testing.T) {
		now = now.Add(2 * time.Minute)

		remaining, err := limiter.GetRemaining(ctx, "ip:1", 3, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)

		ok, err := limiter.Allow(ctx, "ip:1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("keys are independent", func(t *testing.T) {
		tick()
		ok, err := limiter.Allow(ctx, "ip:2", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		remaining, err := limiter.GetRemaining(ctx, "ip:2", 1, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})
	t.Run("requests at the same instant count separately", func(t *testing.T) {
		now = now.Add(2 * time.Minute)

		for i := 0; i < 2; i++ {
			ok, err := limiter.Allow(ctx, "ip:3", 2, time.Minute)
			require.NoError(t, err)
			assert.True(t, ok, "request %d", i)
		}

		ok, err := limiter.Allow(ctx, "ip:3", 2, time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		remaining, err := limiter.GetRemaining(ctx, "ip:3", 2, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("concurrent requests never exceed the limit", func(t *testing.T) {
		const limit, workers = 5, 20

		var wg sync.WaitGroup
		var allowed atomic.Int32
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := limiter.Allow(ctx, "ip:4", limit, time.Minute)
				if err == nil && ok {
					allowed.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(limit), allowed.Load())
	})
}
