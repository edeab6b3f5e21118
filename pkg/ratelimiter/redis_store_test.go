package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/ratelimiter"
)

func newRedisLimiter(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Limiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter, err := ratelimiter.NewLimiter(ratelimiter.NewRedisStore(client), cfg)
	require.NoError(t, err)
	return limiter, mr
}

func TestRedisStore_FixedWindow(t *testing.T) {
	t.Parallel()

	cfg := ratelimiter.Config{
		Capacity:       3,
		RefillRate:     3,
		RefillInterval: time.Minute,
	}

	t.Run("denies after capacity is spent", func(t *testing.T) {
		t.Parallel()

		limiter, _ := newRedisLimiter(t, cfg)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			result, err := limiter.Allow(ctx, "login:alice")
			require.NoError(t, err)
			assert.True(t, result.Allowed(), "attempt %d should be allowed", i+1)
			assert.Equal(t, 3, result.Limit)
		}

		result, err := limiter.Allow(ctx, "login:alice")
		require.NoError(t, err)
		assert.False(t, result.Allowed())
	})

	t.Run("window expiry restores allowance", func(t *testing.T) {
		t.Parallel()

		limiter, mr := newRedisLimiter(t, cfg)
		ctx := context.Background()

		for i := 0; i < 4; i++ {
			_, err := limiter.Allow(ctx, "login:alice")
			require.NoError(t, err)
		}

		mr.FastForward(2 * time.Minute)

		result, err := limiter.Allow(ctx, "login:alice")
		require.NoError(t, err)
		assert.True(t, result.Allowed())
	})

	t.Run("reset clears the counter", func(t *testing.T) {
		t.Parallel()

		limiter, _ := newRedisLimiter(t, cfg)
		ctx := context.Background()

		for i := 0; i < 4; i++ {
			_, err := limiter.Allow(ctx, "login:alice")
			require.NoError(t, err)
		}
		require.NoError(t, limiter.Reset(ctx, "login:alice"))

		result, err := limiter.Allow(ctx, "login:alice")
		require.NoError(t, err)
		assert.True(t, result.Allowed())
	})

	t.Run("unreachable redis surfaces store error", func(t *testing.T) {
		t.Parallel()

		limiter, mr := newRedisLimiter(t, cfg)
		mr.Close()

		_, err := limiter.Allow(context.Background(), "login:alice")
		assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)
	})
}
