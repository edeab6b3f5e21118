package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store with a fixed-window counter shared across
// service replicas. Each window lasts Config.RefillInterval and allows
// Config.Capacity tokens; the key expires with the window so abandoned
// counters clean themselves up.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix overrides the default "ratelimit:" key prefix.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) {
		rs.keyPrefix = prefix
	}
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{client: client, keyPrefix: "ratelimit:"}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	redisKey := rs.keyPrefix + key

	// INCRBY then EXPIRE NX in one round trip. The expiry is set only when
	// the key is created, which pins the window to the first request in it.
	pipe := rs.client.TxPipeline()
	count := pipe.IncrBy(ctx, redisKey, int64(tokens))
	pipe.ExpireNX(ctx, redisKey, config.RefillInterval)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}

	ttl, err := rs.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if ttl < 0 {
		ttl = config.RefillInterval
	}

	remaining := config.Capacity - int(count.Val())
	return remaining, time.Now().Add(ttl), nil
}

func (rs *RedisStore) Reset(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.keyPrefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
