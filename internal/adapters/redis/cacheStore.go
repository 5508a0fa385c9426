package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	feedPort "socialfeed/internal/ports/feed"
)

// CacheStoreRedis implements the CacheStore port on a redis client. The
// underlying store enforces the TTL itself; nothing here runs timers.
type CacheStoreRedis struct {
	Client *redis.Client
}

func NewCacheStoreRedis(client *redis.Client) *CacheStoreRedis {
	return &CacheStoreRedis{Client: client}
}

func (c *CacheStoreRedis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, feedPort.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (c *CacheStoreRedis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *CacheStoreRedis) Delete(ctx context.Context, key string) error {
	// DEL of an absent key is a no-op in redis, so Delete is idempotent.
	return c.Client.Del(ctx, key).Err()
}
