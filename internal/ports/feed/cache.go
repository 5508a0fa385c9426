package feed

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by CacheStore.Get when the key is absent. The
// caller treats any other Get error the same way, but logs it: the cache is
// an optimization, not a source of truth.
var ErrCacheMiss = errors.New("cache: key not found")

// CacheStore is the outbound port for the key-value cache holding the feed
// snapshot. Set is a single atomic set-with-TTL; Delete is idempotent.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Invalidator is the inbound port mutation handlers use to drop the cached
// feed snapshot. Centralizing invalidation here keeps every feed-affecting
// mutation on the same code path.
type Invalidator interface {
	InvalidateFeed(ctx context.Context) error
}
