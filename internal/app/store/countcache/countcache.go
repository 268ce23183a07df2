// Package countcache caches dashboard counts in Redis.
//
// Counter wraps another stats.Counter. Each count is stored under its own
// key with a TTL; a miss or any cache error falls through to the wrapped
// counter, so Redis being down only costs latency.
package countcache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dalemusser/homestay/internal/app/system/stats"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrMiss is returned by KV.Get when the key does not exist.
var ErrMiss = errors.New("countcache: miss")

// Cache keys.
const (
	KeyBookings = "homestay:stats:bookings"
	KeyHosts    = "homestay:stats:active_hosts"
	KeyPending  = "homestay:stats:pending_responses"
)

// KV is the subset of Redis the cache needs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// redisKV adapts a go-redis client to KV.
type redisKV struct {
	client *redis.Client
}

// NewRedisKV wraps a go-redis client.
func NewRedisKV(client *redis.Client) KV {
	return &redisKV{client: client}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return v, err
}

func (r *redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisKV) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

// Counter is a caching stats.Counter.
type Counter struct {
	inner stats.Counter
	kv    KV
	ttl   time.Duration
	log   *zap.Logger
}

// New wraps inner with a cache stored in kv.
func New(inner stats.Counter, kv KV, ttl time.Duration, logger *zap.Logger) *Counter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Counter{inner: inner, kv: kv, ttl: ttl, log: logger}
}

func (c *Counter) CountBookings(ctx context.Context) (int64, error) {
	return c.cached(ctx, KeyBookings, c.inner.CountBookings)
}

func (c *Counter) CountActiveHosts(ctx context.Context) (int64, error) {
	return c.cached(ctx, KeyHosts, c.inner.CountActiveHosts)
}

func (c *Counter) CountPendingResponses(ctx context.Context) (int64, error) {
	return c.cached(ctx, KeyPending, c.inner.CountPendingResponses)
}

// Invalidate drops all cached counts so the next fetch goes to the store.
func (c *Counter) Invalidate(ctx context.Context) error {
	return c.kv.Del(ctx, KeyBookings, KeyHosts, KeyPending)
}

func (c *Counter) cached(ctx context.Context, key string, load func(context.Context) (int64, error)) (int64, error) {
	v, err := c.kv.Get(ctx, key)
	switch {
	case err == nil:
		if n, perr := strconv.ParseInt(v, 10, 64); perr == nil {
			return n, nil
		}
		c.log.Warn("countcache: discarding unparsable value", zap.String("key", key), zap.String("value", v))
	case !errors.Is(err, ErrMiss):
		c.log.Warn("countcache: get failed", zap.String("key", key), zap.Error(err))
	}

	n, err := load(ctx)
	if err != nil {
		// failures are never cached
		return 0, err
	}

	if err := c.kv.Set(ctx, key, strconv.FormatInt(n, 10), c.ttl); err != nil {
		c.log.Warn("countcache: set failed", zap.String("key", key), zap.Error(err))
	}
	return n, nil
}
