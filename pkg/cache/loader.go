package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Loader reads through a Cache, computing missing values at most once per
// key at a time.
type Loader[V any] struct {
	cache Cache[V]
	ttl   time.Duration
	group singleflight.Group
}

// NewLoader wraps c. Computed values are stored with ttl.
func NewLoader[V any](c Cache[V], ttl time.Duration) *Loader[V] {
	return &Loader[V]{cache: c, ttl: ttl}
}

// Load returns the cached value for key or calls fn to compute it.
// Concurrent misses for the same key share a single fn call. The boolean
// reports a cache hit. Errors from fn are returned and not cached; a failing
// cache is bypassed.
func (l *Loader[V]) Load(ctx context.Context, key string, fn func(ctx context.Context) (V, error)) (V, bool, error) {
	if v, err := l.cache.Get(ctx, key); err == nil {
		return v, true, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		val, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		_ = l.cache.Set(ctx, key, val, l.ttl)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return v.(V), false, nil
}
