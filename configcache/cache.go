// Package configcache memoizes the result of one fetch for the lifetime of
// the cache.
//
// A Cache is meant to be constructed once at process start and passed to
// every call site. The first Get triggers the fetch; callers arriving while
// it is in flight wait for the same fetch instead of issuing another. Only
// success is remembered: after a failed fetch the next Get tries again.
package configcache

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// FetchFunc produces the value to cache.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Cache holds a single lazily fetched value.
type Cache[T any] struct {
	fetch  FetchFunc[T]
	logger zerolog.Logger

	group singleflight.Group

	mu     sync.RWMutex
	value  T
	loaded bool
}

// New creates a cache around fetch.
func New[T any](fetch FetchFunc[T], logger zerolog.Logger) *Cache[T] {
	return &Cache[T]{
		fetch:  fetch,
		logger: logger,
	}
}

// Get returns the cached value, fetching it first if needed. A caller whose
// ctx ends while waiting returns ctx.Err(); the shared fetch keeps running
// for the other waiters.
func (c *Cache[T]) Get(ctx context.Context) (T, error) {
	if v, ok := c.cached(); ok {
		return v, nil
	}

	ch := c.group.DoChan("value", func() (any, error) {
		if v, ok := c.cached(); ok {
			return v, nil
		}

		c.logger.Debug().Msg("Fetching value for cache")

		// Detached from the first caller so its cancellation does not fail
		// everyone else waiting on this fetch.
		v, err := c.fetch(context.WithoutCancel(ctx))
		if err != nil {
			c.logger.Debug().Err(err).Msg("Cache fetch failed")
			return nil, err
		}

		c.mu.Lock()
		c.value = v
		c.loaded = true
		c.mu.Unlock()
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			var zero T
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Loaded reports whether a value has been cached.
func (c *Cache[T]) Loaded() bool {
	_, ok := c.cached()
	return ok
}

func (c *Cache[T]) cached() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.loaded
}
