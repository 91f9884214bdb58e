package retrieval

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SAP-F-2025/question-delivery-service/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// NoExpiration keeps an entry for the lifetime of the cache
const NoExpiration time.Duration = 0

// CacheEntry is a cached value and the time it was stored
type CacheEntry struct {
	Value      interface{}
	InsertedAt time.Time
}

// Stale reports whether the entry has outlived ttl at now. A ttl of zero or
// less never goes stale.
func (e CacheEntry) Stale(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(e.InsertedAt) > ttl
}

// Cache is a process-wide store keyed by resource identity. Concurrent loads
// of the same key share a single loader call.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]CacheEntry
	loads   singleflight.Group
	now     func() time.Time
	metrics metrics.MetricsCollector
}

type CacheOption func(*Cache)

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

func WithCacheMetrics(m metrics.MetricsCollector) CacheOption {
	return func(c *Cache) {
		c.metrics = m
	}
}

func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[string]CacheEntry),
		now:     time.Now,
		metrics: metrics.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Len returns the number of stored entries, stale ones included
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) lookup(key string, ttl time.Duration) (interface{}, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if entry.Stale(c.now(), ttl) {
		c.mu.Lock()
		// only evict if nobody replaced it in the meantime
		if current, ok := c.entries[key]; ok && current.InsertedAt.Equal(entry.InsertedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return entry.Value, true
}

func (c *Cache) store(key string, value interface{}) {
	c.mu.Lock()
	c.entries[key] = CacheEntry{Value: value, InsertedAt: c.now()}
	c.mu.Unlock()
}

// Delete drops the entry stored under key. A load already in flight for the
// key is not interrupted and stores its result when it finishes.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// GetCached returns the value cached under key, calling loader when the key
// is absent or older than ttl. Loader errors are returned and not cached.
//
// The loader runs detached from the caller's cancellation because other
// callers may be waiting on the same load. A caller whose ctx is done stops
// waiting and gets ctx.Err(); the load carries on for the others.
func GetCached[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, loader func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if value, ok := c.lookup(key, ttl); ok {
		if typed, ok := value.(T); ok {
			c.metrics.RecordCacheLookup(true)
			return typed, nil
		}
	}
	c.metrics.RecordCacheLookup(false)

	loadCtx := context.WithoutCancel(ctx)
	results := c.loads.DoChan(key, func() (interface{}, error) {
		// a flight that finished just before this one may have stored it
		if value, ok := c.lookup(key, ttl); ok {
			if _, ok := value.(T); ok {
				return value, nil
			}
		}

		loaded, err := loader(loadCtx)
		if err != nil {
			return nil, err
		}
		c.store(key, loaded)
		return loaded, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-results:
	}
	if res.Err != nil {
		return zero, res.Err
	}

	typed, ok := res.Val.(T)
	if !ok {
		return zero, fmt.Errorf("cache entry %q holds %T", key, res.Val)
	}
	return typed, nil
}
