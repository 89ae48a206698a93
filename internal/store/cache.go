// internal/store/cache.go
//
// Keyed query cache with singleflight load deduplication.
//
// Context
// -------
// Every read helper caches its result under a key derived from table and
// scope (e.g. "sections|home").  Concurrent first reads of the same key
// collapse into one database round trip via singleflight.  A successful
// mutation invalidates every key for the affected table, forcing the next
// read to refetch; unrelated keys are never evicted manually.  Entries
// also expire on a short TTL so external writers cannot leave the cache
// stale forever.
package store

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/metrics"
)

// DefaultCacheTTL bounds staleness for reads that were never invalidated.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	val      any
	loadedAt time.Time
}

type queryCache struct {
	sfg singleflight.Group
	mu  sync.RWMutex
	m   map[string]cacheEntry
	ttl time.Duration
}

func newQueryCache(ttl time.Duration) *queryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &queryCache{m: make(map[string]cacheEntry), ttl: ttl}
}

// cacheKey joins table and scope into the canonical "table|scope" form.
func cacheKey(table, scope string) string { return table + "|" + scope }

// get returns the cached value for key, loading it through load() on miss.
// Concurrent misses for the same key share a single load.
func (c *queryCache) get(key string, load func() (any, error)) (any, error) {
	c.mu.RLock()
	ent, ok := c.m[key]
	fresh := ok && time.Since(ent.loadedAt) <= c.ttl
	c.mu.RUnlock()
	if fresh {
		metrics.StoreCacheHitTotal.Inc()
		return ent.val, nil
	}

	v, err, _ := c.sfg.Do(key, func() (any, error) {
		// Double-check after the singleflight barrier.
		c.mu.RLock()
		ent, ok := c.m[key]
		fresh := ok && time.Since(ent.loadedAt) <= c.ttl
		c.mu.RUnlock()
		if fresh {
			return ent.val, nil
		}

		metrics.StoreCacheMissTotal.Inc()
		val, err := load()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.m[key] = cacheEntry{val: val, loadedAt: time.Now()}
		c.mu.Unlock()
		return val, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// invalidate drops every entry whose key begins with "table|".
func (c *queryCache) invalidate(table string) {
	prefix := table + "|"
	c.mu.Lock()
	for k := range c.m {
		if strings.HasPrefix(k, prefix) {
			delete(c.m, k)
		}
	}
	c.mu.Unlock()
}
