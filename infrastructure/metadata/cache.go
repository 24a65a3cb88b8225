package metadata

import (
	"sync"
	"time"

	"linkvault/application/ports"
)

// resultCache is a TTL cache of scrape results keyed by normalized URL.
// Pre-fill requests for the same page tend to arrive in bursts (user edits
// the URL field, blurs, edits again), so even a short TTL absorbs most of
// the repeat traffic.
type resultCache struct {
	mu    sync.RWMutex
	items map[string]cachedResult
	ttl   time.Duration
}

type cachedResult struct {
	meta      ports.PageMetadata
	expiresAt time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	cache := &resultCache{
		items: make(map[string]cachedResult),
		ttl:   ttl,
	}
	go cache.cleanupExpired()
	return cache
}

func (c *resultCache) get(key string) (ports.PageMetadata, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists || time.Now().After(item.expiresAt) {
		return ports.PageMetadata{}, false
	}
	return item.meta, true
}

func (c *resultCache) set(key string, meta ports.PageMetadata) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = cachedResult{
		meta:      meta,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *resultCache) cleanupExpired() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, item := range c.items {
			if now.After(item.expiresAt) {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}
