package fetcher

import (
	"sync"
	"time"
)

// ttlCache is a small expiring cache used to keep repeated API calls for the
// same team or fixture from burning through the request quota. Values may be
// nil: a remembered failure is cached too, with a shorter TTL, so a flaky
// upstream is not re-hit for every fixture in the batch.
type ttlCache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]cacheEntry[V]
}

type cacheEntry[V any] struct {
	expiresAt time.Time
	value     V
}

const cachePruneSize = 512

func newTTLCache[K comparable, V any]() *ttlCache[K, V] {
	return &ttlCache[K, V]{entries: make(map[K]cacheEntry[V])}
}

func (c *ttlCache[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return entry.value, true
}

func (c *ttlCache[K, V]) set(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry[V]{expiresAt: time.Now().Add(ttl), value: value}
	if len(c.entries) > cachePruneSize {
		now := time.Now()
		for k, e := range c.entries {
			if now.After(e.expiresAt) {
				delete(c.entries, k)
			}
		}
	}
}
