// Package cache provides a process-local, TTL-bounded memoization store.
// It fronts the "all users with products" query and is invalidated on any
// user mutation so the list view never serves stale membership.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache is a mutex-guarded key/value store with per-entry expiry.
// It is constructed once per process and injected into the services
// that need it.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
	}
}

// GetOrCompute returns the live value stored under key. On a miss (absent or
// expired entry) it invokes compute, stores the result with expiry now+ttl and
// returns it. The boolean reports whether the value came from the cache.
//
// compute runs without the lock held: two concurrent misses may both compute
// and the later store wins, which is acceptable for this workload.
func (c *Cache) GetOrCompute(key string, ttl time.Duration, compute func() (interface{}, error)) (interface{}, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && time.Now().Before(e.expiresAt) {
		return e.value, true, nil
	}

	value, err := compute()
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()

	return value, false, nil
}

// Invalidate removes the entry for key unconditionally. The next
// GetOrCompute for that key recomputes.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Has reports whether a live entry exists for key.
func (c *Cache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	return ok && time.Now().Before(e.expiresAt)
}
