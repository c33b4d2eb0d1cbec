package cache

import (
	"context"
	"sync"
	"time"
)

// Entry is a single stored response together with the time it was written.
type Entry struct {
	Data      []byte
	WrittenAt time.Time
	TTL       time.Duration
}

// Fresh reports whether the entry may still be served at now.
// An entry stops being fresh the instant now-WrittenAt reaches TTL.
func (e Entry) Fresh(now time.Time) bool {
	if e.TTL <= 0 {
		return true
	}
	return now.Sub(e.WrittenAt) < e.TTL
}

// MemoryCache is an in-process Cache backed by a map.
//
// Expired entries are never swept; a Get on an expired key reports a miss
// and leaves the slot in place for the next Set to overwrite. The mutex
// only keeps the map consistent across goroutines. It does not merge
// concurrent fetches for the same key.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

// MemoryOption configures a MemoryCache.
type MemoryOption func(*MemoryCache)

// WithClock replaces time.Now, letting tests move time forward deterministically.
func WithClock(now func() time.Time) MemoryOption {
	return func(c *MemoryCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache(opts ...MemoryOption) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the stored body when the entry is still fresh.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !e.Fresh(c.now()) {
		return nil, false, nil
	}
	return e.Data, true, nil
}

// Set stores data stamped with the current clock, replacing any prior entry.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	c.mu.Lock()
	c.entries[key] = Entry{Data: buf, WrittenAt: c.now(), TTL: ttl}
	c.mu.Unlock()
	return nil
}

// Delete removes key if present.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Close does nothing for the memory cache.
func (c *MemoryCache) Close() error {
	return nil
}

// Len returns the number of stored slots, including expired ones.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Entry returns the raw slot for key regardless of freshness.
func (c *MemoryCache) Entry(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e, ok
}

// Keys returns the stored keys in no particular order.
func (c *MemoryCache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// Reset drops every entry.
func (c *MemoryCache) Reset() {
	c.mu.Lock()
	c.entries = make(map[string]Entry)
	c.mu.Unlock()
}

var _ Cache = (*MemoryCache)(nil)
