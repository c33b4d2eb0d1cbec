// Package cache provides the response cache behind the catalog client.
//
// # Backends
//
//   - [MemoryCache]: process-local map with time-based expiry (default)
//   - [RedisCache]: shared Redis backend for several processes
//   - [NullCache]: never stores anything (caching disabled)
//
// All backends store raw response bodies keyed by the fully constructed
// request URL. An entry written at time W with TTL T is served while
// now-W < T. Once it has aged out it is reported as a miss; it is not
// removed eagerly and the next successful fetch overwrites it.
//
// # Usage
//
//	c := cache.NewMemoryCache()
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return decode(data)
//	}
//	data := fetch()
//	_ = c.Set(ctx, key, data, 30*time.Minute)
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the lifetime of a cached catalog response.
const DefaultTTL = 30 * time.Minute

// Cache stores response bodies by key with a per-entry TTL.
//
// Implementations must be safe for concurrent use. They do not coalesce
// concurrent misses for the same key: two callers that miss both fetch,
// and the later Set wins.
type Cache interface {
	// Get returns the stored bytes and true if key holds a fresh entry.
	// Expired and missing entries both return (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key, overwriting any previous entry and
	// restarting its TTL. A ttl <= 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
