package cache

import (
	"context"
	"time"
)

// NullCache discards every write, so every Get misses.
// The catalog client uses it when caching is switched off with --no-cache.
type NullCache struct{}

// NewNullCache returns a Cache that stores nothing.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
