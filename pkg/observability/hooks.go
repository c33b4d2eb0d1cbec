// Package observability provides hooks for cache and HTTP instrumentation.
//
// The catalog client emits events about cache lookups and upstream
// requests through [CacheHooks] and [HTTPHooks]. Hooks are injected per
// client through [Hooks] rather than registered globally, so tests can
// attach a [Counters] and assert on exact request counts.
//
// # Implementations
//
//   - [NoopCacheHooks], [NoopHTTPHooks]: defaults, discard everything
//   - [Counters]: atomic counters, used by `cinedex --stats` and the server's /debug/stats
//   - [LogHooks]: debug-level logging through charmbracelet/log
//   - [Multi]: fans events out to several hook sets
//
// # Usage
//
//	counters := &observability.Counters{}
//	client := catalog.NewClient(catalog.Options{
//	    BaseURL: "https://api.example.com",
//	    Hooks:   observability.Multi(counters.Hooks(), observability.LogHooks(logger)),
//	})
package observability

import (
	"context"
	"time"
)

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a lookup served from the cache.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss records a lookup that had to go to the network.
	OnCacheMiss(ctx context.Context, key string)

	// OnCacheSet records a cache write of size bytes.
	OnCacheSet(ctx context.Context, key string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, url string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, url string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, url string, err error)
}

// Hooks bundles the hook sets a catalog client reports to.
// Nil fields fall back to the no-op implementations.
type Hooks struct {
	Cache CacheHooks
	HTTP  HTTPHooks
}

// WithDefaults returns a copy of h with nil fields replaced by no-ops.
func (h Hooks) WithDefaults() Hooks {
	if h.Cache == nil {
		h.Cache = NoopCacheHooks{}
	}
	if h.HTTP == nil {
		h.HTTP = NoopHTTPHooks{}
	}
	return h
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Fan-out
// =============================================================================

// Multi returns Hooks that forward every event to each of hs in order.
func Multi(hs ...Hooks) Hooks {
	var mc multiCache
	var mh multiHTTP
	for _, h := range hs {
		h = h.WithDefaults()
		mc = append(mc, h.Cache)
		mh = append(mh, h.HTTP)
	}
	return Hooks{Cache: mc, HTTP: mh}
}

type multiCache []CacheHooks

func (m multiCache) OnCacheHit(ctx context.Context, key string) {
	for _, h := range m {
		h.OnCacheHit(ctx, key)
	}
}

func (m multiCache) OnCacheMiss(ctx context.Context, key string) {
	for _, h := range m {
		h.OnCacheMiss(ctx, key)
	}
}

func (m multiCache) OnCacheSet(ctx context.Context, key string, size int) {
	for _, h := range m {
		h.OnCacheSet(ctx, key, size)
	}
}

type multiHTTP []HTTPHooks

func (m multiHTTP) OnRequest(ctx context.Context, method, url string) {
	for _, h := range m {
		h.OnRequest(ctx, method, url)
	}
}

func (m multiHTTP) OnResponse(ctx context.Context, method, url string, status int, d time.Duration) {
	for _, h := range m {
		h.OnResponse(ctx, method, url, status, d)
	}
}

func (m multiHTTP) OnError(ctx context.Context, method, url string, err error) {
	for _, h := range m {
		h.OnError(ctx, method, url, err)
	}
}
