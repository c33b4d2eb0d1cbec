package observability

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Counters tallies cache and HTTP events. The zero value is ready to use
// and safe for concurrent use.
type Counters struct {
	hits     atomic.Int64
	misses   atomic.Int64
	sets     atomic.Int64
	requests atomic.Int64
	failures atomic.Int64
}

// Snapshot is a point-in-time copy of Counters.
type Snapshot struct {
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	CacheSets    int64 `json:"cache_sets"`
	Requests     int64 `json:"requests"`
	RequestFails int64 `json:"request_failures"`
}

// Hooks returns Hooks that increment c.
func (c *Counters) Hooks() Hooks {
	return Hooks{Cache: counterCache{c}, HTTP: counterHTTP{c}}
}

// Snapshot returns the current values.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		CacheHits:    c.hits.Load(),
		CacheMisses:  c.misses.Load(),
		CacheSets:    c.sets.Load(),
		Requests:     c.requests.Load(),
		RequestFails: c.failures.Load(),
	}
}

// Requests returns the number of upstream requests issued so far.
func (c *Counters) Requests() int64 { return c.requests.Load() }

type counterCache struct{ c *Counters }

func (h counterCache) OnCacheHit(context.Context, string)      { h.c.hits.Add(1) }
func (h counterCache) OnCacheMiss(context.Context, string)     { h.c.misses.Add(1) }
func (h counterCache) OnCacheSet(context.Context, string, int) { h.c.sets.Add(1) }

type counterHTTP struct{ c *Counters }

func (h counterHTTP) OnRequest(context.Context, string, string)                      { h.c.requests.Add(1) }
func (h counterHTTP) OnResponse(context.Context, string, string, int, time.Duration) {}
func (h counterHTTP) OnError(context.Context, string, string, error)                 { h.c.failures.Add(1) }

// LogHooks returns Hooks that write every event to logger at debug level.
func LogHooks(logger *log.Logger) Hooks {
	if logger == nil {
		logger = log.Default()
	}
	return Hooks{Cache: logCache{logger}, HTTP: logHTTP{logger}}
}

type logCache struct{ l *log.Logger }

func (h logCache) OnCacheHit(_ context.Context, key string) {
	h.l.Debug("cache hit", "key", key)
}

func (h logCache) OnCacheMiss(_ context.Context, key string) {
	h.l.Debug("cache miss", "key", key)
}

func (h logCache) OnCacheSet(_ context.Context, key string, size int) {
	h.l.Debug("cache set", "key", key, "bytes", size)
}

type logHTTP struct{ l *log.Logger }

func (h logHTTP) OnRequest(_ context.Context, method, url string) {
	h.l.Debug("request", "method", method, "url", url)
}

func (h logHTTP) OnResponse(_ context.Context, method, url string, status int, d time.Duration) {
	h.l.Debug("response", "method", method, "url", url, "status", status, "duration", d.Round(time.Millisecond))
}

func (h logHTTP) OnError(_ context.Context, method, url string, err error) {
	h.l.Warn("request failed", "method", method, "url", url, "err", err)
}
