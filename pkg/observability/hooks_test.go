package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "/movies")
	c.OnCacheMiss(ctx, "/genres")
	c.OnCacheSet(ctx, "/years", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/movies?page=2")
	h.OnResponse(ctx, "GET", "/movies?page=2", 200, time.Second)
	h.OnError(ctx, "GET", "/movies?page=2", nil)
}

func TestHooksWithDefaults(t *testing.T) {
	h := Hooks{}.WithDefaults()
	if _, ok := h.Cache.(NoopCacheHooks); !ok {
		t.Error("nil Cache should default to NoopCacheHooks")
	}
	if _, ok := h.HTTP.(NoopHTTPHooks); !ok {
		t.Error("nil HTTP should default to NoopHTTPHooks")
	}

	custom := &testCacheHooks{}
	h = Hooks{Cache: custom}.WithDefaults()
	if h.Cache != custom {
		t.Error("WithDefaults should keep a non-nil Cache")
	}
}

func TestCounters(t *testing.T) {
	ctx := context.Background()
	var c Counters
	h := c.Hooks()

	h.Cache.OnCacheMiss(ctx, "/movies")
	h.HTTP.OnRequest(ctx, "GET", "/movies")
	h.HTTP.OnResponse(ctx, "GET", "/movies", 200, time.Millisecond)
	h.Cache.OnCacheSet(ctx, "/movies", 10)
	h.Cache.OnCacheHit(ctx, "/movies")
	h.HTTP.OnRequest(ctx, "GET", "/search/x")
	h.HTTP.OnError(ctx, "GET", "/search/x", errors.New("refused"))

	want := Snapshot{CacheHits: 1, CacheMisses: 1, CacheSets: 1, Requests: 2, RequestFails: 1}
	if got := c.Snapshot(); got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
	if c.Requests() != 2 {
		t.Errorf("Requests() = %d, want 2", c.Requests())
	}
}

func TestCountersConcurrent(t *testing.T) {
	var c Counters
	h := c.Hooks()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.HTTP.OnRequest(context.Background(), "GET", "/movies")
		}()
	}
	wg.Wait()

	if c.Requests() != 50 {
		t.Errorf("Requests() = %d, want 50", c.Requests())
	}
}

func TestMulti(t *testing.T) {
	ctx := context.Background()
	a, b := &testCacheHooks{}, &testCacheHooks{}
	h := Multi(Hooks{Cache: a}, Hooks{Cache: b})

	h.Cache.OnCacheHit(ctx, "/genres")
	h.Cache.OnCacheMiss(ctx, "/genres")
	h.Cache.OnCacheSet(ctx, "/genres", 1)
	h.HTTP.OnRequest(ctx, "GET", "/genres") // nil HTTP hooks fall back to no-op

	for i, th := range []*testCacheHooks{a, b} {
		if th.hits != 1 || th.misses != 1 || th.sets != 1 {
			t.Errorf("hooks[%d] = %+v, want one of each event", i, th)
		}
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := LogHooks(logger)

	h.Cache.OnCacheHit(context.Background(), "/movies?page=2")
	h.HTTP.OnError(context.Background(), "GET", "/series", errors.New("connection refused"))

	out := buf.String()
	if !strings.Contains(out, "cache hit") || !strings.Contains(out, "/movies?page=2") {
		t.Errorf("missing cache hit line in %q", out)
	}
	if !strings.Contains(out, "request failed") || !strings.Contains(out, "connection refused") {
		t.Errorf("missing request failed line in %q", out)
	}
}

// Test helper types

type testCacheHooks struct {
	NoopCacheHooks
	hits, misses, sets int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *testCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *testCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }
