package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cinedex/pkg/buildinfo"
	"github.com/matzehuels/cinedex/pkg/cache"
	"github.com/matzehuels/cinedex/pkg/observability"
)

const (
	// DefaultTimeout bounds a single upstream request, including reading the body.
	DefaultTimeout = 60 * time.Second

	// DefaultCacheTTL is how long list and taxonomy responses are reused.
	DefaultCacheTTL = cache.DefaultTTL
)

// Options configures a Client. The zero value is usable: relative URLs,
// a 60 second timeout, and a fresh in-memory cache with a 30 minute TTL.
type Options struct {
	BaseURL    string              // API root, e.g. "https://api.example.com"; "" keeps paths relative
	Timeout    time.Duration       // Per-request timeout (default 60s)
	CacheTTL   time.Duration       // Lifetime of cached responses (default 30m)
	Cache      cache.Cache         // Response cache (default cache.NewMemoryCache())
	HTTPClient *http.Client        // Overrides the transport; Timeout is ignored when set
	Logger     *log.Logger         // Defaults to log.Default()
	Hooks      observability.Hooks // Cache and HTTP instrumentation
}

// Client issues catalog queries against the upstream API.
//
// List and taxonomy endpoints read through the cache; detail, stream,
// download and search endpoints always go to the network. A Client is
// safe for concurrent use. Concurrent misses for the same URL are not
// merged: each goes to the network and the last response to arrive owns
// the cache slot.
type Client struct {
	baseURL string
	http    *http.Client
	cache   cache.Cache
	ttl     time.Duration
	logger  *log.Logger
	hooks   observability.Hooks
}

// NewClient creates a Client from opts.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewMemoryCache()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    opts.HTTPClient,
		cache:   opts.Cache,
		ttl:     opts.CacheTTL,
		logger:  opts.Logger,
		hooks:   opts.Hooks.WithDefaults(),
	}
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// CacheTTL returns the lifetime of cached responses.
func (c *Client) CacheTTL() time.Duration { return c.ttl }

// URL returns the full request URL for an endpoint path. It is also the
// cache key for cached endpoints.
func (c *Client) URL(path string) string { return c.baseURL + path }

// StatusError reports a non-2xx upstream response.
// A 404 also matches [cache.ErrNotFound] through errors.Is.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// HTTPStatus returns the upstream status code.
func (e *StatusError) HTTPStatus() int { return e.StatusCode }

// Is lets errors.Is(err, cache.ErrNotFound) match 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == cache.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Cached serves path from the cache when a fresh entry exists and
// otherwise fetches it, decoding the JSON body into v. Only a response
// that arrived with a 2xx status and decoded cleanly is stored; failures
// leave the cache untouched so the next call tries the network again.
func (c *Client) Cached(ctx context.Context, path string, v any) error {
	key := c.URL(path)

	data, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", "key", key, "err", err)
	}
	if ok {
		if err := json.Unmarshal(data, v); err == nil {
			c.hooks.Cache.OnCacheHit(ctx, key)
			return nil
		}
		c.logger.Warn("discarding unreadable cache entry", "key", key)
	}
	c.hooks.Cache.OnCacheMiss(ctx, key)

	body, err := c.fetch(ctx, key)
	if err != nil {
		return err
	}
	if err := decode(key, body, v); err != nil {
		return err
	}
	if err := c.cache.Set(ctx, key, body, c.ttl); err != nil {
		c.logger.Warn("cache write failed", "key", key, "err", err)
		return nil
	}
	c.hooks.Cache.OnCacheSet(ctx, key, len(body))
	return nil
}

// Get fetches path from the network and decodes the JSON body into v.
func (c *Client) Get(ctx context.Context, path string, v any) error {
	url := c.URL(path)
	body, err := c.fetch(ctx, url)
	if err != nil {
		return err
	}
	return decode(url, body, v)
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", buildinfo.UserAgent())

	c.hooks.HTTP.OnRequest(ctx, http.MethodGet, url)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.hooks.HTTP.OnError(ctx, http.MethodGet, url, err)
		return nil, fmt.Errorf("%w: %w", cache.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.hooks.HTTP.OnError(ctx, http.MethodGet, url, err)
		return nil, fmt.Errorf("%w: read %s: %w", cache.ErrNetwork, url, err)
	}
	c.hooks.HTTP.OnResponse(ctx, http.MethodGet, url, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return body, nil
}

func decode(url string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %s: %w", cache.ErrDecode, url, err)
	}
	return nil
}

// getList fetches a JSON array, optionally through the cache. The result
// is never nil; an empty or null body yields an empty slice.
func getList[T any](ctx context.Context, c *Client, path string, cached bool) ([]T, error) {
	var items []T
	var err error
	if cached {
		err = c.Cached(ctx, path, &items)
	} else {
		err = c.Get(ctx, path, &items)
	}
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
