// Package cli implements the cinedex command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cinedex/internal/config"
	"github.com/matzehuels/cinedex/pkg/buildinfo"
	"github.com/matzehuels/cinedex/pkg/cache"
	"github.com/matzehuels/cinedex/pkg/catalog"
	apierr "github.com/matzehuels/cinedex/pkg/errors"
	"github.com/matzehuels/cinedex/pkg/observability"
	"github.com/matzehuels/cinedex/pkg/toast"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "cinedex"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Out      io.Writer // command results
	Err      io.Writer // toasts and progress
	Toasts   *toast.Store
	Counters *observability.Counters

	Config *config.Config

	// global flags
	configPath string
	baseURL    string
	noCache    bool
	jsonOut    bool
	stats      bool

	client *catalog.Client
	cache  cache.Cache
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Out:      os.Stdout,
		Err:      w,
		Toasts:   toast.New(),
		Counters: &observability.Counters{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Cinedex browses a movies and series streaming catalog",
		Long:          `Cinedex is a command-line client for a movies and series streaming catalog API. It lists, filters and searches the catalog, shows stream and download sources, and can serve a local caching proxy for web frontends.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.teardown()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&c.baseURL, "base-url", "", "catalog API base URL (overrides config and $"+config.EnvAPIURL+")")
	pf.BoolVar(&c.noCache, "no-cache", false, "disable the response cache")
	pf.BoolVar(&c.jsonOut, "json", false, "print results as JSON")
	pf.BoolVar(&c.stats, "stats", false, "print cache and request counters after the command")

	root.AddCommand(c.moviesCommand())
	root.AddCommand(c.seriesCommand())
	root.AddCommand(c.taxonomyCommands()...)
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Setup
// =============================================================================

// setup loads configuration and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.baseURL != "" {
		cfg.API.BaseURL = c.baseURL
	}
	if c.noCache {
		cfg.Cache.Backend = config.BackendNone
	}
	if c.Logger.GetLevel() != LogDebug {
		if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
			c.SetLogLevel(level)
		}
	}
	c.Config = cfg

	c.Toasts.Subscribe(newToastPrinter(c.Err).print)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

func (c *CLI) teardown() {
	if c.stats {
		printStats(c.Err, c.Counters.Snapshot())
	}
	if c.cache != nil {
		if err := c.cache.Close(); err != nil {
			c.Logger.Debug("close cache", "err", err)
		}
	}
}

// catalogClient returns the client for the loaded configuration, creating
// it on first use.
func (c *CLI) catalogClient(ctx context.Context) (*catalog.Client, error) {
	if c.client != nil {
		return c.client, nil
	}
	if c.Config == nil {
		c.Config = config.Default()
	}

	store, err := openCache(ctx, c.Config)
	if err != nil {
		return nil, err
	}
	c.cache = store

	if c.Config.API.BaseURL == "" {
		c.Logger.Warn("no catalog API URL configured; set --base-url or $" + config.EnvAPIURL)
	}
	c.client = catalog.NewClient(catalog.Options{
		BaseURL:  c.Config.API.BaseURL,
		Timeout:  c.Config.API.Timeout,
		CacheTTL: c.Config.Cache.TTL,
		Cache:    store,
		Logger:   c.Logger,
		Hooks:    observability.Multi(c.Counters.Hooks(), observability.LogHooks(c.Logger)),
	})
	return c.client, nil
}

// openCache builds the cache backend selected by cfg.
func openCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		r := cfg.Cache.Redis
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     r.Addr,
			Password: r.Password,
			DB:       r.DB,
			Prefix:   r.Prefix,
		})
	default:
		return cache.NewMemoryCache(), nil
	}
}

// =============================================================================
// Error Reporting
// =============================================================================

// reportedError marks an error that has already been shown as a toast.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already presented to the user.
func Reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// fail shows err as an error toast titled title and returns it marked as
// reported.
func (c *CLI) fail(title string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	e := apierr.Classify(err)
	c.Toasts.Error(title, e.Message)
	c.Logger.Debug(title, "code", e.Code, "err", err)
	return &reportedError{err: fmt.Errorf("%s: %w", title, err)}
}
