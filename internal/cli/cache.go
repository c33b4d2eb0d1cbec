package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cinedex/internal/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and invalidate cached catalog responses",
	}

	cmd.AddCommand(c.cacheInfoCommand())
	cmd.AddCommand(c.cacheDeleteCommand())

	return cmd
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the cache backend and lifetime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			printKeyValue(c.Out, "Backend", cfg.Cache.Backend)
			printKeyValue(c.Out, "TTL", cfg.Cache.TTL.String())
			if cfg.Cache.Backend == config.BackendRedis {
				printKeyValue(c.Out, "Redis", cfg.Cache.Redis.Addr)
			}
			printKeyValue(c.Out, "API", cfg.API.BaseURL)
			if cfg.Cache.Backend == config.BackendMemory {
				printDetail(c.Out, "The memory cache lives for one process; use serve to share it.")
			}
			return nil
		},
	}
}

// cacheDeleteCommand creates the "cache delete" subcommand.
func (c *CLI) cacheDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <path>...",
		Short: "Invalidate cached responses by endpoint path",
		Example: `  cinedex cache delete /movies /genres
  cinedex cache delete '/genres/action?series=&page=3'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if c.Config.Cache.Backend != config.BackendRedis {
				printWarning(c.Err, "The %s backend keeps nothing between runs", c.Config.Cache.Backend)
				return nil
			}
			client, err := c.catalogClient(ctx)
			if err != nil {
				return c.fail("Failed to open cache", err)
			}
			for _, path := range args {
				if !strings.HasPrefix(path, "/") {
					path = "/" + path
				}
				key := client.URL(path)
				if err := c.cache.Delete(ctx, key); err != nil {
					return c.fail("Failed to delete "+key, err)
				}
			}
			printSuccess(c.Out, "Deleted %d cached %s", len(args), plural(len(args), "entry", "entries"))
			return nil
		},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
