package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cinedex/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, static string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog API and static assets locally",
		Long: `Serve a local HTTP API that mirrors the catalog under /api, answering
list and filter requests from the response cache.

With --static, files from the given directory are served at / with a
"Cache-Control: public, max-age=31536000, immutable" header.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			if static == "" {
				static = c.Config.Server.Static
			}

			client, err := c.catalogClient(ctx)
			if err != nil {
				return c.fail("Failed to open cache", err)
			}
			srv := server.New(client, server.Options{
				Static:   static,
				Logger:   loggerFromContext(ctx),
				Counters: c.Counters,
			})

			printInfo(c.Err, "Serving on %s", addr)
			if static != "" {
				printDetail(c.Err, "Static: %s", static)
			}
			if err := srv.ListenAndServe(ctx, addr); err != nil {
				return c.fail("Server stopped", err)
			}
			c.Toasts.Success("Server stopped", "")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&static, "static", "", "directory of static assets to serve at /")
	return cmd
}
