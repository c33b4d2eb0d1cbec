package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cinedex/pkg/catalog"
)

// seriesCommand creates the series command group.
func (c *CLI) seriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "series",
		Aliases: []string{"s", "tv"},
		Short:   "List and inspect series",
	}

	cmd.AddCommand(c.listCommand("list", "List the latest series", "series", (*catalog.Client).ListSeries))
	cmd.AddCommand(c.listCommand("popular", "List popular series", "popular series", (*catalog.Client).ListPopularSeries))
	cmd.AddCommand(c.listCommand("recent", "List recently released series", "recent series", (*catalog.Client).ListRecentSeries))
	cmd.AddCommand(c.listCommand("top-rated", "List top rated series", "top rated series", (*catalog.Client).ListTopRatedSeries))
	cmd.AddCommand(c.seriesGetCommand())
	cmd.AddCommand(c.seriesStreamsCommand())
	cmd.AddCommand(c.seriesDownloadsCommand())

	return cmd
}

func (c *CLI) seriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show series details and seasons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.identifierArg("series id", args)
			if err != nil {
				return err
			}
			s, err := fetch(c, cmd, "series", func(ctx context.Context, client *catalog.Client) (*catalog.SeriesDetail, error) {
				return client.SeriesDetail(ctx, id)
			})
			if err != nil {
				return err
			}
			return c.render(s, func(w io.Writer) { printSeries(w, s) })
		},
	}
}

func (c *CLI) seriesStreamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streams <id>",
		Short: "List stream sources for a series or one episode",
		Long: `List stream sources for a series.

Pass both --season and --episode to select a single episode. Either flag
on its own is ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.identifierArg("series id", args)
			if err != nil {
				return err
			}
			season, episode := intFlag(cmd, "season"), intFlag(cmd, "episode")
			if season.IsSet() != episode.IsSet() {
				c.Toasts.Warning("Ignoring partial episode selection", "pass both --season and --episode")
			}
			streams, err := fetch(c, cmd, "streams", func(ctx context.Context, client *catalog.Client) ([]catalog.StreamSource, error) {
				return client.SeriesStreams(ctx, id, season, episode)
			})
			if err != nil {
				return err
			}
			return c.render(streams, func(w io.Writer) { printStreams(w, streams) })
		},
	}
	cmd.Flags().Int("season", 0, "season number")
	cmd.Flags().Int("episode", 0, "episode number")
	return cmd
}

func (c *CLI) seriesDownloadsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "downloads <id>",
		Aliases: []string{"download"},
		Short:   "List download mirrors for a series",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.identifierArg("series id", args)
			if err != nil {
				return err
			}
			links, err := fetch(c, cmd, "downloads", func(ctx context.Context, client *catalog.Client) ([]catalog.DownloadLink, error) {
				return client.SeriesDownloads(ctx, id)
			})
			if err != nil {
				return err
			}
			return c.render(links, func(w io.Writer) { printDownloads(w, links) })
		},
	}
}
