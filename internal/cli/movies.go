package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cinedex/pkg/catalog"
)

// moviesCommand creates the movies command group.
func (c *CLI) moviesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "movies",
		Aliases: []string{"movie", "m"},
		Short:   "List and inspect movies",
	}

	cmd.AddCommand(c.listCommand("list", "List the latest movies", "movies", (*catalog.Client).ListMovies))
	cmd.AddCommand(c.listCommand("popular", "List popular movies", "popular movies", (*catalog.Client).ListPopularMovies))
	cmd.AddCommand(c.listCommand("recent", "List recently released movies", "recent movies", (*catalog.Client).ListRecentMovies))
	cmd.AddCommand(c.listCommand("top-rated", "List top rated movies", "top rated movies", (*catalog.Client).ListTopRatedMovies))
	cmd.AddCommand(c.movieGetCommand())
	cmd.AddCommand(c.movieStreamsCommand())
	cmd.AddCommand(c.movieDownloadsCommand())

	return cmd
}

func (c *CLI) movieGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show movie details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.identifierArg("movie id", args)
			if err != nil {
				return err
			}
			m, err := fetch(c, cmd, "movie", func(ctx context.Context, client *catalog.Client) (*catalog.MovieDetail, error) {
				return client.MovieDetail(ctx, id)
			})
			if err != nil {
				return err
			}
			return c.render(m, func(w io.Writer) { printMovie(w, m) })
		},
	}
}

func (c *CLI) movieStreamsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "streams <id>",
		Short: "List stream sources for a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.identifierArg("movie id", args)
			if err != nil {
				return err
			}
			streams, err := fetch(c, cmd, "streams", func(ctx context.Context, client *catalog.Client) ([]catalog.StreamSource, error) {
				return client.MovieStreams(ctx, id)
			})
			if err != nil {
				return err
			}
			return c.render(streams, func(w io.Writer) { printStreams(w, streams) })
		},
	}
}

func (c *CLI) movieDownloadsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "downloads <id>",
		Aliases: []string{"download"},
		Short:   "List download mirrors for a movie",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.identifierArg("movie id", args)
			if err != nil {
				return err
			}
			links, err := fetch(c, cmd, "downloads", func(ctx context.Context, client *catalog.Client) ([]catalog.DownloadLink, error) {
				return client.MovieDownloads(ctx, id)
			})
			if err != nil {
				return err
			}
			return c.render(links, func(w io.Writer) { printDownloads(w, links) })
		},
	}
}
