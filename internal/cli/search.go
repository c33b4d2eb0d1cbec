package cli

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cinedex/pkg/catalog"
)

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <title>",
		Short: "Search movies and series by title",
		Example: `  cinedex search matrix
  cinedex search the dark knight`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := c.identifierArg("title", []string{strings.Join(args, " ")})
			if err != nil {
				return err
			}
			results, err := fetch(c, cmd, "search results", func(ctx context.Context, client *catalog.Client) ([]catalog.SearchResult, error) {
				return client.Search(ctx, title)
			})
			if err != nil {
				return err
			}
			return c.render(results, func(w io.Writer) { printSearchResults(w, results) })
		},
	}
}
