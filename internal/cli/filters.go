package cli

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cinedex/pkg/catalog"
)

// taxonomy describes one filter dimension for command generation.
type taxonomy struct {
	kind     catalog.Taxonomy
	plural   string // command listing the entries
	singular string // command listing one entry's content
	noun     string
}

var taxonomies = []taxonomy{
	{catalog.TaxonomyGenres, "genres", "genre", "genre"},
	{catalog.TaxonomyCountries, "countries", "country", "country"},
	{catalog.TaxonomyYears, "years", "year", "release year"},
}

// taxonomyCommands creates the genres/countries/years listing commands and
// the genre/country/year filter commands.
func (c *CLI) taxonomyCommands() []*cobra.Command {
	var cmds []*cobra.Command
	for _, t := range taxonomies {
		cmds = append(cmds, c.entriesCommand(t), c.listByCommand(t))
	}
	return cmds
}

func (c *CLI) entriesCommand(t taxonomy) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   t.plural,
		Short: "List every " + t.noun,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := fetch(c, cmd, t.plural, func(ctx context.Context, client *catalog.Client) ([]catalog.TaxonomyEntry, error) {
				return client.Entries(ctx, t.kind)
			})
			if err != nil {
				return err
			}
			if filter != "" {
				entries = filterEntries(entries, filter)
			}
			return c.render(entries, func(w io.Writer) { printEntries(w, entries) })
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "fuzzy filter on the name")
	return cmd
}

func (c *CLI) listByCommand(t taxonomy) *cobra.Command {
	var (
		page   int
		series bool
	)
	cmd := &cobra.Command{
		Use:   t.singular + " <slug>",
		Short: "List movies or series by " + t.noun,
		Long: "List movies (or series with --series) by " + t.noun + `.

The slug is the Slug column of ` + "`cinedex " + t.plural + "`.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug, err := c.identifierArg(t.noun, args)
			if err != nil {
				return err
			}
			p, err := pageOption(page)
			if err != nil {
				return c.fail("Invalid page", err)
			}
			items, err := fetch(c, cmd, t.noun+" "+slug, func(ctx context.Context, client *catalog.Client) ([]catalog.Item, error) {
				return client.ListBy(ctx, t.kind, slug, series, p)
			})
			if err != nil {
				return err
			}
			return c.render(items, func(w io.Writer) { printItems(w, items) })
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 0, "page number (omit for the first page)")
	cmd.Flags().BoolVar(&series, "series", false, "list series instead of movies")
	return cmd
}

// filterEntries keeps the entries whose label fuzzily matches query,
// best matches first. Ties keep the upstream order. Case affects neither
// matching nor ranking.
func filterEntries(entries []catalog.TaxonomyEntry, query string) []catalog.TaxonomyEntry {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = strings.ToLower(e.Label())
	}

	ranks := fuzzy.RankFindFold(strings.ToLower(query), labels)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	out := make([]catalog.TaxonomyEntry, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, entries[r.OriginalIndex])
	}
	return out
}
