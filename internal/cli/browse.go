package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cinedex/pkg/catalog"
	apierr "github.com/matzehuels/cinedex/pkg/errors"
	"github.com/matzehuels/cinedex/pkg/toast"
)

// browseCommand creates the interactive browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:       "browse",
		Short:     "Browse movies or series interactively",
		Args:      cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := browseSources[kind]; !ok {
				return c.fail("Invalid kind", apierr.New(apierr.ErrCodeInvalidInput, "kind must be movies or series, got %q", kind))
			}
			ctx := cmd.Context()
			client, err := c.catalogClient(ctx)
			if err != nil {
				return c.fail("Failed to open cache", err)
			}

			// The TUI renders its own toasts; the CLI store prints to stderr.
			model := NewBrowseModel(ctx, client, kind, toast.New())
			final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
			if err != nil {
				return err
			}

			m := final.(BrowseModel)
			if m.Selected == nil {
				return nil
			}
			printSelection(c, m.Selected)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "movies", "movies or series")
	return cmd
}

func printSelection(c *CLI, it *catalog.Item) {
	group := "movies"
	if it.Kind.IsSeries() {
		group = "series"
	}
	printSuccess(c.Out, "%s", it.Title)
	printDetail(c.Out, "cinedex %s get %s", group, it.ID)
	printDetail(c.Out, "cinedex %s streams %s", group, it.ID)
}
