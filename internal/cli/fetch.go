package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cinedex/pkg/catalog"
	apierr "github.com/matzehuels/cinedex/pkg/errors"
)

// listFunc is the shape shared by every paginated list operation.
type listFunc func(*catalog.Client, context.Context, catalog.Optional[int]) ([]catalog.Item, error)

// fetch runs fn against the catalog client behind a spinner. Failures are
// shown as error toasts titled "Failed to load <what>".
func fetch[T any](c *CLI, cmd *cobra.Command, what string, fn func(context.Context, *catalog.Client) (T, error)) (T, error) {
	var zero T
	ctx := cmd.Context()

	client, err := c.catalogClient(ctx)
	if err != nil {
		return zero, c.fail("Failed to open cache", err)
	}

	var spin *Spinner
	if !c.jsonOut {
		spin = newSpinner(ctx, c.Err, "Loading "+what+"...")
		spin.Start()
	}
	prog := newProgress(loggerFromContext(ctx))
	v, err := fn(ctx, client)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return zero, c.fail("Failed to load "+what, err)
	}
	prog.done("Loaded " + what)
	return v, nil
}

// render prints v as JSON with --json and through human otherwise.
func (c *CLI) render(v any, human func(io.Writer)) error {
	if c.jsonOut {
		return printJSON(c.Out, v)
	}
	human(c.Out)
	return nil
}

// pageOption converts a --page flag into a page parameter. Zero means
// no page.
func pageOption(page int) (catalog.Optional[int], error) {
	if err := apierr.ValidatePage(page); err != nil {
		return catalog.NoPage(), err
	}
	return catalog.Page(page), nil
}

// intFlag returns the flag value when it was set on the command line.
func intFlag(cmd *cobra.Command, name string) catalog.Optional[int] {
	if !cmd.Flags().Changed(name) {
		return catalog.None[int]()
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return catalog.None[int]()
	}
	return catalog.Some(v)
}

// identifierArg validates and returns the single positional argument.
func (c *CLI) identifierArg(kind string, args []string) (string, error) {
	if err := apierr.ValidateIdentifier(kind, args[0]); err != nil {
		return "", c.fail("Invalid "+kind, err)
	}
	return args[0], nil
}

// listCommand builds a paginated list subcommand.
func (c *CLI) listCommand(use, short, what string, fn listFunc) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pageOption(page)
			if err != nil {
				return c.fail("Invalid page", err)
			}
			items, err := fetch(c, cmd, what, func(ctx context.Context, client *catalog.Client) ([]catalog.Item, error) {
				return fn(client, ctx, p)
			})
			if err != nil {
				return err
			}
			return c.render(items, func(w io.Writer) { printItems(w, items) })
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 0, "page number (omit for the first page)")
	return cmd
}
