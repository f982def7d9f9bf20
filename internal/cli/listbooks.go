package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewListBooksCommand creates the list-books command.
func NewListBooksCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-books",
		Short: "List all books sorted by title",
		Long: `List all books in the catalog, sorted by title ascending.

Example:
  bookstore list-books
  bookstore list-books --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListBooks(rootOpts, cmd)
		},
	}

	return cmd
}

func runListBooks(opts *RootOptions, cmd *cobra.Command) error {
	l, closeStore, err := openLedger(opts)
	if err != nil {
		return err
	}
	defer closeStore()

	books, err := l.Books(context.Background())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list books", err)
	}

	f := newFormatter(opts, cmd)
	if f.JSON() {
		payload := make([]bookPayload, 0, len(books))
		for _, b := range books {
			payload = append(payload, makeBookPayload(b))
		}
		return f.Success(payload)
	}

	if len(books) == 0 {
		fmt.Fprintln(f.Writer, "No books available.")
		return nil
	}

	fmt.Fprintln(f.Writer, "List of available books (sorted by title):")
	for _, b := range books {
		fmt.Fprintln(f.Writer, bookLine(b))
	}
	return nil
}
