package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <catalog.yaml>",
		Short: "Import books from a YAML catalog",
		Long: `Import books from a YAML catalog file.

The catalog lists books under a top-level "books" key:

  books:
    - title: Dune
      author: Frank Herbert
      genre: SF
      price: 25
      stock: 3

All books load in one transaction; an invalid entry aborts the whole import.

Example:
  bookstore import catalog.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	file, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open catalog", err)
	}
	defer file.Close()

	l, closeStore, err := openLedger(opts)
	if err != nil {
		return err
	}
	defer closeStore()

	f := newFormatter(opts, cmd)
	books, err := l.ImportBooks(context.Background(), file)
	if err != nil {
		return renderOutcome(f, err)
	}

	if f.JSON() {
		payload := make([]bookPayload, 0, len(books))
		for _, b := range books {
			payload = append(payload, makeBookPayload(b))
		}
		return f.Success(payload)
	}
	fmt.Fprintf(f.Writer, "Imported %d books from %s.\n", len(books), path)
	return nil
}
