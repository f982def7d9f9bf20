package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askalski/bookstore/internal/ledger"
)

// AddBookOptions holds flags for the add-book command.
type AddBookOptions struct {
	*RootOptions
	Title  string
	Author string
	Genre  string
	Price  int64
	Stock  int64
}

// NewAddBookCommand creates the add-book command.
func NewAddBookCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddBookOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add-book",
		Short: "Add a new book to the catalog",
		Long: `Add a new book to the catalog.

Omitting --stock marks the book's inventory as untracked: orders against it
never run out. Passing --stock (including --stock 0) tracks the quantity.

Example:
  bookstore add-book --title Dune --author "Frank Herbert" --genre SF --price 25 --stock 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddBook(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "title of the book (required)")
	_ = cmd.MarkFlagRequired("title")
	cmd.Flags().StringVar(&opts.Author, "author", "", "author of the book (required)")
	_ = cmd.MarkFlagRequired("author")
	cmd.Flags().StringVar(&opts.Genre, "genre", "", "genre of the book")
	cmd.Flags().Int64Var(&opts.Price, "price", 0, "price of the book")
	cmd.Flags().Int64Var(&opts.Stock, "stock", 0, "stock quantity (omit for untracked)")

	return cmd
}

func runAddBook(opts *AddBookOptions, cmd *cobra.Command) error {
	l, closeStore, err := openLedger(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore()

	in := ledger.AddBookInput{
		Title:  opts.Title,
		Author: opts.Author,
		Genre:  opts.Genre,
		Price:  opts.Price,
	}
	if cmd.Flags().Changed("stock") {
		in.Stock = &opts.Stock
	}

	f := newFormatter(opts.RootOptions, cmd)
	book, err := l.AddBook(context.Background(), in)
	if err != nil {
		return renderOutcome(f, err)
	}

	if f.JSON() {
		return f.Success(makeBookPayload(book))
	}
	fmt.Fprintf(f.Writer, "Book '%s' added successfully (id %d).\n", book.Title, book.ID)
	return nil
}
