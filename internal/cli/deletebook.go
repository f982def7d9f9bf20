package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// DeleteBookOptions holds flags for the delete-book command.
type DeleteBookOptions struct {
	*RootOptions
	Yes   bool
	Force bool
}

// NewDeleteBookCommand creates the delete-book command.
func NewDeleteBookCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteBookOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete-book <book-id>",
		Short: "Delete a book from the catalog",
		Long: `Delete a book from the catalog.

Asks for confirmation unless --yes is given. A book that existing orders
still reference is refused; --force deletes those orders along with it.

Example:
  bookstore delete-book 3
  bookstore delete-book 3 --yes --force`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid book id %q", args[0]), err)
			}
			return runDeleteBook(opts, bookID, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "skip the confirmation prompt")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "also delete orders referencing the book")

	return cmd
}

func runDeleteBook(opts *DeleteBookOptions, bookID int64, cmd *cobra.Command) error {
	ctx := context.Background()

	l, closeStore, err := openLedger(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore()

	f := newFormatter(opts.RootOptions, cmd)

	// Look the book up first so the prompt can show its title. The delete
	// itself re-checks existence inside its own transaction.
	book, err := l.Lookup(ctx, bookID)
	if err != nil {
		return renderOutcome(f, err)
	}

	if !opts.Yes {
		confirmed, err := confirm(cmd, fmt.Sprintf("Delete book '%s' (id %d)? [y/N]: ", book.Title, bookID))
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read confirmation", err)
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	deleted, err := l.DeleteBook(ctx, bookID, opts.Force)
	if err != nil {
		return renderOutcome(f, err)
	}

	if f.JSON() {
		return f.Success(makeBookPayload(deleted))
	}
	fmt.Fprintf(f.Writer, "Book '%s' deleted.\n", deleted.Title)
	return nil
}

// confirm prints prompt and reads a yes/no answer from the command's stdin.
// Only "y" and "yes" (case-insensitive) count as yes.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
