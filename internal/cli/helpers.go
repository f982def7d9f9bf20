package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askalski/bookstore/internal/ledger"
	"github.com/askalski/bookstore/internal/store"
)

// openLedger opens the configured database and returns a ledger over it.
// The returned close func must be called when the command finishes.
func openLedger(opts *RootOptions) (*ledger.Ledger, func(), error) {
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return ledger.New(st, nil), func() { st.Close() }, nil
}

// newFormatter builds an OutputFormatter writing to the command's stdout.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// renderOutcome converts a ledger error into user-facing output.
//
// Outcome errors (book not found, insufficient stock, ...) are rendered in
// the configured format and turned into a silent ExitFailure so main only
// sets the exit code. Infrastructure errors pass through unchanged.
func renderOutcome(f *OutputFormatter, err error) error {
	oe := ledger.AsOutcome(err)
	if oe == nil {
		return WrapExitError(ExitCommandError, "operation failed", err)
	}

	msg := outcomeMessage(oe)
	if renderErr := f.Error(string(oe.Code), msg); renderErr != nil {
		return WrapExitError(ExitCommandError, "failed to render output", renderErr)
	}
	return NewExitError(ExitFailure, "")
}

// outcomeMessage phrases an outcome the way the tool has always reported it.
func outcomeMessage(oe *ledger.OutcomeError) string {
	switch oe.Code {
	case ledger.CodeNotFound:
		return fmt.Sprintf("Book with ID %d does not exist.", oe.BookID)
	case ledger.CodeInsufficientStock:
		return fmt.Sprintf("Sorry, there is not enough stock available for '%s'.", oe.Title)
	case ledger.CodeHasOrders:
		return fmt.Sprintf("Book '%s' has %d orders; pass --force to delete them too.", oe.Title, oe.Orders)
	default:
		return oe.Message + "."
	}
}
