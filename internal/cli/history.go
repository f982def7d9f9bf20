package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int64
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent activity",
		Long: `Show the most recent activity log entries, newest first.

Every mutating operation records an entry, including reported failures such
as insufficient stock.

Example:
  bookstore history --limit 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Limit, "limit", 20, "maximum number of entries to show")

	return cmd
}

type activityPayload struct {
	ID      string `json:"id"`
	Op      string `json:"op"`
	Outcome string `json:"outcome"`
	Detail  string `json:"detail"`
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	l, closeStore, err := openLedger(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore()

	entries, err := l.History(context.Background(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read activity", err)
	}

	f := newFormatter(opts.RootOptions, cmd)
	if f.JSON() {
		payload := make([]activityPayload, 0, len(entries))
		for _, e := range entries {
			payload = append(payload, activityPayload{
				ID:      e.ID,
				Op:      e.Op,
				Outcome: e.Outcome,
				Detail:  e.Detail,
			})
		}
		return f.Success(payload)
	}

	if len(entries) == 0 {
		fmt.Fprintln(f.Writer, "No activity recorded.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(f.Writer, "%-14s %-20s %s\n", e.Op, e.Outcome, e.Detail)
	}
	return nil
}
