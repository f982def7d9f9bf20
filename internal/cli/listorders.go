package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewListOrdersCommand creates the list-orders command.
func NewListOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-orders",
		Short: "List all orders",
		Long: `List all orders in the order they were placed, each resolved with its
customer name and book title.

Example:
  bookstore list-orders
  bookstore list-orders --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListOrders(rootOpts, cmd)
		},
	}

	return cmd
}

func runListOrders(opts *RootOptions, cmd *cobra.Command) error {
	l, closeStore, err := openLedger(opts)
	if err != nil {
		return err
	}
	defer closeStore()

	orders, err := l.Orders(context.Background())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list orders", err)
	}

	f := newFormatter(opts, cmd)
	if f.JSON() {
		payload := make([]orderPayload, 0, len(orders))
		for _, v := range orders {
			payload = append(payload, makeOrderPayload(v))
		}
		return f.Success(payload)
	}

	if len(orders) == 0 {
		fmt.Fprintln(f.Writer, "No orders found.")
		return nil
	}

	for _, v := range orders {
		fmt.Fprintln(f.Writer, orderLine(v))
	}
	return nil
}
