package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// PlaceOrderOptions holds flags for the place-order command.
type PlaceOrderOptions struct {
	*RootOptions
	Customer string
	BookID   int64
	Quantity int64
}

// NewPlaceOrderCommand creates the place-order command.
func NewPlaceOrderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlaceOrderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "place-order",
		Short: "Place an order for a book",
		Long: `Place an order for a book on behalf of a customer.

The customer is looked up by exact name and created if unknown. The order
only commits when the book exists and, for tracked stock, when enough
copies remain; the stock decrement commits with the order.

Example:
  bookstore place-order --customer Alice --book-id 1 --quantity 2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlaceOrder(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Customer, "customer", "", "name of the customer (required)")
	_ = cmd.MarkFlagRequired("customer")
	cmd.Flags().Int64Var(&opts.BookID, "book-id", 0, "id of the book to order (required)")
	_ = cmd.MarkFlagRequired("book-id")
	cmd.Flags().Int64Var(&opts.Quantity, "quantity", 1, "quantity to order")

	return cmd
}

func runPlaceOrder(opts *PlaceOrderOptions, cmd *cobra.Command) error {
	l, closeStore, err := openLedger(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore()

	f := newFormatter(opts.RootOptions, cmd)
	view, err := l.PlaceOrder(context.Background(), opts.Customer, opts.BookID, opts.Quantity)
	if err != nil {
		return renderOutcome(f, err)
	}

	if f.JSON() {
		return f.Success(makeOrderPayload(view))
	}
	fmt.Fprintf(f.Writer, "Order placed successfully for '%s' by %s.\n", view.BookTitle, view.CustomerName)
	return nil
}
