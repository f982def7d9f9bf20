package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// AddCustomerOptions holds flags for the add-customer command.
type AddCustomerOptions struct {
	*RootOptions
	Name    string
	Contact string
}

// NewAddCustomerCommand creates the add-customer command.
func NewAddCustomerCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddCustomerOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add-customer",
		Short: "Add a new customer",
		Long: `Add a new customer.

Customer names are unique; place-order also creates customers on the fly,
so this command is only needed when contact info should be recorded.

Example:
  bookstore add-customer --name Alice --contact alice@example.com`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCustomer(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "name of the customer (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&opts.Contact, "contact", "", "contact info for the customer")

	return cmd
}

type customerPayload struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

func runAddCustomer(opts *AddCustomerOptions, cmd *cobra.Command) error {
	l, closeStore, err := openLedger(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeStore()

	f := newFormatter(opts.RootOptions, cmd)
	customer, err := l.AddCustomer(context.Background(), opts.Name, opts.Contact)
	if err != nil {
		return renderOutcome(f, err)
	}

	if f.JSON() {
		return f.Success(customerPayload{
			ID:      customer.ID,
			Name:    customer.Name,
			Contact: customer.ContactInfo.String,
		})
	}
	fmt.Fprintf(f.Writer, "Customer '%s' added successfully (id %d).\n", customer.Name, customer.ID)
	return nil
}
