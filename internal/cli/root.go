package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/askalski/bookstore/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string // resolved database path
	Config   string // config file path
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the bookstore CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bookstore",
		Short: "Bookstore management CLI",
		Long: `A command-line bookstore manager backed by SQLite.

Add books and customers, place orders against tracked stock, and list the
catalog and order history. Orders only commit when enough stock exists;
the order and the stock decrement are written as one transaction.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag before config can override it
			cfg, err := config.Load(opts.Config)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}
			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				opts.Format = cfg.Format
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.Database = cfg.ResolveDatabase(opts.Database)

			configureLogging(opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (default bookstore.db)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "bookstore.yaml", "path to config file")

	// Add subcommands
	cmd.AddCommand(NewAddBookCommand(opts))
	cmd.AddCommand(NewAddCustomerCommand(opts))
	cmd.AddCommand(NewListBooksCommand(opts))
	cmd.AddCommand(NewListOrdersCommand(opts))
	cmd.AddCommand(NewPlaceOrderCommand(opts))
	cmd.AddCommand(NewDeleteBookCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// configureLogging sets the default slog handler and level.
func configureLogging(verbose bool) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
