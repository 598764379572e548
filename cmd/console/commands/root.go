package commands

import (
	"fmt"
	"io"
	"os"
	"travel/config"
	"travel/internal/domains/page"
	"travel/shared/logger"
	"travel/transport/tui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Loader builds the console and its services. It runs once the flags are
// parsed so that --help never touches the database.
type Loader func() *tui.Console

// Execute runs the console and exits non-zero on failure.
func Execute(load Loader) {
	if err := NewRoot(load).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRoot(load Loader) *cobra.Command {
	var (
		app       *tui.Console
		startPage string
	)

	console := func() *tui.Console { return app }

	root := &cobra.Command{
		Use:   "console",
		Short: "Travel Management Database console",
		Long: `Interactive console for the travel management database.

Without a sub-command it opens the page selector:
  Home, View Data, Queries, Add User, Make Booking, Check Flights,
  Delete Booking and Check Bookings.

Examples:
  console                               # open the interactive console
  console --page check-flights          # open a page directly
  console table Flight --limit 5        # print a table
  console report top-restaurants --param limit=3`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The interactive UI owns the terminal, so its logs are dropped.
			var out io.Writer = cmd.ErrOrStderr()
			if cmd.Root() == cmd {
				out = io.Discard
			}

			logger.InitLoggerFor(config.Get(), out)
			zerolog.SetGlobalLevel(zerolog.WarnLevel)

			app = load()

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := page.Find(startPage); !ok && startPage != "" {
				return fmt.Errorf("unknown page %q", startPage)
			}

			return tui.Run(cmd.Context(), app, startPage)
		},
	}

	root.Flags().StringVar(&startPage, "page", page.SlugHome, "Page to open first")

	root.AddCommand(
		newTablesCommand(console),
		newTableCommand(console),
		newReportsCommand(console),
		newReportCommand(console),
		newBookingsCommand(console),
		newEventsCommand(console),
	)

	return root
}
