package commands

import (
	"fmt"
	"travel/shared/constant"
	gDto "travel/shared/dto"
	"travel/transport/tui"

	"github.com/spf13/cobra"
)

func newTablesCommand(console func() *tui.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables that can be browsed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := console().Services.Table.Tables(cmd.Context())

			frame := gDto.NewFrame([]string{"Table"})
			for _, name := range res.Tables {
				frame.Append([]any{name})
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderFrame(frame))

			return err //nolint:wrapcheck
		},
	}
}

func newTableCommand(console func() *tui.Console) *cobra.Command {
	var params gDto.QueryParams

	cmd := &cobra.Command{
		Use:   "table <name>",
		Short: "Print the rows of a table",
		Long: `Print the rows of a table. Without --limit every row is printed.

Examples:
  console table Region
  console table Dish --limit 3 --page 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if params.Limit < 0 || params.Limit > constant.MaxValueLimit {
				return fmt.Errorf("--limit must be between 0 and %d", constant.MaxValueLimit)
			}

			res, err := console().Services.Table.Browse(cmd.Context(), args[0], params)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderFrame(res.Frame))

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().IntVar(&params.Limit, "limit", 0, "Rows per page, 0 for all")
	cmd.Flags().IntVar(&params.Page, "page", 1, "Page number")

	return cmd
}
