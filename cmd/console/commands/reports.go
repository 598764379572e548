package commands

import (
	"fmt"
	"strings"
	gDto "travel/shared/dto"
	"travel/transport/tui"

	"github.com/spf13/cobra"
)

func newReportsCommand(console func() *tui.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List the canned reports and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := console().Services.Report.List(cmd.Context())

			frame := gDto.NewFrame([]string{"Slug", "Title", "Parameters"})
			for _, report := range res.Reports {
				params := make([]string, len(report.Params))
				for i, param := range report.Params {
					params[i] = fmt.Sprintf("%s=%s", param.Name, param.Default)
				}

				frame.Append([]any{report.Slug, report.Title, strings.Join(params, " ")})
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderFrame(frame))

			return err //nolint:wrapcheck
		},
	}
}

func newReportCommand(console func() *tui.Console) *cobra.Command {
	var (
		rawParams []string
		refresh   bool
		export    bool
	)

	cmd := &cobra.Command{
		Use:   "report <slug>",
		Short: "Run a canned report",
		Long: `Run a canned report. Parameters left out take their defaults.

Examples:
  console report flight-details --param "airport_name=Kotoka International Airport"
  console report user-bookings --param from=2024-07-01 --param to=2024-07-31
  console report top-restaurants --param limit=3 --export`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			reports := console().Services.Report

			if export {
				res, err := reports.Export(cmd.Context(), args[0], params)
				if err != nil {
					return err //nolint:wrapcheck
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", res.Rows, res.URL)

				return err //nolint:wrapcheck
			}

			res, err := reports.Run(cmd.Context(), args[0], params, refresh)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderFrame(res.Frame))

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().StringArrayVar(&rawParams, "param", nil, "Report parameter as name=value, repeatable")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Skip the cached result")
	cmd.Flags().BoolVar(&export, "export", false, "Upload the result as CSV instead of printing it")

	return cmd
}

// parseParams splits name=value pairs. Values may contain '=' and ','.
func parseParams(raw []string) (map[string]string, error) {
	params := make(map[string]string, len(raw))

	for _, pair := range raw {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --param %q, expected name=value", pair)
		}

		params[strings.TrimSpace(name)] = value
	}

	return params, nil
}
