package commands

import (
	"errors"
	"fmt"
	bookingDto "travel/internal/domains/booking/model/dto"
	gDto "travel/shared/dto"
	"travel/transport/tui"

	"github.com/spf13/cobra"
)

func newBookingsCommand(console func() *tui.Console) *cobra.Command {
	var (
		username string
		userID   int64
	)

	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Print bookings, optionally for one user",
		Long: `Print bookings. Filter with --user (username) or --user-id.

Examples:
  console bookings
  console bookings --user kwame`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username != "" && userID != 0 {
				return errors.New("use either --user or --user-id")
			}

			bookings := console().Services.Booking

			var (
				res bookingDto.GetBookingsResponse
				err error
			)

			switch {
			case username != "":
				res, err = bookings.GetByUsername(cmd.Context(), gDto.QueryParams{}, username)
			case userID > 0:
				res, err = bookings.GetAll(cmd.Context(), gDto.QueryParams{}, &userID)
			default:
				res, err = bookings.GetAll(cmd.Context(), gDto.QueryParams{}, nil)
			}

			if err != nil {
				return err //nolint:wrapcheck
			}

			frame := gDto.NewFrame([]string{"BookingID", "UserID", "BookingDate", "TotalCost"})
			for _, booking := range res.Bookings {
				frame.Append([]any{booking.BookingID, booking.UserID, booking.BookingDate, booking.TotalCost})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderFrame(frame))

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "Username to filter by")
	cmd.Flags().Int64Var(&userID, "user-id", 0, "User id to filter by")

	return cmd
}
