package commands

import (
	"errors"
	"fmt"
	"travel/infras/kafka"
	bookingDto "travel/internal/domains/booking/model/dto"
	"travel/shared/constant"
	"travel/transport/tui"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"
)

func newEventsCommand(console func() *tui.Console) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Follow booking created and deleted events",
		Long: `Follow the booking event topic and print one line per event until interrupted.
Requires KAFKA_ENABLE=true.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := console()
			if !app.Kafka.Enabled() {
				return errors.New("kafka is disabled, set KAFKA_ENABLE=true to follow booking events")
			}

			out := cmd.OutOrStdout()

			return app.Kafka.Consume(cmd.Context(), group, app.Config.Kafka.Topics.Booking, func(message kafkaGo.Message) { //nolint:wrapcheck
				event, err := kafka.Decode[bookingDto.BookingEvent](message)
				if err != nil {
					log.Warn().Err(err).Str("key", string(message.Key)).Msg("skipping undecodable booking event")

					return
				}

				fmt.Fprintln(out, FormatEvent(event))
			})
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Consumer group, defaults to KAFKA_CONSUMER_GROUP")

	return cmd
}

// FormatEvent renders one event as a log line.
func FormatEvent(event bookingDto.BookingEvent) string {
	line := fmt.Sprintf("%s  %-16s booking=%d", event.OccurredAt.Format(constant.TimestampFormat), event.Type, event.BookingID)

	if event.UserID != 0 {
		line += fmt.Sprintf(" user=%d date=%s total=%s", event.UserID, event.BookingDate, event.TotalCost)
	}

	return line
}
