package timezone

import (
	"fmt"
	"time"
	"travel/config"
	"travel/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	appLocation = time.UTC
)

func init() {
	cfg := config.Get()

	if err := Load(cfg.App.Timezone); err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC")
	}
}

// Load switches the application location. An empty name means UTC.
func Load(name string) error {
	if name == "" {
		appLocation = time.UTC

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		appLocation = time.UTC

		return fmt.Errorf("failed to load location %q: %w", name, err)
	}

	appLocation = loc

	return nil
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(appLocation)
}

// Today is the current calendar date in the application timezone.
func Today() string {
	return Now().Format(constant.DateFormat)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
