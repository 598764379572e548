package model

import "slices"

// Tables is the browse whitelist, in the order the picker shows it.
var Tables = []string{
	"User",
	"Booking",
	"Flight",
	"Airport",
	"Airline",
	"Attraction",
	"Nightclub",
	"Restaurant",
	"Region",
	"Review",
	"Dish",
}

func Allowed(name string) bool {
	return slices.Contains(Tables, name)
}
