package model

import (
	gDto "travel/shared/dto"
)

// Parameter kinds decide how a textual value is checked and bound.
const (
	ParamText = "text"
	ParamDate = "date"
	ParamInt  = "int"
)

const (
	SlugFlightDetails       = "flight-details"
	SlugAttractionCount     = "attraction-count"
	SlugUserBookings        = "user-bookings"
	SlugDishRestaurantNames = "dish-restaurant-names"
	SlugNightclubDetails    = "nightclub-details"
	SlugTopRestaurants      = "top-restaurants"
)

const DefaultAirport = "Kotoka International Airport"

type Param struct {
	Name    string
	Label   string
	Kind    string
	Default string
	Rules   string
}

// Report is a canned read-only query. Query renders the statement for a
// dialect; every value in it is a named parameter.
type Report struct {
	Slug   string
	Title  string
	Params []Param
	Query  func(quote gDto.Quoter) string
}

func Find(slug string) (Report, bool) {
	for _, report := range Reports {
		if report.Slug == slug {
			return report, true
		}
	}

	return Report{}, false
}
