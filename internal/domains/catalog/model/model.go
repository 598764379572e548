package model

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Option kinds offered by the booking form.
const (
	KindFlight     = "flight"
	KindRestaurant = "restaurant"
	KindAttraction = "attraction"
)

var Kinds = []string{KindFlight, KindRestaurant, KindAttraction}

const (
	FlightTable     = "Flight"
	RestaurantTable = "Restaurant"
	DishTable       = "Dish"
	AttractionTable = "Attraction"

	FieldFlightID           = "FlightID"
	FieldFlightNumber       = "FlightNumber"
	FieldDepartureAirportID = "DepartureAirportID"
	FieldDepartureTime      = "DepartureTime"
	FieldArrivalTime        = "ArrivalTime"
	FieldPrice              = "Price"

	FieldRestaurantID   = "RestaurantID"
	FieldRestaurantName = "RestaurantName"
	FieldRegionID       = "RegionID"

	FieldDishID       = "DishID"
	FieldDishName     = "DishName"
	FieldTypicalPrice = "TypicalPrice"

	FieldAttractionID   = "AttractionID"
	FieldAttractionName = "AttractionName"
	FieldEntryFee       = "EntryFee"
)

type Flight struct {
	FlightID           int64           `db:"FlightID"`
	FlightNumber       string          `db:"FlightNumber"`
	DepartureAirportID sql.NullInt64   `db:"DepartureAirportID"`
	DepartureTime      sql.NullTime    `db:"DepartureTime"`
	ArrivalTime        sql.NullTime    `db:"ArrivalTime"`
	Price              decimal.Decimal `db:"Price"`
}

type Restaurant struct {
	RestaurantID   int64         `db:"RestaurantID"`
	RestaurantName string        `db:"RestaurantName"`
	RegionID       sql.NullInt64 `db:"RegionID"`
}

type Dish struct {
	DishID       int64           `db:"DishID"`
	DishName     string          `db:"DishName"`
	RestaurantID int64           `db:"RestaurantID"`
	TypicalPrice decimal.Decimal `db:"TypicalPrice"`
}

type Attraction struct {
	AttractionID   int64           `db:"AttractionID"`
	AttractionName string          `db:"AttractionName"`
	RegionID       sql.NullInt64   `db:"RegionID"`
	EntryFee       decimal.Decimal `db:"EntryFee"`
}
