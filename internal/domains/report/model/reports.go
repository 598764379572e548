package model

import (
	"fmt"
	gDto "travel/shared/dto"
)

var Reports = []Report{
	{
		Slug:  SlugFlightDetails,
		Title: "Flight Details",
		Params: []Param{
			{Name: "airport_name", Label: "Departure airport", Kind: ParamText, Default: DefaultAirport, Rules: "notblank,max=100"},
		},
		Query: flightDetails,
	},
	{
		Slug:  SlugAttractionCount,
		Title: "Attraction Count by Region",
		Query: attractionCount,
	},
	{
		Slug:  SlugUserBookings,
		Title: "User Bookings",
		Params: []Param{
			{Name: "from", Label: "From", Kind: ParamDate, Default: "2024-07-01"},
			{Name: "to", Label: "To", Kind: ParamDate, Default: "2024-07-31"},
		},
		Query: userBookings,
	},
	{
		Slug:  SlugDishRestaurantNames,
		Title: "Dish and Restaurant Names",
		Params: []Param{
			{Name: "region_name", Label: "Region", Kind: ParamText, Default: "Greater Accra", Rules: "notblank,max=100"},
		},
		Query: dishRestaurantNames,
	},
	{
		Slug:  SlugNightclubDetails,
		Title: "Nightclub Details",
		Params: []Param{
			{Name: "music_type", Label: "Music type", Kind: ParamText, Default: "Afrobeat", Rules: "notblank,max=50"},
		},
		Query: nightclubDetails,
	},
	{
		Slug:  SlugTopRestaurants,
		Title: "Top 5 Restaurants by Rating",
		Params: []Param{
			{Name: "limit", Label: "Limit", Kind: ParamInt, Default: "5", Rules: "min=1,max=100"},
		},
		Query: topRestaurants,
	},
}

func column(quote gDto.Quoter, table, name string) string {
	return quote(table) + "." + quote(name)
}

func flightDetails(q gDto.Quoter) string {
	return fmt.Sprintf("SELECT %s, %s, %s, %s FROM %s WHERE %s = (SELECT %s FROM %s WHERE %s = :airport_name)",
		q("FlightNumber"), q("DepartureTime"), q("ArrivalTime"), q("Price"), q("Flight"),
		q("DepartureAirportID"), q("AirportID"), q("Airport"), q("AirportName"))
}

func attractionCount(q gDto.Quoter) string {
	return fmt.Sprintf("SELECT %s, COUNT(%s) AS %s FROM %s LEFT JOIN %s ON %s = %s GROUP BY %s",
		column(q, "Region", "RegionName"), column(q, "Attraction", "AttractionID"), q("AttractionCount"),
		q("Region"), q("Attraction"),
		column(q, "Region", "RegionID"), column(q, "Attraction", "RegionID"),
		column(q, "Region", "RegionName"))
}

func userBookings(q gDto.Quoter) string {
	return fmt.Sprintf("SELECT %s, %s, %s FROM %s JOIN %s ON %s = %s WHERE %s BETWEEN :from AND :to",
		column(q, "User", "Username"), column(q, "Booking", "BookingDate"), column(q, "Booking", "TotalCost"),
		q("User"), q("Booking"),
		column(q, "User", "UserID"), column(q, "Booking", "UserID"),
		column(q, "Booking", "BookingDate"))
}

func dishRestaurantNames(q gDto.Quoter) string {
	return fmt.Sprintf("SELECT %s, %s AS %s FROM %s JOIN %s ON %s = %s WHERE %s = (SELECT %s FROM %s WHERE %s = :region_name)",
		column(q, "Dish", "DishName"), column(q, "Restaurant", "RestaurantName"), q("RestaurantName"),
		q("Dish"), q("Restaurant"),
		column(q, "Dish", "RestaurantID"), column(q, "Restaurant", "RestaurantID"),
		column(q, "Restaurant", "RegionID"), q("RegionID"), q("Region"), q("RegionName"))
}

func nightclubDetails(q gDto.Quoter) string {
	return fmt.Sprintf("SELECT %s, %s, %s FROM %s JOIN %s ON %s = %s WHERE %s = :music_type",
		column(q, "Attraction", "AttractionName"), column(q, "Nightclub", "Location"), column(q, "Nightclub", "OpeningHours"),
		q("Nightclub"), q("Attraction"),
		column(q, "Nightclub", "AttractionID"), column(q, "Attraction", "AttractionID"),
		column(q, "Nightclub", "MusicType"))
}

func topRestaurants(q gDto.Quoter) string {
	return fmt.Sprintf("SELECT %s, AVG(%s) AS %s FROM %s JOIN %s ON %s = %s WHERE %s = 'Restaurant' GROUP BY %s ORDER BY %s DESC LIMIT :limit",
		column(q, "Restaurant", "RestaurantName"), column(q, "Review", "Rating"), q("AverageRating"),
		q("Restaurant"), q("Review"),
		column(q, "Restaurant", "RestaurantID"), column(q, "Review", "RestaurantID"),
		column(q, "Review", "EntityType"),
		column(q, "Restaurant", "RestaurantName"), q("AverageRating"))
}
