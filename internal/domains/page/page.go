// Package page describes the navigation shared by the HTTP API and the
// terminal console.
package page

const Welcome = "Welcome to the Travel Management Database interface."

const (
	SlugHome          = "home"
	SlugViewData      = "view-data"
	SlugQueries       = "queries"
	SlugAddUser       = "add-user"
	SlugMakeBooking   = "make-booking"
	SlugCheckFlights  = "check-flights"
	SlugDeleteBooking = "delete-booking"
	SlugCheckBookings = "check-bookings"
)

type Page struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// All is the page selector, in menu order.
var All = []Page{
	{Slug: SlugHome, Title: "Home", Path: "/v1/pages"},
	{Slug: SlugViewData, Title: "View Data", Path: "/v1/tables"},
	{Slug: SlugQueries, Title: "Queries", Path: "/v1/reports"},
	{Slug: SlugAddUser, Title: "Add User", Path: "/v1/users"},
	{Slug: SlugMakeBooking, Title: "Make Booking", Path: "/v1/bookings"},
	{Slug: SlugCheckFlights, Title: "Check Flights", Path: "/v1/flights/departures"},
	{Slug: SlugDeleteBooking, Title: "Delete Booking", Path: "/v1/bookings/{id}"},
	{Slug: SlugCheckBookings, Title: "Check Bookings", Path: "/v1/bookings"},
}

func Find(slug string) (Page, bool) {
	for _, p := range All {
		if p.Slug == slug {
			return p, true
		}
	}

	return Page{}, false
}

// Index returns the position of slug in All, or 0 for an unknown slug.
func Index(slug string) int {
	for i, p := range All {
		if p.Slug == slug {
			return i
		}
	}

	return 0
}

type PagesResponse struct {
	Welcome string `json:"welcome"`
	Pages   []Page `json:"pages"`
}

func Response() PagesResponse {
	return PagesResponse{Welcome: Welcome, Pages: All}
}
