package dto

import (
	"fmt"
	"time"
	"travel/internal/domains/booking/model"
	catalogModel "travel/internal/domains/catalog/model"
	"travel/shared"
	"travel/shared/constant"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	UserID       int64  `json:"user_id"       validate:"required,gt=0"`
	BookingDate  string `json:"booking_date"  validate:"required,datetime=2006-01-02"`
	FlightID     *int64 `json:"flight_id"     validate:"omitempty,gt=0"`
	RestaurantID *int64 `json:"restaurant_id" validate:"omitempty,gt=0"`
	AttractionID *int64 `json:"attraction_id" validate:"omitempty,gt=0"`
}

// Component is one priced selection of a booking.
type Component struct {
	Kind string
	ID   int64
}

// Components lists the selections that are present.
func (r *CreateBookingRequest) Components() []Component {
	components := make([]Component, 0, 3)

	if r.FlightID != nil {
		components = append(components, Component{Kind: catalogModel.KindFlight, ID: *r.FlightID})
	}

	if r.RestaurantID != nil {
		components = append(components, Component{Kind: catalogModel.KindRestaurant, ID: *r.RestaurantID})
	}

	if r.AttractionID != nil {
		components = append(components, Component{Kind: catalogModel.KindAttraction, ID: *r.AttractionID})
	}

	return components
}

func (r *CreateBookingRequest) ToModel(totalCost decimal.Decimal) (model.Booking, error) {
	bookingDate, err := time.Parse(constant.DateFormat, r.BookingDate)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid booking date %q: %w", r.BookingDate, err)
	}

	return model.Booking{
		UserID:      r.UserID,
		BookingDate: bookingDate,
		TotalCost:   totalCost,
	}, nil
}

type CreateBookingResponse struct {
	BookingID int64  `json:"booking_id"`
	TotalCost string `json:"total_cost"`
}

type BookingResponse struct {
	BookingID   int64  `json:"booking_id"`
	UserID      int64  `json:"user_id"`
	BookingDate string `json:"booking_date"`
	TotalCost   string `json:"total_cost"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.BookingID = booking.BookingID
	r.UserID = booking.UserID
	r.BookingDate = booking.BookingDate.Format(constant.DateFormat)
	r.TotalCost = booking.TotalCost.StringFixed(2)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(bookings []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
	}
}

// BookingSummary is the reduced projection offered by the deletion picker.
type BookingSummary struct {
	BookingID   int64  `json:"booking_id"`
	BookingDate string `json:"booking_date"`
	TotalCost   string `json:"total_cost"`
	Label       string `json:"label"`
}

func (r *BookingSummary) FromModel(booking model.Booking) {
	r.BookingID = booking.BookingID
	r.BookingDate = booking.BookingDate.Format(constant.DateFormat)
	r.TotalCost = booking.TotalCost.StringFixed(2)
	r.Label = fmt.Sprintf("Booking ID: %d - Date: %s - Total Cost: %s", r.BookingID, r.BookingDate, r.TotalCost)
}

type GetBookingSummariesResponse struct {
	Bookings []BookingSummary `json:"bookings"`
}

func (r *GetBookingSummariesResponse) FromModels(bookings []model.Booking) {
	r.Bookings = make([]BookingSummary, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
	}
}

type DeleteBookingResponse struct {
	BookingID int64 `json:"booking_id"`
	Deleted   int64 `json:"deleted"`
}

// BookingEvent is the payload published on the booking topic.
type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   int64     `json:"booking_id"`
	UserID      int64     `json:"user_id,omitempty"`
	BookingDate string    `json:"booking_date,omitempty"`
	TotalCost   string    `json:"total_cost,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
