package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "Booking"
	EntityName = "booking"

	FieldBookingID   = "BookingID"
	FieldUserID      = "UserID"
	FieldBookingDate = "BookingDate"
	FieldTotalCost   = "TotalCost"
)

// Event types published for booking lifecycle changes.
const (
	EventCreated = "booking.created"
	EventDeleted = "booking.deleted"
)

// Booking keeps only the computed total. The components picked when it was
// made are not stored.
type Booking struct {
	BookingID   int64           `db:"BookingID"   auto:"true"`
	UserID      int64           `db:"UserID"`
	BookingDate time.Time       `db:"BookingDate"`
	TotalCost   decimal.Decimal `db:"TotalCost"`
}
