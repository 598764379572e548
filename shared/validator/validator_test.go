package validator_test

import (
	"strings"
	"testing"
	"travel/shared/failure"
	"travel/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userRequest struct {
	Username    string `json:"username"    validate:"notblank,max=50"`
	Email       string `json:"email"       validate:"omitempty,email"`
	Nationality string `json:"nationality" validate:"omitempty,max=50"`
}

type bookingRequest struct {
	UserID      int64  `json:"user_id"      validate:"required,gt=0"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	FlightID    *int64 `json:"flight_id"    validate:"omitempty,gt=0"`
}

func TestValidateStruct(t *testing.T) {
	flight := int64(10)
	badFlight := int64(-4)

	tests := []struct {
		name    string
		data    any
		message string
	}{
		{name: "valid user", data: &userRequest{Username: "kofi", Email: "kofi@example.com"}},
		{name: "blank username", data: &userRequest{Username: "   "}, message: "username must not be blank"},
		{name: "invalid email", data: &userRequest{Username: "kofi", Email: "kofi"}, message: "email must be a valid email address"},
		{name: "long username", data: &userRequest{Username: strings.Repeat("a", 51)}, message: "username must be at most 50 characters"},
		{name: "valid booking", data: &bookingRequest{UserID: 1, BookingDate: "2024-07-10", FlightID: &flight}},
		{name: "missing user", data: &bookingRequest{BookingDate: "2024-07-10"}, message: "user_id is required"},
		{name: "bad date", data: &bookingRequest{UserID: 1, BookingDate: "10/07/2024"}, message: "booking_date must match the format 2006-01-02"},
		{name: "negative flight", data: &bookingRequest{UserID: 1, BookingDate: "2024-07-10", FlightID: &badFlight}, message: "flight_id must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error

			switch data := tt.data.(type) {
			case *userRequest:
				err = validator.ValidateStruct(data)
			case *bookingRequest:
				err = validator.ValidateStruct(data)
			}

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid date", field: "2024-07-01", tag: "datetime=2006-01-02"},
		{name: "invalid date", field: "July 1st", tag: "datetime=2006-01-02", expectError: true},
		{name: "numeric", field: "5", tag: "numeric"},
		{name: "not numeric", field: "five", tag: "numeric", expectError: true},
		{name: "notblank", field: "Afrobeat", tag: "notblank"},
		{name: "blank", field: " ", tag: "notblank", expectError: true},
		{name: "oneof", field: "flight", tag: "oneof=flight restaurant attraction"},
		{name: "not oneof", field: "hotel", tag: "oneof=flight restaurant attraction", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNamedVar(t *testing.T) {
	err := validator.ValidateNamedVar("from", "yesterday", "datetime=2006-01-02")

	require.Error(t, err)
	assert.Equal(t, "from must match the format 2006-01-02", err.Error())
	assert.NoError(t, validator.ValidateNamedVar("from", "2024-07-01", "datetime=2006-01-02"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{name: "valid JSON", jsonBody: `{"username":"ama","email":"ama@example.com","nationality":"Ghanaian"}`},
		{name: "invalid email", jsonBody: `{"username":"ama","email":"nope"}`, expectError: true},
		{name: "malformed JSON", jsonBody: `{"username":}`, expectError: true},
		{name: "unknown field", jsonBody: `{"username":"ama","flight":"AW101"}`, expectError: true},
		{name: "empty JSON", jsonBody: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data userRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
