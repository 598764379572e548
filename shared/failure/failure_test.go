package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"travel/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "unknown table",
	}

	if f.Error() != "unknown table" {
		t.Errorf("expected error message to be 'unknown table', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{name: "InvalidPageParam", failure: failure.InvalidPageParam, code: http.StatusBadRequest, message: "invalid page parameter"},
		{name: "InvalidLimitParam", failure: failure.InvalidLimitParam, code: http.StatusBadRequest, message: "invalid limit parameter"},
		{name: "UnknownTable", failure: failure.UnknownTable, code: http.StatusBadRequest, message: "unknown table"},
		{name: "UnknownReport", failure: failure.UnknownReport, code: http.StatusNotFound, message: "unknown report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("validation failed")), code: http.StatusBadRequest, message: "validation failed"},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("booking_date is required"), code: http.StatusBadRequest, message: "booking_date is required"},
		{name: "InternalError", err: failure.InternalError(errors.New("connection reset")), code: http.StatusInternalServerError, message: "connection reset"},
		{name: "Unimplemented", err: failure.Unimplemented("report export is not configured"), code: http.StatusNotImplemented, message: "report export is not configured"},
		{name: "NotFound", err: failure.NotFound("user not found"), code: http.StatusNotFound, message: "user not found"},
		{name: "Conflict", err: failure.Conflict("username already exists"), code: http.StatusConflict, message: "username already exists"},
		{name: "UnprocessableEntity", err: failure.UnprocessableEntity("referenced flight 9 not found"), code: http.StatusUnprocessableEntity, message: "referenced flight 9 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.err)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to create booking: %w", failure.UnprocessableEntity("referenced dish 3 not found")),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", failure.NotFound("user not found"))

	if !failure.Is(wrapped, http.StatusNotFound) {
		t.Error("expected wrapped not found failure to match 404")
	}

	if failure.Is(wrapped, http.StatusConflict) {
		t.Error("expected wrapped not found failure not to match 409")
	}

	if failure.Is(errors.New("plain"), http.StatusNotFound) {
		t.Error("expected plain error not to match")
	}
}
