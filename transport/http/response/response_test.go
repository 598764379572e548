package response_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"travel/shared/constant"
	"travel/shared/dto"
	"travel/shared/failure"
	"travel/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFrame(t *testing.T) {
	frame := dto.NewFrame([]string{"FlightNumber", "Price"})
	frame.Append([]any{"AW101", int64(500)})
	frame.Append([]any{"AW102", int64(1000000)})

	payload := struct {
		Slug string `json:"slug"`
		dto.Frame
	}{Slug: "flight-details", Frame: frame}

	rec := httptest.NewRecorder()
	response.WithFrame(rec, payload, frame)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Header().Get(constant.ResponseHeaderTotalCount))
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.JSONEq(t,
		`{"data":{"slug":"flight-details","columns":["FlightNumber","Price"],"rows":[["AW101",500],["AW102",1000000]]}}`,
		rec.Body.String())
}

func TestWithCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithCreated(rec, map[string]any{"booking_id": 7, "total_cost": "550"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"booking_id":7,"total_cost":"550"}}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "failure keeps its code",
			err:      fmt.Errorf("failed to create booking: %w", failure.UnprocessableEntity("referenced flight 9 not found")),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"error":"failed to create booking: referenced flight 9 not found"}`,
		},
		{
			name:     "plain error is internal",
			err:      fmt.Errorf("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"connection reset"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec, 60)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get(constant.ResponseHeaderRetryAfter))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, constant.ResponseErrorRequestLimitExceeded, body["message"])
}
