package response

import (
	"encoding/json"
	"net/http"
	"strconv"
	"travel/shared/constant"
	"travel/shared/dto"
	"travel/shared/failure"
	"travel/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithCreated answers a write that produced a new booking, user or export.
func WithCreated(writer http.ResponseWriter, jsonPayload any) {
	WithJSON(writer, http.StatusCreated, jsonPayload)
}

// WithFrame sends a payload that embeds a result frame. The row count goes
// into X-Total-Count so clients can size a table before decoding it.
func WithFrame(writer http.ResponseWriter, jsonPayload any, frame dto.Frame) {
	writer.Header().Set(constant.ResponseHeaderTotalCount, strconv.Itoa(frame.Len()))

	WithJSON(writer, http.StatusOK, jsonPayload)
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg})
}

// WithRequestLimitExceeded turns a client away until its window expires.
func WithRequestLimitExceeded(writer http.ResponseWriter, retryAfterSeconds int) {
	writer.Header().Set(constant.ResponseHeaderRetryAfter, strconv.Itoa(retryAfterSeconds))

	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
