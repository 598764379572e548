package booking

import (
	"net/http"
	"strings"
	"travel/infras/otel"
	"travel/internal/domains/booking/model/dto"
	"travel/internal/domains/booking/service"
	"travel/shared"
	"travel/shared/constant"
	gDto "travel/shared/dto"
	"travel/shared/validator"
	"travel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
	router.Get("/users/{id}/bookings", handler.GetBookingSummaries)
}

// CreateBooking prices the selected components and stores the booking.
// @Summary Make a booking
// @Description Total cost is the sum of the selected flight, restaurant and attraction prices.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithCreated(writer, res)
}

// GetBookings lists bookings, optionally for one user.
// @Summary Check bookings
// @Tags Booking
// @Produce json
// @Param user_id query int false "Filter by user id"
// @Param username query string false "Filter by username"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, false)

	query := request.URL.Query()

	var (
		res dto.GetBookingsResponse
		err error
	)

	switch {
	case query.Get(constant.RequestParamUserID) != "":
		var userID int64

		userID, err = shared.ParseID(constant.RequestParamUserID, query.Get(constant.RequestParamUserID))
		if err == nil {
			res, err = handler.service.GetAll(ctx, queryParams, &userID)
		}
	case strings.TrimSpace(query.Get(constant.RequestParamUsername)) != "":
		res, err = handler.service.GetByUsername(ctx, queryParams, query.Get(constant.RequestParamUsername))
	default:
		res, err = handler.service.GetAll(ctx, queryParams, nil)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingSummaries feeds the deletion picker of one user.
// @Summary Get booking summaries of a user
// @Tags Booking
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Data[dto.GetBookingSummariesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id}/bookings [get]
func (handler *Handler) GetBookingSummaries(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingSummaries")
	defer scope.End()

	userID, err := shared.ParseID("user id", chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetSummaries(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to get booking summaries")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteBooking removes a booking. An unknown id reports zero deleted rows.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.DeleteBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id, err := shared.ParseID("booking id", chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
