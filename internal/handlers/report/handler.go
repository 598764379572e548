package report

import (
	"net/http"
	"travel/infras/otel"
	"travel/internal/domains/report/service"
	"travel/shared"
	"travel/shared/constant"
	"travel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReports)
		routerGroup.Get("/{slug}", handler.RunReport)
		routerGroup.Post("/{slug}/export", handler.ExportReport)
	})
	router.Get("/flights/departures", handler.GetDepartures)
}

// queryValues flattens the query string, keeping the first value of each key.
func queryValues(request *http.Request) map[string]string {
	values := map[string]string{}

	for key, value := range request.URL.Query() {
		if len(value) > 0 {
			values[key] = value[0]
		}
	}

	return values
}

// GetReports lists the canned reports and their parameters.
// @Summary Get reports
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[dto.ListReportsResponse]
// @Router /v1/reports [get]
func (handler *Handler) GetReports(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.List(request.Context()))
}

// RunReport runs one report. Parameters are passed as query values and
// fall back to their defaults.
// @Summary Run a report
// @Tags Report
// @Produce json
// @Param slug path string true "Report slug"
// @Param refresh query bool false "Skip the cache"
// @Success 200 {object} response.Data[dto.RunReportResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/{slug} [get]
func (handler *Handler) RunReport(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunReport")
	defer scope.End()

	slug := chi.URLParam(request, constant.RequestParamSlug)
	params := queryValues(request)

	refresh := false
	if value := shared.ConvertStringToBool(params[constant.RequestParamRefresh]); value != nil {
		refresh = *value
	}

	res, err := handler.service.Run(ctx, slug, params, refresh)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slug", slug).Msg("failed to run report")

		response.WithError(writer, err)

		return
	}

	response.WithFrame(writer, res, res.Frame)
}

// ExportReport uploads the report as CSV and returns its URL.
// @Summary Export a report
// @Tags Report
// @Produce json
// @Param slug path string true "Report slug"
// @Success 201 {object} response.Data[dto.ExportReportResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 501 {object} response.Error
// @Router /v1/reports/{slug}/export [post]
func (handler *Handler) ExportReport(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportReport")
	defer scope.End()

	slug := chi.URLParam(request, constant.RequestParamSlug)

	res, err := handler.service.Export(ctx, slug, queryValues(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slug", slug).Msg("failed to export report")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Report exported")

	response.WithCreated(writer, res)
}

// GetDepartures backs the Check Flights page.
// @Summary Check flights from an airport
// @Tags Report
// @Produce json
// @Param airport_name query string false "Departure airport" default(Kotoka International Airport)
// @Success 200 {object} response.Data[dto.RunReportResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights/departures [get]
func (handler *Handler) GetDepartures(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDepartures")
	defer scope.End()

	airport := request.URL.Query().Get("airport_name")

	res, err := handler.service.Departures(ctx, airport)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("airport", airport).Msg("failed to get departures")

		response.WithError(writer, err)

		return
	}

	response.WithFrame(writer, res, res.Frame)
}
