package table

import (
	"net/http"
	"travel/infras/otel"
	"travel/internal/domains/table/service"
	"travel/shared/constant"
	gDto "travel/shared/dto"
	"travel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Table
	otel    otel.Otel
}

func New(service service.Table, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tables", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTables)
		routerGroup.Get("/{name}", handler.BrowseTable)
	})
}

// GetTables lists the browsable tables.
// @Summary Get tables
// @Tags Table
// @Produce json
// @Success 200 {object} response.Data[dto.GetTablesResponse]
// @Router /v1/tables [get]
func (handler *Handler) GetTables(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.Tables(request.Context()))
}

// BrowseTable returns every row of a table, optionally one page at a time.
// @Summary Browse a table
// @Tags Table
// @Produce json
// @Param name path string true "Table name"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.BrowseTableResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables/{name} [get]
func (handler *Handler) BrowseTable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BrowseTable")
	defer scope.End()

	name := chi.URLParam(request, constant.RequestParamName)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, false)

	res, err := handler.service.Browse(ctx, name, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("table", name).Msg("failed to browse table")

		response.WithError(writer, err)

		return
	}

	response.WithFrame(writer, res, res.Frame)
}
