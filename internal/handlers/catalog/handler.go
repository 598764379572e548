package catalog

import (
	"net/http"
	"travel/infras/otel"
	"travel/internal/domains/catalog/service"
	"travel/shared/constant"
	"travel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/options/{kind}", handler.GetOptions)
}

// GetOptions lists the id and name pairs for a booking component.
// @Summary Get booking options
// @Tags Catalog
// @Produce json
// @Param kind path string true "flight, restaurant or attraction"
// @Success 200 {object} response.Data[dto.GetOptionsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/options/{kind} [get]
func (handler *Handler) GetOptions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOptions")
	defer scope.End()

	kind := chi.URLParam(request, constant.RequestParamKind)

	res, err := handler.service.Options(ctx, kind)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind).Msg("failed to get options")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
