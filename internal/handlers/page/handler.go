package page

import (
	"net/http"
	pageDomain "travel/internal/domains/page"
	"travel/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/pages", handler.GetPages)
}

// GetPages returns the page selector and the welcome text.
// @Summary Get pages
// @Tags Page
// @Produce json
// @Success 200 {object} response.Data[page.PagesResponse]
// @Router /v1/pages [get]
func (handler *Handler) GetPages(writer http.ResponseWriter, _ *http.Request) {
	response.WithJSON(writer, http.StatusOK, pageDomain.Response())
}
