package page_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	pageDomain "travel/internal/domains/page"
	"travel/internal/handlers/page"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_GetPages(t *testing.T) {
	handler := page.New()
	router := chi.NewRouter()
	handler.Router(router)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/pages", nil))

	require.Equal(t, http.StatusOK, res.Code)

	var body struct {
		Data pageDomain.PagesResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))

	assert.Equal(t, pageDomain.Welcome, body.Data.Welcome)
	assert.Len(t, body.Data.Pages, len(pageDomain.All))
}
