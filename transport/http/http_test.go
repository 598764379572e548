package http_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"travel/config"
	"travel/infras/database/databasetest"
	"travel/infras/otel/mocks"
	"travel/internal/handlers/page"
	"travel/shared/cache"
	"travel/shared/constant"
	transportHTTP "travel/transport/http"
	"travel/transport/http/middleware"
	"travel/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *transportHTTP.HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "travel-management"

	otl := mocks.NewOtel()
	appMiddleware := middleware.NewAppMiddleware(otl, cfg, cache.NewRedisCache(nil, otl))
	r := router.New(router.DomainHandlers{Page: page.New()})

	return transportHTTP.New(cfg, databasetest.New(t), r, appMiddleware)
}

func TestHealth(t *testing.T) {
	server := newServer(t)
	handler := server.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseHealthy)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestHealth_DatabaseDown(t *testing.T) {
	server := newServer(t)
	handler := server.Handler()

	require.NoError(t, server.DB.Close())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseErrorUnhealthy)
}

func TestCleanupPeriodRejectsRequests(t *testing.T) {
	server := newServer(t)
	handler := server.Handler()

	server.SetState(transportHTTP.ServerStateInCleanupPeriod)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pages", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseErrorPrepareShutdown)
}

func TestPagesRoute(t *testing.T) {
	handler := newServer(t).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pages", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to the Travel Management Database interface.")
}

func TestHandlerKeepsShutdownState(t *testing.T) {
	server := newServer(t)
	server.Handler()

	server.SetState(transportHTTP.ServerStateInGracePeriod)

	handler := server.Handler()
	assert.Equal(t, transportHTTP.ServerStateInGracePeriod, server.State())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.ResponseErrorPrepareShutdown)
}

func TestStateIsSafeUnderConcurrentRequests(t *testing.T) {
	server := newServer(t)
	handler := server.Handler()

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pages", nil))
		}()
	}

	server.SetState(transportHTTP.ServerStateInCleanupPeriod)
	wg.Wait()

	assert.Equal(t, transportHTTP.ServerStateInCleanupPeriod, server.State())
}
