package catalog_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	otelMocks "travel/infras/otel/mocks"
	"travel/internal/domains/catalog/mocks"
	"travel/internal/domains/catalog/model/dto"
	"travel/internal/handlers/catalog"
	"travel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetOptions(t *testing.T) {
	tests := []struct {
		name       string
		kind       string
		setupMock  func(svc *mocks.MockCatalogService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "flights",
			kind: "flight",
			setupMock: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().Options(gomock.Any(), "flight").Return(dto.GetOptionsResponse{
					Kind:    "flight",
					Options: []dto.Option{{ID: 11, Name: "AW101"}},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"kind":"flight","options":[{"id":11,"name":"AW101"}]}}`,
		},
		{
			name: "unknown kind",
			kind: "hotel",
			setupMock: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().Options(gomock.Any(), "hotel").Return(dto.GetOptionsResponse{}, failure.BadRequestFromString("unknown option kind \"hotel\""))
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockCatalogService(ctrl)
			tt.setupMock(svc)

			handler := catalog.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			res := httptest.NewRecorder()
			router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/options/"+tt.kind, nil))

			assert.Equal(t, tt.wantStatus, res.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, res.Body.String())
			}
		})
	}
}
