package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	otelMocks "travel/infras/otel/mocks"
	"travel/internal/domains/user/mocks"
	"travel/internal/domains/user/model/dto"
	"travel/internal/handlers/user"
	"travel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockUserService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockUserService(ctrl)

	handler := user.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))

	return recorder
}

func TestHandler_CreateUser(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *mocks.MockUserService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"username":"ama","email":"ama@example.com","nationality":"Ghanaian"}`,
			setupMock: func(svc *mocks.MockUserService) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateUserRequest{Username: "ama", Email: "ama@example.com", Nationality: "Ghanaian"}).
					Return(dto.CreateUserResponse{UserID: 5, Username: "ama"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"data":{"user_id":5,"username":"ama"}}`,
		},
		{
			name:       "blank username",
			body:       `{"username":"  "}`,
			setupMock:  func(*mocks.MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid email",
			body:       `{"username":"ama","email":"not-an-email"}`,
			setupMock:  func(*mocks.MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			body: `{"username":"kwame"}`,
			setupMock: func(svc *mocks.MockUserService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateUserResponse{}, failure.Conflict("username kwame already exists"))
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"username kwame already exists"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			res := serve(router, http.MethodPost, "/users", tt.body)

			assert.Equal(t, tt.wantStatus, res.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, res.Body.String())
			}
		})
	}
}

func TestHandler_GetUserNames(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Names(gomock.Any()).Return(dto.GetUserNamesResponse{
		Users: []dto.UserName{{UserID: 1, Username: "kwame"}},
	}, nil)

	res := serve(router, http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"data":{"users":[{"user_id":1,"username":"kwame"}]}}`, res.Body.String())
}
