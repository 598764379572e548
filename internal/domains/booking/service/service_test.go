package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
	"travel/config"
	kafkaMocks "travel/infras/kafka/mocks"
	"travel/infras/otel/mocks"
	bookingMocks "travel/internal/domains/booking/mocks"
	"travel/internal/domains/booking/model"
	"travel/internal/domains/booking/model/dto"
	"travel/internal/domains/booking/service"
	catalogMocks "travel/internal/domains/catalog/mocks"
	catalogModel "travel/internal/domains/catalog/model"
	userMocks "travel/internal/domains/user/mocks"
	cacheMocks "travel/shared/cache/mocks"
	gDto "travel/shared/dto"
	"travel/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	repo    *bookingMocks.MockBooking
	catalog *catalogMocks.MockCatalogService
	user    *userMocks.MockUserService
	kafka   *kafkaMocks.MockClient
	cache   *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Booking, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		repo:    bookingMocks.NewMockBooking(ctrl),
		catalog: catalogMocks.NewMockCatalogService(ctrl),
		user:    userMocks.NewMockUserService(ctrl),
		kafka:   kafkaMocks.NewMockClient(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Kafka.Topics.Booking = "travel.booking"

	d.kafka.EXPECT().SendMessages(gomock.Any(), "travel.booking", gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Clear(gomock.Any(), "report:user-bookings").Return(nil).AnyTimes()

	return service.New(d.repo, d.catalog, d.user, d.kafka, cfg, d.cache, mocks.NewOtel()), d
}

func ptr(id int64) *int64 {
	return &id
}

func TestBookingService_Create(t *testing.T) {
	bookingDate := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(d deps)
		wantID    int64
		wantCost  string
		wantCode  int
		wantMsg   string
	}{
		{
			name: "flight and restaurant",
			req:  dto.CreateBookingRequest{UserID: 1, BookingDate: "2024-07-10", FlightID: ptr(10), RestaurantID: ptr(30)},
			setupMock: func(d deps) {
				d.user.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
				d.catalog.EXPECT().Price(gomock.Any(), catalogModel.KindFlight, int64(10)).Return(decimal.NewFromInt(500), nil)
				d.catalog.EXPECT().Price(gomock.Any(), catalogModel.KindRestaurant, int64(30)).Return(decimal.NewFromInt(50), nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, booking model.Booking) (int64, error) {
					assert.Equal(t, int64(1), booking.UserID)
					assert.True(t, booking.BookingDate.Equal(bookingDate))
					assert.True(t, booking.TotalCost.Equal(decimal.NewFromInt(550)))

					return 7, nil
				})
			},
			wantID:   7,
			wantCost: "550.00",
		},
		{
			name: "no components costs zero",
			req:  dto.CreateBookingRequest{UserID: 2, BookingDate: "2024-07-11"},
			setupMock: func(d deps) {
				d.user.EXPECT().Exists(gomock.Any(), int64(2)).Return(true, nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, booking model.Booking) (int64, error) {
					assert.True(t, booking.TotalCost.IsZero())

					return 8, nil
				})
			},
			wantID:   8,
			wantCost: "0.00",
		},
		{
			name: "all three components",
			req:  dto.CreateBookingRequest{UserID: 1, BookingDate: "2024-07-12", FlightID: ptr(11), RestaurantID: ptr(31), AttractionID: ptr(22)},
			setupMock: func(d deps) {
				d.user.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
				d.catalog.EXPECT().Price(gomock.Any(), catalogModel.KindFlight, int64(11)).Return(decimal.RequireFromString("420.50"), nil)
				d.catalog.EXPECT().Price(gomock.Any(), catalogModel.KindRestaurant, int64(31)).Return(decimal.RequireFromString("45.25"), nil)
				d.catalog.EXPECT().Price(gomock.Any(), catalogModel.KindAttraction, int64(22)).Return(decimal.RequireFromString("0.75"), nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(9), nil)
			},
			wantID:   9,
			wantCost: "466.50",
		},
		{
			name: "unknown user",
			req:  dto.CreateBookingRequest{UserID: 99, BookingDate: "2024-07-10", FlightID: ptr(10)},
			setupMock: func(d deps) {
				d.user.EXPECT().Exists(gomock.Any(), int64(99)).Return(false, nil)
			},
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  "referenced user 99 not found",
		},
		{
			name: "missing component inserts nothing",
			req:  dto.CreateBookingRequest{UserID: 1, BookingDate: "2024-07-10", FlightID: ptr(10), AttractionID: ptr(404)},
			setupMock: func(d deps) {
				d.user.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
				d.catalog.EXPECT().Price(gomock.Any(), catalogModel.KindFlight, int64(10)).Return(decimal.NewFromInt(500), nil)
				d.catalog.EXPECT().Price(gomock.Any(), catalogModel.KindAttraction, int64(404)).
					Return(decimal.Zero, failure.UnprocessableEntity("referenced attraction 404 not found"))
			},
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  "referenced attraction 404 not found",
		},
		{
			name: "invalid date",
			req:  dto.CreateBookingRequest{UserID: 1, BookingDate: "2024-13-40"},
			setupMock: func(d deps) {
				d.user.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert error",
			req:  dto.CreateBookingRequest{UserID: 1, BookingDate: "2024-07-10"},
			setupMock: func(d deps) {
				d.user.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.BookingID)
			assert.Equal(t, tt.wantCost, res.TotalCost)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	bookings := []model.Booking{
		{BookingID: 1, UserID: 1, BookingDate: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), TotalCost: decimal.NewFromInt(550)},
	}

	t.Run("without pagination skips count", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, gDto.FilterGroup{}).Return(bookings, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
		assert.Equal(t, []dto.BookingResponse{{BookingID: 1, UserID: 1, BookingDate: "2024-07-10", TotalCost: "550.00"}}, res.Bookings)
	})

	t.Run("paginated and filtered by user", func(t *testing.T) {
		svc, d := newService(t)
		params := gDto.QueryParams{Page: 1, Limit: 1}

		d.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				where, args := filter.GetWhereClause(gDto.NoQuote)
				assert.Equal(t, "(UserID = :UserID)", where)
				assert.Equal(t, int64(1), args["UserID"])

				return bookings, nil
			})
		d.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)

		res, err := svc.GetAll(context.Background(), params, ptr(1))

		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 3, res.TotalPage)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{}, nil)
		assert.Error(t, err)
	})
}

func TestBookingService_GetByUsername(t *testing.T) {
	t.Run("known user", func(t *testing.T) {
		svc, d := newService(t)

		d.user.EXPECT().ResolveID(gomock.Any(), "ama").Return(int64(2), nil)
		d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{}, nil)

		res, err := svc.GetByUsername(context.Background(), gDto.QueryParams{}, "ama")

		require.NoError(t, err)
		assert.Empty(t, res.Bookings)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, d := newService(t)

		d.user.EXPECT().ResolveID(gomock.Any(), "nobody").Return(int64(0), failure.NotFound("user not found"))

		_, err := svc.GetByUsername(context.Background(), gDto.QueryParams{}, "nobody")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "user not found", err.Error())
	})
}

func TestBookingService_GetSummaries(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any(), model.FieldBookingID, model.FieldBookingDate, model.FieldTotalCost).
		Return([]model.Booking{{BookingID: 4, BookingDate: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), TotalCost: decimal.NewFromInt(550)}}, nil)

	res, err := svc.GetSummaries(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, res.Bookings, 1)
	assert.Equal(t, "Booking ID: 4 - Date: 2024-07-10 - Total Cost: 550.00", res.Bookings[0].Label)
}

func TestBookingService_Delete(t *testing.T) {
	tests := []struct {
		name        string
		deleted     int64
		err         error
		wantDeleted int64
		wantErr     bool
	}{
		{name: "existing booking", deleted: 1, wantDeleted: 1},
		{name: "missing booking is a no-op", deleted: 0, wantDeleted: 0},
		{name: "repository error", err: errors.New("database error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)

			d.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(tt.deleted, tt.err)

			res, err := svc.Delete(context.Background(), 5)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(5), res.BookingID)
			assert.Equal(t, tt.wantDeleted, res.Deleted)
		})
	}
}
