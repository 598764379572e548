package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"travel/config"
	"travel/infras/otel/mocks"
	s3Mocks "travel/infras/s3/mocks"
	reportMocks "travel/internal/domains/report/mocks"
	"travel/internal/domains/report/model"
	"travel/internal/domains/report/model/dto"
	"travel/internal/domains/report/service"
	cacheMocks "travel/shared/cache/mocks"
	gDto "travel/shared/dto"
	"travel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	repo  *reportMocks.MockReport
	s3    *s3Mocks.MockS3
	cache *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Report, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		repo:  reportMocks.NewMockReport(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 300
	cfg.External.S3.BucketName = "travel-reports"

	return service.New(d.repo, d.s3, cfg, d.cache, mocks.NewOtel()), d
}

func airlineFrame() gDto.Frame {
	frame := gDto.NewFrame([]string{"FlightNumber", "Price"})
	frame.Append([]any{"AW101", "500.00"})
	frame.Append([]any{"AW103", "510.00"})

	return frame
}

func TestReportService_List(t *testing.T) {
	svc, _ := newService(t)

	res := svc.List(context.Background())

	require.Len(t, res.Reports, 6)
	assert.Equal(t, "flight-details", res.Reports[0].Slug)
	assert.Equal(t, []dto.ParamResponse{{Name: "airport_name", Label: "Departure airport", Kind: "text", Default: "Kotoka International Airport"}}, res.Reports[0].Params)
	assert.Empty(t, res.Reports[1].Params)
}

func TestReportService_Run(t *testing.T) {
	t.Run("cache miss runs query with bound defaults", func(t *testing.T) {
		svc, d := newService(t)
		key := "report:flight-details:airport_name=Kotoka+International+Airport"

		d.cache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("miss"))
		d.repo.EXPECT().Run(gomock.Any(), gomock.Any(), map[string]any{"airport_name": "Kotoka International Airport"}).
			DoAndReturn(func(_ context.Context, report model.Report, _ map[string]any) (gDto.Frame, error) {
				assert.Equal(t, model.SlugFlightDetails, report.Slug)

				return airlineFrame(), nil
			})
		d.cache.EXPECT().Save(gomock.Any(), key, gomock.Any(), 300).Return(nil).AnyTimes()

		res, err := svc.Run(context.Background(), model.SlugFlightDetails, nil, false)

		require.NoError(t, err)
		assert.Equal(t, "Flight Details", res.Title)
		assert.Equal(t, []string{"FlightNumber", "Price"}, res.Columns)
		assert.Equal(t, 2, res.Len())
	})

	t.Run("cache hit", func(t *testing.T) {
		svc, d := newService(t)

		d.cache.EXPECT().Get(gomock.Any(), "report:attraction-count", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, _ := value.(*dto.RunReportResponse)
				res.Slug = model.SlugAttractionCount
				res.Frame = gDto.NewFrame([]string{"RegionName", "AttractionCount"})

				return nil
			})

		res, err := svc.Run(context.Background(), model.SlugAttractionCount, nil, false)

		require.NoError(t, err)
		assert.Equal(t, []string{"RegionName", "AttractionCount"}, res.Columns)
	})

	t.Run("refresh bypasses cache lookup", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().Run(gomock.Any(), gomock.Any(), map[string]any{"limit": 2}).Return(airlineFrame(), nil)
		d.cache.EXPECT().Save(gomock.Any(), "report:top-restaurants:limit=2", gomock.Any(), 300).Return(nil).AnyTimes()

		_, err := svc.Run(context.Background(), model.SlugTopRestaurants, map[string]string{"limit": "2"}, true)

		require.NoError(t, err)
	})

	t.Run("unknown report", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Run(context.Background(), "drop-tables", nil, false)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("invalid parameter", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Run(context.Background(), model.SlugUserBookings, map[string]string{"from": "yesterday"}, false)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, d := newService(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		d.repo.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(gDto.Frame{}, errors.New("syntax error"))

		_, err := svc.Run(context.Background(), model.SlugNightclubDetails, nil, false)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestReportService_Departures(t *testing.T) {
	svc, d := newService(t)

	d.cache.EXPECT().Get(gomock.Any(), "report:flight-details:airport_name=Kumasi+Airport", gomock.Any()).Return(errors.New("miss"))
	d.repo.EXPECT().Run(gomock.Any(), gomock.Any(), map[string]any{"airport_name": "Kumasi Airport"}).Return(airlineFrame(), nil)
	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.Departures(context.Background(), "Kumasi Airport")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"airport_name": "Kumasi Airport"}, res.Params)
}

func TestReportService_Export(t *testing.T) {
	t.Run("uploads csv", func(t *testing.T) {
		svc, d := newService(t)

		d.s3.EXPECT().Enabled().Return(true)
		d.repo.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(airlineFrame(), nil)
		d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		d.s3.EXPECT().UploadFileBytes(gomock.Any(), "travel-reports", "reports/flight-details", gomock.Any(), "text/csv", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, fileName, _ string, data []byte) (string, error) {
				assert.True(t, strings.HasSuffix(fileName, ".csv"))
				assert.Equal(t, "FlightNumber,Price\nAW101,500.00\nAW103,510.00\n", string(data))

				return "https://cdn.example.com/reports/flight-details/" + fileName, nil
			})

		res, err := svc.Export(context.Background(), model.SlugFlightDetails, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, res.Rows)
		assert.True(t, strings.HasPrefix(res.URL, "https://cdn.example.com/reports/flight-details/"))
	})

	t.Run("disabled storage", func(t *testing.T) {
		svc, d := newService(t)

		d.s3.EXPECT().Enabled().Return(false)

		_, err := svc.Export(context.Background(), model.SlugFlightDetails, nil)

		assert.Equal(t, http.StatusNotImplemented, failure.GetCode(err))
		assert.Equal(t, "report export is not configured", err.Error())
	})
}
