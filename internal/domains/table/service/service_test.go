package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"travel/infras/database/databasetest"
	"travel/infras/otel/mocks"
	tableMocks "travel/internal/domains/table/mocks"
	"travel/internal/domains/table/repository"
	"travel/internal/domains/table/service"
	gDto "travel/shared/dto"
	"travel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTableService_Tables(t *testing.T) {
	svc := service.New(nil, mocks.NewOtel())

	res := svc.Tables(context.Background())

	assert.Len(t, res.Tables, 11)
	assert.Equal(t, "User", res.Tables[0])
	assert.Equal(t, "Dish", res.Tables[10])
}

func TestTableService_BrowseRejectsUnknownTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(tableMocks.NewMockTable(ctrl), mocks.NewOtel())

	for _, name := range []string{"Users", "user", "Booking; DROP TABLE User", ""} {
		_, err := svc.Browse(context.Background(), name, gDto.QueryParams{})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err), name)
		assert.Equal(t, "unknown table", err.Error())
	}
}

func TestTableService_BrowseRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := tableMocks.NewMockTable(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	repo.EXPECT().Browse(gomock.Any(), "Flight", gomock.Any()).Return(gDto.Frame{}, errors.New("connection refused"))

	_, err := svc.Browse(context.Background(), "Flight", gDto.QueryParams{})

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestTableService_BrowseSQLite(t *testing.T) {
	svc := service.New(repository.New(databasetest.NewSeeded(t), mocks.NewOtel()), mocks.NewOtel())

	t.Run("whole table", func(t *testing.T) {
		res, err := svc.Browse(context.Background(), "Region", gDto.QueryParams{})

		require.NoError(t, err)
		assert.Equal(t, []string{"RegionID", "RegionName"}, res.Columns)
		assert.Equal(t, [][]string{{"1", "Greater Accra"}, {"2", "Ashanti"}, {"3", "Volta"}}, res.Strings())
		assert.Zero(t, res.Limit)
	})

	t.Run("paginated", func(t *testing.T) {
		res, err := svc.Browse(context.Background(), "Dish", gDto.QueryParams{Page: 2, Limit: 3})

		require.NoError(t, err)
		require.Equal(t, 1, res.Len())
		assert.Equal(t, "Fufu", res.Strings()[0][1])
		assert.Equal(t, 2, res.Page)
	})

	t.Run("reserved word table", func(t *testing.T) {
		res, err := svc.Browse(context.Background(), "User", gDto.QueryParams{})

		require.NoError(t, err)
		assert.Equal(t, 3, res.Len())
	})

	t.Run("empty table keeps columns", func(t *testing.T) {
		res, err := svc.Browse(context.Background(), "Booking", gDto.QueryParams{})

		require.NoError(t, err)
		assert.True(t, res.Empty())
		assert.Equal(t, []string{"BookingID", "UserID", "BookingDate", "TotalCost"}, res.Columns)
	})
}
