package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Table=MockTableService

import (
	"context"
	"fmt"
	"slices"
	"travel/infras/otel"
	"travel/internal/domains/table/model"
	"travel/internal/domains/table/model/dto"
	"travel/internal/domains/table/repository"
	"travel/shared/constant"
	gDto "travel/shared/dto"
	"travel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Table interface {
	Tables(ctx context.Context) dto.GetTablesResponse
	Browse(ctx context.Context, name string, params gDto.QueryParams) (dto.BrowseTableResponse, error)
}

type serviceImpl struct {
	repo repository.Table
	otel otel.Otel
}

func New(repo repository.Table, otel otel.Otel) Table {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Tables(_ context.Context) dto.GetTablesResponse {
	return dto.GetTablesResponse{Tables: slices.Clone(model.Tables)}
}

func (s *serviceImpl) Browse(ctx context.Context, name string, params gDto.QueryParams) (res dto.BrowseTableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Browse")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !model.Allowed(name) {
		return res, failure.UnknownTable
	}

	frame, err := s.repo.Browse(ctx, name, params)
	if err != nil {
		log.Error().Err(err).Str("table", name).Msg("failed to browse table")

		return res, fmt.Errorf("failed to browse table %s: %w", name, err)
	}

	res = dto.BrowseTableResponse{Table: name, Frame: frame}
	if params.Limit > 0 {
		res.Page, res.Limit = params.Page, params.Limit
	}

	return res, nil
}
