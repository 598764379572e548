package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"travel/infras/database"
	"travel/infras/otel"
	"travel/internal/domains/report/model"
	gDto "travel/shared/dto"
	gRepo "travel/shared/repository"
)

type Report interface {
	Run(ctx context.Context, report model.Report, args map[string]any) (gDto.Frame, error)
}

type repositoryImpl struct {
	raw gRepo.Raw
}

func New(db *database.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		raw: gRepo.NewRaw(db, otel),
	}
}

func (r *repositoryImpl) Run(ctx context.Context, report model.Report, args map[string]any) (gDto.Frame, error) {
	return r.raw.Frame(ctx, report.Slug, report.Query(r.raw.Quote), args) //nolint:wrapcheck
}
