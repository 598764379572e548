package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"travel/infras/database"
	"travel/infras/otel"
	gDto "travel/shared/dto"
	gRepo "travel/shared/repository"
)

type Table interface {
	Browse(ctx context.Context, name string, params gDto.QueryParams) (gDto.Frame, error)
}

type repositoryImpl struct {
	raw gRepo.Raw
}

func New(db *database.Connection, otel otel.Otel) Table {
	return &repositoryImpl{
		raw: gRepo.NewRaw(db, otel),
	}
}

// Browse selects every column of name. The caller must have checked name
// against the whitelist; it is quoted, never bound.
func (r *repositoryImpl) Browse(ctx context.Context, name string, params gDto.QueryParams) (gDto.Frame, error) {
	query := "SELECT * FROM " + r.raw.Quote(name)
	args := map[string]any{}

	if params.Limit > 0 {
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = params.Limit
		args["offset"] = params.Offset()
	}

	return r.raw.Frame(ctx, fmt.Sprintf("table.%s", name), query, args) //nolint:wrapcheck
}
