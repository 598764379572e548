package repository

import (
	"context"
	"fmt"
	"travel/infras/database"
	"travel/infras/otel"
	"travel/shared/constant"
	"travel/shared/dto"
	"travel/shared/logger"
)

// Raw runs hand-written SELECT statements and materialises them as frames.
// Statements must only carry identifiers produced by Connection.Quote; every
// value is a named argument.
type Raw struct {
	db   *database.Connection
	otel otel.Otel
}

func NewRaw(dbConnection *database.Connection, otl otel.Otel) Raw {
	return Raw{db: dbConnection, otel: otl}
}

func (raw *Raw) Quote(identifier string) string {
	return raw.db.Quote(identifier)
}

func (raw *Raw) Driver() string {
	return raw.db.Driver
}

func (raw *Raw) Frame(ctx context.Context, name, query string, args map[string]any) (dto.Frame, error) {
	ctx, scope := raw.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Frame", constant.OtelRepositoryScopeName, name))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if args == nil {
		args = map[string]any{}
	}

	rows, err := raw.db.DB.NamedQueryContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return dto.Frame{}, fmt.Errorf("failed to query frame (%s): %w", name, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		scope.TraceError(err)

		return dto.Frame{}, fmt.Errorf("failed to read columns (%s): %w", name, err)
	}

	frame := dto.NewFrame(columns)

	for rows.Next() {
		row, err := rows.SliceScan()
		if err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return dto.Frame{}, fmt.Errorf("failed to scan frame row (%s): %w", name, err)
		}

		frame.Append(row)
	}

	if err := rows.Err(); err != nil {
		scope.TraceError(err)

		return dto.Frame{}, fmt.Errorf("failed to iterate frame (%s): %w", name, err)
	}

	return frame, nil
}
