//go:build wireinject
// +build wireinject

package di

import (
	"travel/config"
	"travel/infras/database"
	"travel/infras/kafka"
	"travel/infras/otel"
	"travel/infras/redis"
	"travel/infras/s3"
	"travel/shared/cache"
	"travel/transport/http"
	"travel/transport/http/middleware"
	"travel/transport/http/router"
	"travel/transport/tui"

	bookingRepository "travel/internal/domains/booking/repository"
	bookingService "travel/internal/domains/booking/service"
	catalogRepository "travel/internal/domains/catalog/repository"
	catalogService "travel/internal/domains/catalog/service"
	reportRepository "travel/internal/domains/report/repository"
	reportService "travel/internal/domains/report/service"
	tableRepository "travel/internal/domains/table/repository"
	tableService "travel/internal/domains/table/service"
	userRepository "travel/internal/domains/user/repository"
	userService "travel/internal/domains/user/service"

	bookingHandler "travel/internal/handlers/booking"
	catalogHandler "travel/internal/handlers/catalog"
	pageHandler "travel/internal/handlers/page"
	reportHandler "travel/internal/handlers/report"
	tableHandler "travel/internal/handlers/table"
	userHandler "travel/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	tableDomain,
	reportDomain,
	userDomain,
	catalogDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	pageHandler.New,
	tableHandler.New,
	reportHandler.New,
	userHandler.New,
	catalogHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeConsole() *tui.Console {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		wire.Struct(new(tui.Services), "*"),
		tui.New,
	)

	return &tui.Console{}
}
