package tui

import (
	"travel/config"
	"travel/infras/kafka"
	"travel/infras/otel"
	bookingService "travel/internal/domains/booking/service"
	catalogService "travel/internal/domains/catalog/service"
	reportService "travel/internal/domains/report/service"
	tableService "travel/internal/domains/table/service"
	userService "travel/internal/domains/user/service"
)

// Services are the domain services every console page talks to.
type Services struct {
	Table   tableService.Table
	Report  reportService.Report
	User    userService.User
	Catalog catalogService.Catalog
	Booking bookingService.Booking
}

// Console bundles what the terminal front end needs: the services plus the
// event stream for the events command.
type Console struct {
	Config   *config.Config
	Otel     otel.Otel
	Kafka    kafka.Client
	Services Services
}

func New(cfg *config.Config, otl otel.Otel, kafka kafka.Client, services Services) *Console {
	return &Console{
		Config:   cfg,
		Otel:     otl,
		Kafka:    kafka,
		Services: services,
	}
}
