package main

import (
	"os"
	"travel/config"
	"travel/di"
	"travel/shared/logger"
)

// @title Travel Management API
// @version 1.0
// @description Browse the travel tables, run the canned reports and manage bookings.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLoggerFor(cfg, os.Stdout)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
