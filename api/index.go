package handler

import (
	"net/http"
	"os"
	"sync"
	"travel/config"
	"travel/di"
	"travel/shared/logger"
	travelHTTP "travel/transport/http"
)

var (
	server *travelHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The server is built on the first
// request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLoggerFor(cfg, os.Stdout)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.Handler().ServeHTTP(w, r)
}
