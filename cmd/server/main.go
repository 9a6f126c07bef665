package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"upc-extension/vinculacion/internal/api"
	"upc-extension/vinculacion/internal/config"
	"upc-extension/vinculacion/internal/db"
	"upc-extension/vinculacion/internal/logging"
	"upc-extension/vinculacion/internal/metrics"
	"upc-extension/vinculacion/internal/middleware"
	"upc-extension/vinculacion/internal/routes"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		panic(err)
	}
	defer func() { _ = logging.Close() }()

	logging.Info("starting vinculación backend", "env", cfg.AppEnv, "port", cfg.HTTPPort)

	if err := db.InitPostgres(cfg.DSN()); err != nil {
		logging.Error("failed to connect to postgres (sqlx)", "error", err)
		panic(err)
	}

	orm, err := db.InitPostgresORM(cfg.DSN())
	if err != nil {
		logging.Error("failed to connect to postgres (gorm)", "error", err)
		panic(err)
	}
	if err := db.Migrate(orm); err != nil {
		logging.Error("failed to run migrations", "error", err)
		panic(err)
	}

	middleware.ConfigureRateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	reg := metrics.NewMetricsRegistry()
	if err := db.Instrument(orm, reg); err != nil {
		logging.Error("failed to instrument database", "error", err)
		panic(err)
	}

	deps := api.NewDependencies(orm, reg)
	router := routes.NewRouter(deps)

	// Metrics stay outside the API router so they skip CORS and rate
	// limiting.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logging.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logging.Error("server stopped", "error", err)
		panic(err)
	}
}
