package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"upc-extension/vinculacion/internal/api"
	"upc-extension/vinculacion/internal/middleware"
)

// NewRouter assembles the chi router: CORS, request IDs, rate limiting and
// HTTP metrics around every entity's routes.
func NewRouter(deps *api.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Get("/", api.WelcomeHandler)
	r.Get("/healthCheck", api.HealthCheckHandler)

	registerEntityRoutes(r, deps)

	return r
}
