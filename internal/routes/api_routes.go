package routes

import (
	"air/atlas/internal/api"
	"air/atlas/internal/config"
	"air/atlas/internal/metrics"
	"air/atlas/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, cfg config.HTTPConfig, deps *api.Dependencies, metricsReg *metrics.MetricsRegistry) {
	limiter := middleware.NewRateLimiter(cfg)

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.InFlightMiddleware(metricsReg, "api_v1"))
		v1.Use(limiter.Middleware)

		v1.Post("/register", api.RegisterFlightHandler(deps.Services.Registration))
		v1.Get("/fetch/{id}", api.FetchFlightPathHandler(deps.Services.FlightPaths))
		v1.Get("/reload/{id}", api.ReloadFlightPathHandler(deps.Repo.FlightRefs, deps.Workers.Refresh))
	})
}
