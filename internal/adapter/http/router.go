package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/iho/cashflow/internal/adapter/http/handler"
	"github.com/iho/cashflow/internal/adapter/http/middleware"
	"github.com/iho/cashflow/internal/usecase"
)

// RouterConfig holds dependencies for the router. Metrics, MetricsHandler,
// RateLimiter and IdempotencyStore are optional.
type RouterConfig struct {
	DashboardHandler *handler.DashboardHandler
	EntryHandler     *handler.EntryHandler
	SettingsHandler  *handler.SettingsHandler
	CategoryHandler  *handler.CategoryHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	Metrics          middleware.HTTPObserver
	InFlight         prometheus.Gauge
	MetricsHandler   http.Handler
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID(cfg.Logger))
	r.Use(middleware.Recovery)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(chimiddleware.CleanPath)
	if cfg.Metrics != nil && cfg.InFlight != nil {
		r.Use(middleware.Metrics(cfg.Metrics, cfg.InFlight))
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Get("/dashboard", cfg.DashboardHandler.Get)
		r.Get("/categories", cfg.CategoryHandler.List)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", cfg.SettingsHandler.Get)
			r.Put("/", cfg.SettingsHandler.Update)
		})

		r.Route("/entries/{year}/{month}", func(r chi.Router) {
			r.Put("/", cfg.EntryHandler.SaveMonth)
			r.Delete("/", cfg.EntryHandler.ClearMonth)
			r.Post("/copy-budgets", cfg.EntryHandler.CopyBudgets)
		})
	})

	return r
}
