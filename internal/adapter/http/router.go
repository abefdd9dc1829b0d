package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/pocketledger/internal/adapter/http/handler"
	"github.com/iho/pocketledger/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	RecordHandler *handler.RecordHandler
	LedgerHandler *handler.LedgerHandler
	HealthHandler *handler.HealthHandler
	Logger        zerolog.Logger
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
	// MetricsHandler serves /metrics; defaults to promhttp.Handler().
	MetricsHandler http.Handler
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewRecovery(cfg.Logger))
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		r.Route("/records", func(r chi.Router) {
			r.Post("/", cfg.RecordHandler.Create)
			r.Get("/", cfg.RecordHandler.List)
			r.Delete("/{position}", cfg.RecordHandler.Delete)
		})

		r.Get("/balance", cfg.RecordHandler.Balance)
		r.Get("/summary", cfg.RecordHandler.Summary)
		r.Get("/check", cfg.RecordHandler.Check)

		r.Route("/ledger", func(r chi.Router) {
			r.Post("/save", cfg.LedgerHandler.Save)
			r.Post("/load", cfg.LedgerHandler.Load)
		})
	})

	return r
}
