package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chisomo/hospledger/internal/adapter/http/handler"
	"github.com/chisomo/hospledger/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler *handler.AccountHandler
	JournalHandler *handler.JournalHandler
	ReportHandler  *handler.ReportHandler
	HealthHandler  *handler.HealthHandler
	Logging        *middleware.LoggingMiddleware
	RateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{code}", cfg.AccountHandler.Get)
			r.Post("/{code}/deactivate", cfg.AccountHandler.Deactivate)
			r.Post("/{code}/reactivate", cfg.AccountHandler.Reactivate)
			r.Get("/{code}/balance", cfg.AccountHandler.GetBalance)
			r.Get("/{code}/journal-entries", cfg.JournalHandler.ListByAccount)
		})

		// Journal entries
		r.Route("/journal-entries", func(r chi.Router) {
			r.Post("/", cfg.JournalHandler.Create)
			r.Get("/", cfg.JournalHandler.List)
			r.Get("/{id}", cfg.JournalHandler.Get)
			r.Put("/{id}", cfg.JournalHandler.Update)
			r.Post("/{id}/post", cfg.JournalHandler.Post)
			r.Post("/{id}/reverse", cfg.JournalHandler.Reverse)
		})

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/trial-balance", cfg.ReportHandler.TrialBalance)
			r.Get("/income-statement", cfg.ReportHandler.IncomeStatement)
			r.Get("/balance-sheet", cfg.ReportHandler.BalanceSheet)
		})
	})

	return r
}
