package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/tickstock/internal/adapter/http/handler"
	"github.com/iho/tickstock/internal/adapter/http/middleware"
	"github.com/iho/tickstock/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CategoryHandler     *handler.CategoryHandler
	CounterpartyHandler *handler.CounterpartyHandler
	StockHandler        *handler.StockHandler
	SaleHandler         *handler.SaleHandler
	RangeHandler        *handler.RangeHandler
	HealthHandler       *handler.HealthHandler
	IdempotencyStore    usecase.IdempotencyStore
	IdempotencyTTL      time.Duration
	RateLimiter         *middleware.RateLimiter
	Logger              zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Range interpretation
		r.Route("/ranges", func(r chi.Router) {
			r.Post("/resolve", cfg.RangeHandler.Resolve)
			r.Post("/preview", cfg.RangeHandler.Preview)
		})

		// Availability probe and summary
		r.Route("/stock", func(r chi.Router) {
			r.Post("/check", cfg.SaleHandler.Check)
			r.Get("/summary", cfg.StockHandler.Summary)
		})

		// Categories
		r.Route("/categories", func(r chi.Router) {
			r.Post("/", cfg.CategoryHandler.Create)
			r.Get("/", cfg.CategoryHandler.List)
			r.Get("/{id}", cfg.CategoryHandler.Get)
			r.Put("/{id}", cfg.CategoryHandler.Update)
			r.Delete("/{id}", cfg.CategoryHandler.Delete)
		})

		// Distributors
		r.Route("/distributors", func(r chi.Router) {
			r.Post("/", cfg.CounterpartyHandler.CreateDistributor)
			r.Get("/", cfg.CounterpartyHandler.ListDistributors)
			r.Get("/{id}", cfg.CounterpartyHandler.GetDistributor)
			r.Delete("/{id}", cfg.CounterpartyHandler.DeleteDistributor)
		})

		// Parties
		r.Route("/parties", func(r chi.Router) {
			r.Post("/", cfg.CounterpartyHandler.CreateParty)
			r.Get("/", cfg.CounterpartyHandler.ListParties)
			r.Get("/{id}", cfg.CounterpartyHandler.GetParty)
			r.Delete("/{id}", cfg.CounterpartyHandler.DeleteParty)
		})

		// Stock entries
		r.Route("/stock-entries", func(r chi.Router) {
			r.Post("/", cfg.StockHandler.Create)
			r.Get("/", cfg.StockHandler.List)
			r.Get("/{id}", cfg.StockHandler.Get)
			r.Put("/{id}", cfg.StockHandler.Update)
			r.Delete("/{id}", cfg.StockHandler.Delete)
		})

		// Sale entries
		r.Route("/sale-entries", func(r chi.Router) {
			r.Post("/", cfg.SaleHandler.Create)
			r.Get("/", cfg.SaleHandler.List)
			r.Get("/{id}", cfg.SaleHandler.Get)
			r.Put("/{id}", cfg.SaleHandler.Update)
			r.Delete("/{id}", cfg.SaleHandler.Delete)
		})
	})

	return r
}
