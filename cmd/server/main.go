package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/iho/tickstock/internal/adapter/http"
	"github.com/iho/tickstock/internal/adapter/http/handler"
	"github.com/iho/tickstock/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/tickstock/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/tickstock/internal/adapter/repository/redis"
	"github.com/iho/tickstock/internal/infrastructure/config"
	"github.com/iho/tickstock/internal/infrastructure/logger"
	"github.com/iho/tickstock/internal/infrastructure/metrics"
	"github.com/iho/tickstock/internal/infrastructure/postgres"
	"github.com/iho/tickstock/internal/infrastructure/redis"
	"github.com/iho/tickstock/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations when a path is configured
	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	retrier := postgresRepo.NewRetrier()
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	distributorRepo := postgresRepo.NewDistributorRepository(pool)
	partyRepo := postgresRepo.NewPartyRepository(pool)
	stockRepo := postgresRepo.NewStockEntryRepository(pool)
	saleRepo := postgresRepo.NewSaleEntryRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	appMetrics := metrics.New()

	// Initialize use cases
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, idGen, cache)
	counterpartyUC := usecase.NewCounterpartyUseCase(distributorRepo, partyRepo, idGen)
	stockUC := usecase.NewStockUseCase(txManager, categoryRepo, distributorRepo, stockRepo, saleRepo, idGen)
	saleUC := usecase.NewSaleUseCase(txManager, retrier, categoryRepo, partyRepo, stockRepo, saleRepo, idGen, appMetrics)
	rangeUC := usecase.NewRangeUseCase(categoryRepo)

	// Initialize handlers
	categoryHandler := handler.NewCategoryHandler(categoryUC)
	counterpartyHandler := handler.NewCounterpartyHandler(counterpartyUC)
	stockHandler := handler.NewStockHandler(stockUC)
	saleHandler := handler.NewSaleHandler(saleUC)
	rangeHandler := handler.NewRangeHandler(rangeUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			rateLimiter.Cleanup(time.Hour)
		}
	}()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CategoryHandler:     categoryHandler,
		CounterpartyHandler: counterpartyHandler,
		StockHandler:        stockHandler,
		SaleHandler:         saleHandler,
		RangeHandler:        rangeHandler,
		HealthHandler:       healthHandler,
		IdempotencyStore:    idempotencyStore,
		IdempotencyTTL:      cfg.IdempotencyTTL,
		RateLimiter:         rateLimiter,
		Logger:              log,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
