package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	httpAdapter "github.com/chisomo/hospledger/internal/adapter/http"
	"github.com/chisomo/hospledger/internal/adapter/http/handler"
	"github.com/chisomo/hospledger/internal/adapter/http/middleware"
	postgresRepo "github.com/chisomo/hospledger/internal/adapter/repository/postgres"
	redisRepo "github.com/chisomo/hospledger/internal/adapter/repository/redis"
	"github.com/chisomo/hospledger/internal/infrastructure/config"
	"github.com/chisomo/hospledger/internal/infrastructure/logger"
	"github.com/chisomo/hospledger/internal/infrastructure/metrics"
	"github.com/chisomo/hospledger/internal/infrastructure/postgres"
	"github.com/chisomo/hospledger/internal/infrastructure/redis"
	"github.com/chisomo/hospledger/internal/usecase"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

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

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis when the balance cache is enabled
	var redisClient *goredis.Client
	if cfg.CacheEnabled() {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
	} else {
		log.Info().Msg("balance cache disabled, running without redis")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	journalRepo := postgresRepo.NewJournalRepository(pool)
	reportingRepo := postgresRepo.NewReportingRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(log)

	var cache usecase.BalanceCache
	if redisClient != nil {
		cache = redisRepo.NewBalanceCache(redisClient, cfg.BalanceCacheTTL, m)
	}

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo)
	journalUC := usecase.NewJournalUseCase(txManager, journalRepo, accountRepo, idGen, retrier, cache, log)
	balanceUC := usecase.NewBalanceUseCase(reportingRepo, accountRepo, cache, log)
	reportingUC := usecase.NewReportingUseCase(reportingRepo, accountRepo)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC, balanceUC, m)
	journalHandler := handler.NewJournalHandler(journalUC, m)
	reportHandler := handler.NewReportHandler(reportingUC, m)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler: accountHandler,
		JournalHandler: journalHandler,
		ReportHandler:  reportHandler,
		HealthHandler:  healthHandler,
		Logging:        middleware.NewLoggingMiddleware(log),
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
