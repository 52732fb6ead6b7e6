package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/cashflow/internal/adapter/http"
	"github.com/iho/cashflow/internal/adapter/http/handler"
	"github.com/iho/cashflow/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/cashflow/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/cashflow/internal/adapter/repository/redis"
	"github.com/iho/cashflow/internal/infrastructure/config"
	"github.com/iho/cashflow/internal/infrastructure/logger"
	"github.com/iho/cashflow/internal/infrastructure/metrics"
	"github.com/iho/cashflow/internal/infrastructure/postgres"
	"github.com/iho/cashflow/internal/infrastructure/redis"
	"github.com/iho/cashflow/internal/usecase"
)

const (
	poolStatsInterval   = 15 * time.Second
	limiterCleanupEvery = 10 * time.Minute
	limiterMaxIdle      = time.Hour
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger
	zerolog.DefaultContextLogger = &appLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	settingsRepo := postgresRepo.NewSettingsRepository(pool)
	retrier := postgresRepo.NewRetrier(appLogger).OnRetry(m.DBRetries.Inc)
	ledgerReader := postgresRepo.NewLedgerReader(entryRepo, categoryRepo, settingsRepo, retrier, m, cfg.DefaultCurrency).
		WithSnapshots(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient, m)

	// Initialize use cases
	dashboardUC := usecase.NewDashboardUseCase(ledgerReader, m, appLogger)
	entryUC := usecase.NewEntryUseCase(txManager, entryRepo, categoryRepo).WithObserver(m)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, cfg.DefaultCurrency)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)

	rateLimiter := newRateLimiter(cfg, m.RateLimitHits)
	if rateLimiter != nil {
		go rateLimiter.RunCleanup(ctx, limiterCleanupEvery, limiterMaxIdle)
	}
	go reportPoolStats(ctx, poolStatsInterval, func() int32 { return pool.Stat().AcquiredConns() }, m.DBConnections)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		DashboardHandler: handler.NewDashboardHandler(dashboardUC),
		EntryHandler:     handler.NewEntryHandler(entryUC),
		SettingsHandler:  handler.NewSettingsHandler(settingsUC),
		CategoryHandler:  handler.NewCategoryHandler(categoryUC),
		HealthHandler:    handler.NewHealthHandler(pool, idempotencyStore),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      rateLimiter,
		Metrics:          m,
		InFlight:         m.HTTPInFlight,
		MetricsHandler:   promhttp.Handler(),
		Logger:           appLogger,
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
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// newRateLimiter builds the per-IP limiter, or nil when rate limiting is
// disabled.
func newRateLimiter(cfg *config.Config, rejected prometheus.Counter) *middleware.RateLimiter {
	if cfg.RateLimitRPS <= 0 {
		return nil
	}

	burst := cfg.RateLimitBurst
	if burst < 1 {
		burst = 1
	}

	return middleware.NewRateLimiter(cfg.RateLimitRPS, burst).OnReject(rejected.Inc)
}

// reportPoolStats copies the acquired connection count into gauge every
// interval until ctx is done.
func reportPoolStats(ctx context.Context, interval time.Duration, acquired func() int32, gauge prometheus.Gauge) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		gauge.Set(float64(acquired()))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
