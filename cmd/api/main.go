package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"listing-automation-service/config"
	httpHandler "listing-automation-service/internal/adapter/http/handler"
	"listing-automation-service/internal/adapter/ledger"
	pgStorage "listing-automation-service/internal/adapter/storage/postgres"
	redisStorage "listing-automation-service/internal/adapter/storage/redis"
	"listing-automation-service/internal/core/ports"
	"listing-automation-service/internal/service"
	"listing-automation-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("listing-automation-service", cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Listing Automation Service")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT secret is required (LAS_JWT_SECRET)")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	jobRepo := pgStorage.NewJobRepo(pool)
	subRepo := pgStorage.NewSubscriptionRepo(pool)
	cfgRepo := pgStorage.NewWebhookConfigRepo(pool)
	dispatchLogRepo := pgStorage.NewDispatchLogRepo(pool)
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	dedupStore := redisStorage.NewDedupStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize external ledger client
	ledgerClient, err := ledger.NewClient(
		cfg.Ledger.APIBase,
		cfg.Ledger.LiveKey,
		cfg.Ledger.TestKey,
		cfg.Ledger.CallTimeout,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize ledger client")
	}

	// Initialize services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	jobSvc := service.NewJobQueueService(jobRepo, subRepo, cfg.Jobs.StaleAfter, log)
	ingestSvc := service.NewPaymentIngestService(paymentRepo, orderRepo, transactor, log)
	dispatchSvc := service.NewDispatchService(
		cfgRepo,
		dispatchLogRepo,
		dedupStore,
		cfg.Dispatch.CallTimeout,
		cfg.Dispatch.DedupTTL,
		cfg.Dispatch.CronAPIBase,
		log,
	)
	reconcileSvc := service.NewReconciliationService(ledgerClient, ingestSvc, log)
	revenueSvc := service.NewRevenueService(paymentRepo, ledgerClient, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		JobSvc:         jobSvc,
		DispatchSvc:    dispatchSvc,
		ReconcileSvc:   reconcileSvc,
		RevenueSvc:     revenueSvc,
		Ingestor:       ingestSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
