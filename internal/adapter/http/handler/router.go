package handler

import (
	"listing-automation-service/internal/adapter/http/middleware"
	redisStore "listing-automation-service/internal/adapter/storage/redis"
	"listing-automation-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	JobSvc         ports.JobQueueService
	DispatchSvc    ports.DispatchService
	ReconcileSvc   ports.ReconciliationService
	RevenueSvc     ports.RevenueService
	Ingestor       ports.PaymentIngestor
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Ledger push events (called by the external ledger, no JWT) ---
	ledgerHandler := NewLedgerHandler(deps.Ingestor)
	v1.POST("/ledger/events", rl("ledger_events"), ledgerHandler.HandleEvent)

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	jobHandler := NewJobHandler(deps.JobSvc)
	jobs := v1.Group("/jobs", jwtAuth)
	{
		jobs.POST("/claim", rl("jobs"), jobHandler.Claim)
		jobs.POST("/report", rl("jobs"), jobHandler.Report)
	}

	adminHandler := NewAdminHandler(deps.DispatchSvc, deps.ReconcileSvc, deps.RevenueSvc)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/webhooks", rl("admin"), adminHandler.CreateWebhook)
		admin.GET("/webhooks", rl("admin"), adminHandler.ListWebhooks)
		admin.PUT("/webhooks/:id", rl("admin"), adminHandler.UpdateWebhook)
		admin.DELETE("/webhooks/:id", rl("admin"), adminHandler.DeleteWebhook)
		admin.POST("/dispatch/run", rl("admin"), adminHandler.RunDispatch)
		admin.POST("/dispatch/sync", rl("admin"), adminHandler.SyncDispatch)
		admin.GET("/dispatch/logs", rl("admin"), adminHandler.DispatchLogs)
		admin.POST("/reconcile", rl("reconcile"), adminHandler.Reconcile)
		admin.GET("/revenue", rl("admin"), adminHandler.Revenue)
	}

	return r
}
