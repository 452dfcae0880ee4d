package handler

import (
	"crypto-casino-core/internal/adapter/http/middleware"
	redisStore "crypto-casino-core/internal/adapter/storage/redis"
	"crypto-casino-core/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	LedgerSvc      ports.LedgerService
	FairnessSvc    ports.FairnessService
	SettlementSvc  ports.SettlementService
	KillSwitchSvc  ports.KillSwitchService
	PoolSvc        ports.PoolService
	AlertSvc       ports.AlertService
	SettingsSvc    ports.SettingsService
	AuditSvc       ports.AuditService
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
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (verifies PostgreSQL and Redis)
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

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	v1.POST("/sessions", rl("session_start"), authHandler.StartSession)
	v1.POST("/auth/operator/login", rl("auth_login"), authHandler.OperatorLogin)

	// --- Player routes (session JWT) ---
	sessionAuth := middleware.SessionAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.LedgerSvc, deps.SettlementSvc)
	fairnessHandler := NewFairnessHandler(deps.FairnessSvc)

	wallet := v1.Group("/wallet", sessionAuth)
	{
		wallet.GET("/balance", rl("wallet"), walletHandler.GetBalance)
		wallet.GET("/transactions", rl("wallet"), walletHandler.ListTransactions)
	}

	fairness := v1.Group("/fairness", sessionAuth)
	{
		fairness.GET("", rl("fairness"), fairnessHandler.GetState)
		fairness.PUT("/client-seed", rl("fairness"), fairnessHandler.SetClientSeed)
		fairness.POST("/rotate", rl("fairness"), fairnessHandler.RotateSeed)
	}

	v1.POST("/wagers", sessionAuth, rl("wager"), fairnessHandler.ResolveWager)

	withdrawals := v1.Group("/withdrawals", sessionAuth)
	{
		withdrawals.POST("", rl("withdrawals"), walletHandler.RequestWithdrawal)
		withdrawals.GET("/:id", rl("withdrawals"), walletHandler.GetWithdrawal)
		withdrawals.POST("/:id/poll", rl("withdrawals"), walletHandler.PollWithdrawal)
		withdrawals.POST("/:id/requeue", rl("withdrawals"), walletHandler.RequeueWithdrawal)
	}

	// --- Operator routes (operator JWT) ---
	operatorAuth := middleware.OperatorAuth(deps.TokenSvc, deps.Logger)
	adminHandler := NewAdminHandler(deps.SettlementSvc, deps.KillSwitchSvc, deps.PoolSvc, deps.AlertSvc, deps.SettingsSvc, deps.AuditSvc)

	admin := v1.Group("/admin", operatorAuth, rl("admin"))
	{
		admin.POST("/withdrawals/:id/approve", adminHandler.ApproveWithdrawal)
		admin.POST("/withdrawals/:id/reject", adminHandler.RejectWithdrawal)
		admin.GET("/killswitch", adminHandler.GetKillSwitch)
		admin.PUT("/killswitch", adminHandler.SetKillSwitch)
		admin.GET("/pool/health", adminHandler.GetPoolHealth)
		admin.POST("/alerts/run", adminHandler.RunAlerts)
		admin.PUT("/settings", adminHandler.UpdateSetting)
		admin.GET("/audit", adminHandler.ListAudit)
	}

	return r
}
