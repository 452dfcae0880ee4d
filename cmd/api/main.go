package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto-casino-core/config"
	"crypto-casino-core/internal/adapter/chain"
	httpHandler "crypto-casino-core/internal/adapter/http/handler"
	pgStorage "crypto-casino-core/internal/adapter/storage/postgres"
	redisStorage "crypto-casino-core/internal/adapter/storage/redis"
	"crypto-casino-core/internal/core/domain"
	"crypto-casino-core/internal/core/ports"
	"crypto-casino-core/internal/service"
	"crypto-casino-core/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("fairness_mode", cfg.Core.FairnessMode).
		Int("port", cfg.Server.Port).
		Msg("Starting Crypto Casino Core")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
	balanceRepo := pgStorage.NewBalanceRepo(pool)
	journalRepo := pgStorage.NewLedgerTxRepo(pool)
	fairnessRepo := pgStorage.NewFairnessRepo(pool)
	withdrawalRepo := pgStorage.NewWithdrawalRepo(pool)
	killSwitchRepo := pgStorage.NewKillSwitchRepo(pool)
	settingsRepo := pgStorage.NewSettingsRepo(pool)
	operatorRepo := pgStorage.NewOperatorRepo(pool)
	auditRepo := pgStorage.NewAdminAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	idemCache := redisStorage.NewIdempotencyCache(rdb)
	settingsCache := redisStorage.NewSettingsCache(rdb)
	refillLock := redisStorage.NewRefillLock(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize blockchain node client
	chainClient := chain.NewClient(cfg.Chain.NodeURL, cfg.Chain.Timeout)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.PlayerExpiry, cfg.JWT.OperatorExpiry, cfg.JWT.Issuer)

	// Initialize business services
	auditSvc := service.NewAuditService(auditRepo, log)
	settingsSvc := service.NewSettingsService(settingsRepo, settingsCache, service.SettingsDefaults{
		PoolFloor:          cfg.Core.PoolFloor,
		LossLimit:          cfg.Core.LossLimit,
		SessionDurationCap: cfg.Core.SessionDurationCap,
		ApprovalThreshold:  cfg.Core.ApprovalThreshold,
		WithdrawalFee:      cfg.Core.WithdrawalFee,
		FeeStep:            cfg.Core.FeeStep,
		MaxSendAttempts:    cfg.Core.MaxSendAttempts,
	}, log)
	killSwitchSvc := service.NewKillSwitchService(killSwitchRepo, auditSvc, log)
	ledgerSvc := service.NewLedgerService(balanceRepo, journalRepo, settingsSvc, transactor, log)
	fairnessSvc := service.NewFairnessService(
		fairnessRepo, ledgerSvc, killSwitchSvc, chainClient, encSvc, transactor,
		service.FairnessConfig{
			Mode:           domain.FairnessMode(cfg.Core.FairnessMode),
			FundingAddress: cfg.Chain.FundingAddress,
			AnchorAmount:   cfg.Core.AnchorAmount,
			AnchorFee:      cfg.Core.AnchorFee,
			SeedTTL:        cfg.Core.SeedTTL,
		},
		log,
	)
	poolSvc := service.NewPoolService(fairnessRepo, fairnessSvc, settingsSvc, chainClient, refillLock, cfg.Core.PoolRefillInterval, log)
	settlementSvc := service.NewSettlementService(
		withdrawalRepo, balanceRepo, journalRepo, killSwitchSvc, settingsSvc,
		chainClient, idemCache, auditSvc, transactor,
		service.SettlementConfig{
			FundingAddress: cfg.Chain.FundingAddress,
			SendTimeout:    cfg.Core.SendTimeout,
			PollBatchSize:  cfg.Core.PollBatchSize,
		},
		log,
	)
	alertSvc := service.NewAlertService(withdrawalRepo, balanceRepo, poolSvc, chainClient, service.AlertConfig{
		WebhookURL:       cfg.Core.AlertWebhookURL,
		FundingAddress:   cfg.Chain.FundingAddress,
		MinConfirmations: cfg.Chain.MinConfirmations,
	}, log)
	authSvc := service.NewAuthService(operatorRepo, ledgerSvc, hashSvc, tokenSvc, cfg.Core.DemoSeed, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Background loops: pool refill, settlement polling, reconciliation.
	go poolSvc.Run(ctx)
	go runSettlementPoller(ctx, settlementSvc, cfg.Core.PollInterval, log)
	go runAlertLoop(ctx, alertSvc, cfg.Core.AlertInterval, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		FairnessSvc:    fairnessSvc,
		SettlementSvc:  settlementSvc,
		KillSwitchSvc:  killSwitchSvc,
		PoolSvc:        poolSvc,
		AlertSvc:       alertSvc,
		SettingsSvc:    settingsSvc,
		AuditSvc:       auditSvc,
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

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// runSettlementPoller advances all broadcast withdrawals on a fixed cadence.
func runSettlementPoller(ctx context.Context, svc ports.SettlementService, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := svc.PollOnce(ctx); err != nil {
				log.Warn().Err(err).Msg("settlement poll cycle failed")
			}
		}
	}
}

// runAlertLoop runs the reconciliation monitors on a fixed cadence.
func runAlertLoop(ctx context.Context, svc ports.AlertService, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.RunChecks(ctx); err != nil {
				log.Warn().Err(err).Msg("alert cycle failed")
			}
		}
	}
}
