package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"shells-ledger/internal/auth"
	"shells-ledger/internal/config"
	"shells-ledger/internal/database"
	"shells-ledger/internal/handler"
	"shells-ledger/internal/jobs"
	"shells-ledger/internal/logger"
	"shells-ledger/internal/notifier"
	"shells-ledger/internal/repository/postgres"
	"shells-ledger/internal/service"
	"shells-ledger/internal/worker"

	zlog "github.com/rs/zerolog/log"

	_ "shells-ledger/docs"
)

// @title Shells Ledger API
// @version 1.0
// @description Points ledger for the Telegram mini-app: balances, promo codes, stakes, purchases, tickets and referrals
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Bootstrap logger until the configured one is available
	log := logger.New(true, "info")

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log = logger.New(cfg.Log.Pretty, cfg.Log.Level)
	zlog.Logger = log

	// Schema first, so the pool never sees an old layout
	version, err := database.MigrateUp(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}
	log.Info().Uint("version", version).Msg("Schema is up to date")

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	entryRepo := postgres.NewEntryRepository(dbPool)
	codeRepo := postgres.NewCodeRepository(dbPool)
	eventRepo := postgres.NewEventRepository(dbPool)
	stakeRepo := postgres.NewStakeRepository(dbPool)
	catalogRepo := postgres.NewCatalogRepository(dbPool)
	purchaseRepo := postgres.NewPurchaseRepository(dbPool)
	ticketRepo := postgres.NewTicketRepository(dbPool)
	referralRepo := postgres.NewReferralRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool, cfg.Database.TxMaxRetries, log)

	adminNotifier := notifier.NewLogNotifier(log)
	reward := service.NewUniformReward(cfg.Ledger.RewardMin, cfg.Ledger.RewardMax)

	// Services
	services := handler.Services{
		Ledger:     service.NewLedgerService(userRepo, entryRepo, txManager, cfg.Ledger, log),
		Redemption: service.NewRedemptionService(userRepo, entryRepo, codeRepo, txManager, reward, log),
		Events:     service.NewEventService(eventRepo, log),
		Stakes:     service.NewStakeService(userRepo, entryRepo, eventRepo, stakeRepo, txManager, log),
		Purchases:  service.NewPurchaseService(userRepo, entryRepo, catalogRepo, purchaseRepo, txManager, adminNotifier, log),
		Tickets:    service.NewTicketService(userRepo, entryRepo, catalogRepo, ticketRepo, txManager, adminNotifier, cfg.Ledger, log),
		Referrals:  service.NewReferralService(userRepo, entryRepo, referralRepo, txManager, cfg.Ledger, log),
		Payments:   service.NewPaymentService(stakeRepo, purchaseRepo, ticketRepo, txManager, cfg.Worker.PendingPaymentTTL, log),
	}

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker for overdue event expiry
	expiryWorker := worker.NewExpiryWorker(services.Events, cfg.Worker.ExpiryInterval, log)
	expiryWorker.Start(ctx)
	defer expiryWorker.Stop()

	// Cron sweep for stars payments that never arrived
	scheduler := jobs.NewScheduler(services.Payments, cfg.Worker.PendingSweepSpec, log)
	if err := scheduler.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}
	defer scheduler.Stop()

	// Rate limiter is disabled when Redis is not configured or unreachable
	redisClient := handler.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if redisClient != nil {
		defer redisClient.Close()
	}
	limiter := handler.NewRateLimiter(redisClient, cfg.Server.RateLimit, cfg.Server.RateWindow)

	// http handler
	h := handler.NewHandler(services, auth.NewAuthenticator(cfg.Auth), cfg.Auth.WebhookSecret, limiter, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
