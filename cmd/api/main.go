package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ar-engine/config"
	httpHandler "ar-engine/internal/adapter/http/handler"
	"ar-engine/internal/adapter/glclient"
	"ar-engine/internal/adapter/processor/memoryclient"
	"ar-engine/internal/adapter/processor/stripeclient"
	pgStorage "ar-engine/internal/adapter/storage/postgres"
	redisStorage "ar-engine/internal/adapter/storage/redis"
	"ar-engine/internal/core/ports"
	"ar-engine/internal/service"
	"ar-engine/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(2)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting AR Engine")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	tenantRepo := pgStorage.NewTenantRepo(pool)
	operatorRepo := pgStorage.NewOperatorRepo(pool)
	customerRepo := pgStorage.NewCustomerRepo(pool)
	paymentMethodRepo := pgStorage.NewPaymentMethodRepo(pool)
	invoiceRepo := pgStorage.NewInvoiceRepo(pool)
	chargeRepo := pgStorage.NewChargeRepo(pool)
	refundRepo := pgStorage.NewRefundRepo(pool)
	paymentAppRepo := pgStorage.NewPaymentApplicationRepo(pool)
	subscriptionRepo := pgStorage.NewSubscriptionRepo(pool)
	ledgerEventRepo := pgStorage.NewLedgerEventRepo(pool)
	webhookRecordRepo := pgStorage.NewWebhookRecordRepo(pool)
	glPostingRepo := pgStorage.NewGLPostingRepo(pool)
	reconciliationRepo := pgStorage.NewReconciliationRepo(pool)
	disputeRepo := pgStorage.NewDisputeRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis-backed ambient infrastructure
	replayGuard := redisStorage.NewReplayGuard(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)

	// Ambient services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(tenantRepo, operatorRepo, hashSvc, tokenSvc)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Processor client factory: sandbox/test deployments use the
	// in-memory fixture processor, everything else talks to Stripe.
	var processorFactory ports.ProcessorClientFactory
	if cfg.Processor.Sandbox {
		processorFactory = memoryclient.NewFactory(cfg.JWT.Secret)
	} else {
		processorFactory = stripeclient.NewFactory(cfg)
	}

	glPublisher := glclient.New(cfg.GL.BaseURL, &http.Client{Timeout: cfg.GL.Timeout})

	// Domain services
	ledgerSvc := service.NewLedgerService(transactor, ledgerEventRepo, customerRepo, log)
	glSvc := service.NewGLPostingService(transactor, glPostingRepo, glPublisher, log)
	customerSvc := service.NewCustomerService(transactor, customerRepo, invoiceRepo, log)
	paymentMethodSvc := service.NewPaymentMethodService(transactor, paymentMethodRepo, tenantRepo, processorFactory, log)
	creditMemoRepo := pgStorage.NewCreditMemoRepo(pool)
	invoiceSvc := service.NewInvoiceService(transactor, invoiceRepo, paymentAppRepo, creditMemoRepo, ledgerSvc, glSvc, log)
	chargeSvc := service.NewChargeService(transactor, tenantRepo, invoiceRepo, chargeRepo, paymentMethodRepo, paymentAppRepo, processorFactory, ledgerSvc, glSvc, log)
	refundSvc := service.NewRefundService(transactor, tenantRepo, chargeRepo, refundRepo, processorFactory, ledgerSvc, glSvc, log)
	subscriptionSvc := service.NewSubscriptionService(subscriptionRepo, log)
	paymentRetrySvc := service.NewPaymentRetryService(transactor, customerRepo, log)
	webhookSvc := service.NewWebhookIngestService(transactor, tenantRepo, webhookRecordRepo, chargeRepo, disputeRepo, processorFactory, replayGuard, ledgerSvc, glSvc, paymentRetrySvc, log)
	reconciliationSvc := service.NewReconciliationService(reconciliationRepo, chargeRepo, tenantRepo, processorFactory, log)

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:           authSvc,
		TokenSvc:          tokenSvc,
		TenantRepo:        tenantRepo,
		CustomerSvc:       customerSvc,
		PaymentMethodSvc:  paymentMethodSvc,
		InvoiceSvc:        invoiceSvc,
		ChargeSvc:         chargeSvc,
		RefundSvc:         refundSvc,
		SubscriptionSvc:   subscriptionSvc,
		LedgerSvc:         ledgerSvc,
		WebhookSvc:        webhookSvc,
		ReconciliationSvc: reconciliationSvc,
		AuditSvc:          auditSvc,
		RateLimitStore:    rateLimitStore,
		IdempotencyCache:  idempotencyCache,
		IdempotencyRepo:   idempotencyRepo,
		HealthCheckers:    []ports.HealthChecker{pgHealth, redisHealth},
		Logger:            log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	stopBackground := startBackgroundWorkers(ctx, webhookSvc, paymentRetrySvc, glSvc, reconciliationSvc, tenantRepo, subscriptionSvc, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	close(stopBackground)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
