package handler

import (
	"time"

	"ar-engine/internal/adapter/http/middleware"
	redisStore "ar-engine/internal/adapter/storage/redis"
	"ar-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// idempotencyKeyTTL bounds how long a cached HTTP idempotency response
// stays replayable, matching the retry window a client is expected to
// use when resubmitting a write it's unsure succeeded.
const idempotencyKeyTTL = 24 * time.Hour

// RouterDeps collects every dependency SetupRouter needs to wire the
// full REST surface.
type RouterDeps struct {
	AuthSvc           ports.AuthService
	TokenSvc          ports.TokenService
	TenantRepo        ports.TenantRepository
	CustomerSvc       ports.CustomerService
	PaymentMethodSvc  ports.PaymentMethodService
	InvoiceSvc        ports.InvoiceService
	ChargeSvc         ports.ChargeService
	RefundSvc         ports.RefundService
	SubscriptionSvc   ports.SubscriptionService
	LedgerSvc         ports.LedgerService
	WebhookSvc        ports.WebhookIngestService
	ReconciliationSvc ports.ReconciliationService
	AuditSvc          ports.AuditService
	RateLimitStore    *redisStore.RateLimitStore
	IdempotencyCache  ports.IdempotencyCache
	IdempotencyRepo   ports.IdempotencyRepository
	HealthCheckers    []ports.HealthChecker
	Logger            zerolog.Logger
}

// SetupRouter builds the full Gin engine: global middleware, auth, and
// every AR-domain route group with its rate limit and PCI guard applied.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MiB
	r.Use(middleware.PCIGuard())
	r.Use(middleware.AuditLog(deps.AuditSvc))

	rules := middleware.DefaultRateLimitRules()

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/swagger/spec", SwaggerSpec)
	r.GET("/swagger", SwaggerUI)

	authHandler := NewAuthHandler(deps.AuthSvc)
	r.POST("/auth/login",
		middleware.RateLimiter(deps.RateLimitStore, "auth_login", rules["auth_login"], deps.Logger),
		authHandler.Login)

	webhookHandler := NewWebhookHandler(deps.WebhookSvc, deps.TenantRepo)
	r.POST("/webhooks/:tenant_slug",
		middleware.RateLimiter(deps.RateLimitStore, "webhooks", rules["webhooks"], deps.Logger),
		webhookHandler.Ingest)

	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuth(deps.TokenSvc, deps.Logger))
	if deps.IdempotencyCache != nil && deps.IdempotencyRepo != nil {
		authorized.Use(middleware.IdempotencyKey(deps.IdempotencyCache, deps.IdempotencyRepo, idempotencyKeyTTL, deps.Logger))
	}

	customerHandler := NewCustomerHandler(deps.CustomerSvc)
	paymentMethodHandler := NewPaymentMethodHandler(deps.PaymentMethodSvc)
	customers := authorized.Group("/customers")
	customers.Use(middleware.RateLimiter(deps.RateLimitStore, "invoices", rules["invoices"], deps.Logger))
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.DELETE("/:id", customerHandler.SoftDeleteCustomer)
		customers.GET("/:id/ledger", NewLedgerHandler(deps.LedgerSvc).GetCustomerHistory)
		customers.POST("/:customer_id/payment-methods/:id/default", paymentMethodHandler.SetDefaultPaymentMethod)
	}

	paymentMethods := authorized.Group("/payment-methods")
	paymentMethods.Use(middleware.RateLimiter(deps.RateLimitStore, "payment_methods", rules["payment_methods"], deps.Logger))
	{
		paymentMethods.POST("", paymentMethodHandler.AttachPaymentMethod)
		paymentMethods.DELETE("/:id", paymentMethodHandler.SoftDeletePaymentMethod)
	}

	invoiceHandler := NewInvoiceHandler(deps.InvoiceSvc)
	invoices := authorized.Group("/invoices")
	invoices.Use(middleware.RateLimiter(deps.RateLimitStore, "invoices", rules["invoices"], deps.Logger))
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.POST("/:id/issue", invoiceHandler.IssueInvoice)
		invoices.POST("/:id/void", invoiceHandler.VoidInvoice)
		invoices.POST("/:id/write-off", invoiceHandler.WriteOffInvoice)
	}

	chargeHandler := NewChargeHandler(deps.ChargeSvc)
	charges := authorized.Group("/charges")
	charges.Use(middleware.RateLimiter(deps.RateLimitStore, "charges", rules["charges"], deps.Logger))
	{
		charges.POST("", chargeHandler.ChargeInvoice)
	}

	paymentApplications := authorized.Group("/payment-applications")
	paymentApplications.Use(middleware.RateLimiter(deps.RateLimitStore, "charges", rules["charges"], deps.Logger))
	{
		paymentApplications.POST("", chargeHandler.ApplyPayment)
	}

	refundHandler := NewRefundHandler(deps.RefundSvc)
	refunds := authorized.Group("/refunds")
	refunds.Use(middleware.RateLimiter(deps.RateLimitStore, "refunds", rules["refunds"], deps.Logger))
	{
		refunds.POST("", refundHandler.RefundCharge)
	}

	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionSvc)
	subscriptions := authorized.Group("/subscriptions")
	subscriptions.Use(middleware.RateLimiter(deps.RateLimitStore, "subscriptions", rules["subscriptions"], deps.Logger))
	{
		subscriptions.POST("/sync", subscriptionHandler.SyncSubscription)
	}

	reconciliationHandler := NewReconciliationHandler(deps.ReconciliationSvc)
	reconciliation := authorized.Group("/reconciliation")
	reconciliation.Use(middleware.RateLimiter(deps.RateLimitStore, "reports", rules["reports"], deps.Logger))
	{
		reconciliation.POST("/run", reconciliationHandler.RunReconciliation)
		reconciliation.GET("/divergences", reconciliationHandler.ListUnresolvedDivergences)
	}

	return r
}
