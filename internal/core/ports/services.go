package ports

import (
	"context"
	"time"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
)

// HashService handles operator password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT operator/tenant bearer tokens.
type TokenService interface {
	Generate(tenantID uuid.UUID, operatorID uuid.UUID, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims for an authenticated operator.
type TokenClaims struct {
	TenantID   uuid.UUID
	OperatorID uuid.UUID
	Role       string
}

// IdempotencyCache is the Redis-layer fast path in front of the
// idempotency-record table (C3).
type IdempotencyCache interface {
	Get(ctx context.Context, tenantID uuid.UUID, key string) ([]byte, error)
	Set(ctx context.Context, tenantID uuid.UUID, key string, value []byte, ttl time.Duration) error
}

// ProcessorReplayGuard enforces the webhook timestamp-tolerance window by
// rejecting signatures whose (tenant, t, v1) tuple has already been
// consumed, independent of the WebhookRecord uniqueness check.
type ProcessorReplayGuard interface {
	CheckAndSet(ctx context.Context, tenantID uuid.UUID, signatureDigest string, ttl time.Duration) (bool, error)
}

// AuthService defines tenant-operator authentication business logic. It
// is ambient infrastructure the REST surface needs, not an AR domain
// component in its own right.
type AuthService interface {
	Login(ctx context.Context, tenantSlug, username, password string) (string, time.Time, error)
}

// CustomerService owns customer lifecycle and delinquency bookkeeping.
type CustomerService interface {
	CreateCustomer(ctx context.Context, tenantID uuid.UUID, req CreateCustomerRequest) (*domain.Customer, error)
	GetCustomer(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Customer, error)
	ListCustomers(ctx context.Context, tenantID uuid.UUID, params CustomerListParams) ([]domain.Customer, int64, error)
	RecomputeAging(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, asOf time.Time) error
	SoftDeleteCustomer(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) error
}

// CreateCustomerRequest holds validated input for customer creation.
type CreateCustomerRequest struct {
	ExternalRef string
	Email       string
	DisplayName string
}

// PaymentMethodService owns processor payment-method token storage.
type PaymentMethodService interface {
	AttachPaymentMethod(ctx context.Context, tenantID uuid.UUID, req AttachPaymentMethodRequest) (*domain.PaymentMethodRef, error)
	SetDefaultPaymentMethod(ctx context.Context, tenantID uuid.UUID, customerID, id uuid.UUID) error
	SoftDeletePaymentMethod(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) error
}

// AttachPaymentMethodRequest holds validated input for storing an opaque
// processor payment-method token. Raw card/bank data must never reach
// this boundary; the PCI guard middleware rejects it upstream.
type AttachPaymentMethodRequest struct {
	CustomerID      uuid.UUID
	ProcessorToken  string
	Type            string
	Last4           string
	Brand           string
	ExpiryMonth     int
	ExpiryYear      int
	MakeDefault     bool
}

// InvoiceService owns invoice lifecycle and issuance.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, tenantID uuid.UUID, req CreateInvoiceRequest) (*domain.Invoice, error)
	IssueInvoice(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Invoice, error)
	VoidInvoice(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, reason string) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, tenantID uuid.UUID, params InvoiceListParams) ([]domain.Invoice, int64, error)
	WriteOffInvoice(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, memo string) (*domain.Invoice, error)
}

// CreateInvoiceRequest holds validated input for invoice creation.
type CreateInvoiceRequest struct {
	CustomerID          uuid.UUID
	LineItems           []domain.LineItem
	Currency            string
	BillingPeriodStart  time.Time
	BillingPeriodEnd    time.Time
	DueAt               time.Time
}

// ChargeService owns outbound charge attempts against the processor.
type ChargeService interface {
	ChargeInvoice(ctx context.Context, tenantID uuid.UUID, req ChargeInvoiceRequest) (*domain.Charge, error)
	ApplyPayment(ctx context.Context, tenantID uuid.UUID, req ApplyPaymentRequest) (*domain.PaymentApplication, error)
}

// ChargeInvoiceRequest holds validated input for an attempted charge.
type ChargeInvoiceRequest struct {
	InvoiceID       uuid.UUID
	PaymentMethodID uuid.UUID
	ReferenceID     string
}

// ApplyPaymentRequest holds validated input for allocating a settled
// charge against one or more open invoices.
type ApplyPaymentRequest struct {
	ChargeID     uuid.UUID
	InvoiceID    uuid.UUID
	AmountCents  int64
	Allocation   domain.AllocationType
}

// RefundService owns refund issuance and ledger reversal.
type RefundService interface {
	RefundCharge(ctx context.Context, tenantID uuid.UUID, req RefundChargeRequest) (*domain.Refund, error)
}

// RefundChargeRequest holds validated input for a refund request.
type RefundChargeRequest struct {
	ChargeID    uuid.UUID
	AmountCents int64
	ReferenceID string
	Reason      string
}

// SubscriptionService owns the subscription mirror and reports how many
// subscriptions are due for a period-boundary invoice; it creates no
// invoices itself.
type SubscriptionService interface {
	SyncSubscription(ctx context.Context, tenantID uuid.UUID, sub *domain.Subscription) error
	GenerateDueInvoices(ctx context.Context, asOf time.Time) (int, error)
}

// LedgerService owns posting ledger events and propagating balance deltas
// to the owning customer within the same transaction.
type LedgerService interface {
	PostEvent(ctx context.Context, tenantID uuid.UUID, req PostLedgerEventRequest) (*domain.LedgerEvent, error)
	GetCustomerHistory(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID, limit int) ([]domain.LedgerEvent, error)
}

// PostLedgerEventRequest holds validated input for a ledger posting.
type PostLedgerEventRequest struct {
	CustomerID       uuid.UUID
	InvoiceID        *uuid.UUID
	EventType        domain.LedgerEventType
	AmountDeltaCents int64
	SourceEventID    string
}

// WebhookIngestService owns inbound processor webhook verification,
// dedupe, and dispatch to the appropriate domain handler.
type WebhookIngestService interface {
	// Ingest returns duplicate=true when the event had already been
	// recorded, without treating that as an error.
	Ingest(ctx context.Context, tenantID uuid.UUID, rawBody []byte, signatureHeader string) (duplicate bool, err error)
	RetryDue(ctx context.Context, asOf time.Time) (int, error)
}

// GLPostingService owns emitting balanced journal intents to the external
// GL service and tracking accept/reject outcomes.
type GLPostingService interface {
	Enqueue(ctx context.Context, tenantID uuid.UUID, event *domain.LedgerEvent) error
	RetryDue(ctx context.Context, asOf time.Time) (int, error)
}

// ReconciliationService owns periodic snapshot-diff runs against the
// processor. It never mutates ledger state; it only reports divergences.
type ReconciliationService interface {
	RunReconciliation(ctx context.Context, tenantID uuid.UUID, window time.Duration) (*domain.ReconciliationRun, error)
	ListUnresolved(ctx context.Context, tenantID uuid.UUID) ([]domain.ReconciliationDivergence, error)
}

// PaymentRetryService drives the dunning state machine (§4.7): it records
// failed payment attempts against a customer's retry counter, transitions
// delinquency state, and sweeps the backoff ladder forward on schedule.
type PaymentRetryService interface {
	RecordFailure(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID, failedAt time.Time) error
	RetryDue(ctx context.Context, asOf time.Time) (int, error)
}

// AuditService records audited actions, fire-and-forget, independent of
// the request path that triggered them.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
