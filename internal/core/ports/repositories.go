package ports

import (
	"context"
	"errors"
	"time"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrDuplicateEvent is returned by WebhookRecordRepository.Create when
// (tenant_id, event_id) already exists, so callers across layers can
// check it with errors.Is without importing a concrete adapter.
var ErrDuplicateEvent = errors.New("ports: webhook event already recorded")

// TenantRepository defines persistence operations for tenants.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	ListActive(ctx context.Context) ([]domain.Tenant, error)
}

// OperatorRepository defines tenant-scoped persistence for the operator
// accounts that authenticate against the REST surface.
type OperatorRepository interface {
	Create(ctx context.Context, operator *domain.Operator) error
	GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Operator, error)
	GetByUsername(ctx context.Context, tenantID uuid.UUID, username string) (*domain.Operator, error)
}

// CustomerRepository defines tenant-scoped persistence for customers.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking; lock order is customer -> subscription -> invoice
// -> charge -> refund (spec §5).
type CustomerRepository interface {
	Create(ctx context.Context, tenantID uuid.UUID, customer *domain.Customer) error
	GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Customer, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID) (*domain.Customer, error)
	UpdateAging(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID, aging domain.AgingBuckets, balanceCents int64) error
	UpdateDelinquency(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID, state domain.DelinquencyState, retryCount int, nextRetryAt *time.Time, graceEnd *time.Time) error
	SoftDelete(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, params CustomerListParams) ([]domain.Customer, int64, error)
	// ListDueForRetry returns customers (cross-tenant) whose NextRetryAt has
	// elapsed, for the dunning sweep in PaymentRetryService.RetryDue.
	ListDueForRetry(ctx context.Context, asOf time.Time, limit int) ([]domain.Customer, error)
}

// CustomerListParams holds filter + pagination for listing customers.
type CustomerListParams struct {
	Delinquency *domain.DelinquencyState
	Page        int
	PageSize    int
}

// PaymentMethodRepository defines tenant-scoped persistence for stored
// processor payment method references.
type PaymentMethodRepository interface {
	Create(ctx context.Context, tenantID uuid.UUID, pm *domain.PaymentMethodRef) error
	GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.PaymentMethodRef, error)
	GetDefaultForCustomer(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID) (*domain.PaymentMethodRef, error)
	ListForCustomer(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID) ([]domain.PaymentMethodRef, error)
	SetDefault(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, customerID uuid.UUID, id uuid.UUID) error
	UpdateStatus(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID, status domain.PaymentMethodStatus) error
}

// InvoiceRepository defines tenant-scoped persistence for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, invoice *domain.Invoice) error
	GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Invoice, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID, status domain.InvoiceStatus, paidAt *time.Time, voidedAt *time.Time) error
	ListOpenForCustomer(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID) ([]domain.Invoice, error)
	ListPastDue(ctx context.Context, tenantID uuid.UUID, asOf time.Time) ([]domain.Invoice, error)
	List(ctx context.Context, tenantID uuid.UUID, params InvoiceListParams) ([]domain.Invoice, int64, error)
}

// InvoiceListParams holds filter + pagination for listing invoices.
type InvoiceListParams struct {
	CustomerID *uuid.UUID
	Status     *domain.InvoiceStatus
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

// PaymentApplicationRepository defines tenant-scoped persistence for
// payment-to-invoice allocations.
type PaymentApplicationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, app *domain.PaymentApplication) error
	ListForInvoice(ctx context.Context, tenantID uuid.UUID, invoiceID uuid.UUID) ([]domain.PaymentApplication, error)
	ListForCharge(ctx context.Context, tenantID uuid.UUID, chargeID uuid.UUID) ([]domain.PaymentApplication, error)
}

// ChargeRepository defines tenant-scoped persistence for processor charges.
type ChargeRepository interface {
	Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, charge *domain.Charge) error
	GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Charge, error)
	GetByReference(ctx context.Context, tenantID uuid.UUID, referenceID string) (*domain.Charge, error)
	GetByProcessorChargeID(ctx context.Context, tenantID uuid.UUID, processorChargeID string) (*domain.Charge, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID, status domain.ChargeStatus, processorChargeID string, failureCode, failureMessage string) error
	// ListCreatedSince returns charges created at or after since, used by
	// reconciliation to build the local side of the processor diff.
	ListCreatedSince(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]domain.Charge, error)
}

// RefundRepository defines tenant-scoped persistence for refunds.
type RefundRepository interface {
	Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, refund *domain.Refund) error
	GetByReference(ctx context.Context, tenantID uuid.UUID, referenceID string) (*domain.Refund, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID, status domain.RefundStatus, processorRefundID string) error
}

// DisputeRepository defines tenant-scoped persistence for disputes.
type DisputeRepository interface {
	Upsert(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, dispute *domain.Dispute) error
	GetByProcessorDisputeID(ctx context.Context, tenantID uuid.UUID, processorDisputeID string) (*domain.Dispute, error)
}

// CreditMemoRepository defines tenant-scoped persistence for credit memos.
type CreditMemoRepository interface {
	Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, memo *domain.CreditMemo) error
	ListForCustomer(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID) ([]domain.CreditMemo, error)
}

// LedgerEventRepository defines append-only persistence for ledger events.
// Create must enforce uniqueness on SourceEventID within the tenant so
// replayed processor events are absorbed rather than double-posted.
type LedgerEventRepository interface {
	Create(ctx context.Context, tx pgx.Tx, event *domain.LedgerEvent) error
	ExistsBySourceEventID(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, sourceEventID string) (bool, error)
	ListForCustomer(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID, limit int) ([]domain.LedgerEvent, error)
}

// WebhookRecordRepository defines persistence for inbound processor
// webhook ingestion records. Create must surface a unique-violation error
// on (tenant, event_id) distinguishably so the caller can short-circuit
// as an idempotent replay before attempting signature verification.
type WebhookRecordRepository interface {
	Create(ctx context.Context, record *domain.WebhookRecord) error
	GetByEventID(ctx context.Context, tenantID uuid.UUID, eventID string) (*domain.WebhookRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.WebhookRecordStatus, errMsg string) error
	ScheduleRetry(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time, attemptCount int) error
	MarkDead(ctx context.Context, id uuid.UUID, deadAt time.Time) error
	ListDueForRetry(ctx context.Context, asOf time.Time, limit int) ([]domain.WebhookRecord, error)
}

// IdempotencyRepository defines persistence for the HTTP idempotency-key
// layer (DB source of truth; redis is a read-through cache in front of it).
type IdempotencyRepository interface {
	Create(ctx context.Context, record *domain.IdempotencyRecord) error
	Get(ctx context.Context, tenantID uuid.UUID, key string) (*domain.IdempotencyRecord, error)
}

// GLPostingQueueRepository defines persistence for the GL posting outbox.
type GLPostingQueueRepository interface {
	Enqueue(ctx context.Context, tx pgx.Tx, entry *domain.GLPostingQueueEntry) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.GLQueueStatus, reason string) error
	ScheduleRetry(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time, attemptCount int) error
	ListDueForRetry(ctx context.Context, asOf time.Time, limit int) ([]domain.GLPostingQueueEntry, error)
}

// SubscriptionRepository defines tenant-scoped persistence for
// subscription mirrors.
type SubscriptionRepository interface {
	Upsert(ctx context.Context, tenantID uuid.UUID, sub *domain.Subscription) error
	GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Subscription, error)
	ListDueForInvoicing(ctx context.Context, asOf time.Time) ([]domain.Subscription, error)
}

// ReconciliationRepository defines persistence for reconciliation runs and
// the divergences they surface.
type ReconciliationRepository interface {
	CreateRun(ctx context.Context, run *domain.ReconciliationRun) error
	CompleteRun(ctx context.Context, id uuid.UUID, status domain.ReconciliationRunStatus, divergenceCount int, completedAt time.Time) error
	CreateDivergence(ctx context.Context, divergence *domain.ReconciliationDivergence) error
	ListUnresolvedDivergences(ctx context.Context, tenantID uuid.UUID) ([]domain.ReconciliationDivergence, error)
}

// AuditRepository defines persistence for audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
