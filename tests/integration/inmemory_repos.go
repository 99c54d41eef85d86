package integration

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// errDuplicateIdempotencyKey mirrors postgres.ErrDuplicateIdempotencyKey
// for the in-memory fake without importing the postgres adapter package.
var errDuplicateIdempotencyKey = errors.New("integration: idempotency key already recorded")

// --- In-Memory Tenant Repo ---

type inMemoryTenantRepo struct {
	mu      sync.RWMutex
	tenants map[uuid.UUID]*domain.Tenant
}

func newInMemoryTenantRepo() *inMemoryTenantRepo {
	return &inMemoryTenantRepo{tenants: make(map[uuid.UUID]*domain.Tenant)}
}

func (r *inMemoryTenantRepo) Create(ctx context.Context, t *domain.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.tenants {
		if existing.Slug == t.Slug {
			return fmt.Errorf("slug already exists")
		}
	}
	r.tenants[t.ID] = t
	return nil
}

func (r *inMemoryTenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tenants[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (r *inMemoryTenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tenants {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTenantRepo) ListActive(ctx context.Context) ([]domain.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Tenant
	for _, t := range r.tenants {
		if t.IsActive() {
			out = append(out, *t)
		}
	}
	return out, nil
}

// --- In-Memory Operator Repo ---

type inMemoryOperatorRepo struct {
	mu        sync.RWMutex
	operators map[uuid.UUID]*domain.Operator
}

func newInMemoryOperatorRepo() *inMemoryOperatorRepo {
	return &inMemoryOperatorRepo{operators: make(map[uuid.UUID]*domain.Operator)}
}

func (r *inMemoryOperatorRepo) Create(ctx context.Context, o *domain.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operators[o.ID] = o
	return nil
}

func (r *inMemoryOperatorRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.operators[id]
	if !ok || o.TenantID != tenantID {
		return nil, nil
	}
	return o, nil
}

func (r *inMemoryOperatorRepo) GetByUsername(ctx context.Context, tenantID uuid.UUID, username string) (*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.operators {
		if o.TenantID == tenantID && o.Username == username {
			return o, nil
		}
	}
	return nil, nil
}

// --- In-Memory Customer Repo ---

type inMemoryCustomerRepo struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]*domain.Customer
}

func newInMemoryCustomerRepo() *inMemoryCustomerRepo {
	return &inMemoryCustomerRepo{customers: make(map[uuid.UUID]*domain.Customer)}
}

func (r *inMemoryCustomerRepo) Create(ctx context.Context, tenantID uuid.UUID, c *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[c.ID] = c
	return nil
}

func (r *inMemoryCustomerRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok || c.TenantID != tenantID {
		return nil, nil
	}
	return c, nil
}

func (r *inMemoryCustomerRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, id uuid.UUID) (*domain.Customer, error) {
	return r.GetByID(ctx, tenantID, id)
}

func (r *inMemoryCustomerRepo) UpdateAging(ctx context.Context, tx pgx.Tx, tenantID, id uuid.UUID, aging domain.AgingBuckets, balanceCents int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok || c.TenantID != tenantID {
		return fmt.Errorf("customer not found")
	}
	c.Aging = aging
	c.ARBalanceCents = balanceCents
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryCustomerRepo) UpdateDelinquency(ctx context.Context, tx pgx.Tx, tenantID, id uuid.UUID, state domain.DelinquencyState, retryCount int, nextRetryAt *time.Time, graceEnd *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok || c.TenantID != tenantID {
		return fmt.Errorf("customer not found")
	}
	c.Delinquency = state
	c.RetryCount = retryCount
	c.NextRetryAt = nextRetryAt
	c.GracePeriodEnd = graceEnd
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryCustomerRepo) ListDueForRetry(ctx context.Context, asOf time.Time, limit int) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Customer
	for _, c := range r.customers {
		switch c.Delinquency {
		case domain.DelinquencyDelinquent:
			if c.NextRetryAt != nil && !c.NextRetryAt.After(asOf) {
				out = append(out, *c)
			}
		case domain.DelinquencyGrace:
			if c.GracePeriodEnd != nil && !c.GracePeriodEnd.After(asOf) {
				out = append(out, *c)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryCustomerRepo) SoftDelete(ctx context.Context, tenantID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok || c.TenantID != tenantID {
		return fmt.Errorf("customer not found")
	}
	now := time.Now().UTC()
	c.DeletedAt = &now
	return nil
}

func (r *inMemoryCustomerRepo) List(ctx context.Context, tenantID uuid.UUID, params ports.CustomerListParams) ([]domain.Customer, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []domain.Customer
	for _, c := range r.customers {
		if c.TenantID != tenantID || c.IsDeleted() {
			continue
		}
		if params.Delinquency != nil && c.Delinquency != *params.Delinquency {
			continue
		}
		matched = append(matched, *c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) })
	total := int64(len(matched))

	page, pageSize := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []domain.Customer{}, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// --- In-Memory Payment Method Repo ---

type inMemoryPaymentMethodRepo struct {
	mu      sync.RWMutex
	methods map[uuid.UUID]*domain.PaymentMethodRef
}

func newInMemoryPaymentMethodRepo() *inMemoryPaymentMethodRepo {
	return &inMemoryPaymentMethodRepo{methods: make(map[uuid.UUID]*domain.PaymentMethodRef)}
}

func (r *inMemoryPaymentMethodRepo) Create(ctx context.Context, tenantID uuid.UUID, pm *domain.PaymentMethodRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.methods[pm.ID] = pm
	return nil
}

func (r *inMemoryPaymentMethodRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentMethodRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pm, ok := r.methods[id]
	if !ok || pm.TenantID != tenantID {
		return nil, nil
	}
	return pm, nil
}

func (r *inMemoryPaymentMethodRepo) GetDefaultForCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*domain.PaymentMethodRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, pm := range r.methods {
		if pm.TenantID == tenantID && pm.CustomerID == customerID && pm.IsDefault {
			return pm, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPaymentMethodRepo) ListForCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]domain.PaymentMethodRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PaymentMethodRef
	for _, pm := range r.methods {
		if pm.TenantID == tenantID && pm.CustomerID == customerID {
			out = append(out, *pm)
		}
	}
	return out, nil
}

func (r *inMemoryPaymentMethodRepo) SetDefault(ctx context.Context, tx pgx.Tx, tenantID, customerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	target, ok := r.methods[id]
	if !ok || target.TenantID != tenantID || target.CustomerID != customerID {
		return fmt.Errorf("payment method not found")
	}
	for _, pm := range r.methods {
		if pm.TenantID == tenantID && pm.CustomerID == customerID {
			pm.IsDefault = pm.ID == id
		}
	}
	return nil
}

func (r *inMemoryPaymentMethodRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, tenantID, id uuid.UUID, status domain.PaymentMethodStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pm, ok := r.methods[id]
	if !ok || pm.TenantID != tenantID {
		return fmt.Errorf("payment method not found")
	}
	pm.Status = status
	pm.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Invoice Repo ---

type inMemoryInvoiceRepo struct {
	mu       sync.RWMutex
	invoices map[uuid.UUID]*domain.Invoice
}

func newInMemoryInvoiceRepo() *inMemoryInvoiceRepo {
	return &inMemoryInvoiceRepo{invoices: make(map[uuid.UUID]*domain.Invoice)}
}

func (r *inMemoryInvoiceRepo) Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, inv *domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices[inv.ID] = inv
	return nil
}

func (r *inMemoryInvoiceRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.invoices[id]
	if !ok || inv.TenantID != tenantID {
		return nil, nil
	}
	return inv, nil
}

func (r *inMemoryInvoiceRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, id uuid.UUID) (*domain.Invoice, error) {
	return r.GetByID(ctx, tenantID, id)
}

func (r *inMemoryInvoiceRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, tenantID, id uuid.UUID, status domain.InvoiceStatus, paidAt, voidedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok || inv.TenantID != tenantID {
		return fmt.Errorf("invoice not found")
	}
	inv.Status = status
	if paidAt != nil {
		inv.PaidAt = paidAt
	}
	if voidedAt != nil {
		inv.VoidedAt = voidedAt
	}
	inv.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryInvoiceRepo) ListOpenForCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Invoice
	for _, inv := range r.invoices {
		if inv.TenantID == tenantID && inv.CustomerID == customerID && !inv.Status.IsTerminal() {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *inMemoryInvoiceRepo) ListPastDue(ctx context.Context, tenantID uuid.UUID, asOf time.Time) ([]domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Invoice
	for _, inv := range r.invoices {
		if inv.TenantID == tenantID && inv.DaysPastDue(asOf) > 0 {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *inMemoryInvoiceRepo) List(ctx context.Context, tenantID uuid.UUID, params ports.InvoiceListParams) ([]domain.Invoice, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []domain.Invoice
	for _, inv := range r.invoices {
		if inv.TenantID != tenantID {
			continue
		}
		if params.CustomerID != nil && inv.CustomerID != *params.CustomerID {
			continue
		}
		if params.Status != nil && inv.Status != *params.Status {
			continue
		}
		matched = append(matched, *inv)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) })
	total := int64(len(matched))

	page, pageSize := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []domain.Invoice{}, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// --- In-Memory Payment Application Repo ---

type inMemoryPaymentApplicationRepo struct {
	mu   sync.RWMutex
	apps map[uuid.UUID]*domain.PaymentApplication
}

func newInMemoryPaymentApplicationRepo() *inMemoryPaymentApplicationRepo {
	return &inMemoryPaymentApplicationRepo{apps: make(map[uuid.UUID]*domain.PaymentApplication)}
}

func (r *inMemoryPaymentApplicationRepo) Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, app *domain.PaymentApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app.ID] = app
	return nil
}

func (r *inMemoryPaymentApplicationRepo) ListForInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.PaymentApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PaymentApplication
	for _, a := range r.apps {
		if a.TenantID == tenantID && a.InvoiceID == invoiceID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *inMemoryPaymentApplicationRepo) ListForCharge(ctx context.Context, tenantID, chargeID uuid.UUID) ([]domain.PaymentApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.PaymentApplication
	for _, a := range r.apps {
		if a.TenantID == tenantID && a.ChargeID == chargeID {
			out = append(out, *a)
		}
	}
	return out, nil
}

// --- In-Memory Charge Repo ---

type inMemoryChargeRepo struct {
	mu      sync.RWMutex
	charges map[uuid.UUID]*domain.Charge
}

func newInMemoryChargeRepo() *inMemoryChargeRepo {
	return &inMemoryChargeRepo{charges: make(map[uuid.UUID]*domain.Charge)}
}

func (r *inMemoryChargeRepo) Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, c *domain.Charge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.charges {
		if existing.TenantID == tenantID && existing.ReferenceID == c.ReferenceID {
			return fmt.Errorf("reference_id already exists")
		}
	}
	r.charges[c.ID] = c
	return nil
}

func (r *inMemoryChargeRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Charge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.charges[id]
	if !ok || c.TenantID != tenantID {
		return nil, nil
	}
	return c, nil
}

func (r *inMemoryChargeRepo) ListCreatedSince(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]domain.Charge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Charge
	for _, c := range r.charges {
		if c.TenantID == tenantID && !c.CreatedAt.Before(since) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryChargeRepo) GetByReference(ctx context.Context, tenantID uuid.UUID, referenceID string) (*domain.Charge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.charges {
		if c.TenantID == tenantID && c.ReferenceID == referenceID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *inMemoryChargeRepo) GetByProcessorChargeID(ctx context.Context, tenantID uuid.UUID, processorChargeID string) (*domain.Charge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.charges {
		if c.TenantID == tenantID && c.ProcessorChargeID == processorChargeID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *inMemoryChargeRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, tenantID, id uuid.UUID, status domain.ChargeStatus, processorChargeID string, failureCode, failureMessage string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.charges[id]
	if !ok || c.TenantID != tenantID {
		return fmt.Errorf("charge not found")
	}
	c.Status = status
	if processorChargeID != "" {
		c.ProcessorChargeID = processorChargeID
	}
	c.FailureCode = failureCode
	c.FailureMessage = failureMessage
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Refund Repo ---

type inMemoryRefundRepo struct {
	mu      sync.RWMutex
	refunds map[uuid.UUID]*domain.Refund
}

func newInMemoryRefundRepo() *inMemoryRefundRepo {
	return &inMemoryRefundRepo{refunds: make(map[uuid.UUID]*domain.Refund)}
}

func (r *inMemoryRefundRepo) Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, rf *domain.Refund) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.refunds {
		if existing.TenantID == tenantID && existing.ReferenceID == rf.ReferenceID {
			return fmt.Errorf("reference_id already exists")
		}
	}
	r.refunds[rf.ID] = rf
	return nil
}

func (r *inMemoryRefundRepo) GetByReference(ctx context.Context, tenantID uuid.UUID, referenceID string) (*domain.Refund, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rf := range r.refunds {
		if rf.TenantID == tenantID && rf.ReferenceID == referenceID {
			return rf, nil
		}
	}
	return nil, nil
}

func (r *inMemoryRefundRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, tenantID, id uuid.UUID, status domain.RefundStatus, processorRefundID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rf, ok := r.refunds[id]
	if !ok || rf.TenantID != tenantID {
		return fmt.Errorf("refund not found")
	}
	rf.Status = status
	if processorRefundID != "" {
		rf.ProcessorRefundID = processorRefundID
	}
	return nil
}

// --- In-Memory Ledger Event Repo ---

type inMemoryLedgerEventRepo struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*domain.LedgerEvent
}

func newInMemoryLedgerEventRepo() *inMemoryLedgerEventRepo {
	return &inMemoryLedgerEventRepo{events: make(map[uuid.UUID]*domain.LedgerEvent)}
}

func (r *inMemoryLedgerEventRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.LedgerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.events {
		if existing.TenantID == e.TenantID && existing.SourceEventID == e.SourceEventID {
			return fmt.Errorf("source_event_id already posted")
		}
	}
	r.events[e.ID] = e
	return nil
}

func (r *inMemoryLedgerEventRepo) ExistsBySourceEventID(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, sourceEventID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.events {
		if e.TenantID == tenantID && e.SourceEventID == sourceEventID {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryLedgerEventRepo) ListForCustomer(ctx context.Context, tenantID, customerID uuid.UUID, limit int) ([]domain.LedgerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LedgerEvent
	for _, e := range r.events {
		if e.TenantID == tenantID && e.CustomerID == customerID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Webhook Record Repo ---

type inMemoryWebhookRecordRepo struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*domain.WebhookRecord
}

func newInMemoryWebhookRecordRepo() *inMemoryWebhookRecordRepo {
	return &inMemoryWebhookRecordRepo{records: make(map[uuid.UUID]*domain.WebhookRecord)}
}

func (r *inMemoryWebhookRecordRepo) Create(ctx context.Context, rec *domain.WebhookRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.TenantID == rec.TenantID && existing.EventID == rec.EventID {
			return ports.ErrDuplicateEvent
		}
	}
	r.records[rec.ID] = rec
	return nil
}

func (r *inMemoryWebhookRecordRepo) GetByEventID(ctx context.Context, tenantID uuid.UUID, eventID string) (*domain.WebhookRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.TenantID == tenantID && rec.EventID == eventID {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWebhookRecordRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.WebhookRecordStatus, errMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return fmt.Errorf("webhook record not found")
	}
	rec.Status = status
	rec.Error = errMsg
	rec.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryWebhookRecordRepo) ScheduleRetry(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time, attemptCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return fmt.Errorf("webhook record not found")
	}
	rec.NextAttemptAt = &nextAttemptAt
	rec.AttemptCount = attemptCount
	rec.Status = domain.WebhookFailed
	return nil
}

func (r *inMemoryWebhookRecordRepo) MarkDead(ctx context.Context, id uuid.UUID, deadAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return fmt.Errorf("webhook record not found")
	}
	rec.DeadAt = &deadAt
	return nil
}

func (r *inMemoryWebhookRecordRepo) ListDueForRetry(ctx context.Context, asOf time.Time, limit int) ([]domain.WebhookRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.WebhookRecord
	for _, rec := range r.records {
		if rec.DeadAt != nil || rec.NextAttemptAt == nil {
			continue
		}
		if rec.NextAttemptAt.After(asOf) {
			continue
		}
		out = append(out, *rec)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// --- In-Memory GL Posting Queue Repo ---

type inMemoryGLPostingQueueRepo struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*domain.GLPostingQueueEntry
}

func newInMemoryGLPostingQueueRepo() *inMemoryGLPostingQueueRepo {
	return &inMemoryGLPostingQueueRepo{entries: make(map[uuid.UUID]*domain.GLPostingQueueEntry)}
}

func (r *inMemoryGLPostingQueueRepo) Enqueue(ctx context.Context, tx pgx.Tx, e *domain.GLPostingQueueEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.ID] = e
	return nil
}

func (r *inMemoryGLPostingQueueRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.GLQueueStatus, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("gl posting entry not found")
	}
	e.Status = status
	e.Reason = reason
	e.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryGLPostingQueueRepo) ScheduleRetry(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time, attemptCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("gl posting entry not found")
	}
	e.NextAttemptAt = &nextAttemptAt
	e.AttemptCount = attemptCount
	return nil
}

func (r *inMemoryGLPostingQueueRepo) ListDueForRetry(ctx context.Context, asOf time.Time, limit int) ([]domain.GLPostingQueueEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.GLPostingQueueEntry
	for _, e := range r.entries {
		if e.Status == domain.GLQueueAccepted || e.Status == domain.GLQueueRejected || e.NextAttemptAt == nil {
			continue
		}
		if e.NextAttemptAt.After(asOf) {
			continue
		}
		out = append(out, *e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// --- In-Memory Subscription Repo ---

type inMemorySubscriptionRepo struct {
	mu            sync.RWMutex
	subscriptions map[uuid.UUID]*domain.Subscription
}

func newInMemorySubscriptionRepo() *inMemorySubscriptionRepo {
	return &inMemorySubscriptionRepo{subscriptions: make(map[uuid.UUID]*domain.Subscription)}
}

func (r *inMemorySubscriptionRepo) Upsert(ctx context.Context, tenantID uuid.UUID, sub *domain.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscriptions[sub.ID] = sub
	return nil
}

func (r *inMemorySubscriptionRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.subscriptions[id]
	if !ok || s.TenantID != tenantID {
		return nil, nil
	}
	return s, nil
}

func (r *inMemorySubscriptionRepo) ListDueForInvoicing(ctx context.Context, asOf time.Time) ([]domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Subscription
	for _, s := range r.subscriptions {
		if s.IsActive() && !s.CurrentPeriodEnd.After(asOf) {
			out = append(out, *s)
		}
	}
	return out, nil
}

// --- In-Memory Reconciliation Repo ---

type inMemoryReconciliationRepo struct {
	mu           sync.RWMutex
	runs         map[uuid.UUID]*domain.ReconciliationRun
	divergences  map[uuid.UUID]*domain.ReconciliationDivergence
}

func newInMemoryReconciliationRepo() *inMemoryReconciliationRepo {
	return &inMemoryReconciliationRepo{
		runs:        make(map[uuid.UUID]*domain.ReconciliationRun),
		divergences: make(map[uuid.UUID]*domain.ReconciliationDivergence),
	}
}

func (r *inMemoryReconciliationRepo) CreateRun(ctx context.Context, run *domain.ReconciliationRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[run.ID] = run
	return nil
}

func (r *inMemoryReconciliationRepo) CompleteRun(ctx context.Context, id uuid.UUID, status domain.ReconciliationRunStatus, divergenceCount int, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[id]
	if !ok {
		return fmt.Errorf("reconciliation run not found")
	}
	run.Status = status
	run.DivergenceCount = divergenceCount
	run.CompletedAt = &completedAt
	return nil
}

func (r *inMemoryReconciliationRepo) CreateDivergence(ctx context.Context, d *domain.ReconciliationDivergence) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.divergences[d.ID] = d
	return nil
}

func (r *inMemoryReconciliationRepo) ListUnresolvedDivergences(ctx context.Context, tenantID uuid.UUID) ([]domain.ReconciliationDivergence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.ReconciliationDivergence
	for _, d := range r.divergences {
		if d.TenantID == tenantID && !d.IsResolved() {
			out = append(out, *d)
		}
	}
	return out, nil
}

// --- In-Memory Dispute Repo ---

type inMemoryDisputeRepo struct {
	mu       sync.RWMutex
	disputes map[uuid.UUID]*domain.Dispute
}

func newInMemoryDisputeRepo() *inMemoryDisputeRepo {
	return &inMemoryDisputeRepo{disputes: make(map[uuid.UUID]*domain.Dispute)}
}

func (r *inMemoryDisputeRepo) Upsert(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, d *domain.Dispute) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.disputes {
		if existing.TenantID == tenantID && existing.ProcessorDisputeID == d.ProcessorDisputeID {
			existing.Status = d.Status
			existing.ClosedAt = d.ClosedAt
			return nil
		}
	}
	r.disputes[d.ID] = d
	return nil
}

func (r *inMemoryDisputeRepo) GetByProcessorDisputeID(ctx context.Context, tenantID uuid.UUID, processorDisputeID string) (*domain.Dispute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.disputes {
		if d.TenantID == tenantID && d.ProcessorDisputeID == processorDisputeID {
			return d, nil
		}
	}
	return nil, nil
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu   sync.RWMutex
	logs []domain.AuditLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

// --- In-Memory Credit Memo Repo ---

type inMemoryCreditMemoRepo struct {
	mu    sync.RWMutex
	memos []domain.CreditMemo
}

func newInMemoryCreditMemoRepo() *inMemoryCreditMemoRepo {
	return &inMemoryCreditMemoRepo{}
}

func (r *inMemoryCreditMemoRepo) Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, memo *domain.CreditMemo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.memos = append(r.memos, *memo)
	return nil
}

func (r *inMemoryCreditMemoRepo) ListForCustomer(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID) ([]domain.CreditMemo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.CreditMemo
	for _, m := range r.memos {
		if m.TenantID == tenantID && m.CustomerID == customerID {
			out = append(out, m)
		}
	}
	return out, nil
}

// --- In-Memory Idempotency Repo ---

type inMemoryIdempotencyRepo struct {
	mu      sync.RWMutex
	records map[string]domain.IdempotencyRecord
}

func newInMemoryIdempotencyRepo() *inMemoryIdempotencyRepo {
	return &inMemoryIdempotencyRepo{records: make(map[string]domain.IdempotencyRecord)}
}

func idempotencyRepoKey(tenantID uuid.UUID, key string) string {
	return tenantID.String() + ":" + key
}

func (r *inMemoryIdempotencyRepo) Create(ctx context.Context, record *domain.IdempotencyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := idempotencyRepoKey(record.TenantID, record.Key)
	if _, exists := r.records[k]; exists {
		return errDuplicateIdempotencyKey
	}
	r.records[k] = *record
	return nil
}

func (r *inMemoryIdempotencyRepo) Get(ctx context.Context, tenantID uuid.UUID, key string) (*domain.IdempotencyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[idempotencyRepoKey(tenantID, key)]
	if !ok || time.Now().UTC().After(rec.ExpiresAt) {
		return nil, nil
	}
	out := rec
	return &out, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                              { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
