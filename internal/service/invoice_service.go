package service

import (
	"context"
	"fmt"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InvoiceServiceImpl implements ports.InvoiceService.
type InvoiceServiceImpl struct {
	db             ports.DBTransactor
	invoiceRepo    ports.InvoiceRepository
	paymentRepo    ports.PaymentApplicationRepository
	creditMemoRepo ports.CreditMemoRepository
	ledgerSvc      ports.LedgerService
	glSvc          ports.GLPostingService
	log            zerolog.Logger
}

// NewInvoiceService creates a new InvoiceServiceImpl.
func NewInvoiceService(
	db ports.DBTransactor,
	invoiceRepo ports.InvoiceRepository,
	paymentRepo ports.PaymentApplicationRepository,
	creditMemoRepo ports.CreditMemoRepository,
	ledgerSvc ports.LedgerService,
	glSvc ports.GLPostingService,
	log zerolog.Logger,
) *InvoiceServiceImpl {
	return &InvoiceServiceImpl{db: db, invoiceRepo: invoiceRepo, paymentRepo: paymentRepo, creditMemoRepo: creditMemoRepo, ledgerSvc: ledgerSvc, glSvc: glSvc, log: log}
}

// CreateInvoice writes a draft invoice with frozen-at-issue line items.
// total = subtotal = Σ line items; tax is applied by a later adjustment,
// not modeled on CreateInvoiceRequest.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, tenantID uuid.UUID, req ports.CreateInvoiceRequest) (*domain.Invoice, error) {
	if len(req.LineItems) == 0 {
		return nil, apperror.Validation("invoice requires at least one line item")
	}
	if req.Currency == "" {
		return nil, apperror.Validation("currency is required")
	}

	now := time.Now().UTC()
	invoice := &domain.Invoice{
		ID:                 uuid.New(),
		TenantID:           tenantID,
		CustomerID:         req.CustomerID,
		Status:             domain.InvoiceDraft,
		Currency:           req.Currency,
		LineItems:          req.LineItems,
		BillingPeriodStart: req.BillingPeriodStart,
		BillingPeriodEnd:   req.BillingPeriodEnd,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	invoice.SubtotalCents = invoice.AllocatedTotal()
	invoice.TotalCents = invoice.SubtotalCents
	if !req.DueAt.IsZero() {
		dueAt := req.DueAt
		invoice.DueAt = &dueAt
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx)

	if err := s.invoiceRepo.Create(ctx, tx, tenantID, invoice); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create invoice: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit invoice create: %w", err))
	}

	return invoice, nil
}

// IssueInvoice transitions draft -> issued: freezes line items (already
// immutable once persisted), writes the +receivable LedgerEvent, and
// enqueues the invoice-issued GL intent (spec §4.5).
func (s *InvoiceServiceImpl) IssueInvoice(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Invoice, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx)

	invoice, err := s.invoiceRepo.GetByIDForUpdate(ctx, tx, tenantID, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock invoice: %w", err))
	}
	if invoice == nil {
		return nil, apperror.ErrNotFound("invoice")
	}
	if invoice.Status != domain.InvoiceDraft {
		return nil, apperror.ErrConflict("invoice is not in draft status")
	}

	now := time.Now().UTC()
	if err := s.invoiceRepo.UpdateStatus(ctx, tx, tenantID, id, domain.InvoiceIssued, nil, nil); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update invoice status: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit invoice issue: %w", err))
	}

	invoice.Status = domain.InvoiceIssued
	invoice.IssuedAt = &now

	event, err := s.ledgerSvc.PostEvent(ctx, tenantID, ports.PostLedgerEventRequest{
		CustomerID:       invoice.CustomerID,
		InvoiceID:        &invoice.ID,
		EventType:        domain.LedgerEventInvoiceIssued,
		AmountDeltaCents: invoice.TotalCents,
		SourceEventID:    "invoice-issued:" + invoice.ID.String(),
	})
	if err != nil {
		return nil, err
	}
	if event != nil {
		if err := s.glSvc.Enqueue(ctx, tenantID, event); err != nil {
			s.log.Error().Err(err).Str("invoice_id", invoice.ID.String()).Msg("invoice: gl enqueue failed on issue")
		}
	}

	return invoice, nil
}

// VoidInvoice transitions a non-terminal invoice to voided. Voiding an
// invoice that was never paid has no ledger effect; an invoice with
// outstanding applications must be written off instead (see
// WriteOffInvoice), which does carry a ledger correction.
func (s *InvoiceServiceImpl) VoidInvoice(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, reason string) (*domain.Invoice, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx)

	invoice, err := s.invoiceRepo.GetByIDForUpdate(ctx, tx, tenantID, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock invoice: %w", err))
	}
	if invoice == nil {
		return nil, apperror.ErrNotFound("invoice")
	}
	if invoice.Status.IsTerminal() {
		return nil, apperror.ErrInvoiceVoided()
	}

	applications, err := s.paymentRepo.ListForInvoice(ctx, tenantID, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list applications: %w", err))
	}
	for _, a := range applications {
		if a.Status == domain.ApplicationApplied {
			return nil, apperror.ErrConflict("invoice has applied payments; write it off instead")
		}
	}

	now := time.Now().UTC()
	if err := s.invoiceRepo.UpdateStatus(ctx, tx, tenantID, id, domain.InvoiceVoided, nil, &now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update invoice status: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit invoice void: %w", err))
	}

	invoice.Status = domain.InvoiceVoided
	invoice.VoidedAt = &now

	s.log.Info().Str("invoice_id", id.String()).Str("reason", reason).Msg("invoice: voided")
	return invoice, nil
}

// GetInvoice returns a tenant-scoped invoice by id.
func (s *InvoiceServiceImpl) GetInvoice(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get invoice: %w", err))
	}
	if invoice == nil {
		return nil, apperror.ErrNotFound("invoice")
	}
	return invoice, nil
}

// ListInvoices returns a filtered, paginated invoice listing.
func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context, tenantID uuid.UUID, params ports.InvoiceListParams) ([]domain.Invoice, int64, error) {
	invoices, total, err := s.invoiceRepo.List(ctx, tenantID, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list invoices: %w", err))
	}
	return invoices, total, nil
}

// WriteOffInvoice records the remaining outstanding balance as bad debt:
// it transitions the invoice to written_off and emits a -receivable
// LedgerEvent for whatever was never collected (spec §4.9 write-off
// trigger: DR bad-debt / CR receivable).
func (s *InvoiceServiceImpl) WriteOffInvoice(ctx context.Context, tenantID uuid.UUID, id uuid.UUID, memo string) (*domain.Invoice, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx)

	invoice, err := s.invoiceRepo.GetByIDForUpdate(ctx, tx, tenantID, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock invoice: %w", err))
	}
	if invoice == nil {
		return nil, apperror.ErrNotFound("invoice")
	}
	if invoice.Status.IsTerminal() {
		return nil, apperror.ErrInvoicePaid()
	}

	applications, err := s.paymentRepo.ListForInvoice(ctx, tenantID, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list applications: %w", err))
	}
	var applied int64
	for _, a := range applications {
		if a.Status == domain.ApplicationApplied {
			applied += a.AllocatedCents
		}
	}
	outstanding := invoice.TotalCents - applied
	if outstanding < 0 {
		outstanding = 0
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, tx, tenantID, id, domain.InvoiceWrittenOff, nil, nil); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update invoice status: %w", err))
	}

	if outstanding > 0 {
		memoRecord := &domain.CreditMemo{
			ID:          uuid.New(),
			TenantID:    tenantID,
			CustomerID:  invoice.CustomerID,
			InvoiceID:   &invoice.ID,
			AmountCents: outstanding,
			Reason:      domain.AdjustmentWriteOff,
			Memo:        memo,
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.creditMemoRepo.Create(ctx, tx, tenantID, memoRecord); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("record write-off credit memo: %w", err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit write-off: %w", err))
	}

	invoice.Status = domain.InvoiceWrittenOff

	if outstanding > 0 {
		event, err := s.ledgerSvc.PostEvent(ctx, tenantID, ports.PostLedgerEventRequest{
			CustomerID:       invoice.CustomerID,
			InvoiceID:        &invoice.ID,
			EventType:        domain.LedgerEventWriteOff,
			AmountDeltaCents: -outstanding,
			SourceEventID:    "invoice-writeoff:" + invoice.ID.String(),
		})
		if err != nil {
			return nil, err
		}
		if event != nil {
			if err := s.glSvc.Enqueue(ctx, tenantID, event); err != nil {
				s.log.Error().Err(err).Str("invoice_id", invoice.ID.String()).Msg("invoice: gl enqueue failed on write-off")
			}
		}
	}

	s.log.Info().Str("invoice_id", id.String()).Str("memo", memo).Int64("outstanding_cents", outstanding).Msg("invoice: written off")
	return invoice, nil
}
