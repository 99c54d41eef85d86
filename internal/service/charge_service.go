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

// ChargeServiceImpl implements ports.ChargeService: one-time processor
// charges (ChargeInvoice) and the allocation of a settled payment against
// an invoice (ApplyPayment), per spec §4.5.
type ChargeServiceImpl struct {
	db          ports.DBTransactor
	tenantRepo  ports.TenantRepository
	invoiceRepo ports.InvoiceRepository
	chargeRepo  ports.ChargeRepository
	pmRepo      ports.PaymentMethodRepository
	paymentRepo ports.PaymentApplicationRepository
	factory     ports.ProcessorClientFactory
	ledgerSvc   ports.LedgerService
	glSvc       ports.GLPostingService
	log         zerolog.Logger
}

// NewChargeService creates a new ChargeServiceImpl.
func NewChargeService(
	db ports.DBTransactor,
	tenantRepo ports.TenantRepository,
	invoiceRepo ports.InvoiceRepository,
	chargeRepo ports.ChargeRepository,
	pmRepo ports.PaymentMethodRepository,
	paymentRepo ports.PaymentApplicationRepository,
	factory ports.ProcessorClientFactory,
	ledgerSvc ports.LedgerService,
	glSvc ports.GLPostingService,
	log zerolog.Logger,
) *ChargeServiceImpl {
	return &ChargeServiceImpl{
		db: db, tenantRepo: tenantRepo, invoiceRepo: invoiceRepo, chargeRepo: chargeRepo,
		pmRepo: pmRepo, paymentRepo: paymentRepo, factory: factory,
		ledgerSvc: ledgerSvc, glSvc: glSvc, log: log,
	}
}

// ChargeInvoice attempts a processor charge for the invoice's full
// TotalCents; payments already applied to the invoice are not subtracted.
// A repeated call with the same ReferenceID returns
// the first-written charge (domain idempotency, spec §4.3).
func (s *ChargeServiceImpl) ChargeInvoice(ctx context.Context, tenantID uuid.UUID, req ports.ChargeInvoiceRequest) (*domain.Charge, error) {
	if req.ReferenceID == "" {
		return nil, apperror.Validation("reference_id is required")
	}

	if existing, err := s.chargeRepo.GetByReference(ctx, tenantID, req.ReferenceID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check existing charge: %w", err))
	} else if existing != nil {
		return existing, nil
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, tenantID, req.InvoiceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get invoice: %w", err))
	}
	if invoice == nil {
		return nil, apperror.ErrNotFound("invoice")
	}
	if invoice.Status.IsTerminal() {
		return nil, apperror.ErrInvoicePaid()
	}

	pm, err := s.pmRepo.GetByID(ctx, tenantID, req.PaymentMethodID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment method: %w", err))
	}
	if pm == nil || !pm.IsUsable() {
		return nil, apperror.ErrNoDefaultPaymentMethod()
	}

	now := time.Now().UTC()
	charge := &domain.Charge{
		ID:              uuid.New(),
		TenantID:        tenantID,
		CustomerID:      invoice.CustomerID,
		InvoiceID:       invoice.ID,
		ReferenceID:     req.ReferenceID,
		PaymentMethodID: pm.ID,
		AmountCents:     invoice.TotalCents,
		Currency:        invoice.Currency,
		Status:          domain.ChargePending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	if err := s.chargeRepo.Create(ctx, tx, tenantID, charge); err != nil {
		tx.Rollback(ctx)
		if existing, getErr := s.chargeRepo.GetByReference(ctx, tenantID, req.ReferenceID); getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, apperror.InternalError(fmt.Errorf("create charge: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit pending charge: %w", err))
	}

	client, err := s.clientForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	result, chargeErr := client.Charge(ctx, ports.ProcessorChargeRequest{
		ProcessorToken: pm.ProcessorToken,
		AmountCents:    charge.AmountCents,
		Currency:       charge.Currency,
		ReferenceID:    charge.ReferenceID,
	})

	tx2, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx2.Rollback(ctx)

	if chargeErr != nil || result == nil || result.Status != "succeeded" {
		failureCode, failureMessage := "processor_error", ""
		if chargeErr != nil {
			failureMessage = chargeErr.Error()
		}
		if result != nil {
			failureCode, failureMessage = result.FailureCode, result.FailureMessage
		}
		if err := s.chargeRepo.UpdateStatus(ctx, tx2, tenantID, charge.ID, domain.ChargeFailed, "", failureCode, failureMessage); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update charge failed: %w", err))
		}
		if err := tx2.Commit(ctx); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("commit charge failure: %w", err))
		}
		charge.Status = domain.ChargeFailed
		charge.FailureCode = failureCode
		charge.FailureMessage = failureMessage
		return charge, nil
	}

	if err := s.chargeRepo.UpdateStatus(ctx, tx2, tenantID, charge.ID, domain.ChargeSucceeded, result.ProcessorChargeID, "", ""); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update charge succeeded: %w", err))
	}
	if err := tx2.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit charge success: %w", err))
	}
	charge.Status = domain.ChargeSucceeded
	charge.ProcessorChargeID = result.ProcessorChargeID
	charge.SettledAt = &now

	event, err := s.ledgerSvc.PostEvent(ctx, tenantID, ports.PostLedgerEventRequest{
		CustomerID:       charge.CustomerID,
		InvoiceID:        &charge.InvoiceID,
		EventType:        domain.LedgerEventPaymentApplied,
		AmountDeltaCents: -charge.AmountCents,
		SourceEventID:    "charge:" + charge.ID.String(),
	})
	if err != nil {
		return nil, err
	}
	if event != nil {
		if err := s.glSvc.Enqueue(ctx, tenantID, event); err != nil {
			s.log.Error().Err(err).Str("charge_id", charge.ID.String()).Msg("charge: gl enqueue failed")
		}
	}

	return charge, nil
}

// ApplyPayment allocates a settled charge against an invoice, marking the
// invoice paid once allocations cover the full total (spec §4.5).
// Overpayment is rejected rather than stored as credit.
func (s *ChargeServiceImpl) ApplyPayment(ctx context.Context, tenantID uuid.UUID, req ports.ApplyPaymentRequest) (*domain.PaymentApplication, error) {
	charge, err := s.chargeRepo.GetByID(ctx, tenantID, req.ChargeID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get charge: %w", err))
	}
	if charge == nil || !charge.IsSettled() {
		return nil, apperror.ErrChargeNotSettled()
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx)

	invoice, err := s.invoiceRepo.GetByIDForUpdate(ctx, tx, tenantID, req.InvoiceID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock invoice: %w", err))
	}
	if invoice == nil {
		return nil, apperror.ErrNotFound("invoice")
	}
	if invoice.Status == domain.InvoiceVoided || invoice.Status == domain.InvoicePaid {
		return nil, apperror.ErrInvoicePaid()
	}
	if charge.Currency != invoice.Currency {
		return nil, apperror.ErrCurrencyMismatch()
	}

	existing, err := s.paymentRepo.ListForInvoice(ctx, tenantID, invoice.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list applications: %w", err))
	}
	var appliedSoFar int64
	for _, a := range existing {
		if a.Status == domain.ApplicationApplied {
			appliedSoFar += a.AllocatedCents
		}
	}
	if appliedSoFar+req.AmountCents > invoice.TotalCents {
		return nil, apperror.ErrAmountMismatch()
	}

	now := time.Now().UTC()
	app := &domain.PaymentApplication{
		ID:             uuid.New(),
		TenantID:       tenantID,
		InvoiceID:      invoice.ID,
		ChargeID:       charge.ID,
		AllocatedCents: req.AmountCents,
		AllocationType: req.Allocation,
		Status:         domain.ApplicationApplied,
		CreatedAt:      now,
	}
	if err := s.paymentRepo.Create(ctx, tx, tenantID, app); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create application: %w", err))
	}

	newTotal := appliedSoFar + req.AmountCents
	if newTotal == invoice.TotalCents {
		if err := s.invoiceRepo.UpdateStatus(ctx, tx, tenantID, invoice.ID, domain.InvoicePaid, &now, nil); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("mark invoice paid: %w", err))
		}
	} else {
		if err := s.invoiceRepo.UpdateStatus(ctx, tx, tenantID, invoice.ID, domain.InvoicePartiallyPaid, nil, nil); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("mark invoice partially paid: %w", err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit payment application: %w", err))
	}

	event, err := s.ledgerSvc.PostEvent(ctx, tenantID, ports.PostLedgerEventRequest{
		CustomerID:       charge.CustomerID,
		InvoiceID:        &invoice.ID,
		EventType:        domain.LedgerEventPaymentApplied,
		AmountDeltaCents: -req.AmountCents,
		SourceEventID:    "payment-applied:" + app.ID.String(),
	})
	if err != nil {
		return nil, err
	}
	if event != nil {
		if err := s.glSvc.Enqueue(ctx, tenantID, event); err != nil {
			s.log.Error().Err(err).Str("application_id", app.ID.String()).Msg("charge: gl enqueue failed on payment application")
		}
	}

	return app, nil
}

func (s *ChargeServiceImpl) clientForTenant(ctx context.Context, tenantID uuid.UUID) (ports.ProcessorClient, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get tenant: %w", err))
	}
	if tenant == nil {
		return nil, apperror.ErrNotFound("tenant")
	}
	client, err := s.factory.ForTenant(tenant.Slug)
	if err != nil {
		return nil, apperror.ErrProcessorUnavailable(err)
	}
	return client, nil
}
