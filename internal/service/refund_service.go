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

// RefundServiceImpl implements ports.RefundService.
type RefundServiceImpl struct {
	db         ports.DBTransactor
	tenantRepo ports.TenantRepository
	chargeRepo ports.ChargeRepository
	refundRepo ports.RefundRepository
	factory    ports.ProcessorClientFactory
	ledgerSvc  ports.LedgerService
	glSvc      ports.GLPostingService
	log        zerolog.Logger
}

// NewRefundService creates a new RefundServiceImpl.
func NewRefundService(
	db ports.DBTransactor,
	tenantRepo ports.TenantRepository,
	chargeRepo ports.ChargeRepository,
	refundRepo ports.RefundRepository,
	factory ports.ProcessorClientFactory,
	ledgerSvc ports.LedgerService,
	glSvc ports.GLPostingService,
	log zerolog.Logger,
) *RefundServiceImpl {
	return &RefundServiceImpl{
		db: db, tenantRepo: tenantRepo, chargeRepo: chargeRepo, refundRepo: refundRepo,
		factory: factory, ledgerSvc: ledgerSvc, glSvc: glSvc, log: log,
	}
}

// RefundCharge issues a processor refund against a settled charge, bounded
// by the original charge amount, and posts the signed-negative ledger
// delta (spec §3.1, §4.5). Repeated calls with the same ReferenceID
// return the first-written refund.
func (s *RefundServiceImpl) RefundCharge(ctx context.Context, tenantID uuid.UUID, req ports.RefundChargeRequest) (*domain.Refund, error) {
	if req.ReferenceID == "" {
		return nil, apperror.Validation("reference_id is required")
	}
	if req.AmountCents <= 0 {
		return nil, apperror.Validation("amount_cents must be positive")
	}

	if existing, err := s.refundRepo.GetByReference(ctx, tenantID, req.ReferenceID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check existing refund: %w", err))
	} else if existing != nil {
		return existing, nil
	}

	charge, err := s.chargeRepo.GetByID(ctx, tenantID, req.ChargeID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get charge: %w", err))
	}
	if charge == nil || !charge.IsSettled() {
		return nil, apperror.ErrChargeNotSettled()
	}
	if req.AmountCents > charge.AmountCents {
		return nil, apperror.ErrAmountMismatch()
	}

	now := time.Now().UTC()
	refund := &domain.Refund{
		ID:          uuid.New(),
		TenantID:    tenantID,
		ChargeID:    charge.ID,
		ReferenceID: req.ReferenceID,
		AmountCents: req.AmountCents,
		Reason:      req.Reason,
		Status:      domain.RefundPending,
		CreatedAt:   now,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	if err := s.refundRepo.Create(ctx, tx, tenantID, refund); err != nil {
		tx.Rollback(ctx)
		if existing, getErr := s.refundRepo.GetByReference(ctx, tenantID, req.ReferenceID); getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, apperror.InternalError(fmt.Errorf("create refund: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit pending refund: %w", err))
	}

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

	result, refundErr := client.Refund(ctx, ports.ProcessorRefundRequest{
		ProcessorChargeID: charge.ProcessorChargeID,
		AmountCents:       req.AmountCents,
		ReferenceID:       req.ReferenceID,
	})

	tx2, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx2.Rollback(ctx)

	if refundErr != nil || result == nil {
		if err := s.refundRepo.UpdateStatus(ctx, tx2, tenantID, refund.ID, domain.RefundFailed, ""); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update refund failed: %w", err))
		}
		if err := tx2.Commit(ctx); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("commit refund failure: %w", err))
		}
		refund.Status = domain.RefundFailed
		return refund, nil
	}

	if err := s.refundRepo.UpdateStatus(ctx, tx2, tenantID, refund.ID, domain.RefundSucceeded, result.ProcessorRefundID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update refund succeeded: %w", err))
	}
	if err := tx2.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit refund success: %w", err))
	}
	refund.Status = domain.RefundSucceeded
	refund.ProcessorRefundID = result.ProcessorRefundID
	refund.SettledAt = &now

	event, err := s.ledgerSvc.PostEvent(ctx, tenantID, ports.PostLedgerEventRequest{
		CustomerID:       charge.CustomerID,
		InvoiceID:        &charge.InvoiceID,
		EventType:        domain.LedgerEventRefundRecorded,
		AmountDeltaCents: -req.AmountCents,
		SourceEventID:    "refund:" + refund.ID.String(),
	})
	if err != nil {
		return nil, err
	}
	if event != nil {
		if err := s.glSvc.Enqueue(ctx, tenantID, event); err != nil {
			s.log.Error().Err(err).Str("refund_id", refund.ID.String()).Msg("refund: gl enqueue failed")
		}
	}

	return refund, nil
}
