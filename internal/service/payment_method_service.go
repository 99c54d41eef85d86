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

// PaymentMethodServiceImpl implements ports.PaymentMethodService. Card data
// never reaches this boundary: req.ProcessorToken is an opaque token minted
// by frontend tokenization (spec §1 non-goal: storing cardholder data).
type PaymentMethodServiceImpl struct {
	db         ports.DBTransactor
	pmRepo     ports.PaymentMethodRepository
	tenantRepo ports.TenantRepository
	factory    ports.ProcessorClientFactory
	log        zerolog.Logger
}

// NewPaymentMethodService creates a new PaymentMethodServiceImpl.
func NewPaymentMethodService(db ports.DBTransactor, pmRepo ports.PaymentMethodRepository, tenantRepo ports.TenantRepository, factory ports.ProcessorClientFactory, log zerolog.Logger) *PaymentMethodServiceImpl {
	return &PaymentMethodServiceImpl{db: db, pmRepo: pmRepo, tenantRepo: tenantRepo, factory: factory, log: log}
}

// AttachPaymentMethod stores a processor token and its canonical display
// metadata. The caller-supplied type/last4/brand/expiry are never trusted
// directly; AttachPaymentMethod round-trips req.ProcessorToken through the
// processor (spec §4.5) and persists what the processor itself reports.
func (s *PaymentMethodServiceImpl) AttachPaymentMethod(ctx context.Context, tenantID uuid.UUID, req ports.AttachPaymentMethodRequest) (*domain.PaymentMethodRef, error) {
	if req.ProcessorToken == "" {
		return nil, apperror.Validation("processor_token is required")
	}

	client, err := s.clientForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	details, err := client.GetPaymentMethod(ctx, req.ProcessorToken)
	if err != nil {
		return nil, apperror.ErrProcessorUnavailable(err)
	}

	now := time.Now().UTC()
	pm := &domain.PaymentMethodRef{
		ID:             uuid.New(),
		TenantID:       tenantID,
		CustomerID:     req.CustomerID,
		ProcessorToken: details.ProcessorToken,
		Type:           details.Type,
		Last4:          details.Last4,
		Brand:          details.Brand,
		ExpiryMonth:    details.ExpiryMonth,
		ExpiryYear:     details.ExpiryYear,
		Status:         domain.PaymentMethodActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.pmRepo.Create(ctx, tenantID, pm); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payment method: %w", err))
	}

	if req.MakeDefault {
		if err := s.setDefault(ctx, tenantID, req.CustomerID, pm.ID); err != nil {
			return nil, err
		}
		pm.IsDefault = true
	}

	s.log.Info().Str("tenant_id", tenantID.String()).Str("payment_method_id", pm.ID.String()).Msg("payment method: attached")
	return pm, nil
}

// SetDefaultPaymentMethod atomically clears other defaults for the
// customer and marks id as the new default. The method must be active.
func (s *PaymentMethodServiceImpl) SetDefaultPaymentMethod(ctx context.Context, tenantID uuid.UUID, customerID, id uuid.UUID) error {
	pm, err := s.pmRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get payment method: %w", err))
	}
	if pm == nil {
		return apperror.ErrNotFound("payment_method")
	}
	if !pm.IsUsable() {
		return apperror.ErrNoDefaultPaymentMethod()
	}
	return s.setDefault(ctx, tenantID, customerID, id)
}

func (s *PaymentMethodServiceImpl) setDefault(ctx context.Context, tenantID, customerID, id uuid.UUID) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx)

	if err := s.pmRepo.SetDefault(ctx, tx, tenantID, customerID, id); err != nil {
		return apperror.InternalError(fmt.Errorf("set default payment method: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit set default: %w", err))
	}
	return nil
}

// SoftDeletePaymentMethod verifies the local id first (avoiding a TOCTOU
// race against a caller-supplied identifier) then marks it soft-deleted.
func (s *PaymentMethodServiceImpl) SoftDeletePaymentMethod(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) error {
	pm, err := s.pmRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get payment method: %w", err))
	}
	if pm == nil {
		return apperror.ErrNotFound("payment_method")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx)

	if err := s.pmRepo.UpdateStatus(ctx, tx, tenantID, id, domain.PaymentMethodSoftDeleted); err != nil {
		return apperror.InternalError(fmt.Errorf("soft delete payment method: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit soft delete: %w", err))
	}
	return nil
}

func (s *PaymentMethodServiceImpl) clientForTenant(ctx context.Context, tenantID uuid.UUID) (ports.ProcessorClient, error) {
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
