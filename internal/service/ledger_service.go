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

// LedgerServiceImpl implements ports.LedgerService. Every posting locks
// the owning customer row for update, checks SourceEventID idempotency
// within the same transaction, appends the ledger event, and folds the
// delta into the customer's running balance and aging.current bucket
// atomically (spec §4.2, §5 lock order customer -> ... ).
type LedgerServiceImpl struct {
	db           ports.DBTransactor
	ledgerRepo   ports.LedgerEventRepository
	customerRepo ports.CustomerRepository
	log          zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	db ports.DBTransactor,
	ledgerRepo ports.LedgerEventRepository,
	customerRepo ports.CustomerRepository,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{db: db, ledgerRepo: ledgerRepo, customerRepo: customerRepo, log: log}
}

// PostEvent appends a ledger event and updates the customer's balance.
// Replays of an already-posted SourceEventID are absorbed as a no-op
// success rather than an error, so webhook/retry callers can post
// unconditionally.
func (s *LedgerServiceImpl) PostEvent(ctx context.Context, tenantID uuid.UUID, req ports.PostLedgerEventRequest) (*domain.LedgerEvent, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx)

	exists, err := s.ledgerRepo.ExistsBySourceEventID(ctx, tx, tenantID, req.SourceEventID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check existing ledger event: %w", err))
	}
	if exists {
		s.log.Debug().Str("source_event_id", req.SourceEventID).Msg("ledger: source event already posted, skipping")
		return nil, nil
	}

	customer, err := s.customerRepo.GetByIDForUpdate(ctx, tx, tenantID, req.CustomerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock customer: %w", err))
	}
	if customer == nil {
		return nil, apperror.ErrNotFound("customer")
	}

	balanceBefore := customer.ARBalanceCents
	balanceAfter := balanceBefore + req.AmountDeltaCents

	now := time.Now().UTC()
	event := &domain.LedgerEvent{
		ID:               uuid.New(),
		TenantID:         tenantID,
		CustomerID:       req.CustomerID,
		InvoiceID:        req.InvoiceID,
		EventType:        req.EventType,
		AmountDeltaCents: req.AmountDeltaCents,
		BalanceBefore:    balanceBefore,
		BalanceAfter:     balanceAfter,
		OccurredAt:       now,
		SourceEventID:    req.SourceEventID,
	}

	if err := s.ledgerRepo.Create(ctx, tx, event); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create ledger event: %w", err))
	}

	aging := customer.Aging
	aging.Current += req.AmountDeltaCents
	if err := s.customerRepo.UpdateAging(ctx, tx, tenantID, req.CustomerID, aging, balanceAfter); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update customer balance: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit ledger post: %w", err))
	}

	s.log.Info().
		Str("tenant_id", tenantID.String()).
		Str("customer_id", req.CustomerID.String()).
		Str("event_type", string(req.EventType)).
		Int64("delta_cents", req.AmountDeltaCents).
		Int64("balance_after", balanceAfter).
		Msg("ledger: event posted")

	return event, nil
}

// GetCustomerHistory returns the customer's most recent ledger events.
func (s *LedgerServiceImpl) GetCustomerHistory(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID, limit int) ([]domain.LedgerEvent, error) {
	events, err := s.ledgerRepo.ListForCustomer(ctx, tenantID, customerID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list ledger history: %w", err))
	}
	return events, nil
}
