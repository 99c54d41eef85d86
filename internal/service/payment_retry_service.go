package service

import (
	"context"
	"fmt"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/pkg/backoff"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// delinquencyThreshold is the number of consecutive failed payment attempts
// (spec §4.7) after which a customer is marked delinquent and enters the
// dunning retry ladder.
const delinquencyThreshold = 3

// gracePeriod is how long a customer sits in DelinquencyGrace, after the
// retry ladder is exhausted, before being suspended.
const gracePeriod = 7 * 24 * time.Hour

// PaymentRetryServiceImpl implements ports.PaymentRetryService: the §4.7
// dunning state machine. RecordFailure is the trigger point (a
// payment.failed webhook landing in webhookIngestService; event types are
// matched exactly, so a prefixed name such as payments.payment.failed is
// not routed here); RetryDue is the scheduled sweep advancing every
// customer already on the ladder. Failure codes are not read: every
// recorded failure advances the same ladder, with no hard/soft/terminal
// split and no early stop for a terminal decline.
type PaymentRetryServiceImpl struct {
	db           ports.DBTransactor
	customerRepo ports.CustomerRepository
	ladder       backoff.Ladder
	log          zerolog.Logger
}

// NewPaymentRetryService creates a new PaymentRetryServiceImpl.
func NewPaymentRetryService(db ports.DBTransactor, customerRepo ports.CustomerRepository, log zerolog.Logger) *PaymentRetryServiceImpl {
	return &PaymentRetryServiceImpl{
		db:           db,
		customerRepo: customerRepo,
		ladder:       backoff.DefaultPaymentLadder,
		log:          log,
	}
}

// RecordFailure increments a customer's retry counter for a failed payment
// attempt and, once delinquencyThreshold is reached, transitions the
// customer to DelinquencyDelinquent and schedules the first retry-ladder
// attempt.
func (s *PaymentRetryServiceImpl) RecordFailure(ctx context.Context, tenantID, customerID uuid.UUID, failedAt time.Time) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	customer, err := s.customerRepo.GetByIDForUpdate(ctx, tx, tenantID, customerID)
	if err != nil {
		return fmt.Errorf("get customer for update: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("customer not found: %s", customerID)
	}

	retryCount := customer.RetryCount + 1
	state := customer.Delinquency
	var nextRetryAt *time.Time

	if retryCount >= delinquencyThreshold {
		state = domain.DelinquencyDelinquent
		ladderPos := retryCount - delinquencyThreshold + 1
		if delay, ok := s.ladder.Next(ladderPos); ok {
			at := failedAt.Add(delay)
			nextRetryAt = &at
		}
	}

	if err := s.customerRepo.UpdateDelinquency(ctx, tx, tenantID, customerID, state, retryCount, nextRetryAt, customer.GracePeriodEnd); err != nil {
		return fmt.Errorf("update customer delinquency: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	s.log.Info().
		Str("tenant_id", tenantID.String()).
		Str("customer_id", customerID.String()).
		Int("retry_count", retryCount).
		Str("delinquency", string(state)).
		Msg("payment failure recorded")
	return nil
}

// RetryDue advances every customer whose NextRetryAt (DelinquencyDelinquent)
// or GracePeriodEnd (DelinquencyGrace) has elapsed: DELINQUENT customers
// move to the next ladder rung, or to GRACE once the ladder is exhausted;
// GRACE customers move to the terminal SUSPENDED state.
func (s *PaymentRetryServiceImpl) RetryDue(ctx context.Context, asOf time.Time) (int, error) {
	customers, err := s.customerRepo.ListDueForRetry(ctx, asOf, 100)
	if err != nil {
		return 0, fmt.Errorf("list customers due for retry: %w", err)
	}

	processed := 0
	for _, c := range customers {
		if err := s.advance(ctx, c, asOf); err != nil {
			s.log.Error().Err(err).Str("customer_id", c.ID.String()).Msg("dunning advance failed")
			continue
		}
		processed++
	}
	return processed, nil
}

func (s *PaymentRetryServiceImpl) advance(ctx context.Context, c domain.Customer, asOf time.Time) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	state := c.Delinquency
	retryCount := c.RetryCount
	var nextRetryAt, graceEnd *time.Time

	switch c.Delinquency {
	case domain.DelinquencyDelinquent:
		retryCount++
		ladderPos := retryCount - delinquencyThreshold + 1
		if delay, ok := s.ladder.Next(ladderPos); ok {
			at := asOf.Add(delay)
			nextRetryAt = &at
		} else {
			state = domain.DelinquencyGrace
			end := asOf.Add(gracePeriod)
			graceEnd = &end
		}
	case domain.DelinquencyGrace:
		state = domain.DelinquencySuspended
	default:
		return nil
	}

	if err := s.customerRepo.UpdateDelinquency(ctx, tx, c.TenantID, c.ID, state, retryCount, nextRetryAt, graceEnd); err != nil {
		return fmt.Errorf("update customer delinquency: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	s.log.Info().
		Str("tenant_id", c.TenantID.String()).
		Str("customer_id", c.ID.String()).
		Str("from", string(c.Delinquency)).
		Str("to", string(state)).
		Msg("dunning state advanced")
	return nil
}
