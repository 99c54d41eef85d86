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

// SubscriptionServiceImpl implements ports.SubscriptionService. Next-bill-
// date computation and renewal pricing are out of scope (spec §1
// non-goals); this service mirrors processor-reported subscription state
// and surfaces which subscriptions have crossed a billing boundary.
type SubscriptionServiceImpl struct {
	subRepo ports.SubscriptionRepository
	log     zerolog.Logger
}

// NewSubscriptionService creates a new SubscriptionServiceImpl.
func NewSubscriptionService(subRepo ports.SubscriptionRepository, log zerolog.Logger) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{subRepo: subRepo, log: log}
}

// SyncSubscription upserts the processor-reported subscription snapshot.
// The processor is authoritative for subscription state; this service does
// not reject updates to period boundaries or plan code, since those arrive
// here only via the processor's own event stream, not a local edit path.
func (s *SubscriptionServiceImpl) SyncSubscription(ctx context.Context, tenantID uuid.UUID, sub *domain.Subscription) error {
	sub.TenantID = tenantID
	sub.UpdatedAt = time.Now().UTC()
	if err := s.subRepo.Upsert(ctx, tenantID, sub); err != nil {
		return apperror.InternalError(fmt.Errorf("upsert subscription: %w", err))
	}
	s.log.Info().Str("subscription_id", sub.ID.String()).Str("status", string(sub.Status)).Msg("subscription: synced")
	return nil
}

// GenerateDueInvoices enumerates active subscriptions whose current period
// has elapsed as of asOf. Per spec §1 ("computing the next-bill-date of
// subscriptions" and "subscription renewal math" are explicit non-goals),
// this does not synthesize invoice amounts — line-item pricing is owned
// by the caller's billing configuration, not this engine. It reports how
// many subscriptions are due so an external billing driver can act on
// them; subscriptions already flagged CancelAtPeriodEnd are excluded since
// their period-end event should instead finalize cancellation.
func (s *SubscriptionServiceImpl) GenerateDueInvoices(ctx context.Context, asOf time.Time) (int, error) {
	due, err := s.subRepo.ListDueForInvoicing(ctx, asOf)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list due subscriptions: %w", err))
	}

	count := 0
	for _, sub := range due {
		if !sub.IsActive() || sub.CancelAtPeriodEnd {
			continue
		}
		count++
	}
	s.log.Info().Int("due", count).Time("as_of", asOf).Msg("subscription: invoicing pass complete")
	return count, nil
}
