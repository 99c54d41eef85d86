package service

import (
	"context"
	"fmt"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/pkg/apperror"
	"ar-engine/pkg/backoff"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GLPostingServiceImpl implements ports.GLPostingService: builds a
// balanced journal intent per ledger event (spec §4.9 default triggers),
// enqueues it for at-least-once delivery, and publishes it immediately,
// falling back to the retry ladder on transient transport failure.
// Business-rule rejections are recorded and never auto-retried.
type GLPostingServiceImpl struct {
	db        ports.DBTransactor
	queueRepo ports.GLPostingQueueRepository
	publisher ports.GLPublisher
	ladder    backoff.Ladder
	log       zerolog.Logger
}

// NewGLPostingService creates a new GLPostingServiceImpl.
func NewGLPostingService(db ports.DBTransactor, queueRepo ports.GLPostingQueueRepository, publisher ports.GLPublisher, log zerolog.Logger) *GLPostingServiceImpl {
	return &GLPostingServiceImpl{db: db, queueRepo: queueRepo, publisher: publisher, ladder: backoff.DefaultGLLadder, log: log}
}

// Enqueue builds the journal intent for a ledger event, persists it to the
// posting queue, and attempts an immediate publish.
func (s *GLPostingServiceImpl) Enqueue(ctx context.Context, tenantID uuid.UUID, event *domain.LedgerEvent) error {
	trigger, ok := domain.ARTrigger[event.EventType]
	if !ok {
		return apperror.InternalError(fmt.Errorf("no gl trigger mapped for event type %s", event.EventType))
	}

	amount := event.AmountDeltaCents
	if amount < 0 {
		amount = -amount
	}

	intent := domain.JournalIntent{
		PostingDate:   event.OccurredAt,
		SourceDocType: string(event.EventType),
		SourceDocID:   event.ID,
		Lines: []domain.JournalLine{
			{AccountCode: trigger.DR, DebitCents: amount},
			{AccountCode: trigger.CR, CreditCents: amount},
		},
	}
	if !intent.Balanced() {
		return apperror.ErrUnbalancedJournalIntent()
	}

	now := time.Now().UTC()
	entry := &domain.GLPostingQueueEntry{
		ID:            uuid.New(),
		TenantID:      tenantID,
		EventID:       event.ID,
		SourceDocType: intent.SourceDocType,
		SourceDocID:   intent.SourceDocID,
		Intent:        intent,
		Status:        domain.GLQueuePending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	if err := s.queueRepo.Enqueue(ctx, tx, entry); err != nil {
		tx.Rollback(ctx)
		return apperror.InternalError(fmt.Errorf("enqueue gl posting: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit gl enqueue: %w", err))
	}

	s.publish(ctx, tenantID, entry)
	return nil
}

// RetryDue republishes posting entries scheduled for retry as of asOf.
func (s *GLPostingServiceImpl) RetryDue(ctx context.Context, asOf time.Time) (int, error) {
	due, err := s.queueRepo.ListDueForRetry(ctx, asOf, 100)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list gl retries: %w", err))
	}
	for i := range due {
		s.publish(ctx, due[i].TenantID, &due[i])
	}
	return len(due), nil
}

// publish attempts delivery and records the outcome. Transient transport
// errors reschedule via the backoff ladder; business-rule rejections
// record the reason and stop retrying (spec §4.7, §4.9).
func (s *GLPostingServiceImpl) publish(ctx context.Context, tenantID uuid.UUID, entry *domain.GLPostingQueueEntry) {
	result, err := s.publisher.Post(ctx, tenantID, *entry)
	if err != nil {
		s.reschedule(ctx, entry)
		return
	}
	if result.Accepted {
		if uerr := s.queueRepo.UpdateStatus(ctx, entry.ID, domain.GLQueueAccepted, ""); uerr != nil {
			s.log.Error().Err(uerr).Str("entry_id", entry.ID.String()).Msg("gl: failed to record acceptance")
		}
		return
	}

	if uerr := s.queueRepo.UpdateStatus(ctx, entry.ID, domain.GLQueueRejected, result.Reason); uerr != nil {
		s.log.Error().Err(uerr).Str("entry_id", entry.ID.String()).Msg("gl: failed to record rejection")
	}
	s.log.Warn().Str("entry_id", entry.ID.String()).Str("reason", result.Reason).Msg("gl: posting rejected, surfaced to reconciliation")
}

func (s *GLPostingServiceImpl) reschedule(ctx context.Context, entry *domain.GLPostingQueueEntry) {
	attempt := entry.AttemptCount + 1
	delay, ok := s.ladder.Next(attempt)
	if !ok {
		if err := s.queueRepo.UpdateStatus(ctx, entry.ID, domain.GLQueueRejected, "retries exhausted"); err != nil {
			s.log.Error().Err(err).Str("entry_id", entry.ID.String()).Msg("gl: failed to mark exhausted")
		}
		return
	}
	next := time.Now().UTC().Add(delay)
	if err := s.queueRepo.ScheduleRetry(ctx, entry.ID, next, attempt); err != nil {
		s.log.Error().Err(err).Str("entry_id", entry.ID.String()).Msg("gl: failed to schedule retry")
	}
}
