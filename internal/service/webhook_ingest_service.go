package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/pkg/apperror"
	"ar-engine/pkg/backoff"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// inboundEventPayload is the processor-agnostic shape VerifyAndDecode's
// ProcessorEvent.Payload is expected to carry, generalized from the
// teacher's WebhookPayloadData into the inbound direction. ReferenceID
// doubles as the ledger SourceEventID alongside the processor's EventID.
type inboundEventPayload struct {
	CustomerID  uuid.UUID  `json:"customer_id"`
	InvoiceID   *uuid.UUID `json:"invoice_id,omitempty"`
	AmountCents int64      `json:"amount_cents"`
	ReferenceID string     `json:"reference_id"`
}

// paymentFailedPayload is the shape of a payment.failed event body; it
// names the customer whose attempt failed so the dunning ladder can be
// advanced.
type paymentFailedPayload struct {
	CustomerID uuid.UUID  `json:"customer_id"`
	FailedAt   *time.Time `json:"failed_at,omitempty"`
}

// disputeEventPayload is the shape of a dispute.* event body.
type disputeEventPayload struct {
	ProcessorChargeID  string `json:"processor_charge_id"`
	ProcessorDisputeID string `json:"processor_dispute_id"`
	AmountCents        int64  `json:"amount_cents"`
}

// disputeStatusByEventType maps a dispute event type to the status the
// mirrored Dispute row should carry.
var disputeStatusByEventType = map[string]domain.DisputeStatus{
	"dispute.opened":             domain.DisputeOpened,
	"dispute.evidence_submitted": domain.DisputeEvidenceSubmitted,
	"dispute.expired":            domain.DisputeExpired,
	"dispute.won":                domain.DisputeClosedWon,
	"dispute.lost":               domain.DisputeClosedLost,
	"dispute.accepted":           domain.DisputeClosedAccepted,
}

// inboundEventRouting maps a processor event type to the ledger event it
// produces and the sign to apply to the payload's amount. Event types
// needing more than a single ledger post (payment.failed, dispute.*) are
// special-cased in process instead.
var inboundEventRouting = map[string]struct {
	ledgerEvent domain.LedgerEventType
	sign        int64
}{
	"charge.succeeded": {domain.LedgerEventPaymentApplied, 1},
	"refund.succeeded": {domain.LedgerEventRefundRecorded, -1},
}

// webhookIngestService implements ports.WebhookIngestService. It owns the
// inbound counterpart of the teacher's deliverWithRetries: verify, dedupe,
// dispatch, and persist a durable retry schedule rather than an
// in-process sleep loop, since ingestion failures must survive restarts.
type webhookIngestService struct {
	db              ports.DBTransactor
	tenantRepo      ports.TenantRepository
	webhookRepo     ports.WebhookRecordRepository
	chargeRepo      ports.ChargeRepository
	disputeRepo     ports.DisputeRepository
	factory         ports.ProcessorClientFactory
	replayGuard     ports.ProcessorReplayGuard
	ledgerSvc       ports.LedgerService
	glSvc           ports.GLPostingService
	paymentRetrySvc ports.PaymentRetryService
	ladder          backoff.Ladder
	log             zerolog.Logger
}

// NewWebhookIngestService creates a new webhookIngestService.
func NewWebhookIngestService(
	db ports.DBTransactor,
	tenantRepo ports.TenantRepository,
	webhookRepo ports.WebhookRecordRepository,
	chargeRepo ports.ChargeRepository,
	disputeRepo ports.DisputeRepository,
	factory ports.ProcessorClientFactory,
	replayGuard ports.ProcessorReplayGuard,
	ledgerSvc ports.LedgerService,
	glSvc ports.GLPostingService,
	paymentRetrySvc ports.PaymentRetryService,
	log zerolog.Logger,
) ports.WebhookIngestService {
	return &webhookIngestService{
		db:              db,
		tenantRepo:      tenantRepo,
		webhookRepo:     webhookRepo,
		chargeRepo:      chargeRepo,
		disputeRepo:     disputeRepo,
		factory:         factory,
		replayGuard:     replayGuard,
		ledgerSvc:       ledgerSvc,
		glSvc:           glSvc,
		paymentRetrySvc: paymentRetrySvc,
		ladder:          backoff.DefaultWebhookLadder,
		log:             log,
	}
}

// eventEnvelope is the minimal shape peekEventEnvelope extracts from a raw
// webhook body, tolerating both Stripe's (id/type) and the in-memory
// fixture's (event_id/event_type) field naming.
type eventEnvelope struct {
	StripeID   string `json:"id"`
	StripeType string `json:"type"`
	ID         string `json:"event_id"`
	Type       string `json:"event_type"`
}

// peekEventEnvelope extracts a dedupe key from a raw webhook body without
// verifying its signature, so the WebhookRecord insert can happen before
// the (comparatively expensive) signature check — insert-first defeats
// verification-amplification replay floods (spec §4.6). It never fails:
// bodies that aren't parseable JSON, or that carry neither naming
// convention's ID field, fall back to a content digest as a synthetic ID.
func peekEventEnvelope(rawBody []byte) (eventID, eventType string) {
	var env eventEnvelope
	if err := json.Unmarshal(rawBody, &env); err == nil {
		if env.StripeID != "" || env.ID != "" {
			if env.StripeID != "" {
				eventID = env.StripeID
			} else {
				eventID = env.ID
			}
			if env.StripeType != "" {
				eventType = env.StripeType
			} else {
				eventType = env.Type
			}
			return eventID, eventType
		}
	}
	sum := sha256.Sum256(rawBody)
	return "unparsed:" + hex.EncodeToString(sum[:]), "unknown"
}

// Ingest verifies, dedupes, and synchronously dispatches an inbound
// processor webhook. The WebhookRecord is inserted before signature
// verification so a flood of unsigned/garbage requests can't be used to
// burn verification cycles; a unique-violation on the (tenant, event_id)
// insert is treated as an idempotent replay; its duplicate flag propagates
// back to the caller instead of being swallowed (C6).
func (s *webhookIngestService) Ingest(ctx context.Context, tenantID uuid.UUID, rawBody []byte, signatureHeader string) (bool, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("lookup tenant: %w", err))
	}
	if tenant == nil {
		return false, apperror.ErrNotFound("tenant")
	}

	client, err := s.factory.ForTenant(tenant.Slug)
	if err != nil {
		return false, apperror.ErrProcessorUnavailable(err)
	}

	peekID, peekType := peekEventEnvelope(rawBody)

	now := time.Now().UTC()
	record := &domain.WebhookRecord{
		ID:        uuid.New(),
		TenantID:  tenantID,
		EventID:   peekID,
		EventType: peekType,
		Status:    domain.WebhookReceived,
		Payload:   rawBody,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.webhookRepo.Create(ctx, record); err != nil {
		if errors.Is(err, ports.ErrDuplicateEvent) {
			s.log.Debug().Str("event_id", peekID).Msg("webhook: duplicate event, skipping")
			return true, nil
		}
		return false, apperror.ErrDatabaseError(fmt.Errorf("persist webhook record: %w", err))
	}

	event, err := client.VerifyAndDecode(rawBody, signatureHeader)
	if err != nil {
		s.log.Warn().Err(err).Str("tenant_id", tenantID.String()).Msg("webhook: signature verification failed")
		if uerr := s.webhookRepo.UpdateStatus(ctx, record.ID, domain.WebhookFailed, err.Error()); uerr != nil {
			s.log.Warn().Err(uerr).Str("event_id", record.EventID).Msg("webhook: failed to mark signature failure")
		}
		return false, apperror.ErrInvalidSignature()
	}

	fresh, err := s.replayGuard.CheckAndSet(ctx, tenantID, signatureHeader, 10*time.Minute)
	if err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("replay guard: %w", err))
	}
	if !fresh {
		if uerr := s.webhookRepo.UpdateStatus(ctx, record.ID, domain.WebhookFailed, "replayed signature"); uerr != nil {
			s.log.Warn().Err(uerr).Str("event_id", record.EventID).Msg("webhook: failed to mark replay")
		}
		return false, apperror.ErrSignatureReplayed()
	}

	// The peeked ID/type are provisional dedupe keys; once verified, the
	// record reflects the processor's cryptographically-authenticated
	// envelope for dispatch and logging.
	record.EventID = event.EventID
	record.EventType = event.EventType
	record.Payload = event.Payload

	if err := s.process(ctx, tenantID, record); err != nil {
		s.scheduleRetry(ctx, record, err)
		return false, nil
	}

	if err := s.webhookRepo.UpdateStatus(ctx, record.ID, domain.WebhookProcessed, ""); err != nil {
		s.log.Warn().Err(err).Str("event_id", record.EventID).Msg("webhook: failed to mark processed")
	}
	return false, nil
}

// process dispatches a decoded event to its domain effect. Event types
// with no routing entry are accepted and ignored, since processors emit
// many event kinds this engine has no opinion about.
func (s *webhookIngestService) process(ctx context.Context, tenantID uuid.UUID, record *domain.WebhookRecord) error {
	if record.EventType == "payment.failed" {
		return s.processPaymentFailed(ctx, tenantID, record)
	}
	if _, ok := disputeStatusByEventType[record.EventType]; ok {
		return s.processDispute(ctx, tenantID, record)
	}

	route, ok := inboundEventRouting[record.EventType]
	if !ok {
		s.log.Debug().Str("event_type", record.EventType).Msg("webhook: no routing for event type, accepting as no-op")
		return nil
	}

	var payload inboundEventPayload
	if err := json.Unmarshal(record.Payload, &payload); err != nil {
		return fmt.Errorf("decode event payload: %w", err)
	}

	_, err := s.ledgerSvc.PostEvent(ctx, tenantID, ports.PostLedgerEventRequest{
		CustomerID:       payload.CustomerID,
		InvoiceID:        payload.InvoiceID,
		EventType:        route.ledgerEvent,
		AmountDeltaCents: route.sign * payload.AmountCents,
		SourceEventID:    record.EventID,
	})
	return err
}

// processPaymentFailed advances the dunning state machine (§4.7) for the
// customer named in the event. This is the trigger the retry ladder built
// in PaymentRetryService hangs off of.
func (s *webhookIngestService) processPaymentFailed(ctx context.Context, tenantID uuid.UUID, record *domain.WebhookRecord) error {
	var payload paymentFailedPayload
	if err := json.Unmarshal(record.Payload, &payload); err != nil {
		return fmt.Errorf("decode payment.failed payload: %w", err)
	}

	failedAt := record.CreatedAt
	if payload.FailedAt != nil {
		failedAt = *payload.FailedAt
	}
	return s.paymentRetrySvc.RecordFailure(ctx, tenantID, payload.CustomerID, failedAt)
}

// processDispute upserts a Dispute row mirroring the processor's chargeback
// record and, on a closed-lost outcome, posts the ledger/GL adjustment that
// reflects the lost receivable.
func (s *webhookIngestService) processDispute(ctx context.Context, tenantID uuid.UUID, record *domain.WebhookRecord) error {
	status, ok := disputeStatusByEventType[record.EventType]
	if !ok {
		return fmt.Errorf("unmapped dispute event type: %s", record.EventType)
	}

	var payload disputeEventPayload
	if err := json.Unmarshal(record.Payload, &payload); err != nil {
		return fmt.Errorf("decode dispute payload: %w", err)
	}

	charge, err := s.chargeRepo.GetByProcessorChargeID(ctx, tenantID, payload.ProcessorChargeID)
	if err != nil {
		return fmt.Errorf("lookup charge for dispute: %w", err)
	}
	if charge == nil {
		return fmt.Errorf("dispute for unknown processor charge: %s", payload.ProcessorChargeID)
	}

	dispute := &domain.Dispute{
		ID:                 uuid.New(),
		TenantID:           tenantID,
		ChargeID:           charge.ID,
		ProcessorDisputeID: payload.ProcessorDisputeID,
		AmountCents:        payload.AmountCents,
		Status:             status,
		CreatedAt:          record.CreatedAt,
	}
	if status.IsTerminal() {
		closedAt := time.Now().UTC()
		dispute.ClosedAt = &closedAt
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.disputeRepo.Upsert(ctx, tx, tenantID, dispute); err != nil {
		return fmt.Errorf("upsert dispute: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	if status != domain.DisputeClosedLost {
		return nil
	}

	event, err := s.ledgerSvc.PostEvent(ctx, tenantID, ports.PostLedgerEventRequest{
		CustomerID:       charge.CustomerID,
		InvoiceID:        &charge.InvoiceID,
		EventType:        domain.LedgerEventDisputeLost,
		AmountDeltaCents: -payload.AmountCents,
		SourceEventID:    record.EventID,
	})
	if err != nil {
		return fmt.Errorf("post dispute-lost ledger event: %w", err)
	}
	return s.glSvc.Enqueue(ctx, tenantID, event)
}

func (s *webhookIngestService) scheduleRetry(ctx context.Context, record *domain.WebhookRecord, cause error) {
	attempt := record.AttemptCount + 1
	if s.ladder.Exhausted(attempt) {
		now := time.Now().UTC()
		if err := s.webhookRepo.MarkDead(ctx, record.ID, now); err != nil {
			s.log.Warn().Err(err).Str("event_id", record.EventID).Msg("webhook: failed to mark dead")
		}
		s.log.Error().Err(cause).Str("event_id", record.EventID).Msg("webhook: retries exhausted, dead-lettered")
		return
	}

	delay, _ := s.ladder.Next(attempt)
	nextAttemptAt := time.Now().UTC().Add(delay)
	if err := s.webhookRepo.ScheduleRetry(ctx, record.ID, nextAttemptAt, attempt); err != nil {
		s.log.Warn().Err(err).Str("event_id", record.EventID).Msg("webhook: failed to schedule retry")
	}
	s.log.Warn().Err(cause).Str("event_id", record.EventID).Int("attempt", attempt).Time("next_attempt_at", nextAttemptAt).Msg("webhook: processing failed, retry scheduled")
}

// RetryDue re-dispatches webhook records whose NextAttemptAt has elapsed.
// Each record was already signature-verified at ingestion time, so retry
// only re-runs the dispatch side, never re-verification.
func (s *webhookIngestService) RetryDue(ctx context.Context, asOf time.Time) (int, error) {
	records, err := s.webhookRepo.ListDueForRetry(ctx, asOf, 100)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("list due webhooks: %w", err))
	}

	processed := 0
	for i := range records {
		record := &records[i]
		if err := s.process(ctx, record.TenantID, record); err != nil {
			s.scheduleRetry(ctx, record, err)
			continue
		}
		if err := s.webhookRepo.UpdateStatus(ctx, record.ID, domain.WebhookProcessed, ""); err != nil {
			s.log.Warn().Err(err).Str("event_id", record.EventID).Msg("webhook: failed to mark processed")
			continue
		}
		processed++
	}
	return processed, nil
}
