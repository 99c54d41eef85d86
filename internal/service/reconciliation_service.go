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

// ReconciliationServiceImpl implements ports.ReconciliationService: a
// snapshot-diff pass between the local charge ledger and the processor's
// own view of the same window (spec §4.8). It never mutates ledger state;
// every divergence it finds is recorded for operator triage.
type ReconciliationServiceImpl struct {
	repo       ports.ReconciliationRepository
	chargeRepo ports.ChargeRepository
	tenantRepo ports.TenantRepository
	factory    ports.ProcessorClientFactory
	log        zerolog.Logger
}

// NewReconciliationService creates a new ReconciliationServiceImpl.
func NewReconciliationService(
	repo ports.ReconciliationRepository,
	chargeRepo ports.ChargeRepository,
	tenantRepo ports.TenantRepository,
	factory ports.ProcessorClientFactory,
	log zerolog.Logger,
) *ReconciliationServiceImpl {
	return &ReconciliationServiceImpl{
		repo:       repo,
		chargeRepo: chargeRepo,
		tenantRepo: tenantRepo,
		factory:    factory,
		log:        log,
	}
}

// RunReconciliation opens a run, diffs the local and processor charge
// snapshots for the window, records every divergence found, and closes the
// run with the real count.
func (s *ReconciliationServiceImpl) RunReconciliation(ctx context.Context, tenantID uuid.UUID, window time.Duration) (*domain.ReconciliationRun, error) {
	now := time.Now().UTC()
	windowStart := now.Add(-window)
	run := &domain.ReconciliationRun{
		ID:          uuid.New(),
		TenantID:    tenantID,
		WindowStart: windowStart,
		WindowEnd:   now,
		Status:      domain.ReconciliationRunning,
		StartedAt:   now,
	}
	if err := s.repo.CreateRun(ctx, run); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create reconciliation run: %w", err))
	}

	client, err := s.clientForTenant(ctx, tenantID)
	if err != nil {
		s.failRun(ctx, run)
		return nil, err
	}

	local, err := s.chargeRepo.ListCreatedSince(ctx, tenantID, windowStart)
	if err != nil {
		s.failRun(ctx, run)
		return nil, apperror.InternalError(fmt.Errorf("list local charges: %w", err))
	}

	remote, err := client.ListCharges(ctx, windowStart)
	if err != nil {
		s.failRun(ctx, run)
		return nil, apperror.ErrProcessorUnavailable(err)
	}

	divergences := diffChargeSnapshots(run, local, remote, now)
	for i := range divergences {
		if err := s.repo.CreateDivergence(ctx, &divergences[i]); err != nil {
			s.failRun(ctx, run)
			return nil, apperror.InternalError(fmt.Errorf("record divergence: %w", err))
		}
	}

	completedAt := time.Now().UTC()
	if err := s.repo.CompleteRun(ctx, run.ID, domain.ReconciliationCompleted, len(divergences), completedAt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("complete reconciliation run: %w", err))
	}
	run.Status = domain.ReconciliationCompleted
	run.DivergenceCount = len(divergences)
	run.CompletedAt = &completedAt

	s.log.Info().
		Str("run_id", run.ID.String()).
		Time("window_start", run.WindowStart).
		Time("window_end", run.WindowEnd).
		Int("divergences", len(divergences)).
		Msg("reconciliation: run complete")
	return run, nil
}

func (s *ReconciliationServiceImpl) failRun(ctx context.Context, run *domain.ReconciliationRun) {
	if err := s.repo.CompleteRun(ctx, run.ID, domain.ReconciliationFailed, 0, time.Now().UTC()); err != nil {
		s.log.Warn().Err(err).Str("run_id", run.ID.String()).Msg("reconciliation: failed to mark run failed")
	}
}

// diffChargeSnapshots compares the local and remote charge views and
// returns every MISSING_LOCAL/MISSING_REMOTE/AMOUNT_MISMATCH/
// STATUS_MISMATCH divergence it finds, keyed on ProcessorChargeID.
func diffChargeSnapshots(run *domain.ReconciliationRun, local []domain.Charge, remote []ports.ChargeSnapshot, detectedAt time.Time) []domain.ReconciliationDivergence {
	localByProcessorID := make(map[string]domain.Charge, len(local))
	for _, c := range local {
		if c.ProcessorChargeID != "" {
			localByProcessorID[c.ProcessorChargeID] = c
		}
	}
	remoteByID := make(map[string]ports.ChargeSnapshot, len(remote))
	for _, r := range remote {
		remoteByID[r.ProcessorChargeID] = r
	}

	var out []domain.ReconciliationDivergence
	for id, c := range localByProcessorID {
		r, ok := remoteByID[id]
		if !ok {
			out = append(out, newDivergence(run, domain.DivergenceMissingRemote, id, detectedAt,
				fmt.Sprintf("amount=%d status=%s", c.AmountCents, c.Status), ""))
			continue
		}
		if c.AmountCents != r.AmountCents {
			out = append(out, newDivergence(run, domain.DivergenceAmountMismatch, id, detectedAt,
				fmt.Sprintf("amount=%d", c.AmountCents), fmt.Sprintf("amount=%d", r.AmountCents)))
		}
		if string(c.Status) != normalizeRemoteStatus(r.Status) {
			out = append(out, newDivergence(run, domain.DivergenceStatusMismatch, id, detectedAt,
				fmt.Sprintf("status=%s", c.Status), fmt.Sprintf("status=%s", r.Status)))
		}
	}
	for id, r := range remoteByID {
		if _, ok := localByProcessorID[id]; !ok {
			out = append(out, newDivergence(run, domain.DivergenceMissingLocal, id, detectedAt,
				"", fmt.Sprintf("amount=%d status=%s", r.AmountCents, r.Status)))
		}
	}
	return out
}

func normalizeRemoteStatus(status string) string {
	switch status {
	case "succeeded":
		return string(domain.ChargeSucceeded)
	case "pending":
		return string(domain.ChargePending)
	default:
		return string(domain.ChargeFailed)
	}
}

func newDivergence(run *domain.ReconciliationRun, divType domain.DivergenceType, referenceID string, detectedAt time.Time, local, remote string) domain.ReconciliationDivergence {
	return domain.ReconciliationDivergence{
		ID:             uuid.New(),
		RunID:          run.ID,
		TenantID:       run.TenantID,
		DivergenceType: divType,
		LocalSnapshot:  local,
		RemoteSnapshot: remote,
		ReferenceID:    referenceID,
		DetectedAt:     detectedAt,
	}
}

func (s *ReconciliationServiceImpl) clientForTenant(ctx context.Context, tenantID uuid.UUID) (ports.ProcessorClient, error) {
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

// ListUnresolved returns divergences an operator has not yet triaged.
func (s *ReconciliationServiceImpl) ListUnresolved(ctx context.Context, tenantID uuid.UUID) ([]domain.ReconciliationDivergence, error) {
	divergences, err := s.repo.ListUnresolvedDivergences(ctx, tenantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list unresolved divergences: %w", err))
	}
	return divergences, nil
}
