package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReconciliationRepo implements ports.ReconciliationRepository, grounded on
// livefire2015-ez-ledger's ledger_reconciliation_service.go snapshot-diff
// persistence: runs never mutate ledger truth, they only record what they
// found (spec §4.8).
type ReconciliationRepo struct {
	pool Pool
}

// NewReconciliationRepo creates a new ReconciliationRepo.
func NewReconciliationRepo(pool Pool) *ReconciliationRepo {
	return &ReconciliationRepo{pool: pool}
}

const reconciliationRunColumns = `id, tenant_id, window_start, window_end, status, divergence_count, started_at, completed_at`

const reconciliationDivergenceColumns = `id, run_id, tenant_id, divergence_type, local_snapshot,
		remote_snapshot, reference_id, detected_at, resolved_at`

// CreateRun inserts a new reconciliation run record in the RUNNING state.
func (r *ReconciliationRepo) CreateRun(ctx context.Context, run *domain.ReconciliationRun) error {
	query := `INSERT INTO reconciliation_runs (` + reconciliationRunColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := r.pool.Exec(ctx, query,
		run.ID, run.TenantID, run.WindowStart, run.WindowEnd, run.Status, run.DivergenceCount, run.StartedAt, run.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reconciliation run: %w", err)
	}
	return nil
}

// CompleteRun marks a run finished with its final divergence count.
func (r *ReconciliationRepo) CompleteRun(ctx context.Context, id uuid.UUID, status domain.ReconciliationRunStatus, divergenceCount int, completedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE reconciliation_runs SET status=$1, divergence_count=$2, completed_at=$3 WHERE id=$4`,
		status, divergenceCount, completedAt, id)
	if err != nil {
		return fmt.Errorf("complete reconciliation run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reconciliation run not found: %s", id)
	}
	return nil
}

// CreateDivergence records a single discrepancy surfaced by a run. This
// never touches ledger tables — divergences are operator-facing findings,
// not corrections.
func (r *ReconciliationRepo) CreateDivergence(ctx context.Context, divergence *domain.ReconciliationDivergence) error {
	query := `INSERT INTO reconciliation_divergences (` + reconciliationDivergenceColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := r.pool.Exec(ctx, query,
		divergence.ID, divergence.RunID, divergence.TenantID, divergence.DivergenceType, divergence.LocalSnapshot,
		divergence.RemoteSnapshot, divergence.ReferenceID, divergence.DetectedAt, divergence.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reconciliation divergence: %w", err)
	}
	return nil
}

// ListUnresolvedDivergences returns every divergence for a tenant that an
// operator has not yet triaged.
func (r *ReconciliationRepo) ListUnresolvedDivergences(ctx context.Context, tenantID uuid.UUID) ([]domain.ReconciliationDivergence, error) {
	query := `SELECT ` + reconciliationDivergenceColumns + ` FROM reconciliation_divergences
		WHERE tenant_id = $1 AND resolved_at IS NULL ORDER BY detected_at ASC`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list unresolved divergences: %w", err)
	}
	defer rows.Close()

	var out []domain.ReconciliationDivergence
	for rows.Next() {
		d := domain.ReconciliationDivergence{}
		if err := rows.Scan(&d.ID, &d.RunID, &d.TenantID, &d.DivergenceType, &d.LocalSnapshot,
			&d.RemoteSnapshot, &d.ReferenceID, &d.DetectedAt, &d.ResolvedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, fmt.Errorf("scan reconciliation divergence row: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
