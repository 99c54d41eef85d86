package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReconciliationRunStatus tracks a single snapshot-diff pass.
type ReconciliationRunStatus string

const (
	ReconciliationRunning   ReconciliationRunStatus = "RUNNING"
	ReconciliationCompleted ReconciliationRunStatus = "COMPLETED"
	ReconciliationFailed    ReconciliationRunStatus = "FAILED"
)

// DivergenceType classifies a mismatch found between local ledger truth
// and the processor's view. Reconciliation only ever reports; it never
// auto-mutates the ledger (spec §4.8).
type DivergenceType string

const (
	DivergenceMissingLocal    DivergenceType = "MISSING_LOCAL"
	DivergenceMissingRemote   DivergenceType = "MISSING_REMOTE"
	DivergenceAmountMismatch  DivergenceType = "AMOUNT_MISMATCH"
	DivergenceStatusMismatch  DivergenceType = "STATUS_MISMATCH"
)

// ReconciliationRun is one execution of the reconciliation job against a
// processor account, bounded to a time window.
type ReconciliationRun struct {
	ID            uuid.UUID               `json:"id"`
	TenantID      uuid.UUID               `json:"tenant_id"`
	WindowStart   time.Time               `json:"window_start"`
	WindowEnd     time.Time               `json:"window_end"`
	Status        ReconciliationRunStatus `json:"status"`
	DivergenceCount int                   `json:"divergence_count"`
	StartedAt     time.Time               `json:"started_at"`
	CompletedAt   *time.Time              `json:"completed_at,omitempty"`
}

// ReconciliationDivergence is a single discrepancy surfaced by a run,
// recorded for operator triage rather than resolved automatically.
type ReconciliationDivergence struct {
	ID             uuid.UUID      `json:"id"`
	RunID          uuid.UUID      `json:"run_id"`
	TenantID       uuid.UUID      `json:"tenant_id"`
	DivergenceType DivergenceType `json:"divergence_type"`
	LocalSnapshot  string         `json:"local_snapshot,omitempty"`
	RemoteSnapshot string         `json:"remote_snapshot,omitempty"`
	ReferenceID    string         `json:"reference_id"`
	DetectedAt     time.Time      `json:"detected_at"`
	ResolvedAt     *time.Time     `json:"resolved_at,omitempty"`
}

// IsResolved reports whether an operator has annotated this divergence as
// triaged.
func (d *ReconciliationDivergence) IsResolved() bool {
	return d.ResolvedAt != nil
}
