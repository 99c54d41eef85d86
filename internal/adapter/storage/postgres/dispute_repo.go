package postgres

import (
	"context"
	"errors"
	"fmt"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DisputeRepo implements ports.DisputeRepository.
type DisputeRepo struct {
	pool Pool
}

// NewDisputeRepo creates a new DisputeRepo.
func NewDisputeRepo(pool Pool) *DisputeRepo {
	return &DisputeRepo{pool: pool}
}

const disputeColumns = `id, tenant_id, charge_id, processor_dispute_id, amount_cents, status, created_at, closed_at`

func scanDispute(row pgx.Row) (*domain.Dispute, error) {
	d := &domain.Dispute{}
	err := row.Scan(&d.ID, &d.TenantID, &d.ChargeID, &d.ProcessorDisputeID, &d.AmountCents, &d.Status, &d.CreatedAt, &d.ClosedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

// Upsert inserts or updates a dispute mirror keyed on (tenant, processor_dispute_id).
func (r *DisputeRepo) Upsert(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, d *domain.Dispute) error {
	query := `INSERT INTO disputes (` + disputeColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (tenant_id, processor_dispute_id) DO UPDATE
		SET status = EXCLUDED.status, closed_at = EXCLUDED.closed_at`
	_, err := tx.Exec(ctx, query, d.ID, tenantID, d.ChargeID, d.ProcessorDisputeID, d.AmountCents, d.Status, d.CreatedAt, d.ClosedAt)
	if err != nil {
		return fmt.Errorf("upsert dispute: %w", err)
	}
	return nil
}

// GetByProcessorDisputeID fetches a dispute by the processor's dispute ID.
func (r *DisputeRepo) GetByProcessorDisputeID(ctx context.Context, tenantID uuid.UUID, processorDisputeID string) (*domain.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE tenant_id = $1 AND processor_dispute_id = $2`
	d, err := scanDispute(r.pool.QueryRow(ctx, query, tenantID, processorDisputeID))
	if err != nil {
		return nil, fmt.Errorf("get dispute by processor id: %w", err)
	}
	return d, nil
}
