package postgres

import (
	"context"
	"errors"
	"fmt"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RefundRepo implements ports.RefundRepository.
type RefundRepo struct {
	pool Pool
}

// NewRefundRepo creates a new RefundRepo.
func NewRefundRepo(pool Pool) *RefundRepo {
	return &RefundRepo{pool: pool}
}

const refundColumns = `id, tenant_id, charge_id, reference_id, amount_cents, reason, status, processor_refund_id, created_at, settled_at`

func scanRefund(row pgx.Row) (*domain.Refund, error) {
	r := &domain.Refund{}
	err := row.Scan(&r.ID, &r.TenantID, &r.ChargeID, &r.ReferenceID, &r.AmountCents, &r.Reason, &r.Status, &r.ProcessorRefundID, &r.CreatedAt, &r.SettledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return r, nil
}

// Create inserts a new refund attempt within a transaction.
func (r *RefundRepo) Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, refund *domain.Refund) error {
	query := `INSERT INTO refunds (` + refundColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	_, err := tx.Exec(ctx, query,
		refund.ID, tenantID, refund.ChargeID, refund.ReferenceID, refund.AmountCents, refund.Reason,
		refund.Status, refund.ProcessorRefundID, refund.CreatedAt, refund.SettledAt,
	)
	if err != nil {
		return fmt.Errorf("insert refund: %w", err)
	}
	return nil
}

// GetByReference fetches a refund by its client-supplied reference ID.
func (r *RefundRepo) GetByReference(ctx context.Context, tenantID uuid.UUID, referenceID string) (*domain.Refund, error) {
	query := `SELECT ` + refundColumns + ` FROM refunds WHERE tenant_id = $1 AND reference_id = $2`
	refund, err := scanRefund(r.pool.QueryRow(ctx, query, tenantID, referenceID))
	if err != nil {
		return nil, fmt.Errorf("get refund by reference: %w", err)
	}
	return refund, nil
}

// UpdateStatus records the processor's outcome for a refund attempt.
func (r *RefundRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID, status domain.RefundStatus, processorRefundID string) error {
	tag, err := tx.Exec(ctx, `UPDATE refunds SET status=$1, processor_refund_id=$2, settled_at=CASE WHEN $1='SUCCEEDED' THEN NOW() ELSE settled_at END
		WHERE tenant_id=$3 AND id=$4`, status, processorRefundID, tenantID, id)
	if err != nil {
		return fmt.Errorf("update refund status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refund not found: %s", id)
	}
	return nil
}
