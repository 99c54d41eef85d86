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

// ChargeRepo implements ports.ChargeRepository.
type ChargeRepo struct {
	pool Pool
}

// NewChargeRepo creates a new ChargeRepo.
func NewChargeRepo(pool Pool) *ChargeRepo {
	return &ChargeRepo{pool: pool}
}

const chargeColumns = `id, tenant_id, customer_id, invoice_id, payment_method_id, amount_cents, currency,
		reference_id, processor_charge_id, status, failure_code, failure_message, created_at, updated_at`

func scanCharge(row pgx.Row) (*domain.Charge, error) {
	c := &domain.Charge{}
	err := row.Scan(
		&c.ID, &c.TenantID, &c.CustomerID, &c.InvoiceID, &c.PaymentMethodID, &c.AmountCents, &c.Currency,
		&c.ReferenceID, &c.ProcessorChargeID, &c.Status, &c.FailureCode, &c.FailureMessage, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Create inserts a new charge attempt within a transaction.
func (r *ChargeRepo) Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, c *domain.Charge) error {
	query := `INSERT INTO charges (` + chargeColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`
	_, err := tx.Exec(ctx, query,
		c.ID, tenantID, c.CustomerID, c.InvoiceID, c.PaymentMethodID, c.AmountCents, c.Currency,
		c.ReferenceID, c.ProcessorChargeID, c.Status, c.FailureCode, c.FailureMessage, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert charge: %w", err)
	}
	return nil
}

// GetByID fetches a charge scoped to tenantID.
func (r *ChargeRepo) GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE tenant_id = $1 AND id = $2`
	c, err := scanCharge(r.pool.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, fmt.Errorf("get charge by id: %w", err)
	}
	return c, nil
}

// GetByReference fetches a charge by its client-supplied reference ID, the
// idempotency anchor for charge attempts (spec §4.3).
func (r *ChargeRepo) GetByReference(ctx context.Context, tenantID uuid.UUID, referenceID string) (*domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE tenant_id = $1 AND reference_id = $2`
	c, err := scanCharge(r.pool.QueryRow(ctx, query, tenantID, referenceID))
	if err != nil {
		return nil, fmt.Errorf("get charge by reference: %w", err)
	}
	return c, nil
}

// GetByProcessorChargeID fetches a charge by the processor's own charge
// ID, used to correlate inbound webhooks to local state.
func (r *ChargeRepo) GetByProcessorChargeID(ctx context.Context, tenantID uuid.UUID, processorChargeID string) (*domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE tenant_id = $1 AND processor_charge_id = $2`
	c, err := scanCharge(r.pool.QueryRow(ctx, query, tenantID, processorChargeID))
	if err != nil {
		return nil, fmt.Errorf("get charge by processor id: %w", err)
	}
	return c, nil
}

// UpdateStatus records the processor's outcome for a charge attempt.
func (r *ChargeRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID, status domain.ChargeStatus, processorChargeID string, failureCode, failureMessage string) error {
	tag, err := tx.Exec(ctx, `UPDATE charges
		SET status=$1, processor_charge_id=$2, failure_code=$3, failure_message=$4, updated_at=NOW()
		WHERE tenant_id=$5 AND id=$6`, status, processorChargeID, failureCode, failureMessage, tenantID, id)
	if err != nil {
		return fmt.Errorf("update charge status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("charge not found: %s", id)
	}
	return nil
}

// ListCreatedSince returns charges created at or after since, the local
// side of the reconciliation snapshot diff.
func (r *ChargeRepo) ListCreatedSince(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]domain.Charge, error) {
	query := `SELECT ` + chargeColumns + ` FROM charges WHERE tenant_id = $1 AND created_at >= $2 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, tenantID, since)
	if err != nil {
		return nil, fmt.Errorf("list charges created since: %w", err)
	}
	defer rows.Close()

	var out []domain.Charge
	for rows.Next() {
		c, err := scanCharge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan charge row: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}
