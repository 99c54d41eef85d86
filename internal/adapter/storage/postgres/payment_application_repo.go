package postgres

import (
	"context"
	"errors"
	"fmt"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentApplicationRepo implements ports.PaymentApplicationRepository.
type PaymentApplicationRepo struct {
	pool Pool
}

// NewPaymentApplicationRepo creates a new PaymentApplicationRepo.
func NewPaymentApplicationRepo(pool Pool) *PaymentApplicationRepo {
	return &PaymentApplicationRepo{pool: pool}
}

const paymentApplicationColumns = `id, tenant_id, invoice_id, charge_id, allocated_cents, allocation_type, status, created_at`

func scanPaymentApplication(row pgx.Row) (*domain.PaymentApplication, error) {
	a := &domain.PaymentApplication{}
	err := row.Scan(&a.ID, &a.TenantID, &a.InvoiceID, &a.ChargeID, &a.AllocatedCents, &a.AllocationType, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a payment application within a transaction.
func (r *PaymentApplicationRepo) Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, a *domain.PaymentApplication) error {
	query := `INSERT INTO payment_applications (` + paymentApplicationColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := tx.Exec(ctx, query, a.ID, tenantID, a.InvoiceID, a.ChargeID, a.AllocatedCents, a.AllocationType, a.Status, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment application: %w", err)
	}
	return nil
}

// ListForInvoice returns every application allocated against an invoice,
// used to compute Σ(allocated) against invoice.TotalCents.
func (r *PaymentApplicationRepo) ListForInvoice(ctx context.Context, tenantID uuid.UUID, invoiceID uuid.UUID) ([]domain.PaymentApplication, error) {
	query := `SELECT ` + paymentApplicationColumns + ` FROM payment_applications WHERE tenant_id = $1 AND invoice_id = $2`
	return r.list(ctx, query, tenantID, invoiceID)
}

// ListForCharge returns every application a charge's funds were allocated into.
func (r *PaymentApplicationRepo) ListForCharge(ctx context.Context, tenantID uuid.UUID, chargeID uuid.UUID) ([]domain.PaymentApplication, error) {
	query := `SELECT ` + paymentApplicationColumns + ` FROM payment_applications WHERE tenant_id = $1 AND charge_id = $2`
	return r.list(ctx, query, tenantID, chargeID)
}

func (r *PaymentApplicationRepo) list(ctx context.Context, query string, args ...any) ([]domain.PaymentApplication, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query payment applications: %w", err)
	}
	defer rows.Close()

	var out []domain.PaymentApplication
	for rows.Next() {
		a, err := scanPaymentApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment application row: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}
