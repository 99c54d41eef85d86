package postgres

import (
	"context"
	"errors"
	"fmt"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentMethodRepo implements ports.PaymentMethodRepository.
type PaymentMethodRepo struct {
	pool Pool
}

// NewPaymentMethodRepo creates a new PaymentMethodRepo.
func NewPaymentMethodRepo(pool Pool) *PaymentMethodRepo {
	return &PaymentMethodRepo{pool: pool}
}

const paymentMethodColumns = `id, tenant_id, customer_id, processor_token, type, last4, brand,
		expiry_month, expiry_year, bank_tail, is_default, status, created_at, updated_at`

func scanPaymentMethod(row pgx.Row) (*domain.PaymentMethodRef, error) {
	p := &domain.PaymentMethodRef{}
	err := row.Scan(
		&p.ID, &p.TenantID, &p.CustomerID, &p.ProcessorToken, &p.Type, &p.Last4, &p.Brand,
		&p.ExpiryMonth, &p.ExpiryYear, &p.BankTail, &p.IsDefault, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a new stored payment-method token reference.
func (r *PaymentMethodRepo) Create(ctx context.Context, tenantID uuid.UUID, pm *domain.PaymentMethodRef) error {
	query := `INSERT INTO payment_methods (` + paymentMethodColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`
	_, err := r.pool.Exec(ctx, query,
		pm.ID, tenantID, pm.CustomerID, pm.ProcessorToken, pm.Type, pm.Last4, pm.Brand,
		pm.ExpiryMonth, pm.ExpiryYear, pm.BankTail, pm.IsDefault, pm.Status, pm.CreatedAt, pm.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID fetches a payment method by id, scoped to tenantID.
func (r *PaymentMethodRepo) GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.PaymentMethodRef, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE tenant_id = $1 AND id = $2`
	pm, err := scanPaymentMethod(r.pool.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, fmt.Errorf("get payment method by id: %w", err)
	}
	return pm, nil
}

// GetDefaultForCustomer fetches the customer's current default payment method.
func (r *PaymentMethodRepo) GetDefaultForCustomer(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID) (*domain.PaymentMethodRef, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods
		WHERE tenant_id = $1 AND customer_id = $2 AND is_default = true AND status = 'ACTIVE'`
	pm, err := scanPaymentMethod(r.pool.QueryRow(ctx, query, tenantID, customerID))
	if err != nil {
		return nil, fmt.Errorf("get default payment method: %w", err)
	}
	return pm, nil
}

// ListForCustomer returns every stored payment method for a customer.
func (r *PaymentMethodRepo) ListForCustomer(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID) ([]domain.PaymentMethodRef, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods
		WHERE tenant_id = $1 AND customer_id = $2 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	var out []domain.PaymentMethodRef
	for rows.Next() {
		pm, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment method row: %w", err)
		}
		out = append(out, *pm)
	}
	return out, rows.Err()
}

// SetDefault clears the customer's prior default and marks id as the new
// default within a transaction, so the two writes never race.
func (r *PaymentMethodRepo) SetDefault(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, customerID uuid.UUID, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, `UPDATE payment_methods SET is_default = false, updated_at = NOW()
		WHERE tenant_id = $1 AND customer_id = $2 AND is_default = true`, tenantID, customerID); err != nil {
		return fmt.Errorf("clear prior default payment method: %w", err)
	}
	tag, err := tx.Exec(ctx, `UPDATE payment_methods SET is_default = true, updated_at = NOW()
		WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("set default payment method: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment method not found: %s", id)
	}
	return nil
}

// UpdateStatus transitions a payment method's lifecycle state.
func (r *PaymentMethodRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID, status domain.PaymentMethodStatus) error {
	tag, err := tx.Exec(ctx, `UPDATE payment_methods SET status = $1, updated_at = NOW() WHERE tenant_id = $2 AND id = $3`,
		status, tenantID, id)
	if err != nil {
		return fmt.Errorf("update payment method status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment method not found: %s", id)
	}
	return nil
}
