package postgres

import (
	"context"
	"errors"
	"fmt"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreditMemoRepo implements ports.CreditMemoRepository.
type CreditMemoRepo struct {
	pool Pool
}

// NewCreditMemoRepo creates a new CreditMemoRepo.
func NewCreditMemoRepo(pool Pool) *CreditMemoRepo {
	return &CreditMemoRepo{pool: pool}
}

const creditMemoColumns = `id, tenant_id, customer_id, invoice_id, amount_cents, reason, memo, created_at`

func scanCreditMemo(row pgx.Row) (*domain.CreditMemo, error) {
	m := &domain.CreditMemo{}
	err := row.Scan(&m.ID, &m.TenantID, &m.CustomerID, &m.InvoiceID, &m.AmountCents, &m.Reason, &m.Memo, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// Create inserts a credit memo within a transaction.
func (r *CreditMemoRepo) Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, m *domain.CreditMemo) error {
	query := `INSERT INTO credit_memos (` + creditMemoColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := tx.Exec(ctx, query, m.ID, tenantID, m.CustomerID, m.InvoiceID, m.AmountCents, m.Reason, m.Memo, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert credit memo: %w", err)
	}
	return nil
}

// ListForCustomer returns every credit memo issued to a customer.
func (r *CreditMemoRepo) ListForCustomer(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID) ([]domain.CreditMemo, error) {
	query := `SELECT ` + creditMemoColumns + ` FROM credit_memos WHERE tenant_id = $1 AND customer_id = $2 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list credit memos: %w", err)
	}
	defer rows.Close()

	var out []domain.CreditMemo
	for rows.Next() {
		m, err := scanCreditMemo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credit memo row: %w", err)
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}
