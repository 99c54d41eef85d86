package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InvoiceRepo implements ports.InvoiceRepository.
type InvoiceRepo struct {
	pool Pool
}

// NewInvoiceRepo creates a new InvoiceRepo.
func NewInvoiceRepo(pool Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

const invoiceColumns = `id, tenant_id, customer_id, status, currency, line_items, subtotal_cents, tax_cents,
		total_cents, billing_period_start, billing_period_end, issued_at, due_at, paid_at, voided_at,
		created_at, updated_at`

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	i := &domain.Invoice{}
	var lineItemsJSON []byte
	err := row.Scan(
		&i.ID, &i.TenantID, &i.CustomerID, &i.Status, &i.Currency, &lineItemsJSON, &i.SubtotalCents, &i.TaxCents,
		&i.TotalCents, &i.BillingPeriodStart, &i.BillingPeriodEnd, &i.IssuedAt, &i.DueAt, &i.PaidAt, &i.VoidedAt,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(lineItemsJSON) > 0 {
		if err := json.Unmarshal(lineItemsJSON, &i.LineItems); err != nil {
			return nil, fmt.Errorf("unmarshal line items: %w", err)
		}
	}
	return i, nil
}

// Create inserts a new invoice within a transaction.
func (r *InvoiceRepo) Create(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, inv *domain.Invoice) error {
	lineItemsJSON, err := json.Marshal(inv.LineItems)
	if err != nil {
		return fmt.Errorf("marshal line items: %w", err)
	}
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`
	_, err = tx.Exec(ctx, query,
		inv.ID, tenantID, inv.CustomerID, inv.Status, inv.Currency, lineItemsJSON, inv.SubtotalCents, inv.TaxCents,
		inv.TotalCents, inv.BillingPeriodStart, inv.BillingPeriodEnd, inv.IssuedAt, inv.DueAt, inv.PaidAt, inv.VoidedAt,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID fetches an invoice scoped to tenantID (non-locking read).
func (r *InvoiceRepo) GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE tenant_id = $1 AND id = $2`
	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}
	return inv, nil
}

// GetByIDForUpdate fetches an invoice with pessimistic locking. Must be
// called within a transaction that already holds the customer lock
// (spec §5 lock order).
func (r *InvoiceRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE tenant_id = $1 AND id = $2 FOR UPDATE`
	inv, err := scanInvoice(tx.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, fmt.Errorf("get invoice for update: %w", err)
	}
	return inv, nil
}

// UpdateStatus transitions an invoice's lifecycle state within a transaction.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID, status domain.InvoiceStatus, paidAt *time.Time, voidedAt *time.Time) error {
	tag, err := tx.Exec(ctx, `UPDATE invoices SET status=$1, paid_at=$2, voided_at=$3, updated_at=NOW()
		WHERE tenant_id=$4 AND id=$5`, status, paidAt, voidedAt, tenantID, id)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice not found: %s", id)
	}
	return nil
}

// ListOpenForCustomer returns every non-terminal invoice for a customer,
// oldest due date first, for payment application ordering.
func (r *InvoiceRepo) ListOpenForCustomer(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE tenant_id = $1 AND customer_id = $2 AND status IN ('ISSUED','PARTIALLY_PAID','DISPUTED')
		ORDER BY due_at ASC NULLS LAST`
	return r.queryInvoices(ctx, query, tenantID, customerID)
}

// ListPastDue returns every invoice whose due date has elapsed and which
// remains uncollected, for the payment-retry and delinquency jobs.
func (r *InvoiceRepo) ListPastDue(ctx context.Context, tenantID uuid.UUID, asOf time.Time) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE tenant_id = $1 AND status IN ('ISSUED','PARTIALLY_PAID') AND due_at < $2
		ORDER BY due_at ASC`
	return r.queryInvoices(ctx, query, tenantID, asOf)
}

func (r *InvoiceRepo) queryInvoices(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()

	var out []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		out = append(out, *inv)
	}
	return out, rows.Err()
}

// List returns a filtered, paginated invoice listing for a tenant.
func (r *InvoiceRepo) List(ctx context.Context, tenantID uuid.UUID, params ports.InvoiceListParams) ([]domain.Invoice, int64, error) {
	page, pageSize := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize

	where := `WHERE tenant_id = $1`
	args := []any{tenantID}
	if params.CustomerID != nil {
		args = append(args, *params.CustomerID)
		where += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if params.Status != nil {
		args = append(args, *params.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if params.From != nil {
		args = append(args, *params.From)
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if params.To != nil {
		args = append(args, *params.To)
		where += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	args = append(args, pageSize, offset)
	query := fmt.Sprintf(`SELECT %s FROM invoices %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		invoiceColumns, where, len(args)-1, len(args))

	out, err := r.queryInvoices(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
