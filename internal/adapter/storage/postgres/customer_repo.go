package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CustomerRepo implements ports.CustomerRepository.
type CustomerRepo struct {
	pool Pool
}

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(pool Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

const customerColumns = `id, tenant_id, external_customer_id, email, display_name, default_payment_method_id,
		ar_balance_cents, aging_current, aging_30, aging_60, aging_90, aging_90_plus,
		delinquency, retry_count, next_retry_at, grace_period_end, created_at, updated_at, deleted_at`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(
		&c.ID, &c.TenantID, &c.ExternalCustomerID, &c.Email, &c.DisplayName, &c.DefaultPaymentMethodID,
		&c.ARBalanceCents, &c.Aging.Current, &c.Aging.Days30, &c.Aging.Days60, &c.Aging.Days90, &c.Aging.Days90P,
		&c.Delinquency, &c.RetryCount, &c.NextRetryAt, &c.GracePeriodEnd, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Create inserts a new customer scoped to tenantID.
func (r *CustomerRepo) Create(ctx context.Context, tenantID uuid.UUID, c *domain.Customer) error {
	query := `INSERT INTO customers (` + customerColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`

	_, err := r.pool.Exec(ctx, query,
		c.ID, tenantID, c.ExternalCustomerID, c.Email, c.DisplayName, c.DefaultPaymentMethodID,
		c.ARBalanceCents, c.Aging.Current, c.Aging.Days30, c.Aging.Days60, c.Aging.Days90, c.Aging.Days90P,
		c.Delinquency, c.RetryCount, c.NextRetryAt, c.GracePeriodEnd, c.CreatedAt, c.UpdatedAt, c.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches a customer scoped to tenantID (non-locking read).
func (r *CustomerRepo) GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tenant_id = $1 AND id = $2`
	c, err := scanCustomer(r.pool.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, fmt.Errorf("get customer by id: %w", err)
	}
	return c, nil
}

// GetByIDForUpdate fetches a customer with pessimistic locking. Must be
// called within a transaction; this is the first lock acquired in the
// customer -> subscription -> invoice -> charge -> refund lock order
// (spec §5).
func (r *CustomerRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tenant_id = $1 AND id = $2 FOR UPDATE`
	c, err := scanCustomer(tx.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, fmt.Errorf("get customer for update: %w", err)
	}
	return c, nil
}

// UpdateAging writes recomputed aging buckets and the derived AR balance
// within a transaction.
func (r *CustomerRepo) UpdateAging(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID, aging domain.AgingBuckets, balanceCents int64) error {
	query := `UPDATE customers
		SET aging_current=$1, aging_30=$2, aging_60=$3, aging_90=$4, aging_90_plus=$5, ar_balance_cents=$6, updated_at=NOW()
		WHERE tenant_id=$7 AND id=$8`
	tag, err := tx.Exec(ctx, query, aging.Current, aging.Days30, aging.Days60, aging.Days90, aging.Days90P, balanceCents, tenantID, id)
	if err != nil {
		return fmt.Errorf("update customer aging: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer not found: %s", id)
	}
	return nil
}

// UpdateDelinquency transitions a customer's collections state, persisting
// the retry counter alongside so the dunning ladder position survives a
// restart.
func (r *CustomerRepo) UpdateDelinquency(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, id uuid.UUID, state domain.DelinquencyState, retryCount int, nextRetryAt *time.Time, graceEnd *time.Time) error {
	query := `UPDATE customers
		SET delinquency=$1, retry_count=$2, next_retry_at=$3, grace_period_end=$4, updated_at=NOW()
		WHERE tenant_id=$5 AND id=$6`
	tag, err := tx.Exec(ctx, query, state, retryCount, nextRetryAt, graceEnd, tenantID, id)
	if err != nil {
		return fmt.Errorf("update customer delinquency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer not found: %s", id)
	}
	return nil
}

// ListDueForRetry returns customers across all tenants ready for their next
// dunning transition: DELINQUENT customers whose NextRetryAt has elapsed,
// or GRACE customers whose GracePeriodEnd has elapsed.
func (r *CustomerRepo) ListDueForRetry(ctx context.Context, asOf time.Time, limit int) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers
		WHERE (delinquency = $1 AND next_retry_at IS NOT NULL AND next_retry_at <= $3)
		   OR (delinquency = $2 AND grace_period_end IS NOT NULL AND grace_period_end <= $3)
		ORDER BY COALESCE(next_retry_at, grace_period_end) ASC LIMIT $4`
	rows, err := r.pool.Query(ctx, query, domain.DelinquencyDelinquent, domain.DelinquencyGrace, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("list customers due for retry: %w", err)
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// SoftDelete marks a customer deleted without removing its ledger trail.
func (r *CustomerRepo) SoftDelete(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) error {
	query := `UPDATE customers SET deleted_at = NOW(), updated_at = NOW() WHERE tenant_id = $1 AND id = $2 AND deleted_at IS NULL`
	tag, err := r.pool.Exec(ctx, query, tenantID, id)
	if err != nil {
		return fmt.Errorf("soft delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer not found or already deleted: %s", id)
	}
	return nil
}

// List returns a filtered, paginated customer list for a tenant.
func (r *CustomerRepo) List(ctx context.Context, tenantID uuid.UUID, params ports.CustomerListParams) ([]domain.Customer, int64, error) {
	page, pageSize := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize

	where := `WHERE tenant_id = $1 AND deleted_at IS NULL`
	args := []any{tenantID}
	if params.Delinquency != nil {
		args = append(args, *params.Delinquency)
		where += fmt.Sprintf(" AND delinquency = $%d", len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM customers ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	args = append(args, pageSize, offset)
	query := fmt.Sprintf(`SELECT %s FROM customers %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		customerColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan customer row: %w", err)
		}
		out = append(out, *c)
	}
	return out, total, rows.Err()
}
