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

// SubscriptionRepo implements ports.SubscriptionRepository, a read-mostly
// mirror of processor subscription state kept current by webhook
// ingestion (spec §4.5).
type SubscriptionRepo struct {
	pool Pool
}

// NewSubscriptionRepo creates a new SubscriptionRepo.
func NewSubscriptionRepo(pool Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

const subscriptionColumns = `id, tenant_id, customer_id, plan_code, status, current_period_start,
		current_period_end, cancel_at_period_end, processor_subscription_id, created_at, updated_at`

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	s := &domain.Subscription{}
	err := row.Scan(&s.ID, &s.TenantID, &s.CustomerID, &s.PlanCode, &s.Status, &s.CurrentPeriodStart,
		&s.CurrentPeriodEnd, &s.CancelAtPeriodEnd, &s.ProcessorSubscriptionID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// Upsert inserts or refreshes a subscription mirror keyed on
// (tenant_id, processor_subscription_id), mirroring the webhook's view of
// processor state without re-deriving billing periods locally.
func (r *SubscriptionRepo) Upsert(ctx context.Context, tenantID uuid.UUID, sub *domain.Subscription) error {
	query := `INSERT INTO subscriptions (` + subscriptionColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (tenant_id, processor_subscription_id) DO UPDATE
		SET plan_code = EXCLUDED.plan_code,
			status = EXCLUDED.status,
			current_period_start = EXCLUDED.current_period_start,
			current_period_end = EXCLUDED.current_period_end,
			cancel_at_period_end = EXCLUDED.cancel_at_period_end,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		sub.ID, tenantID, sub.CustomerID, sub.PlanCode, sub.Status, sub.CurrentPeriodStart,
		sub.CurrentPeriodEnd, sub.CancelAtPeriodEnd, sub.ProcessorSubscriptionID, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert subscription: %w", err)
	}
	return nil
}

// GetByID fetches a subscription mirror by ID, scoped to tenant.
func (r *SubscriptionRepo) GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE tenant_id = $1 AND id = $2`
	sub, err := scanSubscription(r.pool.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return sub, nil
}

// ListDueForInvoicing returns active subscriptions whose current billing
// period has elapsed as of asOf, i.e. the candidates for the next invoice
// generation pass.
func (r *SubscriptionRepo) ListDueForInvoicing(ctx context.Context, asOf time.Time) ([]domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions
		WHERE status = 'ACTIVE' AND current_period_end <= $1
		ORDER BY current_period_end ASC`
	rows, err := r.pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions due for invoicing: %w", err)
	}
	defer rows.Close()

	var out []domain.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription row: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}
