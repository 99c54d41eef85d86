package postgres

import (
	"context"
	"errors"
	"fmt"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerEventRepo implements ports.LedgerEventRepository as an append-only
// store, generalized from the teacher's audit_repo.go insert-only pattern.
type LedgerEventRepo struct {
	pool Pool
}

// NewLedgerEventRepo creates a new LedgerEventRepo.
func NewLedgerEventRepo(pool Pool) *LedgerEventRepo {
	return &LedgerEventRepo{pool: pool}
}

const ledgerEventColumns = `id, tenant_id, customer_id, invoice_id, event_type, amount_delta_cents,
		balance_before, balance_after, occurred_at, source_event_id`

// Create inserts a ledger event within a transaction. The unique
// constraint on (tenant_id, source_event_id) is the sole enforcement
// mechanism for at-most-once accounting (spec §4.2); callers must not
// pre-check existence and then insert separately, since that would race.
func (r *LedgerEventRepo) Create(ctx context.Context, tx pgx.Tx, event *domain.LedgerEvent) error {
	query := `INSERT INTO ledger_events (` + ledgerEventColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	_, err := tx.Exec(ctx, query,
		event.ID, event.TenantID, event.CustomerID, event.InvoiceID, event.EventType, event.AmountDeltaCents,
		event.BalanceBefore, event.BalanceAfter, event.OccurredAt, event.SourceEventID,
	)
	if err != nil {
		return fmt.Errorf("insert ledger event: %w", err)
	}
	return nil
}

// ExistsBySourceEventID reports whether a ledger event has already been
// posted for sourceEventID, for callers that want to short-circuit before
// attempting an insert that would otherwise hit the unique constraint.
func (r *LedgerEventRepo) ExistsBySourceEventID(ctx context.Context, tx pgx.Tx, tenantID uuid.UUID, sourceEventID string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ledger_events WHERE tenant_id = $1 AND source_event_id = $2)`,
		tenantID, sourceEventID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check ledger event existence: %w", err)
	}
	return exists, nil
}

// ListForCustomer returns the most recent ledger events for a customer.
func (r *LedgerEventRepo) ListForCustomer(ctx context.Context, tenantID uuid.UUID, customerID uuid.UUID, limit int) ([]domain.LedgerEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := `SELECT ` + ledgerEventColumns + ` FROM ledger_events
		WHERE tenant_id = $1 AND customer_id = $2 ORDER BY occurred_at DESC LIMIT $3`
	rows, err := r.pool.Query(ctx, query, tenantID, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger events: %w", err)
	}
	defer rows.Close()

	var out []domain.LedgerEvent
	for rows.Next() {
		e := domain.LedgerEvent{}
		if err := rows.Scan(&e.ID, &e.TenantID, &e.CustomerID, &e.InvoiceID, &e.EventType, &e.AmountDeltaCents,
			&e.BalanceBefore, &e.BalanceAfter, &e.OccurredAt, &e.SourceEventID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, fmt.Errorf("scan ledger event row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
