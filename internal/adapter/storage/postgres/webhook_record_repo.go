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

// WebhookRecordRepo implements ports.WebhookRecordRepository. Generalized
// from the teacher's webhook_repo.go, pointed the opposite direction:
// teacher tracks outbound delivery attempts, this tracks inbound
// ingestion attempts (spec C6).
type WebhookRecordRepo struct {
	pool Pool
}

// NewWebhookRecordRepo creates a new WebhookRecordRepo.
func NewWebhookRecordRepo(pool Pool) *WebhookRecordRepo {
	return &WebhookRecordRepo{pool: pool}
}

const webhookRecordColumns = `id, tenant_id, event_id, event_type, status, attempt_count,
		last_attempt_at, next_attempt_at, dead_at, payload, error, created_at, updated_at`

// ErrDuplicateEvent re-exports ports.ErrDuplicateEvent for callers already
// importing this package.
var ErrDuplicateEvent = ports.ErrDuplicateEvent

// Create inserts a new webhook ingestion record. Unique on
// (tenant_id, event_id); a violation surfaces as ErrDuplicateEvent so the
// ingest service can short-circuit before verifying the signature.
func (r *WebhookRecordRepo) Create(ctx context.Context, rec *domain.WebhookRecord) error {
	query := `INSERT INTO webhook_records (` + webhookRecordColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.TenantID, rec.EventID, rec.EventType, rec.Status, rec.AttemptCount,
		rec.LastAttemptAt, rec.NextAttemptAt, rec.DeadAt, rec.Payload, rec.Error, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicateEvent
		}
		return fmt.Errorf("insert webhook record: %w", err)
	}
	return nil
}

// GetByEventID fetches a webhook record by the processor's event ID.
func (r *WebhookRecordRepo) GetByEventID(ctx context.Context, tenantID uuid.UUID, eventID string) (*domain.WebhookRecord, error) {
	query := `SELECT ` + webhookRecordColumns + ` FROM webhook_records WHERE tenant_id = $1 AND event_id = $2`
	rec, err := scanWebhookRecord(r.pool.QueryRow(ctx, query, tenantID, eventID))
	if err != nil {
		return nil, fmt.Errorf("get webhook record by event id: %w", err)
	}
	return rec, nil
}

// UpdateStatus transitions a webhook record's processing state.
func (r *WebhookRecordRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.WebhookRecordStatus, errMsg string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE webhook_records SET status=$1, error=$2, updated_at=NOW() WHERE id=$3`, status, errMsg, id)
	if err != nil {
		return fmt.Errorf("update webhook record status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook record not found: %s", id)
	}
	return nil
}

// ScheduleRetry records a failed processing attempt and the next attempt time.
func (r *WebhookRecordRepo) ScheduleRetry(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time, attemptCount int) error {
	_, err := r.pool.Exec(ctx, `UPDATE webhook_records
		SET attempt_count=$1, last_attempt_at=NOW(), next_attempt_at=$2, status='RECEIVED', updated_at=NOW()
		WHERE id=$3`, attemptCount, nextAttemptAt, id)
	if err != nil {
		return fmt.Errorf("schedule webhook retry: %w", err)
	}
	return nil
}

// MarkDead flags a webhook record as permanently failed after exhausting retries.
func (r *WebhookRecordRepo) MarkDead(ctx context.Context, id uuid.UUID, deadAt time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE webhook_records SET status='FAILED', dead_at=$1, updated_at=NOW() WHERE id=$2`, deadAt, id)
	if err != nil {
		return fmt.Errorf("mark webhook dead: %w", err)
	}
	return nil
}

// ListDueForRetry returns webhook records whose next attempt is due.
func (r *WebhookRecordRepo) ListDueForRetry(ctx context.Context, asOf time.Time, limit int) ([]domain.WebhookRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := `SELECT ` + webhookRecordColumns + ` FROM webhook_records
		WHERE status = 'RECEIVED' AND dead_at IS NULL AND next_attempt_at <= $1
		ORDER BY next_attempt_at ASC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("list webhook records due for retry: %w", err)
	}
	defer rows.Close()

	var out []domain.WebhookRecord
	for rows.Next() {
		rec, err := scanWebhookRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan webhook record row: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func scanWebhookRecord(row pgx.Row) (*domain.WebhookRecord, error) {
	rec := &domain.WebhookRecord{}
	err := row.Scan(
		&rec.ID, &rec.TenantID, &rec.EventID, &rec.EventType, &rec.Status, &rec.AttemptCount,
		&rec.LastAttemptAt, &rec.NextAttemptAt, &rec.DeadAt, &rec.Payload, &rec.Error, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}
