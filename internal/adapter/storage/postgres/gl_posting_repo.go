package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GLPostingRepo implements ports.GLPostingQueueRepository, the outbox
// backing at-least-once delivery of journal intents to the external GL
// service (spec §4.9), following the same enqueue/retry-ladder shape as
// webhook_record_repo.go.
type GLPostingRepo struct {
	pool Pool
}

// NewGLPostingRepo creates a new GLPostingRepo.
func NewGLPostingRepo(pool Pool) *GLPostingRepo {
	return &GLPostingRepo{pool: pool}
}

const glPostingColumns = `id, tenant_id, event_id, source_doc_type, source_doc_id, intent,
		status, reason, attempt_count, next_attempt_at, created_at, updated_at`

// Enqueue inserts a GL posting entry within the same transaction that
// recorded the triggering ledger event, so the two commit atomically.
func (r *GLPostingRepo) Enqueue(ctx context.Context, tx pgx.Tx, entry *domain.GLPostingQueueEntry) error {
	intentJSON, err := json.Marshal(entry.Intent)
	if err != nil {
		return fmt.Errorf("marshal journal intent: %w", err)
	}
	query := `INSERT INTO gl_posting_queue (` + glPostingColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	_, err = tx.Exec(ctx, query,
		entry.ID, entry.TenantID, entry.EventID, entry.SourceDocType, entry.SourceDocID, intentJSON,
		entry.Status, entry.Reason, entry.AttemptCount, entry.NextAttemptAt, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("enqueue gl posting: %w", err)
	}
	return nil
}

// UpdateStatus records the GL service's acceptance or rejection of a
// posting intent.
func (r *GLPostingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.GLQueueStatus, reason string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE gl_posting_queue SET status=$1, reason=$2, updated_at=NOW() WHERE id=$3`, status, reason, id)
	if err != nil {
		return fmt.Errorf("update gl posting status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("gl posting entry not found: %s", id)
	}
	return nil
}

// ScheduleRetry records a failed delivery attempt and the next retry time.
func (r *GLPostingRepo) ScheduleRetry(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time, attemptCount int) error {
	_, err := r.pool.Exec(ctx, `UPDATE gl_posting_queue
		SET attempt_count=$1, next_attempt_at=$2, status='PENDING', updated_at=NOW() WHERE id=$3`,
		attemptCount, nextAttemptAt, id)
	if err != nil {
		return fmt.Errorf("schedule gl posting retry: %w", err)
	}
	return nil
}

// ListDueForRetry returns queued postings whose next attempt is due.
func (r *GLPostingRepo) ListDueForRetry(ctx context.Context, asOf time.Time, limit int) ([]domain.GLPostingQueueEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := `SELECT ` + glPostingColumns + ` FROM gl_posting_queue
		WHERE status = 'PENDING' AND next_attempt_at <= $1
		ORDER BY next_attempt_at ASC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("list gl postings due for retry: %w", err)
	}
	defer rows.Close()

	var out []domain.GLPostingQueueEntry
	for rows.Next() {
		e := domain.GLPostingQueueEntry{}
		var intentJSON []byte
		if err := rows.Scan(&e.ID, &e.TenantID, &e.EventID, &e.SourceDocType, &e.SourceDocID, &intentJSON,
			&e.Status, &e.Reason, &e.AttemptCount, &e.NextAttemptAt, &e.CreatedAt, &e.UpdatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, fmt.Errorf("scan gl posting row: %w", err)
		}
		if err := json.Unmarshal(intentJSON, &e.Intent); err != nil {
			return nil, fmt.Errorf("unmarshal journal intent: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
