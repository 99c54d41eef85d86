package postgres

import (
	"context"
	"errors"
	"fmt"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// IdempotencyRepo implements ports.IdempotencyRepository, the database
// source of truth behind the redis read-through cache (pkg/idempotency,
// adapter/storage/redis.IdempotencyCache). Generalized from the teacher's
// idempotency_repo.go to carry a request hash and response snapshot per
// spec C3 instead of a bare transaction pointer.
type IdempotencyRepo struct {
	pool Pool
}

// NewIdempotencyRepo creates a new IdempotencyRepo.
func NewIdempotencyRepo(pool Pool) *IdempotencyRepo {
	return &IdempotencyRepo{pool: pool}
}

// ErrDuplicateIdempotencyKey is returned by Create when (tenant_id, key)
// already exists.
var ErrDuplicateIdempotencyKey = errors.New("postgres: idempotency key already recorded")

// Create inserts an idempotency record. A unique-constraint violation on
// (tenant_id, key) surfaces as ErrDuplicateIdempotencyKey so the caller can
// fetch the original response instead of reprocessing the request.
func (r *IdempotencyRepo) Create(ctx context.Context, record *domain.IdempotencyRecord) error {
	query := `INSERT INTO idempotency_records (tenant_id, key, request_hash, status_code, response_body, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		record.TenantID, record.Key, record.RequestHash, record.StatusCode, record.ResponseBody, record.CreatedAt, record.ExpiresAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateIdempotencyKey
		}
		return fmt.Errorf("insert idempotency record: %w", err)
	}
	return nil
}

// Get fetches an idempotency record by tenant and key.
func (r *IdempotencyRepo) Get(ctx context.Context, tenantID uuid.UUID, key string) (*domain.IdempotencyRecord, error) {
	query := `SELECT tenant_id, key, request_hash, status_code, response_body, created_at, expires_at
		FROM idempotency_records WHERE tenant_id = $1 AND key = $2 AND expires_at > NOW()`
	record := &domain.IdempotencyRecord{}
	err := r.pool.QueryRow(ctx, query, tenantID, key).Scan(
		&record.TenantID, &record.Key, &record.RequestHash, &record.StatusCode, &record.ResponseBody, &record.CreatedAt, &record.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get idempotency record: %w", err)
	}
	return record, nil
}
