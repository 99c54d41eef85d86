package postgres

import (
	"context"
	"errors"
	"fmt"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TenantRepo implements ports.TenantRepository.
type TenantRepo struct {
	pool Pool
}

// NewTenantRepo creates a new TenantRepo.
func NewTenantRepo(pool Pool) *TenantRepo {
	return &TenantRepo{pool: pool}
}

// Create inserts a new tenant into the database.
func (r *TenantRepo) Create(ctx context.Context, t *domain.Tenant) error {
	query := `INSERT INTO tenants (id, slug, processor_account_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Slug, t.ProcessorAccountID, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID fetches a tenant by its UUID.
func (r *TenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	query := `SELECT id, slug, processor_account_id, status, created_at, updated_at
		FROM tenants WHERE id = $1`

	t := &domain.Tenant{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Slug, &t.ProcessorAccountID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant by id: %w", err)
	}
	return t, nil
}

// ListActive returns every tenant in the active status, used by the
// nightly reconciliation sweep to enumerate what to run against.
func (r *TenantRepo) ListActive(ctx context.Context) ([]domain.Tenant, error) {
	query := `SELECT id, slug, processor_account_id, status, created_at, updated_at
		FROM tenants WHERE status = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, domain.TenantStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active tenants: %w", err)
	}
	defer rows.Close()

	var tenants []domain.Tenant
	for rows.Next() {
		var t domain.Tenant
		if err := rows.Scan(&t.ID, &t.Slug, &t.ProcessorAccountID, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tenants: %w", err)
	}
	return tenants, nil
}

// GetBySlug fetches a tenant by its URL-safe slug.
func (r *TenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	query := `SELECT id, slug, processor_account_id, status, created_at, updated_at
		FROM tenants WHERE slug = $1`

	t := &domain.Tenant{}
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&t.ID, &t.Slug, &t.ProcessorAccountID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant by slug: %w", err)
	}
	return t, nil
}
