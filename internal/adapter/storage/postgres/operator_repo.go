package postgres

import (
	"context"
	"errors"
	"fmt"

	"ar-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OperatorRepo implements ports.OperatorRepository.
type OperatorRepo struct {
	pool Pool
}

// NewOperatorRepo creates a new OperatorRepo.
func NewOperatorRepo(pool Pool) *OperatorRepo {
	return &OperatorRepo{pool: pool}
}

const operatorColumns = "id, tenant_id, username, password_hash, role, status, created_at, updated_at"

func scanOperator(row pgx.Row) (*domain.Operator, error) {
	o := &domain.Operator{}
	err := row.Scan(
		&o.ID, &o.TenantID, &o.Username, &o.PasswordHash,
		&o.Role, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Create inserts a new operator account, scoped to its tenant.
func (r *OperatorRepo) Create(ctx context.Context, o *domain.Operator) error {
	query := `INSERT INTO operators (` + operatorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		o.ID, o.TenantID, o.Username, o.PasswordHash,
		o.Role, o.Status, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("operator username already exists for tenant: %w", err)
		}
		return fmt.Errorf("insert operator: %w", err)
	}
	return nil
}

// GetByID fetches an operator by ID within a tenant.
func (r *OperatorRepo) GetByID(ctx context.Context, tenantID uuid.UUID, id uuid.UUID) (*domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE tenant_id = $1 AND id = $2`

	o, err := scanOperator(r.pool.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operator by id: %w", err)
	}
	return o, nil
}

// GetByUsername fetches an operator by username within a tenant.
func (r *OperatorRepo) GetByUsername(ctx context.Context, tenantID uuid.UUID, username string) (*domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE tenant_id = $1 AND username = $2`

	o, err := scanOperator(r.pool.QueryRow(ctx, query, tenantID, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operator by username: %w", err)
	}
	return o, nil
}
