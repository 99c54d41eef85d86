package service

import (
	"context"
	"fmt"
	"time"

	"ar-engine/internal/core/ports"
	"ar-engine/pkg/apperror"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	tenantRepo   ports.TenantRepository
	operatorRepo ports.OperatorRepository
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	tenantRepo ports.TenantRepository,
	operatorRepo ports.OperatorRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		tenantRepo:   tenantRepo,
		operatorRepo: operatorRepo,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
	}
}

// Login resolves the tenant by slug, validates the operator's credentials
// within that tenant, and returns a signed JWT scoped to both.
func (s *AuthServiceImpl) Login(ctx context.Context, tenantSlug, username, password string) (string, time.Time, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, tenantSlug)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find tenant: %w", err))
	}
	if tenant == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}
	if !tenant.IsActive() {
		return "", time.Time{}, apperror.ErrTenantSuspended()
	}

	operator, err := s.operatorRepo.GetByUsername(ctx, tenant.ID, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find operator: %w", err))
	}
	if operator == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, operator.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if !operator.IsActive() {
		return "", time.Time{}, apperror.ErrTenantSuspended()
	}

	token, expiry, err := s.tokenSvc.Generate(tenant.ID, operator.ID, operator.Role)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
