package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports/mocks"
	"ar-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthService(t *testing.T) (
	*AuthServiceImpl,
	*mocks.MockTenantRepository,
	*mocks.MockOperatorRepository,
	*mocks.MockHashService,
	*mocks.MockTokenService,
	*gomock.Controller,
) {
	ctrl := gomock.NewController(t)
	tenantRepo := mocks.NewMockTenantRepository(ctrl)
	operatorRepo := mocks.NewMockOperatorRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	svc := NewAuthService(tenantRepo, operatorRepo, hashSvc, tokenSvc)
	return svc, tenantRepo, operatorRepo, hashSvc, tokenSvc, ctrl
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, tenantRepo, operatorRepo, hashSvc, tokenSvc, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	operatorID := uuid.New()

	tenant := &domain.Tenant{ID: tenantID, Slug: "acme", Status: domain.TenantStatusActive}
	operator := &domain.Operator{
		ID:           operatorID,
		TenantID:     tenantID,
		Username:     "ops_user",
		PasswordHash: "$argon2id$hashed",
		Role:         "admin",
		Status:       domain.OperatorStatusActive,
	}

	tenantRepo.EXPECT().GetBySlug(ctx, "acme").Return(tenant, nil)
	operatorRepo.EXPECT().GetByUsername(ctx, tenantID, "ops_user").Return(operator, nil)
	hashSvc.EXPECT().Verify("correct_password", "$argon2id$hashed").Return(true, nil)
	tokenSvc.EXPECT().Generate(tenantID, operatorID, "admin").Return("jwt_token_here", time.Now().Add(time.Hour), nil)

	token, _, err := svc.Login(ctx, "acme", "ops_user", "correct_password")
	require.NoError(t, err)
	assert.Equal(t, "jwt_token_here", token)
}

func TestAuthService_Login_UnknownTenant(t *testing.T) {
	svc, tenantRepo, _, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tenantRepo.EXPECT().GetBySlug(ctx, "ghost").Return(nil, nil)

	_, _, err := svc.Login(ctx, "ghost", "user", "password")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_TenantSuspended(t *testing.T) {
	svc, tenantRepo, _, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tenant := &domain.Tenant{ID: uuid.New(), Slug: "acme", Status: domain.TenantStatusSuspended}
	tenantRepo.EXPECT().GetBySlug(ctx, "acme").Return(tenant, nil)

	_, _, err := svc.Login(ctx, "acme", "ops_user", "password")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_003", appErr.Code)
}

func TestAuthService_Login_UnknownOperator(t *testing.T) {
	svc, tenantRepo, operatorRepo, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "acme", Status: domain.TenantStatusActive}
	tenantRepo.EXPECT().GetBySlug(ctx, "acme").Return(tenant, nil)
	operatorRepo.EXPECT().GetByUsername(ctx, tenantID, "nonexistent").Return(nil, nil)

	_, _, err := svc.Login(ctx, "acme", "nonexistent", "password")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, tenantRepo, operatorRepo, hashSvc, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "acme", Status: domain.TenantStatusActive}
	operator := &domain.Operator{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Username:     "ops_user",
		PasswordHash: "$argon2id$hashed",
		Status:       domain.OperatorStatusActive,
	}

	tenantRepo.EXPECT().GetBySlug(ctx, "acme").Return(tenant, nil)
	operatorRepo.EXPECT().GetByUsername(ctx, tenantID, "ops_user").Return(operator, nil)
	hashSvc.EXPECT().Verify("wrong_password", "$argon2id$hashed").Return(false, nil)

	_, _, err := svc.Login(ctx, "acme", "ops_user", "wrong_password")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_OperatorSuspended(t *testing.T) {
	svc, tenantRepo, operatorRepo, hashSvc, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "acme", Status: domain.TenantStatusActive}
	operator := &domain.Operator{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Username:     "ops_user",
		PasswordHash: "$argon2id$hashed",
		Status:       domain.OperatorStatusSuspended,
	}

	tenantRepo.EXPECT().GetBySlug(ctx, "acme").Return(tenant, nil)
	operatorRepo.EXPECT().GetByUsername(ctx, tenantID, "ops_user").Return(operator, nil)
	hashSvc.EXPECT().Verify("correct_password", "$argon2id$hashed").Return(true, nil)

	_, _, err := svc.Login(ctx, "acme", "ops_user", "correct_password")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_003", appErr.Code)
}
