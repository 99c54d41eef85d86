package service

import (
	"context"
	"testing"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconciliationTestDeps struct {
	svc        *ReconciliationServiceImpl
	repo       *mocks.MockReconciliationRepository
	chargeRepo *mocks.MockChargeRepository
	tenantRepo *mocks.MockTenantRepository
	factory    *mocks.MockProcessorClientFactory
	client     *mocks.MockProcessorClient
	ctrl       *gomock.Controller
}

func setupReconciliationService(t *testing.T) *reconciliationTestDeps {
	ctrl := gomock.NewController(t)
	d := &reconciliationTestDeps{
		repo:       mocks.NewMockReconciliationRepository(ctrl),
		chargeRepo: mocks.NewMockChargeRepository(ctrl),
		tenantRepo: mocks.NewMockTenantRepository(ctrl),
		factory:    mocks.NewMockProcessorClientFactory(ctrl),
		client:     mocks.NewMockProcessorClient(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewReconciliationService(d.repo, d.chargeRepo, d.tenantRepo, d.factory, newTestLogger())
	return d
}

func TestReconciliationService_RunReconciliation_CompletesWithNoDivergences(t *testing.T) {
	d := setupReconciliationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "acme"}

	d.repo.EXPECT().CreateRun(ctx, gomock.Any()).Return(nil)
	d.tenantRepo.EXPECT().GetByID(ctx, tenantID).Return(tenant, nil)
	d.factory.EXPECT().ForTenant("acme").Return(d.client, nil)
	d.chargeRepo.EXPECT().ListCreatedSince(ctx, tenantID, gomock.Any()).Return(nil, nil)
	d.client.EXPECT().ListCharges(ctx, gomock.Any()).Return(nil, nil)
	d.repo.EXPECT().CompleteRun(ctx, gomock.Any(), domain.ReconciliationCompleted, 0, gomock.Any()).Return(nil)

	run, err := d.svc.RunReconciliation(ctx, tenantID, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, domain.ReconciliationCompleted, run.Status)
	assert.Equal(t, tenantID, run.TenantID)
	assert.Equal(t, 0, run.DivergenceCount)
}

func TestReconciliationService_RunReconciliation_DetectsDivergences(t *testing.T) {
	d := setupReconciliationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "acme"}
	now := time.Now().UTC()

	local := []domain.Charge{
		{ID: uuid.New(), TenantID: tenantID, ProcessorChargeID: "ch_local_only", AmountCents: 1000, Status: domain.ChargeSucceeded, CreatedAt: now},
		{ID: uuid.New(), TenantID: tenantID, ProcessorChargeID: "ch_amount_mismatch", AmountCents: 1000, Status: domain.ChargeSucceeded, CreatedAt: now},
		{ID: uuid.New(), TenantID: tenantID, ProcessorChargeID: "ch_status_mismatch", AmountCents: 500, Status: domain.ChargePending, CreatedAt: now},
	}
	remote := []ports.ChargeSnapshot{
		{ProcessorChargeID: "ch_amount_mismatch", AmountCents: 2000, Status: "succeeded", CreatedAt: now},
		{ProcessorChargeID: "ch_status_mismatch", AmountCents: 500, Status: "succeeded", CreatedAt: now},
		{ProcessorChargeID: "ch_remote_only", AmountCents: 750, Status: "succeeded", CreatedAt: now},
	}

	d.repo.EXPECT().CreateRun(ctx, gomock.Any()).Return(nil)
	d.tenantRepo.EXPECT().GetByID(ctx, tenantID).Return(tenant, nil)
	d.factory.EXPECT().ForTenant("acme").Return(d.client, nil)
	d.chargeRepo.EXPECT().ListCreatedSince(ctx, tenantID, gomock.Any()).Return(local, nil)
	d.client.EXPECT().ListCharges(ctx, gomock.Any()).Return(remote, nil)
	d.repo.EXPECT().CreateDivergence(ctx, gomock.Any()).Return(nil).Times(4)
	d.repo.EXPECT().CompleteRun(ctx, gomock.Any(), domain.ReconciliationCompleted, 4, gomock.Any()).Return(nil)

	run, err := d.svc.RunReconciliation(ctx, tenantID, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 4, run.DivergenceCount)
}

func TestReconciliationService_ListUnresolved(t *testing.T) {
	d := setupReconciliationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	divergences := []domain.ReconciliationDivergence{{ID: uuid.New(), TenantID: tenantID}}

	d.repo.EXPECT().ListUnresolvedDivergences(ctx, tenantID).Return(divergences, nil)

	out, err := d.svc.ListUnresolved(ctx, tenantID)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
