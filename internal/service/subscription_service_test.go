package service

import (
	"context"
	"testing"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type subscriptionTestDeps struct {
	svc     *SubscriptionServiceImpl
	subRepo *mocks.MockSubscriptionRepository
	ctrl    *gomock.Controller
}

func setupSubscriptionService(t *testing.T) *subscriptionTestDeps {
	ctrl := gomock.NewController(t)
	d := &subscriptionTestDeps{subRepo: mocks.NewMockSubscriptionRepository(ctrl), ctrl: ctrl}
	d.svc = NewSubscriptionService(d.subRepo, newTestLogger())
	return d
}

func TestSubscriptionService_SyncSubscription(t *testing.T) {
	d := setupSubscriptionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	sub := &domain.Subscription{ID: uuid.New(), Status: domain.SubscriptionActive}

	d.subRepo.EXPECT().Upsert(ctx, tenantID, sub).Return(nil)

	err := d.svc.SyncSubscription(ctx, tenantID, sub)
	require.NoError(t, err)
	assert.Equal(t, tenantID, sub.TenantID)
}

func TestSubscriptionService_GenerateDueInvoices_ExcludesCancelAtPeriodEnd(t *testing.T) {
	d := setupSubscriptionService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	asOf := time.Now().UTC()
	due := []domain.Subscription{
		{ID: uuid.New(), Status: domain.SubscriptionActive},
		{ID: uuid.New(), Status: domain.SubscriptionActive, CancelAtPeriodEnd: true},
		{ID: uuid.New(), Status: domain.SubscriptionPastDue},
	}

	d.subRepo.EXPECT().ListDueForInvoicing(ctx, asOf).Return(due, nil)

	count, err := d.svc.GenerateDueInvoices(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
