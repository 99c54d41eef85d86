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

type paymentRetryTestDeps struct {
	svc          *PaymentRetryServiceImpl
	customerRepo *mocks.MockCustomerRepository
	transactor   *mocks.MockDBTransactor
	ctrl         *gomock.Controller
}

func setupPaymentRetryService(t *testing.T) *paymentRetryTestDeps {
	ctrl := gomock.NewController(t)
	d := &paymentRetryTestDeps{
		customerRepo: mocks.NewMockCustomerRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewPaymentRetryService(d.transactor, d.customerRepo, newTestLogger())
	return d
}

func TestPaymentRetryService_RecordFailure_BelowThresholdStaysActive(t *testing.T) {
	d := setupPaymentRetryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, customerID := uuid.New(), uuid.New()
	tx := &mockTx{}
	failedAt := time.Now().UTC()

	customer := &domain.Customer{ID: customerID, TenantID: tenantID, Delinquency: domain.DelinquencyActive, RetryCount: 1}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.customerRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, customerID).Return(customer, nil)
	d.customerRepo.EXPECT().UpdateDelinquency(ctx, tx, tenantID, customerID, domain.DelinquencyActive, 2, (*time.Time)(nil), (*time.Time)(nil)).Return(nil)

	err := d.svc.RecordFailure(ctx, tenantID, customerID, failedAt)
	require.NoError(t, err)
}

func TestPaymentRetryService_RecordFailure_CrossesThresholdSchedulesFirstRetry(t *testing.T) {
	d := setupPaymentRetryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, customerID := uuid.New(), uuid.New()
	tx := &mockTx{}
	failedAt := time.Now().UTC()

	customer := &domain.Customer{ID: customerID, TenantID: tenantID, Delinquency: domain.DelinquencyActive, RetryCount: 2}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.customerRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, customerID).Return(customer, nil)
	d.customerRepo.EXPECT().UpdateDelinquency(ctx, tx, tenantID, customerID, domain.DelinquencyDelinquent, 3, gomock.Not(gomock.Nil()), (*time.Time)(nil)).
		DoAndReturn(func(_ context.Context, _ interface{}, _, _ uuid.UUID, _ domain.DelinquencyState, _ int, nextRetryAt, _ *time.Time) error {
			assert.True(t, nextRetryAt.After(failedAt))
			assert.WithinDuration(t, failedAt.Add(24*time.Hour), *nextRetryAt, 3*time.Hour)
			return nil
		})

	err := d.svc.RecordFailure(ctx, tenantID, customerID, failedAt)
	require.NoError(t, err)
}

func TestPaymentRetryService_RetryDue_AdvancesDelinquentToNextRung(t *testing.T) {
	d := setupPaymentRetryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, customerID := uuid.New(), uuid.New()
	tx := &mockTx{}
	asOf := time.Now().UTC()
	nextRetryAt := asOf.Add(-time.Minute)

	customer := domain.Customer{ID: customerID, TenantID: tenantID, Delinquency: domain.DelinquencyDelinquent, RetryCount: 3, NextRetryAt: &nextRetryAt}

	d.customerRepo.EXPECT().ListDueForRetry(ctx, asOf, 100).Return([]domain.Customer{customer}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.customerRepo.EXPECT().UpdateDelinquency(ctx, tx, tenantID, customerID, domain.DelinquencyDelinquent, 4, gomock.Not(gomock.Nil()), (*time.Time)(nil)).Return(nil)

	count, err := d.svc.RetryDue(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPaymentRetryService_RetryDue_LadderExhaustedEntersGrace(t *testing.T) {
	d := setupPaymentRetryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, customerID := uuid.New(), uuid.New()
	tx := &mockTx{}
	asOf := time.Now().UTC()
	nextRetryAt := asOf.Add(-time.Minute)

	// retryCount=6 -> ladderPos after increment = 7-3+1 = 5, beyond the
	// 4-rung DefaultPaymentLadder, so the ladder is exhausted.
	customer := domain.Customer{ID: customerID, TenantID: tenantID, Delinquency: domain.DelinquencyDelinquent, RetryCount: 6, NextRetryAt: &nextRetryAt}

	d.customerRepo.EXPECT().ListDueForRetry(ctx, asOf, 100).Return([]domain.Customer{customer}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.customerRepo.EXPECT().UpdateDelinquency(ctx, tx, tenantID, customerID, domain.DelinquencyGrace, 7, (*time.Time)(nil), gomock.Not(gomock.Nil())).Return(nil)

	count, err := d.svc.RetryDue(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPaymentRetryService_RetryDue_GraceExpiresToSuspended(t *testing.T) {
	d := setupPaymentRetryService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, customerID := uuid.New(), uuid.New()
	tx := &mockTx{}
	asOf := time.Now().UTC()
	graceEnd := asOf.Add(-time.Hour)

	customer := domain.Customer{ID: customerID, TenantID: tenantID, Delinquency: domain.DelinquencyGrace, RetryCount: 7, GracePeriodEnd: &graceEnd}

	d.customerRepo.EXPECT().ListDueForRetry(ctx, asOf, 100).Return([]domain.Customer{customer}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.customerRepo.EXPECT().UpdateDelinquency(ctx, tx, tenantID, customerID, domain.DelinquencySuspended, 7, (*time.Time)(nil), (*time.Time)(nil)).Return(nil)

	count, err := d.svc.RetryDue(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
