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

type customerTestDeps struct {
	svc          *CustomerServiceImpl
	customerRepo *mocks.MockCustomerRepository
	invoiceRepo  *mocks.MockInvoiceRepository
	transactor   *mocks.MockDBTransactor
	ctrl         *gomock.Controller
}

func setupCustomerService(t *testing.T) *customerTestDeps {
	ctrl := gomock.NewController(t)
	d := &customerTestDeps{
		customerRepo: mocks.NewMockCustomerRepository(ctrl),
		invoiceRepo:  mocks.NewMockInvoiceRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewCustomerService(d.transactor, d.customerRepo, d.invoiceRepo, newTestLogger())
	return d
}

func TestCustomerService_CreateCustomer_Success(t *testing.T) {
	d := setupCustomerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()

	d.customerRepo.EXPECT().Create(ctx, tenantID, gomock.Any()).Return(nil)

	c, err := d.svc.CreateCustomer(ctx, tenantID, ports.CreateCustomerRequest{
		ExternalRef: "ext-1",
		Email:       "a@example.com",
		DisplayName: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DelinquencyNone, c.Delinquency)
	assert.Equal(t, tenantID, c.TenantID)
}

func TestCustomerService_CreateCustomer_MissingEmail(t *testing.T) {
	d := setupCustomerService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreateCustomer(context.Background(), uuid.New(), ports.CreateCustomerRequest{ExternalRef: "ext-1"})
	require.Error(t, err)
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	d := setupCustomerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	d.customerRepo.EXPECT().GetByID(ctx, tenantID, id).Return(nil, nil)

	_, err := d.svc.GetCustomer(ctx, tenantID, id)
	require.Error(t, err)
}

func TestCustomerService_GetCustomer_SoftDeleted(t *testing.T) {
	d := setupCustomerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	deletedAt := time.Now().UTC()
	d.customerRepo.EXPECT().GetByID(ctx, tenantID, id).Return(&domain.Customer{ID: id, TenantID: tenantID, DeletedAt: &deletedAt}, nil)

	_, err := d.svc.GetCustomer(ctx, tenantID, id)
	require.Error(t, err)
}

func TestCustomerService_RecomputeAging_BucketsCorrectly(t *testing.T) {
	d := setupCustomerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	tx := &mockTx{}
	asOf := time.Now().UTC()

	due1 := asOf.Add(-10 * 24 * time.Hour)
	due2 := asOf.Add(-45 * 24 * time.Hour)
	invoices := []domain.Invoice{
		{ID: uuid.New(), DueAt: &due1, TotalCents: 1000},
		{ID: uuid.New(), DueAt: &due2, TotalCents: 2000},
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.customerRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(&domain.Customer{ID: id, TenantID: tenantID}, nil)
	d.invoiceRepo.EXPECT().ListOpenForCustomer(ctx, tenantID, id).Return(invoices, nil)
	d.customerRepo.EXPECT().UpdateAging(ctx, tx, tenantID, id, domain.AgingBuckets{Days30: 1000, Days60: 2000}, int64(3000)).Return(nil)

	err := d.svc.RecomputeAging(ctx, tenantID, id, asOf)
	require.NoError(t, err)
}

func TestCustomerService_SoftDeleteCustomer(t *testing.T) {
	d := setupCustomerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	d.customerRepo.EXPECT().SoftDelete(ctx, tenantID, id).Return(nil)

	err := d.svc.SoftDeleteCustomer(ctx, tenantID, id)
	require.NoError(t, err)
}
