package service

import (
	"context"
	"testing"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentMethodTestDeps struct {
	svc        *PaymentMethodServiceImpl
	pmRepo     *mocks.MockPaymentMethodRepository
	tenantRepo *mocks.MockTenantRepository
	factory    *mocks.MockProcessorClientFactory
	client     *mocks.MockProcessorClient
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupPaymentMethodService(t *testing.T) *paymentMethodTestDeps {
	ctrl := gomock.NewController(t)
	d := &paymentMethodTestDeps{
		pmRepo:     mocks.NewMockPaymentMethodRepository(ctrl),
		tenantRepo: mocks.NewMockTenantRepository(ctrl),
		factory:    mocks.NewMockProcessorClientFactory(ctrl),
		client:     mocks.NewMockProcessorClient(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewPaymentMethodService(d.transactor, d.pmRepo, d.tenantRepo, d.factory, newTestLogger())
	return d
}

func TestPaymentMethodService_AttachPaymentMethod_NoDefault(t *testing.T) {
	d := setupPaymentMethodService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, customerID := uuid.New(), uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "acme"}

	d.tenantRepo.EXPECT().GetByID(ctx, tenantID).Return(tenant, nil)
	d.factory.EXPECT().ForTenant("acme").Return(d.client, nil)
	d.client.EXPECT().GetPaymentMethod(ctx, "tok_visa").Return(&ports.PaymentMethodDetails{
		ProcessorToken: "tok_visa",
		Type:           "card",
		Brand:          "visa",
		Last4:          "4242",
		ExpiryMonth:    12,
		ExpiryYear:     2030,
	}, nil)
	d.pmRepo.EXPECT().Create(ctx, tenantID, gomock.Any()).Return(nil)

	pm, err := d.svc.AttachPaymentMethod(ctx, tenantID, ports.AttachPaymentMethodRequest{
		CustomerID:     customerID,
		ProcessorToken: "tok_visa",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentMethodActive, pm.Status)
	assert.Equal(t, "4242", pm.Last4)
	assert.Equal(t, "visa", pm.Brand)
}

func TestPaymentMethodService_AttachPaymentMethod_MissingToken(t *testing.T) {
	d := setupPaymentMethodService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.AttachPaymentMethod(context.Background(), uuid.New(), ports.AttachPaymentMethodRequest{CustomerID: uuid.New()})
	require.Error(t, err)
}

func TestPaymentMethodService_AttachPaymentMethod_MakeDefault(t *testing.T) {
	d := setupPaymentMethodService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, customerID := uuid.New(), uuid.New()
	tenant := &domain.Tenant{ID: tenantID, Slug: "acme"}
	tx := &mockTx{}

	d.tenantRepo.EXPECT().GetByID(ctx, tenantID).Return(tenant, nil)
	d.factory.EXPECT().ForTenant("acme").Return(d.client, nil)
	d.client.EXPECT().GetPaymentMethod(ctx, "tok_visa").Return(&ports.PaymentMethodDetails{ProcessorToken: "tok_visa", Type: "card"}, nil)
	d.pmRepo.EXPECT().Create(ctx, tenantID, gomock.Any()).Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.pmRepo.EXPECT().SetDefault(ctx, tx, tenantID, customerID, gomock.Any()).Return(nil)

	_, err := d.svc.AttachPaymentMethod(ctx, tenantID, ports.AttachPaymentMethodRequest{
		CustomerID:     customerID,
		ProcessorToken: "tok_visa",
		MakeDefault:    true,
	})
	require.NoError(t, err)
}

func TestPaymentMethodService_SetDefaultPaymentMethod_NotUsable(t *testing.T) {
	d := setupPaymentMethodService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, customerID, id := uuid.New(), uuid.New(), uuid.New()
	d.pmRepo.EXPECT().GetByID(ctx, tenantID, id).Return(&domain.PaymentMethodRef{ID: id, Status: domain.PaymentMethodSoftDeleted}, nil)

	err := d.svc.SetDefaultPaymentMethod(ctx, tenantID, customerID, id)
	require.Error(t, err)
}

func TestPaymentMethodService_SoftDeletePaymentMethod_NotFound(t *testing.T) {
	d := setupPaymentMethodService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	d.pmRepo.EXPECT().GetByID(ctx, tenantID, id).Return(nil, nil)

	err := d.svc.SoftDeletePaymentMethod(ctx, tenantID, id)
	require.Error(t, err)
}
