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

type refundTestDeps struct {
	svc        *RefundServiceImpl
	tenantRepo *mocks.MockTenantRepository
	chargeRepo *mocks.MockChargeRepository
	refundRepo *mocks.MockRefundRepository
	factory    *mocks.MockProcessorClientFactory
	client     *mocks.MockProcessorClient
	ledgerSvc  *mocks.MockLedgerService
	glSvc      *mocks.MockGLPostingService
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupRefundService(t *testing.T) *refundTestDeps {
	ctrl := gomock.NewController(t)
	d := &refundTestDeps{
		tenantRepo: mocks.NewMockTenantRepository(ctrl),
		chargeRepo: mocks.NewMockChargeRepository(ctrl),
		refundRepo: mocks.NewMockRefundRepository(ctrl),
		factory:    mocks.NewMockProcessorClientFactory(ctrl),
		client:     mocks.NewMockProcessorClient(ctrl),
		ledgerSvc:  mocks.NewMockLedgerService(ctrl),
		glSvc:      mocks.NewMockGLPostingService(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewRefundService(d.transactor, d.tenantRepo, d.chargeRepo, d.refundRepo, d.factory, d.ledgerSvc, d.glSvc, newTestLogger())
	return d
}

func TestRefundService_RefundCharge_ExceedsChargeAmount(t *testing.T) {
	d := setupRefundService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, chargeID := uuid.New(), uuid.New()
	charge := &domain.Charge{ID: chargeID, Status: domain.ChargeSucceeded, SettledAt: timePtr(time.Now()), AmountCents: 500}

	d.refundRepo.EXPECT().GetByReference(ctx, tenantID, "rf-1").Return(nil, nil)
	d.chargeRepo.EXPECT().GetByID(ctx, tenantID, chargeID).Return(charge, nil)

	_, err := d.svc.RefundCharge(ctx, tenantID, ports.RefundChargeRequest{ChargeID: chargeID, AmountCents: 600, ReferenceID: "rf-1"})
	require.Error(t, err)
}

func TestRefundService_RefundCharge_SuccessPostsNegativeLedger(t *testing.T) {
	d := setupRefundService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, chargeID, customerID, invoiceID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	tx := &mockTx{}
	charge := &domain.Charge{ID: chargeID, CustomerID: customerID, InvoiceID: invoiceID, Status: domain.ChargeSucceeded, SettledAt: timePtr(time.Now()), AmountCents: 1000, ProcessorChargeID: "ch_1"}
	tenant := &domain.Tenant{ID: tenantID, Slug: "acme"}
	event := &domain.LedgerEvent{ID: uuid.New()}

	d.refundRepo.EXPECT().GetByReference(ctx, tenantID, "rf-2").Return(nil, nil)
	d.chargeRepo.EXPECT().GetByID(ctx, tenantID, chargeID).Return(charge, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil).Times(2)
	d.refundRepo.EXPECT().Create(ctx, tx, tenantID, gomock.Any()).Return(nil)
	d.tenantRepo.EXPECT().GetByID(ctx, tenantID).Return(tenant, nil)
	d.factory.EXPECT().ForTenant("acme").Return(d.client, nil)
	d.client.EXPECT().Refund(ctx, gomock.Any()).Return(&ports.RefundResult{ProcessorRefundID: "re_1", Status: "succeeded"}, nil)
	d.refundRepo.EXPECT().UpdateStatus(ctx, tx, tenantID, gomock.Any(), domain.RefundSucceeded, "re_1").Return(nil)
	d.ledgerSvc.EXPECT().PostEvent(ctx, tenantID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, req ports.PostLedgerEventRequest) (*domain.LedgerEvent, error) {
			assert.Equal(t, int64(-700), req.AmountDeltaCents)
			return event, nil
		})
	d.glSvc.EXPECT().Enqueue(ctx, tenantID, event).Return(nil)

	out, err := d.svc.RefundCharge(ctx, tenantID, ports.RefundChargeRequest{ChargeID: chargeID, AmountCents: 700, ReferenceID: "rf-2"})
	require.NoError(t, err)
	assert.Equal(t, domain.RefundSucceeded, out.Status)
}
