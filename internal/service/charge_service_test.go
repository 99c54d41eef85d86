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

type chargeTestDeps struct {
	svc         *ChargeServiceImpl
	tenantRepo  *mocks.MockTenantRepository
	invoiceRepo *mocks.MockInvoiceRepository
	chargeRepo  *mocks.MockChargeRepository
	pmRepo      *mocks.MockPaymentMethodRepository
	paymentRepo *mocks.MockPaymentApplicationRepository
	factory     *mocks.MockProcessorClientFactory
	client      *mocks.MockProcessorClient
	ledgerSvc   *mocks.MockLedgerService
	glSvc       *mocks.MockGLPostingService
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func setupChargeService(t *testing.T) *chargeTestDeps {
	ctrl := gomock.NewController(t)
	d := &chargeTestDeps{
		tenantRepo:  mocks.NewMockTenantRepository(ctrl),
		invoiceRepo: mocks.NewMockInvoiceRepository(ctrl),
		chargeRepo:  mocks.NewMockChargeRepository(ctrl),
		pmRepo:      mocks.NewMockPaymentMethodRepository(ctrl),
		paymentRepo: mocks.NewMockPaymentApplicationRepository(ctrl),
		factory:     mocks.NewMockProcessorClientFactory(ctrl),
		client:      mocks.NewMockProcessorClient(ctrl),
		ledgerSvc:   mocks.NewMockLedgerService(ctrl),
		glSvc:       mocks.NewMockGLPostingService(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewChargeService(d.transactor, d.tenantRepo, d.invoiceRepo, d.chargeRepo, d.pmRepo, d.paymentRepo, d.factory, d.ledgerSvc, d.glSvc, newTestLogger())
	return d
}

func TestChargeService_ChargeInvoice_IdempotentReturn(t *testing.T) {
	d := setupChargeService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	existing := &domain.Charge{ID: uuid.New(), ReferenceID: "ref-1"}

	d.chargeRepo.EXPECT().GetByReference(ctx, tenantID, "ref-1").Return(existing, nil)

	out, err := d.svc.ChargeInvoice(ctx, tenantID, ports.ChargeInvoiceRequest{ReferenceID: "ref-1"})
	require.NoError(t, err)
	assert.Equal(t, existing, out)
}

func TestChargeService_ChargeInvoice_SuccessPostsLedger(t *testing.T) {
	d := setupChargeService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, invoiceID, pmID, customerID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	tx := &mockTx{}

	invoice := &domain.Invoice{ID: invoiceID, TenantID: tenantID, CustomerID: customerID, Status: domain.InvoiceIssued, TotalCents: 2500, Currency: "usd"}
	pm := &domain.PaymentMethodRef{ID: pmID, Status: domain.PaymentMethodActive, ProcessorToken: "tok_1"}
	tenant := &domain.Tenant{ID: tenantID, Slug: "acme"}
	event := &domain.LedgerEvent{ID: uuid.New()}

	d.chargeRepo.EXPECT().GetByReference(ctx, tenantID, "ref-2").Return(nil, nil)
	d.invoiceRepo.EXPECT().GetByID(ctx, tenantID, invoiceID).Return(invoice, nil)
	d.pmRepo.EXPECT().GetByID(ctx, tenantID, pmID).Return(pm, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil).Times(2)
	d.chargeRepo.EXPECT().Create(ctx, tx, tenantID, gomock.Any()).Return(nil)
	d.tenantRepo.EXPECT().GetByID(ctx, tenantID).Return(tenant, nil)
	d.factory.EXPECT().ForTenant("acme").Return(d.client, nil)
	d.client.EXPECT().Charge(ctx, gomock.Any()).Return(&ports.ChargeResult{ProcessorChargeID: "ch_1", Status: "succeeded"}, nil)
	d.chargeRepo.EXPECT().UpdateStatus(ctx, tx, tenantID, gomock.Any(), domain.ChargeSucceeded, "ch_1", "", "").Return(nil)
	d.ledgerSvc.EXPECT().PostEvent(ctx, tenantID, gomock.Any()).Return(event, nil)
	d.glSvc.EXPECT().Enqueue(ctx, tenantID, event).Return(nil)

	out, err := d.svc.ChargeInvoice(ctx, tenantID, ports.ChargeInvoiceRequest{InvoiceID: invoiceID, PaymentMethodID: pmID, ReferenceID: "ref-2"})
	require.NoError(t, err)
	assert.Equal(t, domain.ChargeSucceeded, out.Status)
}

func TestChargeService_ChargeInvoice_InvoiceTerminal(t *testing.T) {
	d := setupChargeService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, invoiceID := uuid.New(), uuid.New()

	d.chargeRepo.EXPECT().GetByReference(ctx, tenantID, "ref-3").Return(nil, nil)
	d.invoiceRepo.EXPECT().GetByID(ctx, tenantID, invoiceID).Return(&domain.Invoice{ID: invoiceID, Status: domain.InvoicePaid}, nil)

	_, err := d.svc.ChargeInvoice(ctx, tenantID, ports.ChargeInvoiceRequest{InvoiceID: invoiceID, ReferenceID: "ref-3"})
	require.Error(t, err)
}

func TestChargeService_ApplyPayment_OverpaymentRejected(t *testing.T) {
	d := setupChargeService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, invoiceID, chargeID := uuid.New(), uuid.New(), uuid.New()
	tx := &mockTx{}

	charge := &domain.Charge{ID: chargeID, Status: domain.ChargeSucceeded, SettledAt: timePtr(time.Now()), Currency: "usd"}
	invoice := &domain.Invoice{ID: invoiceID, Status: domain.InvoiceIssued, TotalCents: 1000, Currency: "usd"}

	d.chargeRepo.EXPECT().GetByID(ctx, tenantID, chargeID).Return(charge, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.invoiceRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, invoiceID).Return(invoice, nil)
	d.paymentRepo.EXPECT().ListForInvoice(ctx, tenantID, invoiceID).Return(nil, nil)

	_, err := d.svc.ApplyPayment(ctx, tenantID, ports.ApplyPaymentRequest{ChargeID: chargeID, InvoiceID: invoiceID, AmountCents: 1500})
	require.Error(t, err)
}

func timePtr(t time.Time) *time.Time { return &t }
