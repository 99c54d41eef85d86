package service

import (
	"context"
	"testing"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type invoiceTestDeps struct {
	svc            *InvoiceServiceImpl
	invoiceRepo    *mocks.MockInvoiceRepository
	paymentRepo    *mocks.MockPaymentApplicationRepository
	creditMemoRepo *mocks.MockCreditMemoRepository
	ledgerSvc      *mocks.MockLedgerService
	glSvc          *mocks.MockGLPostingService
	transactor     *mocks.MockDBTransactor
	ctrl           *gomock.Controller
}

func setupInvoiceService(t *testing.T) *invoiceTestDeps {
	ctrl := gomock.NewController(t)
	d := &invoiceTestDeps{
		invoiceRepo:    mocks.NewMockInvoiceRepository(ctrl),
		paymentRepo:    mocks.NewMockPaymentApplicationRepository(ctrl),
		creditMemoRepo: mocks.NewMockCreditMemoRepository(ctrl),
		ledgerSvc:      mocks.NewMockLedgerService(ctrl),
		glSvc:          mocks.NewMockGLPostingService(ctrl),
		transactor:     mocks.NewMockDBTransactor(ctrl),
		ctrl:           ctrl,
	}
	d.svc = NewInvoiceService(d.transactor, d.invoiceRepo, d.paymentRepo, d.creditMemoRepo, d.ledgerSvc, d.glSvc, newTestLogger())
	return d
}

func TestInvoiceService_CreateInvoice_ComputesTotals(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.invoiceRepo.EXPECT().Create(ctx, tx, tenantID, gomock.Any()).Return(nil)

	inv, err := d.svc.CreateInvoice(ctx, tenantID, ports.CreateInvoiceRequest{
		CustomerID: uuid.New(),
		Currency:   "usd",
		LineItems:  []domain.LineItem{{Description: "seat", AmountCents: 500, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), inv.TotalCents)
	assert.Equal(t, domain.InvoiceDraft, inv.Status)
}

func TestInvoiceService_CreateInvoice_NoLineItems(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreateInvoice(context.Background(), uuid.New(), ports.CreateInvoiceRequest{Currency: "usd"})
	require.Error(t, err)
}

func TestInvoiceService_IssueInvoice_PostsLedgerAndGL(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id, customerID := uuid.New(), uuid.New(), uuid.New()
	tx := &mockTx{}

	invoice := &domain.Invoice{ID: id, TenantID: tenantID, CustomerID: customerID, Status: domain.InvoiceDraft, TotalCents: 1500}
	event := &domain.LedgerEvent{ID: uuid.New(), EventType: domain.LedgerEventInvoiceIssued}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.invoiceRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(invoice, nil)
	d.invoiceRepo.EXPECT().UpdateStatus(ctx, tx, tenantID, id, domain.InvoiceIssued, nil, nil).Return(nil)
	d.ledgerSvc.EXPECT().PostEvent(ctx, tenantID, gomock.Any()).Return(event, nil)
	d.glSvc.EXPECT().Enqueue(ctx, tenantID, event).Return(nil)

	out, err := d.svc.IssueInvoice(ctx, tenantID, id)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceIssued, out.Status)
}

func TestInvoiceService_IssueInvoice_RejectsNonDraft(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.invoiceRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(&domain.Invoice{ID: id, Status: domain.InvoiceIssued}, nil)

	_, err := d.svc.IssueInvoice(ctx, tenantID, id)
	require.Error(t, err)
}

func TestInvoiceService_VoidInvoice_RejectsTerminal(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.invoiceRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(&domain.Invoice{ID: id, Status: domain.InvoicePaid}, nil)

	_, err := d.svc.VoidInvoice(ctx, tenantID, id, "customer requested")
	require.Error(t, err)
}

func TestInvoiceService_WriteOffInvoice_PostsOutstandingOnly(t *testing.T) {
	d := setupInvoiceService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID, id, customerID := uuid.New(), uuid.New(), uuid.New()
	tx := &mockTx{}

	invoice := &domain.Invoice{ID: id, TenantID: tenantID, CustomerID: customerID, Status: domain.InvoiceIssued, TotalCents: 1000}
	applications := []domain.PaymentApplication{{Status: domain.ApplicationApplied, AllocatedCents: 400}}
	event := &domain.LedgerEvent{ID: uuid.New(), EventType: domain.LedgerEventWriteOff}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.invoiceRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, id).Return(invoice, nil)
	d.paymentRepo.EXPECT().ListForInvoice(ctx, tenantID, id).Return(applications, nil)
	d.invoiceRepo.EXPECT().UpdateStatus(ctx, tx, tenantID, id, domain.InvoiceWrittenOff, nil, nil).Return(nil)
	d.creditMemoRepo.EXPECT().Create(ctx, tx, tenantID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, _ uuid.UUID, memo *domain.CreditMemo) error {
			assert.Equal(t, int64(600), memo.AmountCents)
			assert.Equal(t, domain.AdjustmentWriteOff, memo.Reason)
			return nil
		})
	d.ledgerSvc.EXPECT().PostEvent(ctx, tenantID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, req ports.PostLedgerEventRequest) (*domain.LedgerEvent, error) {
			assert.Equal(t, int64(-600), req.AmountDeltaCents)
			return event, nil
		})
	d.glSvc.EXPECT().Enqueue(ctx, tenantID, event).Return(nil)

	out, err := d.svc.WriteOffInvoice(ctx, tenantID, id, "uncollectible")
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceWrittenOff, out.Status)
}
