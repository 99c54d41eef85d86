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

// mockTx implements pgx.Tx for testing, generalized from the teacher's
// payment_service_test.go embedding trick.
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

type ledgerTestDeps struct {
	svc          *LedgerServiceImpl
	ledgerRepo   *mocks.MockLedgerEventRepository
	customerRepo *mocks.MockCustomerRepository
	transactor   *mocks.MockDBTransactor
	ctrl         *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		ledgerRepo:   mocks.NewMockLedgerEventRepository(ctrl),
		customerRepo: mocks.NewMockCustomerRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewLedgerService(d.transactor, d.ledgerRepo, d.customerRepo, newTestLogger())
	return d
}

func TestLedgerService_PostEvent_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	customerID := uuid.New()
	tx := &mockTx{}

	req := ports.PostLedgerEventRequest{
		CustomerID:       customerID,
		EventType:        domain.LedgerEventInvoiceIssued,
		AmountDeltaCents: 5000,
		SourceEventID:    "invoice-issued-1",
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.ledgerRepo.EXPECT().ExistsBySourceEventID(ctx, tx, tenantID, "invoice-issued-1").Return(false, nil)
	d.customerRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, customerID).Return(&domain.Customer{
		ID:             customerID,
		TenantID:       tenantID,
		ARBalanceCents: 10000,
		Aging:          domain.AgingBuckets{Current: 10000},
	}, nil)
	d.ledgerRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.customerRepo.EXPECT().UpdateAging(ctx, tx, tenantID, customerID, domain.AgingBuckets{Current: 15000}, int64(15000)).Return(nil)

	event, err := d.svc.PostEvent(ctx, tenantID, req)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, int64(10000), event.BalanceBefore)
	assert.Equal(t, int64(15000), event.BalanceAfter)
}

func TestLedgerService_PostEvent_DuplicateSourceEventIsNoop(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	customerID := uuid.New()
	tx := &mockTx{}

	req := ports.PostLedgerEventRequest{
		CustomerID:       customerID,
		EventType:        domain.LedgerEventPaymentApplied,
		AmountDeltaCents: -5000,
		SourceEventID:    "payment-1",
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.ledgerRepo.EXPECT().ExistsBySourceEventID(ctx, tx, tenantID, "payment-1").Return(true, nil)

	event, err := d.svc.PostEvent(ctx, tenantID, req)
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestLedgerService_PostEvent_UnknownCustomer(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tenantID := uuid.New()
	customerID := uuid.New()
	tx := &mockTx{}

	req := ports.PostLedgerEventRequest{
		CustomerID:       customerID,
		EventType:        domain.LedgerEventWriteOff,
		AmountDeltaCents: -1000,
		SourceEventID:    "writeoff-1",
	}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.ledgerRepo.EXPECT().ExistsBySourceEventID(ctx, tx, tenantID, "writeoff-1").Return(false, nil)
	d.customerRepo.EXPECT().GetByIDForUpdate(ctx, tx, tenantID, customerID).Return(nil, nil)

	_, err := d.svc.PostEvent(ctx, tenantID, req)
	require.Error(t, err)
}
