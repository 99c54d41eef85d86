package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status InvoiceStatus
		want   bool
	}{
		{"draft", InvoiceDraft, false},
		{"issued", InvoiceIssued, false},
		{"partially paid", InvoicePartiallyPaid, false},
		{"paid", InvoicePaid, true},
		{"voided", InvoiceVoided, true},
		{"disputed", InvoiceDisputed, false},
		{"written off", InvoiceWrittenOff, true},
		{"uncollectible", InvoiceUncollectible, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestInvoice_AllocatedTotal(t *testing.T) {
	inv := &Invoice{
		LineItems: []LineItem{
			{Description: "plan", AmountCents: 1000, Quantity: 1},
			{Description: "seats", AmountCents: 500, Quantity: 3},
		},
	}
	assert.Equal(t, int64(1000+500*3), inv.AllocatedTotal())
}

func TestInvoice_DaysPastDue(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("no due date", func(t *testing.T) {
		inv := &Invoice{}
		assert.Equal(t, 0, inv.DaysPastDue(now))
	})

	t.Run("not yet due", func(t *testing.T) {
		due := now.Add(24 * time.Hour)
		inv := &Invoice{DueAt: &due}
		assert.Equal(t, 0, inv.DaysPastDue(now))
	})

	t.Run("past due", func(t *testing.T) {
		due := now.Add(-72 * time.Hour)
		inv := &Invoice{DueAt: &due}
		assert.Equal(t, 3, inv.DaysPastDue(now))
	})
}

func TestCharge_IsSettled(t *testing.T) {
	tests := []struct {
		name   string
		status ChargeStatus
		want   bool
	}{
		{"pending", ChargePending, false},
		{"succeeded", ChargeSucceeded, true},
		{"failed", ChargeFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Charge{Status: tt.status}
			assert.Equal(t, tt.want, c.IsSettled())
		})
	}
}

func TestSubscription_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		status SubscriptionStatus
		want   bool
	}{
		{"active", SubscriptionActive, true},
		{"past due", SubscriptionPastDue, false},
		{"canceled", SubscriptionCanceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Subscription{Status: tt.status}
			assert.Equal(t, tt.want, s.IsActive())
		})
	}
}

func TestDisputeStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status DisputeStatus
		want   bool
	}{
		{"opened", DisputeOpened, false},
		{"evidence submitted", DisputeEvidenceSubmitted, false},
		{"expired", DisputeExpired, true},
		{"closed won", DisputeClosedWon, true},
		{"closed lost", DisputeClosedLost, true},
		{"closed accepted", DisputeClosedAccepted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestAgingBuckets_Sum(t *testing.T) {
	b := AgingBuckets{Current: 100, Days30: 200, Days60: 300, Days90: 400, Days90P: 500}
	assert.Equal(t, int64(1500), b.Sum())
}

func TestCustomer_IsDeleted(t *testing.T) {
	t.Run("not deleted", func(t *testing.T) {
		c := &Customer{}
		assert.False(t, c.IsDeleted())
	})

	t.Run("deleted", func(t *testing.T) {
		now := time.Now().UTC()
		c := &Customer{DeletedAt: &now}
		assert.True(t, c.IsDeleted())
	})
}

func TestCustomer_IsSuspended(t *testing.T) {
	tests := []struct {
		name        string
		delinquency DelinquencyState
		want        bool
	}{
		{"none", DelinquencyNone, false},
		{"delinquent", DelinquencyDelinquent, false},
		{"grace", DelinquencyGrace, false},
		{"suspended", DelinquencySuspended, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Customer{Delinquency: tt.delinquency}
			assert.Equal(t, tt.want, c.IsSuspended())
		})
	}
}

func TestJournalIntent_Balanced(t *testing.T) {
	t.Run("balanced two lines", func(t *testing.T) {
		j := JournalIntent{Lines: []JournalLine{
			{AccountCode: "RECEIVABLE", DebitCents: 1000},
			{AccountCode: "REVENUE", CreditCents: 1000},
		}}
		assert.True(t, j.Balanced())
	})

	t.Run("unbalanced", func(t *testing.T) {
		j := JournalIntent{Lines: []JournalLine{
			{AccountCode: "RECEIVABLE", DebitCents: 1000},
			{AccountCode: "REVENUE", CreditCents: 900},
		}}
		assert.False(t, j.Balanced())
	})

	t.Run("single line never balances", func(t *testing.T) {
		j := JournalIntent{Lines: []JournalLine{
			{AccountCode: "RECEIVABLE", DebitCents: 0, CreditCents: 0},
		}}
		assert.False(t, j.Balanced())
	})

	t.Run("three-line balanced split", func(t *testing.T) {
		j := JournalIntent{Lines: []JournalLine{
			{AccountCode: "CASH", DebitCents: 1000},
			{AccountCode: "RECEIVABLE", CreditCents: 700},
			{AccountCode: "RECEIVABLE", CreditCents: 300},
		}}
		assert.True(t, j.Balanced())
	})
}

func TestARTrigger_CoversAllLedgerEventTypes(t *testing.T) {
	eventTypes := []LedgerEventType{
		LedgerEventInvoiceIssued,
		LedgerEventPaymentApplied,
		LedgerEventCreditIssued,
		LedgerEventWriteOff,
		LedgerEventRefundRecorded,
		LedgerEventDisputeLost,
	}

	for _, et := range eventTypes {
		entry, ok := ARTrigger[et]
		assert.True(t, ok, "missing ARTrigger entry for %s", et)
		assert.NotEmpty(t, entry.DR)
		assert.NotEmpty(t, entry.CR)
	}
}

func TestARTrigger_PaymentAppliedDebitsCashCreditsReceivable(t *testing.T) {
	entry := ARTrigger[LedgerEventPaymentApplied]
	assert.Equal(t, "CASH", entry.DR)
	assert.Equal(t, "RECEIVABLE", entry.CR)
}
