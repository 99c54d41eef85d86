package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEventType classifies the financial event that produced a delta.
type LedgerEventType string

const (
	LedgerEventInvoiceIssued    LedgerEventType = "INVOICE_ISSUED"
	LedgerEventPaymentApplied   LedgerEventType = "PAYMENT_APPLIED"
	LedgerEventRefundRecorded   LedgerEventType = "REFUND_RECORDED"
	LedgerEventCreditIssued     LedgerEventType = "CREDIT_ISSUED"
	LedgerEventWriteOff         LedgerEventType = "WRITE_OFF"
	LedgerEventDisputeLost      LedgerEventType = "DISPUTE_LOST"
)

// LedgerEvent is an immutable append-only record. Uniqueness on
// SourceEventID guarantees at-most-once accounting: a state transition
// that races or replays is absorbed by the unique constraint, not by
// application-level deduplication.
type LedgerEvent struct {
	ID               uuid.UUID       `json:"id"`
	TenantID         uuid.UUID       `json:"tenant_id"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	InvoiceID        *uuid.UUID      `json:"invoice_id,omitempty"`
	EventType        LedgerEventType `json:"event_type"`
	AmountDeltaCents int64           `json:"amount_delta_cents"`
	BalanceBefore    int64           `json:"balance_before"`
	BalanceAfter     int64           `json:"balance_after"`
	OccurredAt       time.Time       `json:"occurred_at"`
	SourceEventID    string          `json:"source_event_id"`
}
