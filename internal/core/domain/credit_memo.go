package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdjustmentReason codes a signed ledger correction.
type AdjustmentReason string

const (
	AdjustmentCreditIssued AdjustmentReason = "CREDIT_ISSUED"
	AdjustmentWriteOff     AdjustmentReason = "WRITE_OFF"
	AdjustmentDisputeLoss  AdjustmentReason = "DISPUTE_LOSS"
	AdjustmentCorrection   AdjustmentReason = "CORRECTION"
)

// CreditMemo is a signed, typed ledger correction with a reason code.
// AmountCents is stored positive; Reason determines the sign applied to
// the ledger.
type CreditMemo struct {
	ID          uuid.UUID        `json:"id"`
	TenantID    uuid.UUID        `json:"tenant_id"`
	CustomerID  uuid.UUID        `json:"customer_id"`
	InvoiceID   *uuid.UUID       `json:"invoice_id,omitempty"`
	AmountCents int64            `json:"amount_cents"`
	Reason      AdjustmentReason `json:"reason"`
	Memo        string           `json:"memo,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
