package domain

import (
	"time"

	"github.com/google/uuid"
)

// RefundStatus mirrors the processor-side refund lifecycle.
type RefundStatus string

const (
	RefundPending   RefundStatus = "PENDING"
	RefundSucceeded RefundStatus = "SUCCEEDED"
	RefundFailed    RefundStatus = "FAILED"
)

// Refund is linked to exactly one charge and posts as a signed-negative
// ledger delta. ReferenceID is unique per tenant.
type Refund struct {
	ID                uuid.UUID    `json:"id"`
	TenantID          uuid.UUID    `json:"tenant_id"`
	ChargeID          uuid.UUID    `json:"charge_id"`
	ReferenceID       string       `json:"reference_id"`
	AmountCents       int64        `json:"amount_cents"`
	Reason            string       `json:"reason,omitempty"`
	Status            RefundStatus `json:"status"`
	ProcessorRefundID string       `json:"processor_refund_id,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	SettledAt         *time.Time   `json:"settled_at,omitempty"`
}
