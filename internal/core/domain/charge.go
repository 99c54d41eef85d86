package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChargeStatus mirrors the processor-side lifecycle of a one-time charge.
type ChargeStatus string

const (
	ChargePending   ChargeStatus = "PENDING"
	ChargeSucceeded ChargeStatus = "SUCCEEDED"
	ChargeFailed    ChargeStatus = "FAILED"
)

// Charge records a processor-side money movement initiated by AR.
// ReferenceID is the caller-supplied domain idempotency key, unique per
// tenant.
type Charge struct {
	ID              uuid.UUID    `json:"id"`
	TenantID        uuid.UUID    `json:"tenant_id"`
	CustomerID      uuid.UUID    `json:"customer_id"`
	InvoiceID       uuid.UUID    `json:"invoice_id"`
	ReferenceID     string       `json:"reference_id"`
	PaymentMethodID uuid.UUID    `json:"payment_method_id"`
	AmountCents     int64        `json:"amount_cents"`
	Currency        string       `json:"currency"`
	Status          ChargeStatus `json:"status"`
	ProcessorChargeID string     `json:"processor_charge_id,omitempty"`
	FailureCode     string       `json:"failure_code,omitempty"`
	FailureMessage  string       `json:"failure_message,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	SettledAt       *time.Time   `json:"settled_at,omitempty"`
}

// IsSettled reports whether the charge succeeded and can back a refund.
func (c *Charge) IsSettled() bool {
	return c.Status == ChargeSucceeded
}
