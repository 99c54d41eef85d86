package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethodStatus is the lifecycle state of a payment method reference.
type PaymentMethodStatus string

const (
	PaymentMethodPending     PaymentMethodStatus = "PENDING"
	PaymentMethodActive      PaymentMethodStatus = "ACTIVE"
	PaymentMethodSoftDeleted PaymentMethodStatus = "SOFT_DELETED"
)

// PaymentMethodRef is an opaque processor token plus non-PCI display
// metadata. The core never stores cardholder data directly.
type PaymentMethodRef struct {
	ID              uuid.UUID           `json:"id"`
	TenantID        uuid.UUID           `json:"tenant_id"`
	CustomerID      uuid.UUID           `json:"customer_id"`
	ProcessorToken  string              `json:"-"`
	Type            string              `json:"type"` // card, bank_account
	Last4           string              `json:"last4,omitempty"`
	Brand           string              `json:"brand,omitempty"`
	ExpiryMonth     int                 `json:"expiry_month,omitempty"`
	ExpiryYear      int                 `json:"expiry_year,omitempty"`
	BankTail        string              `json:"bank_tail,omitempty"`
	IsDefault       bool                `json:"is_default"`
	Status          PaymentMethodStatus `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// IsUsable reports whether the method can back a new charge.
func (p *PaymentMethodRef) IsUsable() bool {
	return p.Status == PaymentMethodActive
}
