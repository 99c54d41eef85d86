package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft          InvoiceStatus = "DRAFT"
	InvoiceIssued         InvoiceStatus = "ISSUED"
	InvoicePartiallyPaid  InvoiceStatus = "PARTIALLY_PAID"
	InvoicePaid           InvoiceStatus = "PAID"
	InvoiceVoided         InvoiceStatus = "VOIDED"
	InvoiceDisputed       InvoiceStatus = "DISPUTED"
	InvoiceWrittenOff     InvoiceStatus = "WRITTEN_OFF"
	InvoiceUncollectible  InvoiceStatus = "UNCOLLECTIBLE"
)

// IsTerminal reports whether the invoice may no longer transition.
func (s InvoiceStatus) IsTerminal() bool {
	switch s {
	case InvoicePaid, InvoiceVoided, InvoiceWrittenOff:
		return true
	default:
		return false
	}
}

// LineItem is an immutable-after-issue component of an invoice total.
type LineItem struct {
	Description  string `json:"description"`
	AmountCents  int64  `json:"amount_cents"`
	Quantity     int64  `json:"quantity"`
}

// Invoice is the core AR document: what a customer owes for a billing
// period, and its collection state.
type Invoice struct {
	ID             uuid.UUID     `json:"id"`
	TenantID       uuid.UUID     `json:"tenant_id"`
	CustomerID     uuid.UUID     `json:"customer_id"`
	Status         InvoiceStatus `json:"status"`
	Currency       string        `json:"currency"`
	LineItems      []LineItem    `json:"line_items"`
	SubtotalCents  int64         `json:"subtotal_cents"`
	TaxCents       int64         `json:"tax_cents"`
	TotalCents     int64         `json:"total_cents"`
	BillingPeriodStart time.Time `json:"billing_period_start"`
	BillingPeriodEnd   time.Time `json:"billing_period_end"`
	IssuedAt       *time.Time    `json:"issued_at,omitempty"`
	DueAt          *time.Time    `json:"due_at,omitempty"`
	PaidAt         *time.Time    `json:"paid_at,omitempty"`
	VoidedAt       *time.Time    `json:"voided_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// AllocatedTotal sums line item amounts, used to validate TotalCents.
func (i *Invoice) AllocatedTotal() int64 {
	var sum int64
	for _, li := range i.LineItems {
		sum += li.AmountCents * li.Quantity
	}
	return sum
}

// DaysPastDue returns the number of whole days past due_at as of now; it
// returns 0 when there is no due date or the invoice is not yet past due.
func (i *Invoice) DaysPastDue(now time.Time) int {
	if i.DueAt == nil {
		return 0
	}
	d := now.Sub(*i.DueAt)
	if d <= 0 {
		return 0
	}
	return int(d.Hours() / 24)
}
