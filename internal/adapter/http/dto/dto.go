package dto

import "time"

// LoginRequest is the request body for operator login. Tenant scoping is
// resolved from TenantSlug, never inferred from the operator record alone
// (spec §7 tenant isolation).
type LoginRequest struct {
	TenantSlug string `json:"tenant_slug" binding:"required"`
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CreateCustomerRequest is the request body for customer creation.
type CreateCustomerRequest struct {
	ExternalRef string `json:"external_ref" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"display_name" binding:"max=200"`
}

// CustomerResponse is the response body for a customer.
type CustomerResponse struct {
	ID                 string `json:"id"`
	ExternalCustomerID string `json:"external_customer_id"`
	Email              string `json:"email"`
	DisplayName        string `json:"display_name"`
	ARBalanceCents     int64  `json:"ar_balance_cents"`
	Delinquency        string `json:"delinquency"`
	CreatedAt          string `json:"created_at"`
}

// CustomerListResponse wraps a paginated customer listing.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int64               `json:"total"`
}

// LineItemRequest is one invoice line item.
type LineItemRequest struct {
	Description string `json:"description" binding:"required,max=500"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Quantity    int64  `json:"quantity" binding:"required,gt=0"`
}

// CreateInvoiceRequest is the request body for invoice creation.
type CreateInvoiceRequest struct {
	CustomerID         string            `json:"customer_id" binding:"required,uuid"`
	LineItems          []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	Currency           string            `json:"currency" binding:"required,len=3"`
	BillingPeriodStart time.Time         `json:"billing_period_start"`
	BillingPeriodEnd   time.Time         `json:"billing_period_end"`
	DueAt              *time.Time        `json:"due_at,omitempty"`
}

// VoidInvoiceRequest is the request body for voiding an invoice.
type VoidInvoiceRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// WriteOffInvoiceRequest is the request body for writing off an invoice.
type WriteOffInvoiceRequest struct {
	Memo string `json:"memo" binding:"required,max=500"`
}

// InvoiceResponse is the response body for an invoice.
type InvoiceResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	Status        string `json:"status"`
	Currency      string `json:"currency"`
	SubtotalCents int64  `json:"subtotal_cents"`
	TotalCents    int64  `json:"total_cents"`
	IssuedAt      string `json:"issued_at,omitempty"`
	DueAt         string `json:"due_at,omitempty"`
	PaidAt        string `json:"paid_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// InvoiceListResponse wraps a paginated invoice listing.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Total int64              `json:"total"`
}

// AttachPaymentMethodRequest is the request body for storing a processor
// payment-method token. Raw card/bank fields are rejected upstream by the
// PCI guard middleware before this ever binds.
type AttachPaymentMethodRequest struct {
	CustomerID     string `json:"customer_id" binding:"required,uuid"`
	ProcessorToken string `json:"processor_token" binding:"required"`
	Type           string `json:"type" binding:"required,oneof=card bank_account"`
	Last4          string `json:"last4" binding:"omitempty,len=4"`
	Brand          string `json:"brand"`
	ExpiryMonth    int    `json:"expiry_month"`
	ExpiryYear     int    `json:"expiry_year"`
	MakeDefault    bool   `json:"make_default"`
}

// PaymentMethodResponse is the response body for a payment method.
type PaymentMethodResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Last4     string `json:"last4,omitempty"`
	Brand     string `json:"brand,omitempty"`
	IsDefault bool   `json:"is_default"`
	Status    string `json:"status"`
}

// ChargeInvoiceRequest is the request body for attempting a charge.
type ChargeInvoiceRequest struct {
	InvoiceID       string `json:"invoice_id" binding:"required,uuid"`
	PaymentMethodID string `json:"payment_method_id" binding:"required,uuid"`
	ReferenceID     string `json:"reference_id" binding:"required,max=100"`
}

// ApplyPaymentRequest is the request body for allocating a settled charge.
type ApplyPaymentRequest struct {
	ChargeID    string `json:"charge_id" binding:"required,uuid"`
	InvoiceID   string `json:"invoice_id" binding:"required,uuid"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
}

// ChargeResponse is the response body for a charge attempt.
type ChargeResponse struct {
	ID             string `json:"id"`
	InvoiceID      string `json:"invoice_id"`
	Status         string `json:"status"`
	AmountCents    int64  `json:"amount_cents"`
	Currency       string `json:"currency"`
	FailureCode    string `json:"failure_code,omitempty"`
	FailureMessage string `json:"failure_message,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// RefundChargeRequest is the request body for issuing a refund.
type RefundChargeRequest struct {
	ChargeID    string `json:"charge_id" binding:"required,uuid"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	ReferenceID string `json:"reference_id" binding:"required,max=100"`
	Reason      string `json:"reason" binding:"max=500"`
}

// RefundResponse is the response body for a refund.
type RefundResponse struct {
	ID          string `json:"id"`
	ChargeID    string `json:"charge_id"`
	Status      string `json:"status"`
	AmountCents int64  `json:"amount_cents"`
	CreatedAt   string `json:"created_at"`
}

// SubscriptionResponse is the response body for a subscription mirror.
type SubscriptionResponse struct {
	ID                 string `json:"id"`
	CustomerID         string `json:"customer_id"`
	PlanCode           string `json:"plan_code"`
	Status             string `json:"status"`
	CurrentPeriodStart string `json:"current_period_start"`
	CurrentPeriodEnd   string `json:"current_period_end"`
	CancelAtPeriodEnd  bool   `json:"cancel_at_period_end"`
}

// LedgerEventResponse is the response body for one ledger history entry.
type LedgerEventResponse struct {
	ID               string `json:"id"`
	EventType        string `json:"event_type"`
	AmountDeltaCents int64  `json:"amount_delta_cents"`
	BalanceAfter     int64  `json:"balance_after"`
	OccurredAt       string `json:"occurred_at"`
	SourceEventID    string `json:"source_event_id"`
}

// ReconciliationRunResponse is the response body for a reconciliation run.
type ReconciliationRunResponse struct {
	ID              string `json:"id"`
	WindowStart     string `json:"window_start"`
	WindowEnd       string `json:"window_end"`
	Status          string `json:"status"`
	DivergenceCount int    `json:"divergence_count"`
}

// DivergenceResponse is the response body for an unresolved divergence.
type DivergenceResponse struct {
	ID             string `json:"id"`
	DivergenceType string `json:"divergence_type"`
	ReferenceID    string `json:"reference_id"`
	DetectedAt     string `json:"detected_at"`
}
