package domain

import (
	"time"

	"github.com/google/uuid"
)

// AllocationType distinguishes automatic from manually-entered applications.
type AllocationType string

const (
	AllocationAuto   AllocationType = "AUTO"
	AllocationManual AllocationType = "MANUAL"
)

// ApplicationStatus is the lifecycle of a payment application.
type ApplicationStatus string

const (
	ApplicationPendingApply ApplicationStatus = "PENDING_APPLY"
	ApplicationApplied      ApplicationStatus = "APPLIED"
	ApplicationRejected     ApplicationStatus = "REJECTED"
)

// PaymentApplication allocates a processor payment to one invoice.
// Σ(allocated) across all applications for an invoice must not exceed
// invoice.TotalCents.
type PaymentApplication struct {
	ID              uuid.UUID         `json:"id"`
	TenantID        uuid.UUID         `json:"tenant_id"`
	InvoiceID       uuid.UUID         `json:"invoice_id"`
	ChargeID        uuid.UUID         `json:"charge_id"`
	AllocatedCents  int64             `json:"allocated_cents"`
	AllocationType  AllocationType    `json:"allocation_type"`
	Status          ApplicationStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}
