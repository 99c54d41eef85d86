package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionLogin              AuditAction = "LOGIN"
	AuditActionCustomerCreate     AuditAction = "CUSTOMER_CREATE"
	AuditActionInvoiceIssue       AuditAction = "INVOICE_ISSUE"
	AuditActionInvoiceVoid        AuditAction = "INVOICE_VOID"
	AuditActionInvoiceWriteOff    AuditAction = "INVOICE_WRITE_OFF"
	AuditActionChargeAttempt      AuditAction = "CHARGE_ATTEMPT"
	AuditActionRefundIssue        AuditAction = "REFUND_ISSUE"
	AuditActionWebhookIngest      AuditAction = "WEBHOOK_INGEST"
	AuditActionReconciliationRun  AuditAction = "RECONCILIATION_RUN"
	AuditActionPaymentMethodAttach AuditAction = "PAYMENT_METHOD_ATTACH"
)

// AuditLog records a single audited action in the system, scoped to the
// tenant it occurred in.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	TenantID     uuid.UUID   `json:"tenant_id"`
	OperatorID   *uuid.UUID  `json:"operator_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
