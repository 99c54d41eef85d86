package middleware

import (
	"encoding/json"
	"regexp"
	"time"

	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// It maps HTTP methods and paths to audit actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			return
		}

		action, resourceType := mapPathToAction(c.Request.URL.Path, c.Request.Method)
		if action == "" {
			return
		}

		tenantID, _ := c.Get(CtxTenantID)
		tid, _ := tenantID.(uuid.UUID)

		var operatorID *uuid.UUID
		if oid, exists := c.Get(CtxOperatorID); exists {
			if id, ok := oid.(uuid.UUID); ok {
				operatorID = &id
			}
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			TenantID:     tid,
			OperatorID:   operatorID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceIDFromPath(c.Request.URL.Path),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

var (
	reInvoiceIssue = regexp.MustCompile(`^/invoices/[^/]+/issue$`)
	reInvoiceVoid  = regexp.MustCompile(`^/invoices/[^/]+/void$`)
	reResourceID   = regexp.MustCompile(`/([0-9a-fA-F-]{36})(/|$)`)
)

// mapPathToAction maps an AR engine REST path/method pair to the audit
// action it represents. Paths with no auditable meaning (reports, health)
// return an empty action and are skipped.
func mapPathToAction(path, method string) (domain.AuditAction, string) {
	switch {
	case path == "/auth/login" && method == "POST":
		return domain.AuditActionLogin, "session"
	case path == "/customers" && method == "POST":
		return domain.AuditActionCustomerCreate, "customer"
	case reInvoiceIssue.MatchString(path):
		return domain.AuditActionInvoiceIssue, "invoice"
	case reInvoiceVoid.MatchString(path):
		return domain.AuditActionInvoiceVoid, "invoice"
	case path == "/charges" && method == "POST":
		return domain.AuditActionChargeAttempt, "charge"
	case path == "/refunds" && method == "POST":
		return domain.AuditActionRefundIssue, "refund"
	case path == "/payment-methods" && method == "POST":
		return domain.AuditActionPaymentMethodAttach, "payment_method"
	}
	return "", ""
}

// resourceIDFromPath pulls the first UUID-shaped path segment, if any, to
// populate AuditLog.ResourceID without requiring every handler to record
// it explicitly.
func resourceIDFromPath(path string) string {
	m := reResourceID.FindStringSubmatch(path)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
