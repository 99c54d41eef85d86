package handler

import (
	"io"

	"ar-engine/internal/core/ports"
	"ar-engine/pkg/apperror"
	"ar-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles inbound processor webhook delivery. The
// processor has no operator bearer token, so the tenant is resolved from
// the path slug. Signature and dedupe checks happen inside
// WebhookIngestService; the cardholder-data scan is the router-wide
// PCIGuard middleware, which runs before this handler.
type WebhookHandler struct {
	webhookSvc ports.WebhookIngestService
	tenantRepo ports.TenantRepository
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookSvc ports.WebhookIngestService, tenantRepo ports.TenantRepository) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc, tenantRepo: tenantRepo}
}

// Ingest handles POST /webhooks/:tenant_slug.
func (h *WebhookHandler) Ingest(c *gin.Context) {
	slug := c.Param("tenant_slug")
	tenant, err := h.tenantRepo.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, apperror.ErrNotFound("tenant"))
		return
	}
	if tenant == nil {
		response.Error(c, apperror.ErrNotFound("tenant"))
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("unreadable request body"))
		return
	}

	sigHeader := c.GetHeader("X-Processor-Signature")

	duplicate, err := h.webhookSvc.Ingest(c.Request.Context(), tenant.ID, body, sigHeader)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"received": true, "duplicate": duplicate})
}
