package handler

import (
	"strconv"
	"time"

	"ar-engine/internal/adapter/http/dto"
	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/pkg/apperror"
	"ar-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice lifecycle endpoints.
type InvoiceHandler struct {
	invoiceSvc ports.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceSvc ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceSvc: invoiceSvc}
}

// CreateInvoice handles POST /invoices.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid customer_id"))
		return
	}

	lineItems := make([]domain.LineItem, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		lineItems = append(lineItems, domain.LineItem{
			Description: li.Description,
			AmountCents: li.AmountCents,
			Quantity:    li.Quantity,
		})
	}

	var dueAt time.Time
	if req.DueAt != nil {
		dueAt = *req.DueAt
	}

	inv, err := h.invoiceSvc.CreateInvoice(c.Request.Context(), tenantID, ports.CreateInvoiceRequest{
		CustomerID:         customerID,
		LineItems:          lineItems,
		Currency:           req.Currency,
		BillingPeriodStart: req.BillingPeriodStart,
		BillingPeriodEnd:   req.BillingPeriodEnd,
		DueAt:              dueAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toInvoiceResponse(inv))
}

// IssueInvoice handles POST /invoices/:id/issue.
func (h *InvoiceHandler) IssueInvoice(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.Validation("invalid invoice id"))
		return
	}

	inv, err := h.invoiceSvc.IssueInvoice(c.Request.Context(), tenantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toInvoiceResponse(inv))
}

// VoidInvoice handles POST /invoices/:id/void.
func (h *InvoiceHandler) VoidInvoice(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.Validation("invalid invoice id"))
		return
	}

	var req dto.VoidInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	inv, err := h.invoiceSvc.VoidInvoice(c.Request.Context(), tenantID, id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toInvoiceResponse(inv))
}

// WriteOffInvoice handles POST /invoices/:id/write-off.
func (h *InvoiceHandler) WriteOffInvoice(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.Validation("invalid invoice id"))
		return
	}

	var req dto.WriteOffInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	inv, err := h.invoiceSvc.WriteOffInvoice(c.Request.Context(), tenantID, id, req.Memo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toInvoiceResponse(inv))
}

// GetInvoice handles GET /invoices/:id.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.Validation("invalid invoice id"))
		return
	}

	inv, err := h.invoiceSvc.GetInvoice(c.Request.Context(), tenantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toInvoiceResponse(inv))
}

// ListInvoices handles GET /invoices.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	params := ports.InvoiceListParams{Page: page, PageSize: pageSize}
	if cid := c.Query("customer_id"); cid != "" {
		if id, err := uuid.Parse(cid); err == nil {
			params.CustomerID = &id
		}
	}
	if s := c.Query("status"); s != "" {
		status := domain.InvoiceStatus(s)
		params.Status = &status
	}

	invoices, total, err := h.invoiceSvc.ListInvoices(c.Request.Context(), tenantID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, toInvoiceResponse(&invoices[i]))
	}

	response.OK(c, dto.InvoiceListResponse{Items: items, Total: total})
}

func toInvoiceResponse(inv *domain.Invoice) dto.InvoiceResponse {
	resp := dto.InvoiceResponse{
		ID:            inv.ID.String(),
		CustomerID:    inv.CustomerID.String(),
		Status:        string(inv.Status),
		Currency:      inv.Currency,
		SubtotalCents: inv.SubtotalCents,
		TotalCents:    inv.TotalCents,
		CreatedAt:     inv.CreatedAt.Format(timeLayout),
	}
	if inv.IssuedAt != nil {
		resp.IssuedAt = inv.IssuedAt.Format(timeLayout)
	}
	if inv.DueAt != nil {
		resp.DueAt = inv.DueAt.Format(timeLayout)
	}
	if inv.PaidAt != nil {
		resp.PaidAt = inv.PaidAt.Format(timeLayout)
	}
	return resp
}
