package handler

import (
	"ar-engine/internal/adapter/http/dto"
	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/pkg/apperror"
	"ar-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChargeHandler handles charge attempt and payment-application endpoints.
type ChargeHandler struct {
	chargeSvc ports.ChargeService
}

// NewChargeHandler creates a new ChargeHandler.
func NewChargeHandler(chargeSvc ports.ChargeService) *ChargeHandler {
	return &ChargeHandler{chargeSvc: chargeSvc}
}

// ChargeInvoice handles POST /charges.
func (h *ChargeHandler) ChargeInvoice(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ChargeInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	invoiceID, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid invoice_id"))
		return
	}
	pmID, err := uuid.Parse(req.PaymentMethodID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid payment_method_id"))
		return
	}

	charge, err := h.chargeSvc.ChargeInvoice(c.Request.Context(), tenantID, ports.ChargeInvoiceRequest{
		InvoiceID:       invoiceID,
		PaymentMethodID: pmID,
		ReferenceID:     req.ReferenceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toChargeResponse(charge))
}

// ApplyPayment handles POST /payment-applications.
func (h *ChargeHandler) ApplyPayment(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	chargeID, err := uuid.Parse(req.ChargeID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid charge_id"))
		return
	}
	invoiceID, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid invoice_id"))
		return
	}

	app, err := h.chargeSvc.ApplyPayment(c.Request.Context(), tenantID, ports.ApplyPaymentRequest{
		ChargeID:    chargeID,
		InvoiceID:   invoiceID,
		AmountCents: req.AmountCents,
		Allocation:  domain.AllocationManual,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"id":              app.ID.String(),
		"charge_id":       app.ChargeID.String(),
		"invoice_id":      app.InvoiceID.String(),
		"allocated_cents": app.AllocatedCents,
	})
}

func toChargeResponse(charge *domain.Charge) dto.ChargeResponse {
	return dto.ChargeResponse{
		ID:             charge.ID.String(),
		InvoiceID:      charge.InvoiceID.String(),
		Status:         string(charge.Status),
		AmountCents:    charge.AmountCents,
		Currency:       charge.Currency,
		FailureCode:    charge.FailureCode,
		FailureMessage: charge.FailureMessage,
		CreatedAt:      charge.CreatedAt.Format(timeLayout),
	}
}
