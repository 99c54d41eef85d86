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

// PaymentMethodHandler handles stored payment-method-token endpoints. The
// PCIGuard middleware rejects raw card/bank data before requests reach here.
type PaymentMethodHandler struct {
	paymentMethodSvc ports.PaymentMethodService
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler.
func NewPaymentMethodHandler(paymentMethodSvc ports.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{paymentMethodSvc: paymentMethodSvc}
}

// AttachPaymentMethod handles POST /payment-methods.
func (h *PaymentMethodHandler) AttachPaymentMethod(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.AttachPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid customer_id"))
		return
	}

	pm, err := h.paymentMethodSvc.AttachPaymentMethod(c.Request.Context(), tenantID, ports.AttachPaymentMethodRequest{
		CustomerID:     customerID,
		ProcessorToken: req.ProcessorToken,
		Type:           req.Type,
		Last4:          req.Last4,
		Brand:          req.Brand,
		ExpiryMonth:    req.ExpiryMonth,
		ExpiryYear:     req.ExpiryYear,
		MakeDefault:    req.MakeDefault,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toPaymentMethodResponse(pm))
}

// SetDefaultPaymentMethod handles POST /customers/:customer_id/payment-methods/:id/default.
func (h *PaymentMethodHandler) SetDefaultPaymentMethod(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	customerID, err := parseUUIDParam(c, "customer_id")
	if err != nil {
		response.Error(c, apperror.Validation("invalid customer_id"))
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.Validation("invalid payment method id"))
		return
	}

	if err := h.paymentMethodSvc.SetDefaultPaymentMethod(c.Request.Context(), tenantID, customerID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"default": true})
}

// SoftDeletePaymentMethod handles DELETE /payment-methods/:id.
func (h *PaymentMethodHandler) SoftDeletePaymentMethod(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.Validation("invalid payment method id"))
		return
	}

	if err := h.paymentMethodSvc.SoftDeletePaymentMethod(c.Request.Context(), tenantID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true})
}

func toPaymentMethodResponse(pm *domain.PaymentMethodRef) dto.PaymentMethodResponse {
	return dto.PaymentMethodResponse{
		ID:        pm.ID.String(),
		Type:      pm.Type,
		Last4:     pm.Last4,
		Brand:     pm.Brand,
		IsDefault: pm.IsDefault,
		Status:    string(pm.Status),
	}
}
