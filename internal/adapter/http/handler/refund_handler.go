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

// RefundHandler handles refund issuance endpoints.
type RefundHandler struct {
	refundSvc ports.RefundService
}

// NewRefundHandler creates a new RefundHandler.
func NewRefundHandler(refundSvc ports.RefundService) *RefundHandler {
	return &RefundHandler{refundSvc: refundSvc}
}

// RefundCharge handles POST /refunds.
func (h *RefundHandler) RefundCharge(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RefundChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	chargeID, err := uuid.Parse(req.ChargeID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid charge_id"))
		return
	}

	refund, err := h.refundSvc.RefundCharge(c.Request.Context(), tenantID, ports.RefundChargeRequest{
		ChargeID:    chargeID,
		AmountCents: req.AmountCents,
		ReferenceID: req.ReferenceID,
		Reason:      req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toRefundResponse(refund))
}

func toRefundResponse(refund *domain.Refund) dto.RefundResponse {
	return dto.RefundResponse{
		ID:          refund.ID.String(),
		ChargeID:    refund.ChargeID.String(),
		Status:      string(refund.Status),
		AmountCents: refund.AmountCents,
		CreatedAt:   refund.CreatedAt.Format(timeLayout),
	}
}
