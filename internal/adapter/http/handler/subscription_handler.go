package handler

import (
	"time"

	"ar-engine/internal/adapter/http/dto"
	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/pkg/apperror"
	"ar-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubscriptionHandler handles the subscription mirror endpoint. Billing
// decisions (plan changes, cancellation) live with the processor;
// operators push the resulting state here to keep invoicing in sync.
type SubscriptionHandler struct {
	subscriptionSvc ports.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionSvc ports.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionSvc: subscriptionSvc}
}

// subscriptionSyncRequest is the request body for POST /subscriptions/sync.
type subscriptionSyncRequest struct {
	CustomerID              string `json:"customer_id" binding:"required,uuid"`
	PlanCode                string `json:"plan_code" binding:"required"`
	Status                  string `json:"status" binding:"required"`
	CurrentPeriodStart      string `json:"current_period_start" binding:"required"`
	CurrentPeriodEnd        string `json:"current_period_end" binding:"required"`
	CancelAtPeriodEnd       bool   `json:"cancel_at_period_end"`
	ProcessorSubscriptionID string `json:"processor_subscription_id" binding:"required"`
}

// SyncSubscription handles POST /subscriptions/sync.
func (h *SubscriptionHandler) SyncSubscription(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req subscriptionSyncRequest
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

	periodStart, err := time.Parse(time.RFC3339, req.CurrentPeriodStart)
	if err != nil {
		response.Error(c, apperror.Validation("invalid current_period_start"))
		return
	}
	periodEnd, err := time.Parse(time.RFC3339, req.CurrentPeriodEnd)
	if err != nil {
		response.Error(c, apperror.Validation("invalid current_period_end"))
		return
	}

	sub := &domain.Subscription{
		CustomerID:              customerID,
		PlanCode:                req.PlanCode,
		Status:                  domain.SubscriptionStatus(req.Status),
		CurrentPeriodStart:      periodStart,
		CurrentPeriodEnd:        periodEnd,
		CancelAtPeriodEnd:       req.CancelAtPeriodEnd,
		ProcessorSubscriptionID: req.ProcessorSubscriptionID,
	}

	if err := h.subscriptionSvc.SyncSubscription(c.Request.Context(), tenantID, sub); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSubscriptionResponse(sub))
}

func toSubscriptionResponse(sub *domain.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		ID:                  sub.ID.String(),
		CustomerID:          sub.CustomerID.String(),
		PlanCode:            sub.PlanCode,
		Status:              string(sub.Status),
		CurrentPeriodStart:  sub.CurrentPeriodStart.Format(timeLayout),
		CurrentPeriodEnd:    sub.CurrentPeriodEnd.Format(timeLayout),
		CancelAtPeriodEnd:   sub.CancelAtPeriodEnd,
	}
}
