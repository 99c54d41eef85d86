package handler

import (
	"strconv"

	"ar-engine/internal/adapter/http/dto"
	"ar-engine/internal/core/domain"
	"ar-engine/internal/core/ports"
	"ar-engine/pkg/apperror"
	"ar-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler exposes per-customer ledger history. There is no
// dedicated reporting service; this surface is built directly on
// LedgerService, the only component that can answer "what happened".
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// GetCustomerHistory handles GET /customers/:id/ledger.
func (h *LedgerHandler) GetCustomerHistory(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	customerID, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.Validation("invalid customer id"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 500 {
		limit = 50
	}

	events, err := h.ledgerSvc.GetCustomerHistory(c.Request.Context(), tenantID, customerID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.LedgerEventResponse, 0, len(events))
	for i := range events {
		items = append(items, toLedgerEventResponse(&events[i]))
	}

	response.OK(c, gin.H{"items": items})
}

func toLedgerEventResponse(ev *domain.LedgerEvent) dto.LedgerEventResponse {
	return dto.LedgerEventResponse{
		ID:               ev.ID.String(),
		EventType:        string(ev.EventType),
		AmountDeltaCents: ev.AmountDeltaCents,
		BalanceAfter:     ev.BalanceAfter,
		OccurredAt:       ev.OccurredAt.Format(timeLayout),
		SourceEventID:    ev.SourceEventID,
	}
}
