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
)

// ReconciliationHandler triggers and inspects reconciliation runs.
type ReconciliationHandler struct {
	reconciliationSvc ports.ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationSvc ports.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationSvc: reconciliationSvc}
}

// RunReconciliation handles POST /reconciliation/run.
func (h *ReconciliationHandler) RunReconciliation(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	windowHours, _ := strconv.Atoi(c.DefaultQuery("window_hours", "24"))
	if windowHours < 1 {
		windowHours = 24
	}

	run, err := h.reconciliationSvc.RunReconciliation(c.Request.Context(), tenantID, time.Duration(windowHours)*time.Hour)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toReconciliationRunResponse(run))
}

// ListUnresolvedDivergences handles GET /reconciliation/divergences.
func (h *ReconciliationHandler) ListUnresolvedDivergences(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	divergences, err := h.reconciliationSvc.ListUnresolved(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.DivergenceResponse, 0, len(divergences))
	for i := range divergences {
		items = append(items, toDivergenceResponse(&divergences[i]))
	}

	response.OK(c, gin.H{"items": items})
}

func toReconciliationRunResponse(run *domain.ReconciliationRun) dto.ReconciliationRunResponse {
	return dto.ReconciliationRunResponse{
		ID:              run.ID.String(),
		WindowStart:     run.WindowStart.Format(timeLayout),
		WindowEnd:       run.WindowEnd.Format(timeLayout),
		Status:          string(run.Status),
		DivergenceCount: run.DivergenceCount,
	}
}

func toDivergenceResponse(d *domain.ReconciliationDivergence) dto.DivergenceResponse {
	return dto.DivergenceResponse{
		ID:             d.ID.String(),
		DivergenceType: string(d.DivergenceType),
		ReferenceID:    d.ReferenceID,
		DetectedAt:     d.DetectedAt.Format(timeLayout),
	}
}
