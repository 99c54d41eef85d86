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

// CustomerHandler handles customer lifecycle endpoints.
type CustomerHandler struct {
	customerSvc ports.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerSvc ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc}
}

// CreateCustomer handles POST /customers.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	cust, err := h.customerSvc.CreateCustomer(c.Request.Context(), tenantID, ports.CreateCustomerRequest{
		ExternalRef: req.ExternalRef,
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toCustomerResponse(cust))
}

// GetCustomer handles GET /customers/:id.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.Validation("invalid customer id"))
		return
	}

	cust, err := h.customerSvc.GetCustomer(c.Request.Context(), tenantID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toCustomerResponse(cust))
}

// ListCustomers handles GET /customers.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
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

	params := ports.CustomerListParams{Page: page, PageSize: pageSize}
	if d := c.Query("delinquency"); d != "" {
		state := domain.DelinquencyState(d)
		params.Delinquency = &state
	}

	customers, total, err := h.customerSvc.ListCustomers(c.Request.Context(), tenantID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		items = append(items, toCustomerResponse(&customers[i]))
	}
	response.OK(c, dto.CustomerListResponse{Items: items, Total: total})
}

// SoftDeleteCustomer handles DELETE /customers/:id.
func (h *CustomerHandler) SoftDeleteCustomer(c *gin.Context) {
	tenantID, ok := tenantIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.Validation("invalid customer id"))
		return
	}

	if err := h.customerSvc.SoftDeleteCustomer(c.Request.Context(), tenantID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true})
}

func toCustomerResponse(cust *domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:                 cust.ID.String(),
		ExternalCustomerID: cust.ExternalCustomerID,
		Email:              cust.Email,
		DisplayName:        cust.DisplayName,
		ARBalanceCents:     cust.ARBalanceCents,
		Delinquency:        string(cust.Delinquency),
		CreatedAt:          cust.CreatedAt.Format(timeLayout),
	}
}
