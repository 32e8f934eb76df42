package handler

import (
	appprocessing "github.com/avellanos/backend/internal/application/processing"
	"github.com/gin-gonic/gin"
)

// OperationHandler handles HTTP requests for processing operations
type OperationHandler struct {
	BaseHandler
	service *appprocessing.OperationService
}

// NewOperationHandler creates a new OperationHandler
func NewOperationHandler(service *appprocessing.OperationService) *OperationHandler {
	return &OperationHandler{service: service}
}

// Create handles POST /operations
func (h *OperationHandler) Create(c *gin.Context) {
	var req appprocessing.CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	operation, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, operation)
}

// GetByID handles GET /operations/:id
func (h *OperationHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid operation ID format")
		return
	}

	operation, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, operation)
}

// List handles GET /operations
func (h *OperationHandler) List(c *gin.Context) {
	var filter appprocessing.OperationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	operations, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, operations, total, filter.Page, filter.PageSize)
}

// Update handles PUT /operations/:id
func (h *OperationHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid operation ID format")
		return
	}

	var req appprocessing.UpdateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	operation, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, operation)
}

// AddCost handles POST /operations/:id/costs
func (h *OperationHandler) AddCost(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid operation ID format")
		return
	}

	var req appprocessing.AddCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cost, err := h.service.AddCost(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, cost)
}

// RemoveCost handles DELETE /operations/:id/costs/:cost_id
func (h *OperationHandler) RemoveCost(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid operation ID format")
		return
	}

	costID, err := parseIDParam(c, "cost_id")
	if err != nil {
		h.BadRequest(c, "Invalid cost ID format")
		return
	}

	if err := h.service.RemoveCost(c.Request.Context(), id, costID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Post handles POST /operations/:id/post. Posting debits raw material
// stock and credits finished goods stock atomically.
func (h *OperationHandler) Post(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid operation ID format")
		return
	}

	operation, err := h.service.Post(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, operation)
}

// Delete handles DELETE /operations/:id
func (h *OperationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid operation ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
