package handler

import (
	apppartner "github.com/avellanos/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// ServiceSupplierHandler handles HTTP requests for logistics service providers
type ServiceSupplierHandler struct {
	BaseHandler
	service *apppartner.ServiceSupplierService
}

// NewServiceSupplierHandler creates a new ServiceSupplierHandler
func NewServiceSupplierHandler(service *apppartner.ServiceSupplierService) *ServiceSupplierHandler {
	return &ServiceSupplierHandler{service: service}
}

// Create handles POST /service-suppliers
func (h *ServiceSupplierHandler) Create(c *gin.Context) {
	var req apppartner.CreateServiceSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	supplier, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, supplier)
}

// GetByID handles GET /service-suppliers/:id
func (h *ServiceSupplierHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid service supplier ID format")
		return
	}

	supplier, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// List handles GET /service-suppliers
func (h *ServiceSupplierHandler) List(c *gin.Context) {
	var filter apppartner.ServiceSupplierListFilter
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

	suppliers, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, suppliers, total, filter.Page, filter.PageSize)
}

// Update handles PUT /service-suppliers/:id
func (h *ServiceSupplierHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid service supplier ID format")
		return
	}

	var req apppartner.UpdateServiceSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	supplier, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// Delete handles DELETE /service-suppliers/:id
func (h *ServiceSupplierHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid service supplier ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
