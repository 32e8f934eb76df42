package handler

import (
	appcatalog "github.com/avellanos/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// FinishedProductHandler handles HTTP requests for finished product definitions
type FinishedProductHandler struct {
	BaseHandler
	service *appcatalog.FinishedProductService
}

// NewFinishedProductHandler creates a new FinishedProductHandler
func NewFinishedProductHandler(service *appcatalog.FinishedProductService) *FinishedProductHandler {
	return &FinishedProductHandler{service: service}
}

// Create handles POST /finished-products
func (h *FinishedProductHandler) Create(c *gin.Context) {
	var req appcatalog.CreateFinishedProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, product)
}

// GetByID handles GET /finished-products/:id
func (h *FinishedProductHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid finished product ID format")
		return
	}

	product, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// List handles GET /finished-products
func (h *FinishedProductHandler) List(c *gin.Context) {
	var filter appcatalog.FinishedProductListFilter
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

	products, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, products, total, filter.Page, filter.PageSize)
}

// Update handles PUT /finished-products/:id
func (h *FinishedProductHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid finished product ID format")
		return
	}

	var req appcatalog.UpdateFinishedProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete handles DELETE /finished-products/:id
func (h *FinishedProductHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid finished product ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
