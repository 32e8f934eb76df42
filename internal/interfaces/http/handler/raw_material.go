package handler

import (
	appcatalog "github.com/avellanos/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// RawMaterialHandler handles HTTP requests for raw material definitions
type RawMaterialHandler struct {
	BaseHandler
	service *appcatalog.RawMaterialService
}

// NewRawMaterialHandler creates a new RawMaterialHandler
func NewRawMaterialHandler(service *appcatalog.RawMaterialService) *RawMaterialHandler {
	return &RawMaterialHandler{service: service}
}

// Create handles POST /raw-materials
func (h *RawMaterialHandler) Create(c *gin.Context) {
	var req appcatalog.CreateRawMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	material, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, material)
}

// GetByID handles GET /raw-materials/:id
func (h *RawMaterialHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	material, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, material)
}

// List handles GET /raw-materials
func (h *RawMaterialHandler) List(c *gin.Context) {
	var filter appcatalog.RawMaterialListFilter
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

	materials, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, materials, total, filter.Page, filter.PageSize)
}

// Update handles PUT /raw-materials/:id
func (h *RawMaterialHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	var req appcatalog.UpdateRawMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	material, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, material)
}

// Delete handles DELETE /raw-materials/:id
func (h *RawMaterialHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
