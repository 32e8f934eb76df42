package handler

import (
	applogistics "github.com/avellanos/backend/internal/application/logistics"
	"github.com/gin-gonic/gin"
)

// DocumentationHandler handles HTTP requests for export documentation sets
type DocumentationHandler struct {
	BaseHandler
	service *applogistics.DocumentationService
}

// NewDocumentationHandler creates a new DocumentationHandler
func NewDocumentationHandler(service *applogistics.DocumentationService) *DocumentationHandler {
	return &DocumentationHandler{service: service}
}

// Create handles POST /documentation
func (h *DocumentationHandler) Create(c *gin.Context) {
	var req applogistics.CreateDocumentationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	doc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, doc)
}

// GetByID handles GET /documentation/:id
func (h *DocumentationHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid documentation ID format")
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// GetByShipment handles GET /shipments/:id/documentation
func (h *DocumentationHandler) GetByShipment(c *gin.Context) {
	shipmentID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shipment ID format")
		return
	}

	doc, err := h.service.GetByShipment(c.Request.Context(), shipmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// List handles GET /documentation
func (h *DocumentationHandler) List(c *gin.Context) {
	var filter applogistics.DocumentationListFilter
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

	docs, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, docs, total, filter.Page, filter.PageSize)
}

// Update handles PUT /documentation/:id
func (h *DocumentationHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid documentation ID format")
		return
	}

	var req applogistics.UpdateDocumentationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	doc, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// MarkSent handles POST /documentation/:id/send
func (h *DocumentationHandler) MarkSent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid documentation ID format")
		return
	}

	doc, err := h.service.MarkSent(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, doc)
}

// Delete handles DELETE /documentation/:id
func (h *DocumentationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid documentation ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
