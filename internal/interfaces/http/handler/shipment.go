package handler

import (
	applogistics "github.com/avellanos/backend/internal/application/logistics"
	"github.com/gin-gonic/gin"
)

// ShipmentHandler handles HTTP requests for export shipments and their
// contracted logistics services
type ShipmentHandler struct {
	BaseHandler
	service *applogistics.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler
func NewShipmentHandler(service *applogistics.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Create handles POST /shipments
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req applogistics.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shipment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, shipment)
}

// GetByID handles GET /shipments/:id
func (h *ShipmentHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shipment ID format")
		return
	}

	shipment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shipment)
}

// List handles GET /shipments
func (h *ShipmentHandler) List(c *gin.Context) {
	var filter applogistics.ShipmentListFilter
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

	shipments, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, shipments, total, filter.Page, filter.PageSize)
}

// Update handles PUT /shipments/:id
func (h *ShipmentHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shipment ID format")
		return
	}

	var req applogistics.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shipment, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shipment)
}

// AddService handles POST /shipments/:id/services
func (h *ShipmentHandler) AddService(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shipment ID format")
		return
	}

	var req applogistics.AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	service, err := h.service.AddService(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, service)
}

// MarkServicePaid handles POST /shipments/:id/services/:service_id/pay
func (h *ShipmentHandler) MarkServicePaid(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shipment ID format")
		return
	}

	serviceID, err := parseIDParam(c, "service_id")
	if err != nil {
		h.BadRequest(c, "Invalid service ID format")
		return
	}

	service, err := h.service.MarkServicePaid(c.Request.Context(), id, serviceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, service)
}

// RemoveService handles DELETE /shipments/:id/services/:service_id
func (h *ShipmentHandler) RemoveService(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shipment ID format")
		return
	}

	serviceID, err := parseIDParam(c, "service_id")
	if err != nil {
		h.BadRequest(c, "Invalid service ID format")
		return
	}

	if err := h.service.RemoveService(c.Request.Context(), id, serviceID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete handles DELETE /shipments/:id
func (h *ShipmentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shipment ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
