package handler

import (
	appinventory "github.com/avellanos/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// InventoryHandler handles HTTP requests for stock queries. Stock levels
// are adjusted only by fulfilling purchases and posting operations, so
// this handler exposes read endpoints only.
type InventoryHandler struct {
	BaseHandler
	service *appinventory.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service *appinventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// GetRawMaterialStock handles GET /raw-materials/:id/stock
func (h *InventoryHandler) GetRawMaterialStock(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	stock, err := h.service.GetRawMaterialStock(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stock)
}

// ListRawMaterialStocks handles GET /raw-material-stocks
func (h *InventoryHandler) ListRawMaterialStocks(c *gin.Context) {
	var filter appinventory.StockListFilter
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

	stocks, total, err := h.service.ListRawMaterialStocks(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, stocks, total, filter.Page, filter.PageSize)
}

// GetFinishedGoodsStock handles GET /finished-products/:id/stock
func (h *InventoryHandler) GetFinishedGoodsStock(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid finished product ID format")
		return
	}

	stock, err := h.service.GetFinishedGoodsStock(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stock)
}

// ListFinishedGoodsStocks handles GET /finished-goods-stocks
func (h *InventoryHandler) ListFinishedGoodsStocks(c *gin.Context) {
	var filter appinventory.StockListFilter
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

	stocks, total, err := h.service.ListFinishedGoodsStocks(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, stocks, total, filter.Page, filter.PageSize)
}
