package inventory

import (
	"time"

	"github.com/avellanos/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawMaterialStockResponse represents a raw material stock row in API responses
type RawMaterialStockResponse struct {
	ID            uuid.UUID       `json:"id"`
	RawMaterialID uuid.UUID       `json:"raw_material_id"`
	QuantityKg    decimal.Decimal `json:"quantity_kg"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// FinishedGoodsStockResponse represents a finished goods stock row in API responses
type FinishedGoodsStockResponse struct {
	ID                uuid.UUID       `json:"id"`
	FinishedProductID uuid.UUID       `json:"finished_product_id"`
	QuantityKg        decimal.Decimal `json:"quantity_kg"`
	BelowThreshold    bool            `json:"below_threshold"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int             `json:"version"`
}

// StockListFilter represents filter options for stock listings
type StockListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToRawMaterialStockResponse converts a domain RawMaterialStock
func ToRawMaterialStockResponse(s *inventory.RawMaterialStock) RawMaterialStockResponse {
	return RawMaterialStockResponse{
		ID:            s.ID,
		RawMaterialID: s.RawMaterialID,
		QuantityKg:    s.QuantityKg,
		UpdatedAt:     s.UpdatedAt,
		Version:       s.Version,
	}
}

// ToRawMaterialStockResponses converts a slice of domain RawMaterialStocks
func ToRawMaterialStockResponses(stocks []inventory.RawMaterialStock) []RawMaterialStockResponse {
	responses := make([]RawMaterialStockResponse, len(stocks))
	for i := range stocks {
		responses[i] = ToRawMaterialStockResponse(&stocks[i])
	}
	return responses
}

// ToFinishedGoodsStockResponse converts a domain FinishedGoodsStock
func ToFinishedGoodsStockResponse(s *inventory.FinishedGoodsStock) FinishedGoodsStockResponse {
	return FinishedGoodsStockResponse{
		ID:                s.ID,
		FinishedProductID: s.FinishedProductID,
		QuantityKg:        s.QuantityKg,
		BelowThreshold:    s.IsBelowThreshold(),
		UpdatedAt:         s.UpdatedAt,
		Version:           s.Version,
	}
}

// ToFinishedGoodsStockResponses converts a slice of domain FinishedGoodsStocks
func ToFinishedGoodsStockResponses(stocks []inventory.FinishedGoodsStock) []FinishedGoodsStockResponse {
	responses := make([]FinishedGoodsStockResponse, len(stocks))
	for i := range stocks {
		responses[i] = ToFinishedGoodsStockResponse(&stocks[i])
	}
	return responses
}
