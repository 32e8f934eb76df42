package procurement

import (
	"time"

	"github.com/avellanos/backend/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest represents a request to record a raw material purchase
type CreatePurchaseRequest struct {
	SupplierID    uuid.UUID       `json:"supplier_id" binding:"required"`
	RawMaterialID uuid.UUID       `json:"raw_material_id" binding:"required"`
	PurchaseDate  time.Time       `json:"purchase_date" binding:"required" time_format:"2006-01-02"`
	QuantityKg    decimal.Decimal `json:"quantity_kg" binding:"required"`
	PricePerKg    decimal.Decimal `json:"price_per_kg" binding:"required"`
	Currency      string          `json:"currency" binding:"required,oneof=USD CLP"`
	Notes         string          `json:"notes"`
}

// UpdatePurchaseRequest represents a request to update an unfulfilled purchase
type UpdatePurchaseRequest struct {
	SupplierID    *uuid.UUID       `json:"supplier_id"`
	RawMaterialID *uuid.UUID       `json:"raw_material_id"`
	PurchaseDate  *time.Time       `json:"purchase_date" time_format:"2006-01-02"`
	QuantityKg    *decimal.Decimal `json:"quantity_kg"`
	PricePerKg    *decimal.Decimal `json:"price_per_kg"`
	Currency      *string          `json:"currency" binding:"omitempty,oneof=USD CLP"`
	Notes         *string          `json:"notes"`
}

// PurchaseResponse represents a purchase in API responses
type PurchaseResponse struct {
	ID            uuid.UUID       `json:"id"`
	SupplierID    uuid.UUID       `json:"supplier_id"`
	RawMaterialID uuid.UUID       `json:"raw_material_id"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	QuantityKg    decimal.Decimal `json:"quantity_kg"`
	PricePerKg    decimal.Decimal `json:"price_per_kg"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Currency      string          `json:"currency"`
	Fulfilled     bool            `json:"fulfilled"`
	FulfilledAt   *time.Time      `json:"fulfilled_at,omitempty"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// PurchaseListFilter represents filter options for purchase list
type PurchaseListFilter struct {
	SupplierID    string `form:"supplier_id" binding:"omitempty,uuid"`
	RawMaterialID string `form:"raw_material_id" binding:"omitempty,uuid"`
	Fulfilled     *bool  `form:"fulfilled"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string `form:"order_by"`
	OrderDir      string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPurchaseResponse converts a domain Purchase to PurchaseResponse
func ToPurchaseResponse(p *procurement.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:            p.ID,
		SupplierID:    p.SupplierID,
		RawMaterialID: p.RawMaterialID,
		PurchaseDate:  p.PurchaseDate,
		QuantityKg:    p.QuantityKg,
		PricePerKg:    p.PricePerKg,
		TotalCost:     p.TotalCost(),
		Currency:      string(p.Currency),
		Fulfilled:     p.Fulfilled,
		FulfilledAt:   p.FulfilledAt,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}

// ToPurchaseResponses converts a slice of domain Purchases
func ToPurchaseResponses(purchases []procurement.Purchase) []PurchaseResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToPurchaseResponse(&purchases[i])
	}
	return responses
}
