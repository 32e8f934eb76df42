package catalog

import (
	"time"

	"github.com/avellanos/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Raw material DTOs
// =============================================================================

// CreateRawMaterialRequest represents a request to create a raw material
type CreateRawMaterialRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateRawMaterialRequest represents a request to rename a raw material
type UpdateRawMaterialRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// RawMaterialResponse represents a raw material in API responses
type RawMaterialResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// RawMaterialListFilter represents filter options for raw material list
type RawMaterialListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToRawMaterialResponse converts a domain RawMaterial to RawMaterialResponse
func ToRawMaterialResponse(m *catalog.RawMaterial) RawMaterialResponse {
	return RawMaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Version:   m.Version,
	}
}

// ToRawMaterialResponses converts a slice of domain RawMaterials
func ToRawMaterialResponses(materials []catalog.RawMaterial) []RawMaterialResponse {
	responses := make([]RawMaterialResponse, len(materials))
	for i := range materials {
		responses[i] = ToRawMaterialResponse(&materials[i])
	}
	return responses
}

// =============================================================================
// Finished product DTOs
// =============================================================================

// CreateFinishedProductRequest represents a request to create a finished product
type CreateFinishedProductRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	Type         string          `json:"type" binding:"required,oneof=fresh frozen preserved"`
	Presentation string          `json:"presentation" binding:"max=200"`
	UnitPriceUSD decimal.Decimal `json:"unit_price_usd"`
}

// UpdateFinishedProductRequest represents a request to update a finished product
type UpdateFinishedProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Type         *string          `json:"type" binding:"omitempty,oneof=fresh frozen preserved"`
	Presentation *string          `json:"presentation" binding:"omitempty,max=200"`
	UnitPriceUSD *decimal.Decimal `json:"unit_price_usd"`
}

// FinishedProductResponse represents a finished product in API responses
type FinishedProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Presentation string          `json:"presentation"`
	UnitPriceUSD decimal.Decimal `json:"unit_price_usd"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Version      int             `json:"version"`
}

// FinishedProductListFilter represents filter options for finished product list
type FinishedProductListFilter struct {
	Search   string `form:"search"`
	Type     string `form:"type" binding:"omitempty,oneof=fresh frozen preserved"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToFinishedProductResponse converts a domain FinishedProduct to FinishedProductResponse
func ToFinishedProductResponse(p *catalog.FinishedProduct) FinishedProductResponse {
	return FinishedProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Type:         string(p.Type),
		Presentation: p.Presentation,
		UnitPriceUSD: p.UnitPriceUSD,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Version:      p.Version,
	}
}

// ToFinishedProductResponses converts a slice of domain FinishedProducts
func ToFinishedProductResponses(products []catalog.FinishedProduct) []FinishedProductResponse {
	responses := make([]FinishedProductResponse, len(products))
	for i := range products {
		responses[i] = ToFinishedProductResponse(&products[i])
	}
	return responses
}
