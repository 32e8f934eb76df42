package trade

import (
	"time"

	"github.com/avellanos/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Sales order DTOs
// =============================================================================

// OrderItemRequest represents one product line in a create request
type OrderItemRequest struct {
	FinishedProductID uuid.UUID       `json:"finished_product_id" binding:"required"`
	QuantityKg        decimal.Decimal `json:"quantity_kg" binding:"required"`
	PricePerKgUSD     decimal.Decimal `json:"price_per_kg_usd" binding:"required"`
}

// CreateSalesOrderRequest represents a request to create a sales order
type CreateSalesOrderRequest struct {
	OrderNumber          string             `json:"order_number" binding:"required,min=1,max=50"`
	ClientID             uuid.UUID          `json:"client_id" binding:"required"`
	OrderDate            time.Time          `json:"order_date" binding:"required" time_format:"2006-01-02"`
	AdvancePercent       decimal.Decimal    `json:"advance_percent"`
	BalanceTerms         string             `json:"balance_terms" binding:"required,oneof=against_copies against_originals"`
	EstimatedBalanceDate *time.Time         `json:"estimated_balance_date" time_format:"2006-01-02"`
	Notes                string             `json:"notes"`
	Items                []OrderItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateSalesOrderRequest represents a request to update an order header
type UpdateSalesOrderRequest struct {
	OrderNumber          *string          `json:"order_number" binding:"omitempty,min=1,max=50"`
	ClientID             *uuid.UUID       `json:"client_id"`
	OrderDate            *time.Time       `json:"order_date" time_format:"2006-01-02"`
	AdvancePercent       *decimal.Decimal `json:"advance_percent"`
	BalanceTerms         *string          `json:"balance_terms" binding:"omitempty,oneof=against_copies against_originals"`
	EstimatedBalanceDate *time.Time       `json:"estimated_balance_date" time_format:"2006-01-02"`
	Notes                *string          `json:"notes"`
}

// OrderItemResponse represents one product line in API responses
type OrderItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	FinishedProductID uuid.UUID       `json:"finished_product_id"`
	QuantityKg        decimal.Decimal `json:"quantity_kg"`
	QuantityLb        decimal.Decimal `json:"quantity_lb"`
	PricePerKgUSD     decimal.Decimal `json:"price_per_kg_usd"`
	SubtotalUSD       decimal.Decimal `json:"subtotal_usd"`
}

// SalesOrderResponse represents a sales order in API responses
type SalesOrderResponse struct {
	ID                   uuid.UUID           `json:"id"`
	OrderNumber          string              `json:"order_number"`
	ClientID             uuid.UUID           `json:"client_id"`
	OrderDate            time.Time           `json:"order_date"`
	Status               string              `json:"status"`
	AdvancePercent       decimal.Decimal     `json:"advance_percent"`
	BalanceTerms         string              `json:"balance_terms"`
	EstimatedBalanceDate *time.Time          `json:"estimated_balance_date,omitempty"`
	TotalUSD             decimal.Decimal     `json:"total_usd"`
	AdvanceUSD           decimal.Decimal     `json:"advance_usd"`
	BalanceUSD           decimal.Decimal     `json:"balance_usd"`
	Notes                string              `json:"notes"`
	Items                []OrderItemResponse `json:"items"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
	Version              int                 `json:"version"`
}

// SalesOrderListFilter represents filter options for order list
type SalesOrderListFilter struct {
	Search   string `form:"search"`
	ClientID string `form:"client_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToOrderItemResponse converts a domain SalesOrderItem
func ToOrderItemResponse(i *trade.SalesOrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:                i.ID,
		FinishedProductID: i.FinishedProductID,
		QuantityKg:        i.QuantityKg,
		QuantityLb:        i.QuantityLb(),
		PricePerKgUSD:     i.PricePerKgUSD,
		SubtotalUSD:       i.SubtotalUSD(),
	}
}

// ToSalesOrderResponse converts a domain SalesOrder with its items
func ToSalesOrderResponse(o *trade.SalesOrder) SalesOrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		items[i] = ToOrderItemResponse(&o.Items[i])
	}
	return SalesOrderResponse{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		ClientID:             o.ClientID,
		OrderDate:            o.OrderDate,
		Status:               string(o.Status),
		AdvancePercent:       o.AdvancePercent,
		BalanceTerms:         string(o.BalanceTerms),
		EstimatedBalanceDate: o.EstimatedBalanceDate,
		TotalUSD:             o.TotalUSD(),
		AdvanceUSD:           o.AdvanceUSD(),
		BalanceUSD:           o.BalanceUSD(),
		Notes:                o.Notes,
		Items:                items,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
		Version:              o.Version,
	}
}

// ToSalesOrderResponses converts a slice of domain SalesOrders
func ToSalesOrderResponses(orders []trade.SalesOrder) []SalesOrderResponse {
	responses := make([]SalesOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToSalesOrderResponse(&orders[i])
	}
	return responses
}

// =============================================================================
// Quotation DTOs
// =============================================================================

// CreateQuotationRequest represents a request to create a quotation
type CreateQuotationRequest struct {
	ClientID          *uuid.UUID      `json:"client_id"`
	FinishedProductID uuid.UUID       `json:"finished_product_id" binding:"required"`
	QuoteDate         time.Time       `json:"quote_date" binding:"required" time_format:"2006-01-02"`
	QuantityKg        decimal.Decimal `json:"quantity_kg" binding:"required"`
	TotalCostUSD      decimal.Decimal `json:"total_cost_usd" binding:"required"`
	MarginPercent     decimal.Decimal `json:"margin_percent"`
	Notes             string          `json:"notes"`
}

// UpdateQuotationRequest represents a request to update an unconverted quotation
type UpdateQuotationRequest struct {
	ClientID          *uuid.UUID       `json:"client_id"`
	ClearClient       bool             `json:"clear_client"`
	FinishedProductID *uuid.UUID       `json:"finished_product_id"`
	QuoteDate         *time.Time       `json:"quote_date" time_format:"2006-01-02"`
	QuantityKg        *decimal.Decimal `json:"quantity_kg"`
	TotalCostUSD      *decimal.Decimal `json:"total_cost_usd"`
	MarginPercent     *decimal.Decimal `json:"margin_percent"`
	Notes             *string          `json:"notes"`
}

// QuotationResponse represents a quotation in API responses
type QuotationResponse struct {
	ID                     uuid.UUID       `json:"id"`
	ClientID               *uuid.UUID      `json:"client_id,omitempty"`
	FinishedProductID      uuid.UUID       `json:"finished_product_id"`
	QuoteDate              time.Time       `json:"quote_date"`
	QuantityKg             decimal.Decimal `json:"quantity_kg"`
	TotalCostUSD           decimal.Decimal `json:"total_cost_usd"`
	MarginPercent          decimal.Decimal `json:"margin_percent"`
	SuggestedPricePerKgUSD decimal.Decimal `json:"suggested_price_per_kg_usd"`
	Converted              bool            `json:"converted"`
	Notes                  string          `json:"notes"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
	Version                int             `json:"version"`
}

// QuotationListFilter represents filter options for quotation list
type QuotationListFilter struct {
	ClientID  string `form:"client_id" binding:"omitempty,uuid"`
	Converted *bool  `form:"converted"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToQuotationResponse converts a domain Quotation
func ToQuotationResponse(q *trade.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:                     q.ID,
		ClientID:               q.ClientID,
		FinishedProductID:      q.FinishedProductID,
		QuoteDate:              q.QuoteDate,
		QuantityKg:             q.QuantityKg,
		TotalCostUSD:           q.TotalCostUSD,
		MarginPercent:          q.MarginPercent,
		SuggestedPricePerKgUSD: q.SuggestedPricePerKgUSD(),
		Converted:              q.Converted,
		Notes:                  q.Notes,
		CreatedAt:              q.CreatedAt,
		UpdatedAt:              q.UpdatedAt,
		Version:                q.Version,
	}
}

// ToQuotationResponses converts a slice of domain Quotations
func ToQuotationResponses(quotations []trade.Quotation) []QuotationResponse {
	responses := make([]QuotationResponse, len(quotations))
	for i := range quotations {
		responses[i] = ToQuotationResponse(&quotations[i])
	}
	return responses
}
