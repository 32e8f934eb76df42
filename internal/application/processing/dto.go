package processing

import (
	"time"

	"github.com/avellanos/backend/internal/domain/processing"
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOperationRequest represents a request to record a processing operation
type CreateOperationRequest struct {
	OperationDate     time.Time        `json:"operation_date" binding:"required" time_format:"2006-01-02"`
	RawMaterialID     uuid.UUID        `json:"raw_material_id" binding:"required"`
	FinishedProductID uuid.UUID        `json:"finished_product_id" binding:"required"`
	InputKg           decimal.Decimal  `json:"input_kg" binding:"required"`
	YieldPercent      *decimal.Decimal `json:"yield_percent"`
	OutputKg          decimal.Decimal  `json:"output_kg" binding:"required"`
	Notes             string           `json:"notes"`
}

// UpdateOperationRequest represents a request to update an unposted operation
type UpdateOperationRequest struct {
	OperationDate     *time.Time       `json:"operation_date" time_format:"2006-01-02"`
	RawMaterialID     *uuid.UUID       `json:"raw_material_id"`
	FinishedProductID *uuid.UUID       `json:"finished_product_id"`
	InputKg           *decimal.Decimal `json:"input_kg"`
	YieldPercent      *decimal.Decimal `json:"yield_percent"`
	OutputKg          *decimal.Decimal `json:"output_kg"`
	Notes             *string          `json:"notes"`
}

// AddCostRequest represents a request to attach a tolling cost line
type AddCostRequest struct {
	Concept  string          `json:"concept" binding:"required,min=1,max=200"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,oneof=USD CLP"`
	CostDate time.Time       `json:"cost_date" binding:"required" time_format:"2006-01-02"`
}

// CostResponse represents a tolling cost line in API responses
type CostResponse struct {
	ID          uuid.UUID       `json:"id"`
	OperationID uuid.UUID       `json:"operation_id"`
	Concept     string          `json:"concept"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	CostDate    time.Time       `json:"cost_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OperationResponse represents a processing operation in API responses
type OperationResponse struct {
	ID                uuid.UUID        `json:"id"`
	OperationDate     time.Time        `json:"operation_date"`
	RawMaterialID     uuid.UUID        `json:"raw_material_id"`
	FinishedProductID uuid.UUID        `json:"finished_product_id"`
	InputKg           decimal.Decimal  `json:"input_kg"`
	YieldPercent      *decimal.Decimal `json:"yield_percent,omitempty"`
	OutputKg          decimal.Decimal  `json:"output_kg"`
	ExpectedOutputKg  *decimal.Decimal `json:"expected_output_kg,omitempty"`
	YieldVarianceKg   *decimal.Decimal `json:"yield_variance_kg,omitempty"`
	TotalCostUSD      decimal.Decimal  `json:"total_cost_usd"`
	TotalCostCLP      decimal.Decimal  `json:"total_cost_clp"`
	Posted            bool             `json:"posted"`
	PostedAt          *time.Time       `json:"posted_at,omitempty"`
	Notes             string           `json:"notes"`
	Costs             []CostResponse   `json:"costs,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Version           int              `json:"version"`
}

// OperationListFilter represents filter options for operation list
type OperationListFilter struct {
	RawMaterialID     string `form:"raw_material_id" binding:"omitempty,uuid"`
	FinishedProductID string `form:"finished_product_id" binding:"omitempty,uuid"`
	Posted            *bool  `form:"posted"`
	Page              int    `form:"page" binding:"omitempty,min=1"`
	PageSize          int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy           string `form:"order_by"`
	OrderDir          string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToCostResponse converts a domain Cost to CostResponse
func ToCostResponse(c *processing.Cost) CostResponse {
	return CostResponse{
		ID:          c.ID,
		OperationID: c.OperationID,
		Concept:     c.Concept,
		Amount:      c.Amount,
		Currency:    string(c.Currency),
		CostDate:    c.CostDate,
		CreatedAt:   c.CreatedAt,
	}
}

// ToOperationResponse converts a domain Operation to OperationResponse
func ToOperationResponse(o *processing.Operation) OperationResponse {
	costs := make([]CostResponse, len(o.Costs))
	for i := range o.Costs {
		costs[i] = ToCostResponse(&o.Costs[i])
	}
	return OperationResponse{
		ID:                o.ID,
		OperationDate:     o.OperationDate,
		RawMaterialID:     o.RawMaterialID,
		FinishedProductID: o.FinishedProductID,
		InputKg:           o.InputKg,
		YieldPercent:      o.YieldPercent,
		OutputKg:          o.OutputKg,
		ExpectedOutputKg:  o.ExpectedOutputKg(),
		YieldVarianceKg:   o.YieldVarianceKg(),
		TotalCostUSD:      o.TotalCost(shared.CurrencyUSD),
		TotalCostCLP:      o.TotalCost(shared.CurrencyCLP),
		Posted:            o.Posted,
		PostedAt:          o.PostedAt,
		Notes:             o.Notes,
		Costs:             costs,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Version:           o.Version,
	}
}

// ToOperationResponses converts a slice of domain Operations
func ToOperationResponses(operations []processing.Operation) []OperationResponse {
	responses := make([]OperationResponse, len(operations))
	for i := range operations {
		responses[i] = ToOperationResponse(&operations[i])
	}
	return responses
}
