package trade

import (
	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// KgToLb is the exact conversion factor from kilograms to pounds used on
// export paperwork.
var KgToLb = decimal.NewFromFloat(2.20462)

// SalesOrderItem is one product line of a sales order. Pound quantity and
// subtotal are derived from the stored kilogram quantity and unit price.
type SalesOrderItem struct {
	shared.BaseEntity
	SalesOrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	FinishedProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuantityKg        decimal.Decimal `gorm:"type:decimal(14,3);not null"`
	PricePerKgUSD     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (SalesOrderItem) TableName() string {
	return "sales_order_items"
}

// NewSalesOrderItem creates an order line
func NewSalesOrderItem(salesOrderID, finishedProductID uuid.UUID, quantityKg, pricePerKgUSD decimal.Decimal) (*SalesOrderItem, error) {
	if salesOrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Sales order ID cannot be empty")
	}
	if finishedProductID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Finished product ID cannot be empty")
	}
	if quantityKg.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if pricePerKgUSD.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price per kg cannot be negative")
	}
	return &SalesOrderItem{
		BaseEntity:        shared.NewBaseEntity(),
		SalesOrderID:      salesOrderID,
		FinishedProductID: finishedProductID,
		QuantityKg:        quantityKg,
		PricePerKgUSD:     pricePerKgUSD,
	}, nil
}

// QuantityLb returns the line quantity converted to pounds
func (i *SalesOrderItem) QuantityLb() decimal.Decimal {
	return i.QuantityKg.Mul(KgToLb)
}

// SubtotalUSD returns quantity multiplied by the unit price, rounded to cents
func (i *SalesOrderItem) SubtotalUSD() decimal.Decimal {
	return i.QuantityKg.Mul(i.PricePerKgUSD).Round(2)
}
