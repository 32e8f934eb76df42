package inventory

import (
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LowStockThresholdKg is the quantity below which a finished product is
// reported as running low on the dashboard.
var LowStockThresholdKg = decimal.NewFromInt(100)

// FinishedGoodsStock tracks the on-hand quantity of a single finished product.
// One row exists per product and the quantity is mutated only through
// Credit and Debit.
type FinishedGoodsStock struct {
	shared.BaseAggregateRoot
	FinishedProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	QuantityKg        decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
}

// TableName returns the table name for GORM
func (FinishedGoodsStock) TableName() string {
	return "finished_goods_stocks"
}

// NewFinishedGoodsStock creates an empty stock record for a finished product
func NewFinishedGoodsStock(finishedProductID uuid.UUID) (*FinishedGoodsStock, error) {
	if finishedProductID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Finished product ID cannot be empty")
	}
	return &FinishedGoodsStock{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FinishedProductID: finishedProductID,
		QuantityKg:        decimal.Zero,
	}, nil
}

// Credit increases the on-hand quantity by the given kilograms
func (s *FinishedGoodsStock) Credit(kg decimal.Decimal) error {
	if kg.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Credit quantity must be positive")
	}
	s.QuantityKg = s.QuantityKg.Add(kg)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Debit decreases the on-hand quantity by the given kilograms.
// The quantity can never go below zero.
func (s *FinishedGoodsStock) Debit(kg decimal.Decimal) error {
	if kg.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Debit quantity must be positive")
	}
	if s.QuantityKg.LessThan(kg) {
		return shared.ErrInsufficientStock
	}
	s.QuantityKg = s.QuantityKg.Sub(kg)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// IsBelowThreshold returns true if the on-hand quantity is under the
// low-stock alert threshold
func (s *FinishedGoodsStock) IsBelowThreshold() bool {
	return s.QuantityKg.LessThan(LowStockThresholdKg)
}
