package inventory

import (
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawMaterialStock tracks the on-hand quantity of a single raw material.
// One row exists per raw material. The quantity is mutated only through
// Credit and Debit so it can never go negative.
type RawMaterialStock struct {
	shared.BaseAggregateRoot
	RawMaterialID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	QuantityKg    decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
}

// TableName returns the table name for GORM
func (RawMaterialStock) TableName() string {
	return "raw_material_stocks"
}

// NewRawMaterialStock creates an empty stock record for a raw material
func NewRawMaterialStock(rawMaterialID uuid.UUID) (*RawMaterialStock, error) {
	if rawMaterialID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RAW_MATERIAL", "Raw material ID cannot be empty")
	}
	return &RawMaterialStock{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RawMaterialID:     rawMaterialID,
		QuantityKg:        decimal.Zero,
	}, nil
}

// Credit increases the on-hand quantity by the given kilograms
func (s *RawMaterialStock) Credit(kg decimal.Decimal) error {
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
func (s *RawMaterialStock) Debit(kg decimal.Decimal) error {
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

// CanDebit returns true if the on-hand quantity covers the requested kilograms
func (s *RawMaterialStock) CanDebit(kg decimal.Decimal) bool {
	return s.QuantityKg.GreaterThanOrEqual(kg)
}
