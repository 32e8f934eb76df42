package procurement

import (
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase records a raw material purchase from a supplier. Once a purchase
// is fulfilled its quantity has been credited into raw material stock and the
// record becomes immutable.
type Purchase struct {
	shared.BaseAggregateRoot
	SupplierID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	RawMaterialID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PurchaseDate  time.Time       `gorm:"type:date;not null;index"`
	QuantityKg    decimal.Decimal `gorm:"type:decimal(14,3);not null"`
	PricePerKg    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency      shared.Currency `gorm:"type:varchar(3);not null"`
	Fulfilled     bool            `gorm:"not null;default:false;index"`
	FulfilledAt   *time.Time      `gorm:"type:timestamptz"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// NewPurchase creates a new unfulfilled purchase record
func NewPurchase(supplierID, rawMaterialID uuid.UUID, purchaseDate time.Time, quantityKg, pricePerKg decimal.Decimal, currency shared.Currency, notes string) (*Purchase, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if rawMaterialID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RAW_MATERIAL", "Raw material ID cannot be empty")
	}
	if purchaseDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Purchase date is required")
	}
	if quantityKg.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if pricePerKg.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price per kg cannot be negative")
	}
	if err := shared.ValidateCurrency(currency); err != nil {
		return nil, err
	}

	return &Purchase{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SupplierID:        supplierID,
		RawMaterialID:     rawMaterialID,
		PurchaseDate:      purchaseDate,
		QuantityKg:        quantityKg,
		PricePerKg:        pricePerKg,
		Currency:          currency,
		Fulfilled:         false,
		Notes:             notes,
	}, nil
}

// TotalCost returns quantity multiplied by the unit price, rounded to cents
func (p *Purchase) TotalCost() decimal.Decimal {
	return p.QuantityKg.Mul(p.PricePerKg).Round(2)
}

// Update modifies an unfulfilled purchase. Fulfilled purchases are immutable.
func (p *Purchase) Update(supplierID, rawMaterialID uuid.UUID, purchaseDate time.Time, quantityKg, pricePerKg decimal.Decimal, currency shared.Currency, notes string) error {
	if p.Fulfilled {
		return shared.NewDomainError("INVALID_STATE", "Fulfilled purchase cannot be modified")
	}
	if supplierID == uuid.Nil {
		return shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if rawMaterialID == uuid.Nil {
		return shared.NewDomainError("INVALID_RAW_MATERIAL", "Raw material ID cannot be empty")
	}
	if purchaseDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Purchase date is required")
	}
	if quantityKg.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if pricePerKg.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price per kg cannot be negative")
	}
	if err := shared.ValidateCurrency(currency); err != nil {
		return err
	}

	p.SupplierID = supplierID
	p.RawMaterialID = rawMaterialID
	p.PurchaseDate = purchaseDate
	p.QuantityKg = quantityKg
	p.PricePerKg = pricePerKg
	p.Currency = currency
	p.Notes = notes
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Fulfill marks the purchase as credited into raw material stock.
// A purchase can be fulfilled exactly once.
func (p *Purchase) Fulfill() error {
	if p.Fulfilled {
		return shared.ErrDuplicateFulfillment
	}
	now := time.Now()
	p.Fulfilled = true
	p.FulfilledAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()
	return nil
}
