package catalog

import (
	"strings"
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductType represents the preservation form of a finished product
type ProductType string

const (
	ProductTypeFresh     ProductType = "fresh"
	ProductTypeFrozen    ProductType = "frozen"
	ProductTypePreserved ProductType = "preserved"
)

// IsValid reports whether the type is a known variant
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeFresh, ProductTypeFrozen, ProductTypePreserved:
		return true
	}
	return false
}

// FinishedProduct is a sellable product in the catalog: a processed mussel
// presentation (half shell, meat, whole) with a reference USD price per kg.
type FinishedProduct struct {
	shared.BaseAggregateRoot
	Name         string          `gorm:"type:varchar(100);not null"`
	Type         ProductType     `gorm:"type:varchar(20);not null"`
	Presentation string          `gorm:"type:varchar(100)"`
	UnitPriceUSD decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"` // Reference price per kg
}

// TableName returns the table name for GORM
func (FinishedProduct) TableName() string {
	return "finished_products"
}

// NewFinishedProduct creates a new finished product catalog entry
func NewFinishedProduct(name string, productType ProductType, presentation string, unitPriceUSD decimal.Decimal) (*FinishedProduct, error) {
	if err := validateCatalogName(name); err != nil {
		return nil, err
	}
	if !productType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Product type must be fresh, frozen or preserved")
	}
	if unitPriceUSD.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &FinishedProduct{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Type:              productType,
		Presentation:      strings.TrimSpace(presentation),
		UnitPriceUSD:      unitPriceUSD,
	}, nil
}

// Update updates the product's editable fields
func (p *FinishedProduct) Update(name string, productType ProductType, presentation string, unitPriceUSD decimal.Decimal) error {
	if err := validateCatalogName(name); err != nil {
		return err
	}
	if !productType.IsValid() {
		return shared.NewDomainError("INVALID_TYPE", "Product type must be fresh, frozen or preserved")
	}
	if unitPriceUSD.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	p.Name = strings.TrimSpace(name)
	p.Type = productType
	p.Presentation = strings.TrimSpace(presentation)
	p.UnitPriceUSD = unitPriceUSD
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}
