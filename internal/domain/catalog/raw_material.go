package catalog

import (
	"strings"
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
)

// RawMaterial is a catalog entry for purchasable raw material
// (live mussels by caliber/origin). Names are unique.
type RawMaterial struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (RawMaterial) TableName() string {
	return "raw_materials"
}

// NewRawMaterial creates a new raw material catalog entry
func NewRawMaterial(name string) (*RawMaterial, error) {
	if err := validateCatalogName(name); err != nil {
		return nil, err
	}

	return &RawMaterial{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
	}, nil
}

// Rename changes the catalog name
func (m *RawMaterial) Rename(name string) error {
	if err := validateCatalogName(name); err != nil {
		return err
	}

	m.Name = strings.TrimSpace(name)
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
	return nil
}

func validateCatalogName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(trimmed) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}
