package partner

import (
	"strings"
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
)

// Supplier represents a raw-material supplier (mussel harvesting centers
// and intermediaries) in the partner context.
type Supplier struct {
	shared.BaseAggregateRoot
	Name        string `gorm:"type:varchar(100);not null"`
	Region      string `gorm:"type:varchar(50)"`
	ContactName string `gorm:"type:varchar(100)"`
	Email       string `gorm:"type:varchar(200);index"`
	Phone       string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(name, region, contactName, email, phone string) (*Supplier, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}
	if err := validatePartnerEmail(email); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Region:            strings.TrimSpace(region),
		ContactName:       strings.TrimSpace(contactName),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Phone:             strings.TrimSpace(phone),
	}, nil
}

// Update updates the supplier's editable fields
func (s *Supplier) Update(name, region, contactName, email, phone string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	if err := validatePartnerEmail(email); err != nil {
		return err
	}

	s.Name = strings.TrimSpace(name)
	s.Region = strings.TrimSpace(region)
	s.ContactName = strings.TrimSpace(contactName)
	s.Email = strings.ToLower(strings.TrimSpace(email))
	s.Phone = strings.TrimSpace(phone)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}
