package partner

import (
	"strings"
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
)

// ServiceSupplierType represents the kind of logistics service a provider offers
type ServiceSupplierType string

const (
	ServiceSupplierTypeCarrier       ServiceSupplierType = "carrier"        // Ocean carrier / shipping line
	ServiceSupplierTypeForwarder     ServiceSupplierType = "forwarder"      // Freight forwarder
	ServiceSupplierTypeCustomsBroker ServiceSupplierType = "customs_broker" // Customs clearance agent
	ServiceSupplierTypeInlandFreight ServiceSupplierType = "inland_freight" // Trucking to port
	ServiceSupplierTypeBroker        ServiceSupplierType = "broker"
	ServiceSupplierTypeOther         ServiceSupplierType = "other"
)

// IsValid reports whether the type is a known variant
func (t ServiceSupplierType) IsValid() bool {
	switch t {
	case ServiceSupplierTypeCarrier, ServiceSupplierTypeForwarder,
		ServiceSupplierTypeCustomsBroker, ServiceSupplierTypeInlandFreight,
		ServiceSupplierTypeBroker, ServiceSupplierTypeOther:
		return true
	}
	return false
}

// ServiceSupplier represents a provider of export logistics services
// (carriers, forwarders, customs brokers, inland freight, brokers).
type ServiceSupplier struct {
	shared.BaseAggregateRoot
	Name        string              `gorm:"type:varchar(200);not null"`
	Type        ServiceSupplierType `gorm:"type:varchar(20);not null"`
	ContactName string              `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (ServiceSupplier) TableName() string {
	return "service_suppliers"
}

// NewServiceSupplier creates a new logistics service provider
func NewServiceSupplier(name string, supplierType ServiceSupplierType, contactName string) (*ServiceSupplier, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}
	if !supplierType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown service supplier type")
	}

	return &ServiceSupplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Type:              supplierType,
		ContactName:       strings.TrimSpace(contactName),
	}, nil
}

// Update updates the provider's editable fields
func (s *ServiceSupplier) Update(name string, supplierType ServiceSupplierType, contactName string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	if !supplierType.IsValid() {
		return shared.NewDomainError("INVALID_TYPE", "Unknown service supplier type")
	}

	s.Name = strings.TrimSpace(name)
	s.Type = supplierType
	s.ContactName = strings.TrimSpace(contactName)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}
