package logistics

import (
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shipment is a container shipment executed for a sales order. An order can
// have several shipments when it ships in partial loads.
type Shipment struct {
	shared.BaseAggregateRoot
	SalesOrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	ShipmentDate time.Time `gorm:"type:date;not null;index"`
	Notes        string    `gorm:"type:text"`

	// Associations - loaded lazily
	Services []Service `gorm:"foreignKey:ShipmentID;references:ID"`
}

// TableName returns the table name for GORM
func (Shipment) TableName() string {
	return "shipments"
}

// NewShipment creates a shipment for a sales order
func NewShipment(salesOrderID uuid.UUID, shipmentDate time.Time, notes string) (*Shipment, error) {
	if salesOrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Sales order ID cannot be empty")
	}
	if shipmentDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Shipment date is required")
	}
	return &Shipment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SalesOrderID:      salesOrderID,
		ShipmentDate:      shipmentDate,
		Notes:             notes,
		Services:          make([]Service, 0),
	}, nil
}

// Update changes the shipment header
func (s *Shipment) Update(salesOrderID uuid.UUID, shipmentDate time.Time, notes string) error {
	if salesOrderID == uuid.Nil {
		return shared.NewDomainError("INVALID_ORDER", "Sales order ID cannot be empty")
	}
	if shipmentDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Shipment date is required")
	}
	s.SalesOrderID = salesOrderID
	s.ShipmentDate = shipmentDate
	s.Notes = notes
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// AddService attaches a logistics service charge to the shipment
func (s *Shipment) AddService(serviceSupplierID uuid.UUID, referenceDocument string, amount decimal.Decimal, currency shared.Currency, dueDate time.Time) (*Service, error) {
	service, err := NewService(s.ID, serviceSupplierID, referenceDocument, amount, currency, dueDate)
	if err != nil {
		return nil, err
	}
	s.Services = append(s.Services, *service)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return service, nil
}
