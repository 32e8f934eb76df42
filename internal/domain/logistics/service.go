package logistics

import (
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment state of a logistics service charge
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// IsValid returns true if the status is a known value
func (s PaymentStatus) IsValid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// Service is a charge from a logistics service supplier against a shipment,
// for example ocean freight, customs clearance or inland trucking.
type Service struct {
	shared.BaseEntity
	ShipmentID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceSupplierID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReferenceDocument string          `gorm:"type:varchar(100);not null"`
	Amount            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency          shared.Currency `gorm:"type:varchar(3);not null;default:'USD'"`
	DueDate           time.Time       `gorm:"type:date;not null"`
	PaymentStatus     PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for GORM
func (Service) TableName() string {
	return "logistics_services"
}

// NewService creates a pending service charge against a shipment
func NewService(shipmentID, serviceSupplierID uuid.UUID, referenceDocument string, amount decimal.Decimal, currency shared.Currency, dueDate time.Time) (*Service, error) {
	if shipmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHIPMENT", "Shipment ID cannot be empty")
	}
	if serviceSupplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Service supplier ID cannot be empty")
	}
	if referenceDocument == "" {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Reference document is required")
	}
	if len(referenceDocument) > 100 {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Reference document cannot exceed 100 characters")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	if err := shared.ValidateCurrency(currency); err != nil {
		return nil, err
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Due date is required")
	}
	return &Service{
		BaseEntity:        shared.NewBaseEntity(),
		ShipmentID:        shipmentID,
		ServiceSupplierID: serviceSupplierID,
		ReferenceDocument: referenceDocument,
		Amount:            amount,
		Currency:          currency,
		DueDate:           dueDate,
		PaymentStatus:     PaymentPending,
	}, nil
}

// MarkPaid settles the charge. A paid charge stays paid.
func (s *Service) MarkPaid() error {
	if s.PaymentStatus == PaymentPaid {
		return shared.NewDomainError("INVALID_STATE", "Service is already paid")
	}
	s.PaymentStatus = PaymentPaid
	s.UpdatedAt = time.Now()
	return nil
}

// IsOverdue returns true if the charge is unpaid past its due date
func (s *Service) IsOverdue(now time.Time) bool {
	return s.PaymentStatus == PaymentPending && s.DueDate.Before(now)
}
