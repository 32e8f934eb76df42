package processing

import (
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cost is a tolling cost line charged by the processing plant for an
// operation, for example freight to the plant or cold storage. Lines are
// billed in either currency, so totals are kept per currency.
type Cost struct {
	shared.BaseEntity
	OperationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Concept     string          `gorm:"type:varchar(200);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency    shared.Currency `gorm:"type:varchar(3);not null;default:'USD'"`
	CostDate    time.Time       `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (Cost) TableName() string {
	return "processing_costs"
}

// NewCost creates a cost line for an operation
func NewCost(operationID uuid.UUID, concept string, amount decimal.Decimal, currency shared.Currency, costDate time.Time) (*Cost, error) {
	if operationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OPERATION", "Operation ID cannot be empty")
	}
	if concept == "" {
		return nil, shared.NewDomainError("INVALID_CONCEPT", "Cost concept is required")
	}
	if len(concept) > 200 {
		return nil, shared.NewDomainError("INVALID_CONCEPT", "Cost concept cannot exceed 200 characters")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Cost amount cannot be negative")
	}
	if err := shared.ValidateCurrency(currency); err != nil {
		return nil, err
	}
	if costDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Cost date is required")
	}
	return &Cost{
		BaseEntity:  shared.NewBaseEntity(),
		OperationID: operationID,
		Concept:     concept,
		Amount:      amount,
		Currency:    currency,
		CostDate:    costDate,
	}, nil
}
