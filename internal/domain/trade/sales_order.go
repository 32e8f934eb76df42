package trade

import (
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a sales order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// IsValid returns true if the status is a known value
func (s OrderStatus) IsValid() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

// BalanceTerms says which shipping documents trigger payment of the balance
type BalanceTerms string

const (
	BalanceAgainstCopies    BalanceTerms = "against_copies"
	BalanceAgainstOriginals BalanceTerms = "against_originals"
)

// IsValid returns true if the terms are a known value
func (t BalanceTerms) IsValid() bool {
	return t == BalanceAgainstCopies || t == BalanceAgainstOriginals
}

var percentHundred = decimal.NewFromInt(100)

// SalesOrder is an export sales order placed by a client. Monetary totals
// are derived from the item lines and never stored.
type SalesOrder struct {
	shared.BaseAggregateRoot
	OrderNumber          string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	ClientID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderDate            time.Time       `gorm:"type:date;not null;index"`
	Status               OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index"`
	AdvancePercent       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	BalanceTerms         BalanceTerms    `gorm:"type:varchar(30);not null"`
	EstimatedBalanceDate *time.Time      `gorm:"type:date"`
	Notes                string          `gorm:"type:text"`

	// Associations - loaded lazily
	Items []SalesOrderItem `gorm:"foreignKey:SalesOrderID;references:ID"`
}

// TableName returns the table name for GORM
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// NewSalesOrder creates a new pending sales order. The estimated balance
// payment date is optional and may be settled later in the negotiation.
func NewSalesOrder(orderNumber string, clientID uuid.UUID, orderDate time.Time, advancePercent decimal.Decimal, balanceTerms BalanceTerms, estimatedBalanceDate *time.Time, notes string) (*SalesOrder, error) {
	if err := validateSalesOrder(orderNumber, clientID, orderDate, advancePercent, balanceTerms); err != nil {
		return nil, err
	}
	return &SalesOrder{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		OrderNumber:          orderNumber,
		ClientID:             clientID,
		OrderDate:            orderDate,
		Status:               OrderStatusPending,
		AdvancePercent:       advancePercent,
		BalanceTerms:         balanceTerms,
		EstimatedBalanceDate: estimatedBalanceDate,
		Notes:                notes,
		Items:                make([]SalesOrderItem, 0),
	}, nil
}

func validateSalesOrder(orderNumber string, clientID uuid.UUID, orderDate time.Time, advancePercent decimal.Decimal, balanceTerms BalanceTerms) error {
	if orderNumber == "" {
		return shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number is required")
	}
	if len(orderNumber) > 50 {
		return shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if clientID == uuid.Nil {
		return shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}
	if orderDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Order date is required")
	}
	if advancePercent.IsNegative() || advancePercent.GreaterThan(percentHundred) {
		return shared.NewDomainError("INVALID_ADVANCE", "Advance percent must be between 0 and 100")
	}
	if !balanceTerms.IsValid() {
		return shared.NewDomainError("INVALID_BALANCE_TERMS", "Unknown balance terms")
	}
	return nil
}

// Update modifies the order header. Confirmed orders keep their order number.
func (o *SalesOrder) Update(orderNumber string, clientID uuid.UUID, orderDate time.Time, advancePercent decimal.Decimal, balanceTerms BalanceTerms, estimatedBalanceDate *time.Time, notes string) error {
	if err := validateSalesOrder(orderNumber, clientID, orderDate, advancePercent, balanceTerms); err != nil {
		return err
	}
	if o.Status == OrderStatusConfirmed && orderNumber != o.OrderNumber {
		return shared.NewDomainError("INVALID_STATE", "Order number of a confirmed order cannot change")
	}
	o.OrderNumber = orderNumber
	o.ClientID = clientID
	o.OrderDate = orderDate
	o.AdvancePercent = advancePercent
	o.BalanceTerms = balanceTerms
	o.EstimatedBalanceDate = estimatedBalanceDate
	o.Notes = notes
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// Confirm moves a pending order to confirmed. An order without item lines
// cannot be confirmed.
func (o *SalesOrder) Confirm() error {
	if o.Status == OrderStatusConfirmed {
		return shared.NewDomainError("INVALID_STATE", "Order is already confirmed")
	}
	if len(o.Items) == 0 {
		return shared.NewDomainError("INVALID_STATE", "Order without items cannot be confirmed")
	}
	o.Status = OrderStatusConfirmed
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// AddItem appends a product line to the order
func (o *SalesOrder) AddItem(finishedProductID uuid.UUID, quantityKg, pricePerKgUSD decimal.Decimal) (*SalesOrderItem, error) {
	item, err := NewSalesOrderItem(o.ID, finishedProductID, quantityKg, pricePerKgUSD)
	if err != nil {
		return nil, err
	}
	o.Items = append(o.Items, *item)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return item, nil
}

// TotalUSD returns the sum of all item subtotals
func (o *SalesOrder) TotalUSD() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.SubtotalUSD())
	}
	return total.Round(2)
}

// AdvanceUSD returns the advance payment amount derived from the
// advance percent over the order total
func (o *SalesOrder) AdvanceUSD() decimal.Decimal {
	return o.TotalUSD().Mul(o.AdvancePercent).Div(percentHundred).Round(2)
}

// BalanceUSD returns the remaining amount due after the advance
func (o *SalesOrder) BalanceUSD() decimal.Decimal {
	return o.TotalUSD().Sub(o.AdvanceUSD())
}

// TotalQuantityKg returns the total kilograms across all item lines
func (o *SalesOrder) TotalQuantityKg() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.QuantityKg)
	}
	return total
}

// IsPending returns true while the order has not been confirmed
func (o *SalesOrder) IsPending() bool {
	return o.Status == OrderStatusPending
}
