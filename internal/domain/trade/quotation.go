package trade

import (
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quotation is a pre-sale price study for a prospective deal. The client is
// optional and may be cleared later without losing the quotation. The
// suggested price is derived from total cost plus margin, never stored.
type Quotation struct {
	shared.BaseAggregateRoot
	ClientID          *uuid.UUID      `gorm:"type:uuid;index"`
	FinishedProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuoteDate         time.Time       `gorm:"type:date;not null;index"`
	QuantityKg        decimal.Decimal `gorm:"type:decimal(14,3);not null"`
	TotalCostUSD      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MarginPercent     decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Converted         bool            `gorm:"not null;default:false"`
	Notes             string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Quotation) TableName() string {
	return "quotations"
}

// NewQuotation creates a new quotation, optionally attached to a client
func NewQuotation(clientID *uuid.UUID, finishedProductID uuid.UUID, quoteDate time.Time, quantityKg, totalCostUSD, marginPercent decimal.Decimal, notes string) (*Quotation, error) {
	if err := validateQuotation(finishedProductID, quoteDate, quantityKg, totalCostUSD, marginPercent); err != nil {
		return nil, err
	}
	return &Quotation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientID:          clientID,
		FinishedProductID: finishedProductID,
		QuoteDate:         quoteDate,
		QuantityKg:        quantityKg,
		TotalCostUSD:      totalCostUSD,
		MarginPercent:     marginPercent,
		Converted:         false,
		Notes:             notes,
	}, nil
}

func validateQuotation(finishedProductID uuid.UUID, quoteDate time.Time, quantityKg, totalCostUSD, marginPercent decimal.Decimal) error {
	if finishedProductID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Finished product ID cannot be empty")
	}
	if quoteDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Quote date is required")
	}
	if quantityKg.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if totalCostUSD.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Total cost cannot be negative")
	}
	if marginPercent.IsNegative() {
		return shared.NewDomainError("INVALID_MARGIN", "Margin percent cannot be negative")
	}
	return nil
}

// Update modifies an unconverted quotation
func (q *Quotation) Update(clientID *uuid.UUID, finishedProductID uuid.UUID, quoteDate time.Time, quantityKg, totalCostUSD, marginPercent decimal.Decimal, notes string) error {
	if q.Converted {
		return shared.NewDomainError("INVALID_STATE", "Converted quotation cannot be modified")
	}
	if err := validateQuotation(finishedProductID, quoteDate, quantityKg, totalCostUSD, marginPercent); err != nil {
		return err
	}
	q.ClientID = clientID
	q.FinishedProductID = finishedProductID
	q.QuoteDate = quoteDate
	q.QuantityKg = quantityKg
	q.TotalCostUSD = totalCostUSD
	q.MarginPercent = marginPercent
	q.Notes = notes
	q.UpdatedAt = time.Now()
	q.IncrementVersion()
	return nil
}

// DetachClient clears the client reference, keeping the quotation on file.
// Called when the referenced client is deleted.
func (q *Quotation) DetachClient() {
	q.ClientID = nil
	q.UpdatedAt = time.Now()
	q.IncrementVersion()
}

// SuggestedPricePerKgUSD returns the unit price that covers total cost plus
// the margin over the quoted quantity
func (q *Quotation) SuggestedPricePerKgUSD() decimal.Decimal {
	if q.QuantityKg.IsZero() {
		return decimal.Zero
	}
	markup := decimal.NewFromInt(1).Add(q.MarginPercent.Div(percentHundred))
	return q.TotalCostUSD.Mul(markup).Div(q.QuantityKg).Round(2)
}

// MarkConverted flags the quotation as turned into a sales order
func (q *Quotation) MarkConverted() error {
	if q.Converted {
		return shared.NewDomainError("INVALID_STATE", "Quotation is already converted")
	}
	q.Converted = true
	q.UpdatedAt = time.Now()
	q.IncrementVersion()
	return nil
}
