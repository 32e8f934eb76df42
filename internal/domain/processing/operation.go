package processing

import (
	"time"

	"github.com/avellanos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Operation records a processing run that converts raw material into a
// finished product. Posting an operation debits raw material stock and
// credits finished goods stock. A posted operation is immutable.
type Operation struct {
	shared.BaseAggregateRoot
	OperationDate     time.Time        `gorm:"type:date;not null;index"`
	RawMaterialID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	FinishedProductID uuid.UUID        `gorm:"type:uuid;not null;index"`
	InputKg           decimal.Decimal  `gorm:"type:decimal(14,3);not null"`
	YieldPercent      *decimal.Decimal `gorm:"type:decimal(6,2)"`
	OutputKg          decimal.Decimal  `gorm:"type:decimal(14,3);not null"`
	Posted            bool             `gorm:"not null;default:false;index"`
	PostedAt          *time.Time       `gorm:"type:timestamptz"`
	Notes             string           `gorm:"type:text"`

	// Associations - loaded lazily
	Costs []Cost `gorm:"foreignKey:OperationID;references:ID"`
}

// TableName returns the table name for GORM
func (Operation) TableName() string {
	return "processing_operations"
}

// NewOperation creates a new unposted processing operation. The declared
// yield percent is optional; pass nil when the run has no expected yield.
func NewOperation(operationDate time.Time, rawMaterialID, finishedProductID uuid.UUID, inputKg decimal.Decimal, yieldPercent *decimal.Decimal, outputKg decimal.Decimal, notes string) (*Operation, error) {
	if err := validateOperation(operationDate, rawMaterialID, finishedProductID, inputKg, yieldPercent, outputKg); err != nil {
		return nil, err
	}
	return &Operation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OperationDate:     operationDate,
		RawMaterialID:     rawMaterialID,
		FinishedProductID: finishedProductID,
		InputKg:           inputKg,
		YieldPercent:      yieldPercent,
		OutputKg:          outputKg,
		Posted:            false,
		Notes:             notes,
		Costs:             make([]Cost, 0),
	}, nil
}

func validateOperation(operationDate time.Time, rawMaterialID, finishedProductID uuid.UUID, inputKg decimal.Decimal, yieldPercent *decimal.Decimal, outputKg decimal.Decimal) error {
	if operationDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Operation date is required")
	}
	if rawMaterialID == uuid.Nil {
		return shared.NewDomainError("INVALID_RAW_MATERIAL", "Raw material ID cannot be empty")
	}
	if finishedProductID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Finished product ID cannot be empty")
	}
	if inputKg.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Input quantity must be positive")
	}
	if yieldPercent != nil && (yieldPercent.LessThanOrEqual(decimal.Zero) || yieldPercent.GreaterThan(hundred)) {
		return shared.NewDomainError("INVALID_YIELD", "Yield percent must be greater than 0 and at most 100")
	}
	if outputKg.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Output quantity must be positive")
	}
	return nil
}

// Update modifies an unposted operation. Posted operations are immutable.
func (o *Operation) Update(operationDate time.Time, rawMaterialID, finishedProductID uuid.UUID, inputKg decimal.Decimal, yieldPercent *decimal.Decimal, outputKg decimal.Decimal, notes string) error {
	if o.Posted {
		return shared.NewDomainError("INVALID_STATE", "Posted operation cannot be modified")
	}
	if err := validateOperation(operationDate, rawMaterialID, finishedProductID, inputKg, yieldPercent, outputKg); err != nil {
		return err
	}
	o.OperationDate = operationDate
	o.RawMaterialID = rawMaterialID
	o.FinishedProductID = finishedProductID
	o.InputKg = inputKg
	o.YieldPercent = yieldPercent
	o.OutputKg = outputKg
	o.Notes = notes
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// ExpectedOutputKg returns input multiplied by the declared yield percent,
// or nil when no yield was declared for the run.
func (o *Operation) ExpectedOutputKg() *decimal.Decimal {
	if o.YieldPercent == nil {
		return nil
	}
	expected := o.InputKg.Mul(*o.YieldPercent).Div(hundred).Round(3)
	return &expected
}

// YieldVarianceKg returns actual output minus expected output. A negative
// value means the run produced less than the declared yield promised. Nil
// when the operation has no declared yield to compare against.
func (o *Operation) YieldVarianceKg() *decimal.Decimal {
	expected := o.ExpectedOutputKg()
	if expected == nil {
		return nil
	}
	variance := o.OutputKg.Sub(*expected)
	return &variance
}

// Post marks the operation as applied to inventory. An operation can be
// posted exactly once.
func (o *Operation) Post() error {
	if o.Posted {
		return shared.ErrDuplicatePosting
	}
	now := time.Now()
	o.Posted = true
	o.PostedAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()
	return nil
}

// TotalCost returns the sum of the tolling cost lines billed in the given
// currency. Lines in other currencies are not converted.
func (o *Operation) TotalCost(currency shared.Currency) decimal.Decimal {
	total := decimal.Zero
	for _, c := range o.Costs {
		if c.Currency == currency {
			total = total.Add(c.Amount)
		}
	}
	return total.Round(2)
}

// AddCost attaches a tolling cost line to an unposted operation
func (o *Operation) AddCost(concept string, amount decimal.Decimal, currency shared.Currency, costDate time.Time) (*Cost, error) {
	if o.Posted {
		return nil, shared.NewDomainError("INVALID_STATE", "Posted operation cannot be modified")
	}
	cost, err := NewCost(o.ID, concept, amount, currency, costDate)
	if err != nil {
		return nil, err
	}
	o.Costs = append(o.Costs, *cost)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return cost, nil
}
