package shared

// Currency is a descriptive tag for money-bearing records.
// No conversion logic exists anywhere; amounts are always interpreted in
// the currency recorded next to them.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyCLP Currency = "CLP"
)

// IsValid reports whether the currency is one of the supported tags
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyCLP:
		return true
	}
	return false
}

// ValidateCurrency returns a domain error when the currency tag is unknown
func ValidateCurrency(c Currency) error {
	if !c.IsValid() {
		return NewDomainError("INVALID_CURRENCY", "Currency must be USD or CLP")
	}
	return nil
}
