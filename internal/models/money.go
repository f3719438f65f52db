// internal/models/money.go
package models

import (
	"github.com/shopspring/decimal"
)

// Money is a decimal amount that tolerates the encodings clients actually
// send: JSON numbers, numeric strings, empty strings and null. Anything
// unparseable decodes to zero so one bad record cannot corrupt a running sum.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func MoneyFromFloat(f float64) Money {
	return Money{Decimal: decimal.NewFromFloat(f)}
}

func MoneyFromString(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}
	}
	return Money{Decimal: d}
}

func (m Money) Add(o Money) Money {
	return Money{Decimal: m.Decimal.Add(o.Decimal)}
}

func (m Money) Sub(o Money) Money {
	return Money{Decimal: m.Decimal.Sub(o.Decimal)}
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		// Non-numeric input contributes zero, not an error.
		m.Decimal = decimal.Zero
		return nil
	}
	m.Decimal = d
	return nil
}

// MarshalJSON emits a bare JSON number so clients can consume amounts without
// unquoting.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}
