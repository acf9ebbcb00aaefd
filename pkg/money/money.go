package money

import (
	"github.com/shopspring/decimal"
)

// Money represents custom typo for processing money.
type Money struct {
	decimal decimal.Decimal
}

// Zero represents zero (0) amount.
// Zero always equals to 0 and to 0.0...N.
var Zero = NewFromInt(0)

// NewFromString parses string and returns decimal amount.
// If s is empty, will be returned Zero decimal without throwing an error.
func NewFromString(s string) (Money, error) {
	if len(s) == 0 {
		return Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Money{d}, nil
}

// NewFromInt returns decimal from integer number.
func NewFromInt(i int64) Money {
	d := decimal.NewFromInt(i)
	return Money{d}
}

// NewFromFloat returns decimal from float number.
// The shortest decimal that represents the float is used, so 0.92 stays 0.92.
func NewFromFloat(f float64) Money {
	d := decimal.NewFromFloat(f)
	return Money{d}
}

// Inc increments left amount by right.
// Same as left = left + right; left+=right
func (m *Money) Inc(right Money) {
	m.decimal = m.decimal.Add(right.decimal)
}

// Sub decrements left amount by right.
func (m *Money) Sub(right Money) {
	m.decimal = m.decimal.Sub(right.decimal)
}

// Mul multiplies left amount by right.
func (m *Money) Mul(right Money) {
	m.decimal = m.decimal.Mul(right.decimal)
}

// Div divides left amount by right. Right must not be zero.
func (m *Money) Div(right Money) {
	m.decimal = m.decimal.Div(right.decimal)
}

// Round returns amount rounded half away from zero to the given number of decimal places.
func (m Money) Round(places int32) Money {
	return Money{m.decimal.Round(places)}
}

// Equal checks if left amount equals to right.
func (m Money) Equal(right Money) bool {
	return m.decimal.Equal(right.decimal)
}

// GreaterThan checks if left amount is strictly greater than right.
func (m Money) GreaterThan(right Money) bool {
	return m.decimal.GreaterThan(right.decimal)
}

// IsZero checks if amount equals to zero.
func (m Money) IsZero() bool {
	return m.decimal.IsZero()
}

// IsPositive checks if amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.decimal.IsPositive()
}

// StringFixed returns string representation of float with 2 places after digit.
// Resulting string will be rounded to nearest.
func (m Money) StringFixed() string {
	return m.decimal.StringFixed(2)
}

// String returns string representation without trailing zeros, so 9.0 becomes "9".
func (m Money) String() string {
	return m.decimal.String()
}
