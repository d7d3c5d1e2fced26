package money

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("money cannot be negative")

// Money is an amount in cents. All arithmetic that involves a rate goes
// through decimal and is rounded half-up to the cent.
type Money struct {
	cents int64
}

var Zero = Money{}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func FromDollars(dollars int64) Money {
	return Money{cents: dollars * 100}
}

func FromDecimal(d decimal.Decimal) Money {
	return Money{cents: d.Shift(2).Round(0).IntPart()}
}

func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return FromDecimal(d), nil
}

func NewNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Times(n int64) Money {
	return Money{cents: m.cents * n}
}

// MulRate multiplies by a decimal rate and rounds half-up to the cent.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return FromDecimal(m.Decimal().Mul(rate))
}

// Percent returns pct percent of m, rounded half-up.
func (m Money) Percent(pct decimal.Decimal) Money {
	return m.MulRate(pct.Div(decimal.NewFromInt(100)))
}

func (m Money) Min(other Money) Money {
	if other.cents < m.cents {
		return other
	}
	return m
}

func (m Money) IsZero() bool     { return m.cents == 0 }
func (m Money) IsNegative() bool { return m.cents < 0 }
func (m Money) IsPositive() bool { return m.cents > 0 }

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.cents >= other.cents
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var d decimal.Decimal
		if numErr := d.UnmarshalJSON(data); numErr != nil {
			return err
		}
		*m = FromDecimal(d)
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
