package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every rounded money amount carries.
const MoneyScale int32 = 2

// MaxMoneyIntegerDigits bounds the integer part of any amount the engine produces.
// It matches the NUMERIC(17,2) columns the calculations are persisted into.
const MaxMoneyIntegerDigits = 15

// MaxFractionDigits bounds the scale of any amount, quantity or percentage accepted as input.
const MaxFractionDigits = MoneyScale + 8

var (
	hundred       = decimal.NewFromInt(100)
	maxMoneyValue = decimal.New(1, MaxMoneyIntegerDigits)
)

// Money represents a monetary value with exact fixed-point decimal arithmetic.
// Values are immutable; every operation returns a new instance.
type Money struct {
	amount decimal.Decimal
}

// NewMoney parses a decimal string such as "850.00".
func NewMoney(value string) (*Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid money amount %q: %w", value, err)
	}
	return &Money{amount: d}, nil
}

// MustMoney is NewMoney for literals known to be valid. It panics on malformed input.
func MustMoney(value string) *Money {
	m, err := NewMoney(value)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMoneyFromInt creates a Money of whole currency units.
func NewMoneyFromInt(units int64) *Money {
	return &Money{amount: decimal.NewFromInt(units)}
}

// NewMoneyFromDecimal wraps an existing decimal value.
func NewMoneyFromDecimal(d decimal.Decimal) *Money {
	return &Money{amount: d}
}

// Zero returns a zero amount.
func Zero() *Money {
	return &Money{amount: decimal.Zero}
}

// Decimal returns the underlying decimal value.
func (m *Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add adds two Money values and returns a new Money instance.
func (m *Money) Add(other *Money) *Money {
	return &Money{amount: m.amount.Add(other.amount)}
}

// Subtract subtracts another Money value from this one and returns a new Money instance.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{amount: m.amount.Sub(other.amount)}
}

// MultiplyByDecimal multiplies this amount by a plain decimal factor (e.g. a quantity).
func (m *Money) MultiplyByDecimal(factor decimal.Decimal) *Money {
	return &Money{amount: m.amount.Mul(factor)}
}

// MultiplyByInt multiplies this amount by an integer factor (e.g. a guest count).
func (m *Money) MultiplyByInt(factor int64) *Money {
	return &Money{amount: m.amount.Mul(decimal.NewFromInt(factor))}
}

// Percent returns percentage/100 of this amount, unrounded.
func (m *Money) Percent(percentage decimal.Decimal) *Money {
	return &Money{amount: m.amount.Mul(percentage).Div(hundred)}
}

// DivideByInt divides this amount by a positive integer, keeping enough precision for a
// subsequent Round.
func (m *Money) DivideByInt(divisor int64) (*Money, error) {
	if divisor == 0 {
		return nil, fmt.Errorf("cannot divide by zero")
	}
	return &Money{amount: m.amount.DivRound(decimal.NewFromInt(divisor), MoneyScale+8)}, nil
}

// Round rounds half away from zero to MoneyScale places, which is round-half-up for the
// non-negative amounts the engine produces.
func (m *Money) Round() *Money {
	return &Money{amount: m.amount.Round(MoneyScale)}
}

// FloorAtZero returns zero when the amount is negative, otherwise a copy of the amount.
func (m *Money) FloorAtZero() *Money {
	if m.amount.IsNegative() {
		return Zero()
	}
	return m.Copy()
}

// Min returns the smaller of the two amounts.
func (m *Money) Min(other *Money) *Money {
	if other.LessThan(m) {
		return other.Copy()
	}
	return m.Copy()
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive returns true if the money value is positive.
func (m *Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// LessThan returns true if this Money value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan returns true if this Money value is greater than another.
func (m *Money) GreaterThan(other *Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Equals returns true if this Money value equals another, regardless of scale.
func (m *Money) Equals(other *Money) bool {
	return m.amount.Equal(other.amount)
}

// InRange reports whether the amount fits the persisted representation.
func (m *Money) InRange() bool {
	return m.amount.Abs().LessThan(maxMoneyValue)
}

// String returns the amount with exactly two decimal places.
func (m *Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// Copy creates a copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{amount: m.amount}
}

// CheckBounds rejects a decimal whose exponent would make exact arithmetic on it unbounded.
// Too many fraction digits is invalid input; a magnitude past MaxMoneyIntegerDigits is an
// overflow. The exponent is gated before any comparison, so d is never rescaled far.
func CheckBounds(field string, d decimal.Decimal) error {
	exp := d.Exponent()
	if exp < -MaxFractionDigits {
		return invalid(field, "has more than %d decimal places", MaxFractionDigits)
	}
	if d.IsZero() {
		if exp > MaxMoneyIntegerDigits {
			return invalid(field, "has exponent %d out of range", exp)
		}
		return nil
	}
	if exp > MaxMoneyIntegerDigits {
		return &OverflowError{Step: field, Amount: fmt.Sprintf("exponent %d", exp)}
	}
	if d.Abs().GreaterThanOrEqual(maxMoneyValue) {
		return &OverflowError{Step: field, Amount: d.StringFixed(MoneyScale)}
	}
	return nil
}

// checkMoney is CheckBounds for an optional amount.
func checkMoney(field string, m *Money) error {
	if m == nil {
		return nil
	}
	return CheckBounds(field, m.amount)
}

// SumMoney adds up amounts, treating an empty list as zero.
func SumMoney(amounts ...*Money) *Money {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.amount)
	}
	return &Money{amount: total}
}
