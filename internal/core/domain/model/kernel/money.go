package kernel

import (
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative monetary amount. It wraps shopspring/decimal so
// line totals and order totals carry exact NUMERIC semantics end to end
// instead of accumulating float error.
//
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromString parses an amount like "149.90".
// Negative amounts are rejected.
func NewMoneyFromString(s string) (Money, error) {
	if s == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoneyFromDecimal(d)
}

// NewMoneyFromDecimal wraps a decimal, rejecting negative amounts.
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidError("amount must not be negative")
	}
	return Money{amount: d}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQty returns the amount multiplied by an item quantity.
func (m Money) MulQty(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts by numeric value, ignoring scale.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal for persistence mapping.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
