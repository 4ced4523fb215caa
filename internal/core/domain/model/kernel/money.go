package kernel

import (
	"fmt"
	"math"
	"strconv"

	"laundry/internal/pkg/errs"
)

// Money is a value object representing a rupiah amount. Amounts are stored as
// whole rupiah (the currency has no sub-unit in practice) and are never
// negative.
//
// The zero value is a valid amount of zero. Money is immutable; arithmetic
// methods return new values.
//
// Example usage:
//
//	price, _ := kernel.NewMoney(7000)
//	total := price.MulWeight(2.5) // 17500
type Money struct {
	amount int64
}

// NewMoney creates a Money value from a whole-rupiah amount.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in whole rupiah.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference of two amounts.
// Returns an error when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("money amount", m.amount-other.amount, 0, m.amount)
	}
	return Money{amount: m.amount - other.amount}, nil
}

// MulQuantity returns the amount multiplied by an item count.
// Negative quantities are treated as zero.
func (m Money) MulQuantity(quantity int) Money {
	if quantity < 0 {
		return Money{}
	}
	return Money{amount: m.amount * int64(quantity)}
}

// MulWeight returns the amount multiplied by a weight in kilograms,
// rounded to the nearest whole rupiah. Negative weights are treated as zero.
func (m Money) MulWeight(weight float64) Money {
	if weight < 0 {
		return Money{}
	}
	return Money{amount: int64(math.Round(float64(m.amount) * weight))}
}

// GreaterOrEqual reports whether this amount covers the other amount.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.amount >= other.amount
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the plain decimal representation of the amount.
func (m Money) String() string {
	return strconv.FormatInt(m.amount, 10)
}
