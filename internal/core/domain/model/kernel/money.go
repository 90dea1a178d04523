package kernel

import (
	"fmt"
	"math"

	"fastorder/internal/pkg/errs"
)

// Money is a currency amount stored as an integer number of cents.
// Storing cents avoids drift when amounts are summed and compared, while the
// float constructors keep the boundary with external price snapshots simple.
//
// The zero value is a valid zero amount.
type Money struct {
	cents int64
}

// NewMoneyFromFloat converts a currency amount expressed in major units into
// Money, rounding to the nearest cent.
func NewMoneyFromFloat(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

// NewMoneyFromCents builds Money directly from a cent count, typically when
// reading a persisted amount back from storage.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in major currency units.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float64())
}

// ValidatePositive returns a ValueIsInvalidError when the amount is not
// strictly positive. Used by constructors that require a real price.
func (m Money) ValidatePositive(paramName string) error {
	if m.cents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%s is not greater than 0", m),
		)
	}
	return nil
}
