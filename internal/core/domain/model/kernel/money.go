package kernel

import (
	"fmt"

	"storeadmin/internal/pkg/errs"
	"storeadmin/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits money is compared and displayed with.
const MoneyScale = 2

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or NewMoneyFromFloat")

// Money is a non-negative monetary amount. The currency is implicit and shared by
// the whole store.
//
// Amounts are kept at full decimal precision; Equal and String work at MoneyScale,
// so 259.98 computed as 199.99 + 2*29.995 rounds the same way the store does.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money is invalid",
			fmt.Errorf("%s is negative", amount.StringFixed(MoneyScale)),
		)
	}

	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// NewMoneyFromFloat is a convenience for seed data and tests.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MustNewMoneyFromFloat panics when amount is negative.
func MustNewMoneyFromFloat(amount float64) Money {
	m, err := NewMoneyFromFloat(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal exposes the underlying amount for persistence and arithmetic.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Mul returns m multiplied by a non-negative quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}
}

// Equal compares both amounts rounded to MoneyScale.
func (m Money) Equal(other Money) bool {
	return m.amount.Round(MoneyScale).Equal(other.amount.Round(MoneyScale))
}

// String renders the amount with exactly MoneyScale fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
