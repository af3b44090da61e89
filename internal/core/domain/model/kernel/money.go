package kernel

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a zero-value Money is used where a price is expected.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString or ZeroMoney")

// Money is an immutable, non-negative fixed-point amount used for unit prices and revenue.
// Amounts are kept as decimals so that summing many prices never drifts.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates Money from a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string such as "4.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid Money with a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate reports whether m was built by one of the constructors.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of m and other. The sum of two non-negative amounts stays non-negative.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Mul returns m multiplied by a non-negative count.
func (m Money) Mul(n int) Money {
	if n < 0 {
		n = 0
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))), guard: guard.NewConstructorGuard()}
}

// Div returns m divided by n rounded to cents. Division by a non-positive n yields zero.
func (m Money) Div(n int) Money {
	if n <= 0 {
		return ZeroMoney()
	}
	return Money{
		amount: m.amount.DivRound(decimal.NewFromInt(int64(n)), 2),
		guard:  guard.NewConstructorGuard(),
	}
}

// Compare returns -1, 0 or +1 as m is less than, equal to or greater than other.
func (m Money) Compare(other Money) int {
	return m.amount.Cmp(other.amount)
}

// IsEqual compares amounts numerically, so 5 and 5.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String formats the amount with a dollar sign and two decimals, e.g. "$4.50".
func (m Money) String() string {
	return "$" + m.amount.StringFixed(2)
}
