package kernel_test

import (
	"testing"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		for _, s := range []string{"0", "0.01", "5.00", "1234.5"} {
			m, err := kernel.NewMoney(decimal.RequireFromString(s))

			require.NoError(t, err, s)
			require.NoError(t, m.Validate())
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-0.01 is negative")
	})

	t.Run("should reject unparsable strings", func(t *testing.T) {
		_, err := kernel.MoneyFromString("five dollars")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m kernel.Money

		require.ErrorIs(t, m.Validate(), errs.ErrValueIsRequired)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add keeps exact cents", func(t *testing.T) {
		total := kernel.ZeroMoney()
		for range 10 {
			total = total.Add(mustMoney(t, "0.10"))
		}

		assert.True(t, total.IsEqual(mustMoney(t, "1.00")), total.String())
	})

	t.Run("mul by count", func(t *testing.T) {
		assert.True(t, mustMoney(t, "5.00").Mul(10).IsEqual(mustMoney(t, "50")))
		assert.True(t, mustMoney(t, "5.00").Mul(-3).IsZero())
	})

	t.Run("div rounds to cents", func(t *testing.T) {
		assert.Equal(t, "$3.33", mustMoney(t, "10").Div(3).String())
		assert.True(t, mustMoney(t, "10").Div(0).IsZero())
	})

	t.Run("compare", func(t *testing.T) {
		assert.Equal(t, -1, mustMoney(t, "2.50").Compare(mustMoney(t, "4.50")))
		assert.Equal(t, 0, mustMoney(t, "4.5").Compare(mustMoney(t, "4.50")))
		assert.Equal(t, 1, mustMoney(t, "7").Compare(mustMoney(t, "4.50")))
	})
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "$5.00", mustMoney(t, "5").String())
	assert.Equal(t, "$4.50", mustMoney(t, "4.5").String())
	assert.Equal(t, "$0.00", kernel.ZeroMoney().String())
}
