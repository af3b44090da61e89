package order_test

import (
	"errors"
	"testing"

	"coffeeshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settledResult(t *testing.T, position int, id string, outcome order.Outcome) order.Result {
	t.Helper()
	ticket, err := order.NewTicket(newRequest(t, id, "Latte", "5.00"))
	require.NoError(t, err)
	require.NoError(t, ticket.StartBrewing())
	if outcome == order.Cancelled {
		require.NoError(t, ticket.Cancel())
		return order.NewTicketResult(position, ticket)
	}
	require.NoError(t, ticket.FinishBrewing())
	require.NoError(t, ticket.Settle(outcome))
	return order.NewTicketResult(position, ticket)
}

func TestSummarize(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		s := order.Summarize(nil)

		assert.Equal(t, 0, s.Total)
		assert.True(t, s.Revenue.IsZero())
	})

	t.Run("counts outcomes and sums served prices only", func(t *testing.T) {
		results := []order.Result{
			settledResult(t, 0, "a", order.Served),
			settledResult(t, 1, "b", order.Served),
			settledResult(t, 2, "c", order.OutOfStock),
			settledResult(t, 3, "d", order.Cancelled),
			order.NewInvalidResult(4, "", "Latte", errors.New("id missing")),
			order.NewFailedResult(5, newRequest(t, "f", "Cake", "7.00"), errors.New("boom")),
		}

		s := order.Summarize(results)

		assert.Equal(t, 6, s.Total)
		assert.Equal(t, 2, s.Served)
		assert.Equal(t, 1, s.OutOfStock)
		assert.Equal(t, 1, s.Cancelled)
		assert.Equal(t, 1, s.InvalidRequest)
		assert.Equal(t, 1, s.Failed)
		assert.Equal(t, "$10.00", s.Revenue.String())
		assert.Equal(t,
			"total=6 served=2 out_of_stock=1 cancelled=1 invalid=1 failed=1 revenue=$10.00",
			s.String())
	})
}

func TestResults(t *testing.T) {
	t.Run("ticket result copies request fields", func(t *testing.T) {
		r := settledResult(t, 3, "x", order.Served)

		assert.Equal(t, 3, r.Position)
		assert.Equal(t, "x", r.RequestID)
		assert.Equal(t, order.Served, r.Outcome)
		require.NoError(t, r.Err)
	})

	t.Run("invalid result keeps the cause", func(t *testing.T) {
		cause := errors.New("negative price")
		r := order.NewInvalidResult(2, "b", "Latte", cause)

		assert.Equal(t, order.InvalidRequest, r.Outcome)
		require.ErrorIs(t, r.Err, cause)
		assert.True(t, r.Price.IsZero())
	})
}
