package order_test

import (
	"testing"
	"time"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTicket(t *testing.T) *order.Ticket {
	t.Helper()
	ticket, err := order.NewTicket(newRequest(t, "A1", "Latte #1", "4.50"))
	require.NoError(t, err)
	return ticket
}

func TestNewTicket(t *testing.T) {
	t.Run("new ticket starts in New", func(t *testing.T) {
		ticket := newTicket(t)

		require.NoError(t, ticket.Validate())
		assert.Equal(t, order.StageNew, ticket.Stage())
		assert.Equal(t, order.OutcomeUnknown, ticket.Outcome())
		assert.Equal(t, "A1", ticket.Request().ID())
	})

	t.Run("unconstructed request is rejected", func(t *testing.T) {
		ticket, err := order.NewTicket(order.Request{})

		require.ErrorIs(t, err, order.ErrRequestIsNotConstructed)
		assert.Nil(t, ticket)
	})

	t.Run("nil and zero tickets are not constructed", func(t *testing.T) {
		var nilTicket *order.Ticket
		require.ErrorIs(t, nilTicket.Validate(), order.ErrTicketIsNotConstructed)
		require.ErrorIs(t, (&order.Ticket{}).Validate(), order.ErrTicketIsNotConstructed)
	})
}

func TestTicket_Lifecycle(t *testing.T) {
	t.Run("served ticket", func(t *testing.T) {
		ticket := newTicket(t)

		require.NoError(t, ticket.StartBrewing())
		require.NoError(t, ticket.FinishBrewing())
		require.NoError(t, ticket.Settle(order.Served))

		assert.Equal(t, order.StageSettled, ticket.Stage())
		assert.Equal(t, order.Served, ticket.Outcome())
	})

	t.Run("cancelled while brewing", func(t *testing.T) {
		ticket := newTicket(t)
		require.NoError(t, ticket.StartBrewing())

		require.NoError(t, ticket.Cancel())

		assert.Equal(t, order.StageCancelled, ticket.Stage())
		assert.Equal(t, order.Cancelled, ticket.Outcome())
	})

	t.Run("ready ticket cannot be cancelled", func(t *testing.T) {
		ticket := newTicket(t)
		require.NoError(t, ticket.StartBrewing())
		require.NoError(t, ticket.FinishBrewing())

		require.ErrorIs(t, ticket.Cancel(), errs.ErrValueIsInvalid)
		assert.Equal(t, order.StageReady, ticket.Stage())
		assert.Equal(t, order.OutcomeUnknown, ticket.Outcome())
	})

	t.Run("settle rejects non register outcomes", func(t *testing.T) {
		ticket := newTicket(t)
		require.NoError(t, ticket.StartBrewing())
		require.NoError(t, ticket.FinishBrewing())

		err := ticket.Settle(order.Cancelled)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Cancelled is not a register outcome")
		assert.Equal(t, order.StageReady, ticket.Stage())
	})

	t.Run("settle before ready is rejected", func(t *testing.T) {
		ticket := newTicket(t)

		require.Error(t, ticket.Settle(order.OutOfStock))
		assert.Equal(t, order.StageNew, ticket.Stage())
	})
}

func TestTicket_Event(t *testing.T) {
	ticket := newTicket(t)
	require.NoError(t, ticket.StartBrewing())
	before := time.Now()

	event := ticket.Event()

	assert.Equal(t, "A1", event.RequestID)
	assert.Equal(t, "Latte #1", event.Product)
	assert.Equal(t, "$4.50", event.Price.String())
	assert.Equal(t, order.StageBrewing, event.Stage)
	assert.Equal(t, order.OutcomeUnknown, event.Outcome)
	assert.False(t, event.At.Before(before))
}
