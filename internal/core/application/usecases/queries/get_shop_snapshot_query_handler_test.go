package queries_test

import (
	"context"
	"testing"

	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/shop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShopReader struct{ mock.Mock }

func (m *MockShopReader) Snapshot() shop.Snapshot {
	args := m.Called()
	return args.Get(0).(shop.Snapshot)
}

func TestGetShopSnapshotQueryHandler_Handle(t *testing.T) {
	t.Run("maps the snapshot", func(t *testing.T) {
		revenue, err := kernel.MoneyFromString("12.50")
		require.NoError(t, err)
		reader := new(MockShopReader)
		reader.On("Snapshot").Return(shop.Snapshot{
			InitialStock:   10,
			StockRemaining: 7,
			TotalRevenue:   revenue,
			Served:         3,
		}).Once()
		h, err := queries.NewGetShopSnapshotQueryHandler(reader)
		require.NoError(t, err)

		resp, err := h.Handle(t.Context(), queries.NewGetShopSnapshotQuery())

		require.NoError(t, err)
		assert.Equal(t, 10, resp.InitialStock)
		assert.Equal(t, 7, resp.StockRemaining)
		assert.Equal(t, 3, resp.Sold)
		assert.Equal(t, "$12.50", resp.TotalRevenue)
		reader.AssertExpectations(t)
	})

	t.Run("reads a real shop", func(t *testing.T) {
		register, err := shop.NewShop(2)
		require.NoError(t, err)
		price, err := kernel.MoneyFromString("3.00")
		require.NoError(t, err)
		register.Settle(price)
		h, err := queries.NewGetShopSnapshotQueryHandler(register)
		require.NoError(t, err)

		resp, err := h.Handle(t.Context(), queries.NewGetShopSnapshotQuery())

		require.NoError(t, err)
		assert.Equal(t, 1, resp.StockRemaining)
		assert.Equal(t, "$3.00", resp.TotalRevenue)
	})

	t.Run("rejects unconstructed query", func(t *testing.T) {
		h, err := queries.NewGetShopSnapshotQueryHandler(new(MockShopReader))
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), queries.GetShopSnapshotQuery{})

		require.ErrorIs(t, err, queries.ErrGetShopSnapshotQueryIsNotConstructed)
	})

	t.Run("rejects cancelled context", func(t *testing.T) {
		h, err := queries.NewGetShopSnapshotQueryHandler(new(MockShopReader))
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err = h.Handle(ctx, queries.NewGetShopSnapshotQuery())

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("requires a reader", func(t *testing.T) {
		_, err := queries.NewGetShopSnapshotQueryHandler(nil)
		require.Error(t, err)
	})
}
