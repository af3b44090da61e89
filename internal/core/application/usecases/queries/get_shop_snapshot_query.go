// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
package queries

import (
	"errors"

	"coffeeshop/internal/pkg/guard"
)

var ErrGetShopSnapshotQueryIsNotConstructed = errors.New(
	"GetShopSnapshotQuery must be created via NewGetShopSnapshotQuery constructor",
)

// GetShopSnapshotQuery reads the register state: stock and revenue.
//
// Example:
//
//	handler := NewGetShopSnapshotQueryHandler(coffeeShop)
//	snapshot, err := handler.Handle(ctx, NewGetShopSnapshotQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d left, %s earned\n", snapshot.StockRemaining, snapshot.TotalRevenue)
type GetShopSnapshotQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShopSnapshotQuery creates a parameterless snapshot query.
func NewGetShopSnapshotQuery() GetShopSnapshotQuery {
	return GetShopSnapshotQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShopSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetShopSnapshotQueryIsNotConstructed)
}

// GetShopSnapshotQueryResponse is the read model of the shop.
type GetShopSnapshotQueryResponse struct {
	InitialStock   int
	StockRemaining int
	Sold           int
	TotalRevenue   string
}
