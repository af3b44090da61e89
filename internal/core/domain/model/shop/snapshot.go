package shop

import (
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
)

// Snapshot is an immutable view of a Shop.
type Snapshot struct {
	InitialStock   int
	StockRemaining int
	TotalRevenue   kernel.Money
	Served         int
}

// Sold is the number of units taken from stock.
func (s Snapshot) Sold() int {
	return s.InitialStock - s.StockRemaining
}

func (s Snapshot) String() string {
	return fmt.Sprintf("stock %d/%d, revenue %s", s.StockRemaining, s.InitialStock, s.TotalRevenue)
}
