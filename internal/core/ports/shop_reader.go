package ports

import (
	"coffeeshop/internal/core/domain/model/shop"
)

// ShopReader exposes a consistent view of the shared shop state.
type ShopReader interface {
	Snapshot() shop.Snapshot
}
