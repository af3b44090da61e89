package queries

import (
	"context"
	"errors"

	"coffeeshop/internal/core/ports"
)

// GetShopSnapshotQueryHandler reads the shop through ports.ShopReader.
type GetShopSnapshotQueryHandler struct {
	reader ports.ShopReader
}

func NewGetShopSnapshotQueryHandler(reader ports.ShopReader) (GetShopSnapshotQueryHandler, error) {
	if reader == nil {
		return GetShopSnapshotQueryHandler{}, errors.New("shop reader is required")
	}
	return GetShopSnapshotQueryHandler{reader: reader}, nil
}

// Handle returns the current state. Read it after a batch settles for final totals.
func (h GetShopSnapshotQueryHandler) Handle(
	ctx context.Context,
	query GetShopSnapshotQuery,
) (GetShopSnapshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShopSnapshotQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return GetShopSnapshotQueryResponse{}, err
	}

	snapshot := h.reader.Snapshot()
	return GetShopSnapshotQueryResponse{
		InitialStock:   snapshot.InitialStock,
		StockRemaining: snapshot.StockRemaining,
		Sold:           snapshot.Sold(),
		TotalRevenue:   snapshot.TotalRevenue.String(),
	}, nil
}
