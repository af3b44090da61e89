// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command is validated by its constructor; handlers reject zero-value commands.
package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/model/shop"
)

// Preparer works a single ticket to a terminal stage against the shared shop.
// services.Barista is the production implementation.
type Preparer interface {
	Prepare(ctx context.Context, ticket *order.Ticket, register *shop.Shop) (order.Outcome, error)
}
