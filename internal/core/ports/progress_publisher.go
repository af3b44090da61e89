package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/order"
)

// ProgressPublisher fans ticket progress out to interested subscribers.
// Publish is called concurrently from worker goroutines.
type ProgressPublisher interface {
	Publish(ctx context.Context, event order.ProgressEvent)
}
