package progress

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/domain/model/order"
)

// NewLogSubscriber logs transitions at debug level and terminal outcomes at info level.
func NewLogSubscriber(logger *slog.Logger) Handler {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "ProgressLog")

	return func(ctx context.Context, event order.ProgressEvent) error {
		attrs := []any{
			"request_id", event.RequestID,
			"product", event.Product,
			"stage", event.Stage.String(),
		}

		if event.Outcome == order.OutcomeUnknown {
			logger.DebugContext(ctx, "ticket moved", attrs...)
			return nil
		}

		attrs = append(attrs, "outcome", event.Outcome.String(), "price", event.Price.String())
		logger.InfoContext(ctx, "ticket finished", attrs...)
		return nil
	}
}
