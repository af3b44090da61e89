package progress

import (
	"context"
	"fmt"
	"io"
	"sync"

	"coffeeshop/internal/core/domain/model/order"
)

// NewReportSubscriber writes one human-readable line per event to w.
// Writes are serialized so lines from concurrent workers never interleave.
func NewReportSubscriber(w io.Writer) Handler {
	var mu sync.Mutex

	return func(_ context.Context, event order.ProgressEvent) error {
		line := reportLine(event)

		mu.Lock()
		defer mu.Unlock()
		_, err := io.WriteString(w, line)
		return err
	}
}

func reportLine(event order.ProgressEvent) string {
	ts := event.At.Format("15:04:05.000")
	switch event.Outcome {
	case order.Served:
		return fmt.Sprintf("%s %s (%s): served for %s\n", ts, event.RequestID, event.Product, event.Price)
	case order.OutOfStock:
		return fmt.Sprintf("%s %s (%s): out of stock\n", ts, event.RequestID, event.Product)
	case order.Cancelled:
		return fmt.Sprintf("%s %s (%s): cancelled\n", ts, event.RequestID, event.Product)
	case order.InvalidRequest:
		return fmt.Sprintf("%s %q (%s): rejected\n", ts, event.RequestID, event.Product)
	case order.Failed:
		return fmt.Sprintf("%s %s (%s): failed\n", ts, event.RequestID, event.Product)
	default:
		return fmt.Sprintf("%s %s (%s): %s\n", ts, event.RequestID, event.Product, event.Stage)
	}
}
