// Package progress delivers ticket progress events to in-process subscribers.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

var _ ports.ProgressPublisher = (*Dispatcher)(nil)

// ErrSubscriberPanicked wraps a panic recovered from a subscriber.
var ErrSubscriberPanicked = errors.New("subscriber panicked")

// Handler reacts to one progress event. It is called from many goroutines at once.
type Handler func(ctx context.Context, event order.ProgressEvent) error

type subscription struct {
	name    string
	handler Handler
}

// Dispatcher is an in-memory fan-out of progress events. Subscribers run
// synchronously in registration order; a failing or panicking subscriber is
// logged and skipped without affecting the others or the publisher.
type Dispatcher struct {
	mu            sync.RWMutex
	subscriptions []subscription
	logger        *slog.Logger
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{logger: logger.With("component", "ProgressDispatcher")}
}

// Subscribe registers handler under name. Names are used only for logging.
func (d *Dispatcher) Subscribe(name string, handler Handler) error {
	if name == "" {
		return errors.New("subscriber name is required")
	}
	if handler == nil {
		return fmt.Errorf("subscriber %q: handler is required", name)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscriptions = append(d.subscriptions, subscription{name: name, handler: handler})
	return nil
}

// Publish delivers event to every subscriber.
func (d *Dispatcher) Publish(ctx context.Context, event order.ProgressEvent) {
	d.mu.RLock()
	subs := d.subscriptions
	d.mu.RUnlock()

	for _, sub := range subs {
		if err := d.deliver(ctx, sub, event); err != nil {
			d.logger.ErrorContext(ctx, "subscriber failed",
				"subscriber", sub.name,
				"request_id", event.RequestID,
				"stage", event.Stage.String(),
				"error", err,
			)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, sub subscription, event order.ProgressEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSubscriberPanicked, r)
		}
	}()
	return sub.handler(ctx, event)
}
