package services

import (
	"context"
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/model/shop"
)

// ErrBrewInterrupted is returned by a BrewTimer when the context ended the delay early.
var ErrBrewInterrupted = errors.New("brew interrupted")

// BrewTimer simulates the time it takes to prepare one item.
// Brew must return promptly once ctx is done.
type BrewTimer interface {
	Brew(ctx context.Context, product string) error
}

// ProgressObserver receives every ticket transition. Implementations are called
// from many worker goroutines at once.
type ProgressObserver interface {
	Publish(ctx context.Context, event order.ProgressEvent)
}

type noopObserver struct{}

func (noopObserver) Publish(context.Context, order.ProgressEvent) {}

// Barista is a domain service that works one ticket from acceptance to the register.
//
// Workflow:
//   - If cancellation is already active the ticket is cancelled without brewing
//   - Otherwise the item is brewed; an interrupted brew cancels the ticket
//   - A brewed item is settled at the shop register, which decides Served or OutOfStock
//
// Once the ticket is Ready, cancellation is no longer observed: a barista standing
// at the register always finishes the settlement.
//
// Example usage:
//
//	barista := services.NewBarista(timer, dispatcher)
//	ticket, _ := order.NewTicket(request)
//	outcome, err := barista.Prepare(ctx, ticket, coffeeShop)
type Barista struct {
	timer    BrewTimer
	observer ProgressObserver
}

// NewBarista creates a Barista. A nil observer discards progress events.
func NewBarista(timer BrewTimer, observer ProgressObserver) (*Barista, error) {
	if timer == nil {
		return nil, errors.New("brew timer is required")
	}
	if observer == nil {
		observer = noopObserver{}
	}
	return &Barista{timer: timer, observer: observer}, nil
}

// Prepare runs one ticket to a terminal stage.
//
// Returns:
//   - order.Outcome: Served, OutOfStock or Cancelled
//   - error: validation failures, illegal transitions or a brew failure unrelated to ctx
func (b *Barista) Prepare(ctx context.Context, ticket *order.Ticket, register *shop.Shop) (order.Outcome, error) {
	if err := ticket.Validate(); err != nil {
		return order.OutcomeUnknown, err
	}
	if err := register.Validate(); err != nil {
		return order.OutcomeUnknown, err
	}

	b.emit(ctx, ticket)

	if ctx.Err() != nil {
		return b.cancel(ctx, ticket)
	}

	if err := ticket.StartBrewing(); err != nil {
		return order.OutcomeUnknown, err
	}
	b.emit(ctx, ticket)

	if err := b.timer.Brew(ctx, ticket.Request().Product()); err != nil {
		if ctx.Err() != nil || errors.Is(err, ErrBrewInterrupted) {
			return b.cancel(ctx, ticket)
		}
		return order.OutcomeUnknown, fmt.Errorf("brew %s: %w", ticket.Request().ID(), err)
	}

	if err := ticket.FinishBrewing(); err != nil {
		return order.OutcomeUnknown, err
	}
	b.emit(ctx, ticket)

	outcome := order.OutOfStock
	if register.Settle(ticket.Request().Price()).Served {
		outcome = order.Served
	}

	if err := ticket.Settle(outcome); err != nil {
		return order.OutcomeUnknown, err
	}
	b.emit(ctx, ticket)

	return outcome, nil
}

func (b *Barista) cancel(ctx context.Context, ticket *order.Ticket) (order.Outcome, error) {
	if err := ticket.Cancel(); err != nil {
		return order.OutcomeUnknown, err
	}
	b.emit(ctx, ticket)
	return order.Cancelled, nil
}

func (b *Barista) emit(ctx context.Context, ticket *order.Ticket) {
	b.observer.Publish(context.WithoutCancel(ctx), ticket.Event())
}
