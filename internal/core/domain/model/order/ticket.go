package order

import (
	"errors"
	"fmt"
	"time"

	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

// ErrTicketIsNotConstructed is returned when a nil or zero-value Ticket is used.
var ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket constructor")

// Ticket tracks one request through the barista workflow.
// A ticket is owned by exactly one worker goroutine and is not safe for concurrent use.
type Ticket struct {
	request Request
	stage   Stage
	outcome Outcome

	guard guard.ConstructorGuard
}

// NewTicket opens a ticket in StageNew for a constructed request.
func NewTicket(request Request) (*Ticket, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	return &Ticket{
		request: request,
		stage:   StageNew,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the ticket was built by NewTicket.
func (t *Ticket) Validate() error {
	if t == nil {
		return ErrTicketIsNotConstructed
	}
	return t.guard.Validate(ErrTicketIsNotConstructed)
}

func (t *Ticket) Request() Request {
	return t.request
}

func (t *Ticket) Stage() Stage {
	return t.stage
}

// Outcome is OutcomeUnknown until the ticket reaches a terminal stage.
func (t *Ticket) Outcome() Outcome {
	return t.outcome
}

// StartBrewing moves the ticket from New to Brewing.
func (t *Ticket) StartBrewing() error {
	next, err := t.stage.StartBrewing()
	if err != nil {
		return err
	}
	t.stage = next
	return nil
}

// FinishBrewing moves the ticket from Brewing to Ready.
func (t *Ticket) FinishBrewing() error {
	next, err := t.stage.FinishBrewing()
	if err != nil {
		return err
	}
	t.stage = next
	return nil
}

// Settle records the register decision. Only Served and OutOfStock are accepted.
func (t *Ticket) Settle(outcome Outcome) error {
	if !outcome.IsRegisterOutcome() {
		return errs.NewValueIsInvalidErrorWithCause(
			"outcome is invalid",
			fmt.Errorf("%s is not a register outcome", outcome.String()),
		)
	}

	next, err := t.stage.Settle()
	if err != nil {
		return err
	}
	t.stage = next
	t.outcome = outcome
	return nil
}

// Cancel moves a New or Brewing ticket to Cancelled.
func (t *Ticket) Cancel() error {
	next, err := t.stage.Cancel()
	if err != nil {
		return err
	}
	t.stage = next
	t.outcome = Cancelled
	return nil
}

// Event captures the current state of the ticket for progress subscribers.
func (t *Ticket) Event() ProgressEvent {
	return ProgressEvent{
		RequestID: t.request.ID(),
		Product:   t.request.Product(),
		Price:     t.request.Price(),
		Stage:     t.stage,
		Outcome:   t.outcome,
		At:        time.Now(),
	}
}
