package commands

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSubmitBatchCommandIsNotConstructed = errors.New(
		"SubmitBatchCommand must be created via NewSubmitBatchCommand constructor",
	)
	ErrDeadlineIsInvalid = errors.New("deadline must not be negative")
)

// OrderLine is one raw, unvalidated entry of a batch.
type OrderLine struct {
	ID      string
	Product string
	Price   decimal.Decimal
}

// Request converts the line into a domain request. Every violation is reported.
func (l OrderLine) Request() (order.Request, error) {
	price, priceErr := kernel.NewMoney(l.Price)
	if priceErr != nil {
		_, idErr := order.NewRequest(l.ID, l.Product, kernel.ZeroMoney())
		return order.Request{}, errors.Join(idErr, priceErr)
	}
	return order.NewRequest(l.ID, l.Product, price)
}

// SubmitBatchCommand asks the shop to process a batch of order lines concurrently,
// optionally bounded by a deadline measured from the moment the batch starts.
//
// Example:
//
//	deadline := 2 * time.Second
//	cmd, err := NewSubmitBatchCommand([]OrderLine{
//	    {ID: "A1", Product: "Latte", Price: decimal.RequireFromString("4.50")},
//	}, &deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid batch: %w", err)
//	}
//
//	report, err := handler.Handle(ctx, cmd)
type SubmitBatchCommand struct { //nolint:recvcheck //using for validation
	lines    []OrderLine
	deadline *time.Duration

	guard guard.ConstructorGuard
}

// NewSubmitBatchCommand builds the command. A nil deadline means the batch runs until
// every worker finishes; a negative deadline is rejected.
func NewSubmitBatchCommand(lines []OrderLine, deadline *time.Duration) (SubmitBatchCommand, error) {
	cmd := SubmitBatchCommand{
		lines: slices.Clone(lines),
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeadline(deadline); err != nil {
		return SubmitBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitBatchCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBatchCommandIsNotConstructed)
}

// Lines returns a copy of the submitted lines in input order.
func (c SubmitBatchCommand) Lines() []OrderLine {
	return slices.Clone(c.lines)
}

// Deadline reports the batch deadline and whether one was set.
func (c SubmitBatchCommand) Deadline() (time.Duration, bool) {
	if c.deadline == nil {
		return 0, false
	}
	return *c.deadline, true
}

func (c *SubmitBatchCommand) setDeadline(deadline *time.Duration) error {
	if deadline == nil {
		return nil
	}
	if *deadline < 0 {
		return fmt.Errorf("%w: %s", ErrDeadlineIsInvalid, *deadline)
	}

	d := *deadline
	c.deadline = &d
	return nil
}
