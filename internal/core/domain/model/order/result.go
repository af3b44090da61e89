package order

import (
	"coffeeshop/internal/core/domain/model/kernel"
)

// Result is the per-request answer of a batch. Position is the index of the
// request in the submitted batch, so even a line without an identifier stays attributable.
type Result struct {
	Position  int
	RequestID string
	Product   string
	Price     kernel.Money
	Outcome   Outcome
	Err       error
}

// NewTicketResult builds the result of a ticket that reached a terminal stage.
func NewTicketResult(position int, t *Ticket) Result {
	r := t.Request()
	return Result{
		Position:  position,
		RequestID: r.ID(),
		Product:   r.Product(),
		Price:     r.Price(),
		Outcome:   t.Outcome(),
	}
}

// NewInvalidResult builds the result of a line rejected before scheduling.
func NewInvalidResult(position int, requestID, product string, cause error) Result {
	return Result{
		Position:  position,
		RequestID: requestID,
		Product:   product,
		Price:     kernel.ZeroMoney(),
		Outcome:   InvalidRequest,
		Err:       cause,
	}
}

// NewFailedResult builds the result of a worker that terminated abnormally.
func NewFailedResult(position int, request Request, cause error) Result {
	return Result{
		Position:  position,
		RequestID: request.ID(),
		Product:   request.Product(),
		Price:     request.Price(),
		Outcome:   Failed,
		Err:       cause,
	}
}
