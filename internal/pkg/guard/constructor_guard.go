// Package guard provides ConstructorGuard, a marker embedded into value objects,
// entities, commands and queries so that zero values can be told apart from
// instances built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error, so that validation of a zero value
// always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures that value objects, entities, commands and queries are only
// created through their designated constructor functions.
//
// Embedding a ConstructorGuard lets a type detect whether it was initialized by its
// constructor or created as a zero value (for example a bare Ticket{} or a
// SubmitBatchCommand{} literal). The guard keeps an internal flag that only the
// constructor sets; any zero-value struct fails validation.
//
// The guard is an immutable value, so copies share its state and it is safe to
// read from many goroutines.
//
// Example usage:
//
//	var ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket constructor")
//
//	type Ticket struct {
//	    request Request
//	    stage   Stage
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewTicket(request Request) (*Ticket, error) {
//	    if err := request.Validate(); err != nil {
//	        return nil, err
//	    }
//	    return &Ticket{
//	        request: request,
//	        stage:   StageNew,
//	        guard:   guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (t *Ticket) Validate() error {
//	    return t.guard.Validate(ErrTicketIsNotConstructed)
//	}
//
// Benefits:
//   - Prevents accidental use of zero values
//   - Enforces constructor usage for proper initialization
//   - Keeps domain invariants such as a non-negative price or a known stage
//   - Gives each type its own error message for invalid construction
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks its owner as properly
// constructed. Call it from the constructor of the guarded type.
//
// Example:
//
//	func NewShop(initialStock int) (*Shop, error) {
//	    if initialStock < 0 {
//	        return nil, errs.NewValueIsOutOfRangeError("initial stock", initialStock, 0, math.MaxInt)
//	    }
//	    return &Shop{
//	        stock: initialStock,
//	        guard: guard.NewConstructorGuard(),
//	    }, nil
//	}
//
// Returns:
//   - A ConstructorGuard with isConstructed set to true
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was built through its constructor.
//
// For a zero-value owner it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil. Call it first in the owner's Validate method, before
// any other rule is checked.
//
// Parameters:
//   - validationError: The error to return if the object was not properly constructed
//
// Example:
//
//	var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
//
//	func (r Request) Validate() error {
//	    return r.guard.Validate(ErrRequestIsNotConstructed)
//	}
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError if the object was not constructed through its constructor
//   - ErrDefaultConstructorGuard if validationError is nil and the object was not constructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
