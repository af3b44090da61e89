package order

import (
	"errors"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

// ErrRequestIsNotConstructed is returned when a zero-value Request is used.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Request is one customer order line: an identifier, a product label and a unit price.
// It is immutable once created.
type Request struct { //nolint:recvcheck //using for validation
	id      string
	product string
	price   kernel.Money

	guard guard.ConstructorGuard
}

// NewRequest validates and builds a Request. The identifier must be non-blank
// and the price a constructed, non-negative Money. All violations are joined.
func NewRequest(id string, product string, price kernel.Money) (Request, error) {
	r := Request{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setID(id),
		r.setPrice(price),
	); err != nil {
		return Request{}, err
	}

	r.product = strings.TrimSpace(product)
	return r, nil
}

// Validate reports whether the request was built by NewRequest.
func (r Request) Validate() error {
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r Request) ID() string {
	return r.id
}

func (r Request) Product() string {
	return r.product
}

func (r Request) Price() kernel.Money {
	return r.price
}

func (r *Request) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("request id")
	}
	r.id = id
	return nil
}

func (r *Request) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	r.price = price
	return nil
}
