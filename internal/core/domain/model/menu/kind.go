package menu

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// Kind is the closed set of item categories sold by the shop.
type Kind int

const (
	// UnknownKind is the zero value and never valid.
	UnknownKind Kind = iota
	// Coffee is any brewed drink.
	Coffee
	// Pastry is any baked food item.
	Pastry
	// Smoothie is a blended drink.
	Smoothie
)

func (k Kind) String() string {
	switch k {
	case Coffee:
		return "Coffee"
	case Pastry:
		return "Pastry"
	case Smoothie:
		return "Smoothie"
	default:
		return "Unknown"
	}
}

// Validate rejects UnknownKind and values outside the enum.
func (k Kind) Validate() error {
	if k != Coffee && k != Pastry && k != Smoothie {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid item kind", k))
	}
	return nil
}
