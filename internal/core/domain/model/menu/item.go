package menu

import (
	"cmp"
	"errors"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when a zero-value Item is used.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single menu entry. Items are values: copying one yields an independent clone.
type Item struct { //nolint:recvcheck //using for validation
	name  string
	price kernel.Money
	kind  Kind

	guard guard.ConstructorGuard
}

// NewItem creates a menu item. Name must be non-blank, price constructed and kind valid.
func NewItem(name string, price kernel.Money, kind Kind) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
		item.setKind(kind),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate reports whether the item was built by NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Price() kernel.Money {
	return i.price
}

func (i Item) Kind() Kind {
	return i.kind
}

// String renders the item as "Latte - $4.50".
func (i Item) String() string {
	return i.name + " - " + i.price.String()
}

// Compare orders items by price, then by name.
func Compare(a, b Item) int {
	if c := a.price.Compare(b.price); c != 0 {
		return c
	}
	return cmp.Compare(a.name, b.name)
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	i.kind = kind
	return nil
}
