package menu

import (
	"slices"
	"strings"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

// Menu is an ordered collection of items. It is not safe for concurrent mutation;
// build it once and share it read-only.
type Menu struct {
	items []Item
}

// New creates a menu holding the given items in order.
func New(items ...Item) (*Menu, error) {
	m := &Menu{}
	for _, item := range items {
		if err := m.Add(item); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add appends a constructed item.
func (m *Menu) Add(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	m.items = append(m.items, item)
	return nil
}

// Items returns a copy of the items in insertion order.
func (m *Menu) Items() []Item {
	return slices.Clone(m.items)
}

// Len returns the number of items.
func (m *Menu) Len() int {
	return len(m.items)
}

// Find looks an item up by name, ignoring case.
func (m *Menu) Find(name string) (Item, error) {
	for _, item := range m.items {
		if strings.EqualFold(item.name, name) {
			return item, nil
		}
	}
	return Item{}, errs.NewObjectNotFoundError("menu item", name)
}

// CheaperThan returns the items priced strictly below limit.
func (m *Menu) CheaperThan(limit kernel.Money) []Item {
	return m.filter(func(i Item) bool { return i.price.Compare(limit) < 0 })
}

// OfKind returns the items of the given kind.
func (m *Menu) OfKind(kind Kind) []Item {
	return m.filter(func(i Item) bool { return i.kind == kind })
}

// SortedByPrice returns the items ordered with Compare, most expensive first when desc is set.
func (m *Menu) SortedByPrice(desc bool) []Item {
	sorted := m.Items()
	slices.SortStableFunc(sorted, func(a, b Item) int {
		if desc {
			return Compare(b, a)
		}
		return Compare(a, b)
	})
	return sorted
}

// Total returns the sum of all prices.
func (m *Menu) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range m.items {
		total = total.Add(item.price)
	}
	return total
}

// Average returns the mean price rounded to cents, or zero for an empty menu.
func (m *Menu) Average() kernel.Money {
	return m.Total().Div(len(m.items))
}

// MostExpensive returns the item with the highest price.
func (m *Menu) MostExpensive() (Item, error) {
	if len(m.items) == 0 {
		return Item{}, errs.NewObjectNotFoundError("menu item", "most expensive")
	}
	return slices.MaxFunc(m.items, Compare), nil
}

func (m *Menu) filter(keep func(Item) bool) []Item {
	out := make([]Item, 0, len(m.items))
	for _, item := range m.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
