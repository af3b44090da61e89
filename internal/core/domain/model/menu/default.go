package menu

import (
	"coffeeshop/internal/core/domain/model/kernel"
)

// Default returns the shop's standard menu.
func Default() (*Menu, error) {
	entries := []struct {
		name  string
		price string
		kind  Kind
	}{
		{"Latte", "4.50", Coffee},
		{"Espresso", "2.50", Coffee},
		{"Cappuccino", "4.00", Coffee},
		{"Croissant", "3.00", Pastry},
		{"Cake", "7.00", Pastry},
		{"Donut", "1.50", Pastry},
		{"Berry Mix", "6.00", Smoothie},
	}

	m := &Menu{}
	for _, e := range entries {
		price, err := kernel.MoneyFromString(e.price)
		if err != nil {
			return nil, err
		}
		item, err := NewItem(e.name, price, e.kind)
		if err != nil {
			return nil, err
		}
		if err = m.Add(item); err != nil {
			return nil, err
		}
	}
	return m, nil
}
