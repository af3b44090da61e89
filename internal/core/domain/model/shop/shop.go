package shop

import (
	"errors"
	"math"
	"sync"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

// ErrShopIsNotConstructed is returned when a nil or zero-value Shop is used.
var ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop constructor")

// Shop owns the stock and revenue of one run. Both fields are guarded by mu and
// only change inside Settle.
type Shop struct {
	mu           sync.Mutex
	initialStock int
	stock        int
	revenue      kernel.Money
	served       int

	guard guard.ConstructorGuard
}

// Receipt is what the register tells a barista after settlement.
type Receipt struct {
	Served       bool
	StockAfter   int
	RevenueAfter kernel.Money
}

// NewShop opens a shop with initialStock portions and zero revenue.
func NewShop(initialStock int) (*Shop, error) {
	if initialStock < 0 {
		return nil, errs.NewValueIsOutOfRangeError("initial stock", initialStock, 0, math.MaxInt)
	}
	return &Shop{
		initialStock: initialStock,
		stock:        initialStock,
		revenue:      kernel.ZeroMoney(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (s *Shop) Validate() error {
	if s == nil {
		return ErrShopIsNotConstructed
	}
	return s.guard.Validate(ErrShopIsNotConstructed)
}

// Settle is the register: if stock remains it takes one unit and adds price to revenue,
// otherwise it leaves the state untouched. Check and update happen under one lock.
func (s *Shop) Settle(price kernel.Money) Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stock == 0 {
		return Receipt{Served: false, StockAfter: s.stock, RevenueAfter: s.revenue}
	}

	s.stock--
	s.served++
	s.revenue = s.revenue.Add(price)
	return Receipt{Served: true, StockAfter: s.stock, RevenueAfter: s.revenue}
}

// Snapshot returns a consistent copy of the current state.
func (s *Shop) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		InitialStock:   s.initialStock,
		StockRemaining: s.stock,
		TotalRevenue:   s.revenue,
		Served:         s.served,
	}
}
