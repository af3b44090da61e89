package order

import (
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
)

// Summary aggregates the outcomes of a batch.
type Summary struct {
	Total          int
	Served         int
	OutOfStock     int
	Cancelled      int
	InvalidRequest int
	Failed         int
	Revenue        kernel.Money
}

// Summarize counts outcomes and adds up the prices of served results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results), Revenue: kernel.ZeroMoney()}
	for _, r := range results {
		switch r.Outcome {
		case Served:
			s.Served++
			s.Revenue = s.Revenue.Add(r.Price)
		case OutOfStock:
			s.OutOfStock++
		case Cancelled:
			s.Cancelled++
		case InvalidRequest:
			s.InvalidRequest++
		case Failed:
			s.Failed++
		case OutcomeUnknown:
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("total=%d served=%d out_of_stock=%d cancelled=%d invalid=%d failed=%d revenue=%s",
		s.Total, s.Served, s.OutOfStock, s.Cancelled, s.InvalidRequest, s.Failed, s.Revenue)
}
