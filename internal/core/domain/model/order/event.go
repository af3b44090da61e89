package order

import (
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
)

// ProgressEvent is emitted on every ticket transition.
type ProgressEvent struct {
	RequestID string
	Product   string
	Price     kernel.Money
	Stage     Stage
	Outcome   Outcome
	At        time.Time
}
