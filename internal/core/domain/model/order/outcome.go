package order

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// Outcome is the terminal classification of one request in a batch.
type Outcome int

const (
	// OutcomeUnknown is the zero value; a settled request never carries it.
	OutcomeUnknown Outcome = iota
	// Served means stock was taken and the price was added to revenue.
	Served
	// OutOfStock means the register had no stock left when the barista arrived.
	OutOfStock
	// Cancelled means cancellation was observed before or during brewing.
	Cancelled
	// InvalidRequest means the line was rejected before scheduling.
	InvalidRequest
	// Failed means the worker terminated abnormally before producing another outcome.
	Failed
)

func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		OutcomeUnknown: "Unknown",
		Served:         "Served",
		OutOfStock:     "OutOfStock",
		Cancelled:      "Cancelled",
		InvalidRequest: "InvalidRequest",
		Failed:         "Failed",
	}
}

func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects OutcomeUnknown and values outside the enum.
func (o Outcome) Validate() error {
	if _, ok := getOutcomeStrings()[o]; !ok || o == OutcomeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("outcome is invalid", fmt.Errorf("%d is not a valid outcome", o))
	}
	return nil
}

// IsRegisterOutcome reports whether the outcome can only be produced at the register.
func (o Outcome) IsRegisterOutcome() bool {
	return o == Served || o == OutOfStock
}
