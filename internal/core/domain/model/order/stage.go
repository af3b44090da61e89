package order

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// Stage is the position of a ticket in the barista workflow.
// The allowed transitions are:
//
//	New -> Brewing -> Ready -> Settled
//	New -> Cancelled
//	Brewing -> Cancelled
type Stage int

const (
	// StageUnknown is the zero value and never a valid stage.
	StageUnknown Stage = iota
	// StageNew means the ticket was accepted but nobody started on it.
	StageNew
	// StageBrewing means a barista is preparing the item.
	StageBrewing
	// StageReady means the item is made and the barista is walking to the register.
	StageReady
	// StageSettled means the register handled the ticket (served or out of stock).
	StageSettled
	// StageCancelled means cancellation was observed before the register was reached.
	StageCancelled
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:   "Unknown",
		StageNew:       "New",
		StageBrewing:   "Brewing",
		StageReady:     "Ready",
		StageSettled:   "Settled",
		StageCancelled: "Cancelled",
	}
}

// Validate rejects StageUnknown and values outside the enum.
func (s Stage) Validate() error {
	if _, ok := getStageStrings()[s]; !ok || s == StageUnknown {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Stage) IsTerminal() bool {
	return s == StageSettled || s == StageCancelled
}

// StartBrewing moves New to Brewing.
func (s Stage) StartBrewing() (Stage, error) {
	if s != StageNew {
		return StageUnknown, invalidTransition(s, "start brewing")
	}
	return StageBrewing, nil
}

// FinishBrewing moves Brewing to Ready.
func (s Stage) FinishBrewing() (Stage, error) {
	if s != StageBrewing {
		return StageUnknown, invalidTransition(s, "finish brewing")
	}
	return StageReady, nil
}

// Settle moves Ready to Settled.
func (s Stage) Settle() (Stage, error) {
	if s != StageReady {
		return StageUnknown, invalidTransition(s, "settle")
	}
	return StageSettled, nil
}

// Cancel moves New or Brewing to Cancelled. A ticket at the register can no longer be cancelled.
func (s Stage) Cancel() (Stage, error) {
	if s != StageNew && s != StageBrewing {
		return StageUnknown, invalidTransition(s, "cancel")
	}
	return StageCancelled, nil
}

func invalidTransition(from Stage, action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"stage is invalid",
		fmt.Errorf("%s is not a valid stage to %s", from.String(), action),
	)
}
