package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"coffeeshop/internal/pkg/errs"
)

// RandomBrewTimer waits a uniformly random duration in [min, max).
type RandomBrewTimer struct {
	min time.Duration
	max time.Duration
}

// NewRandomBrewTimer validates the bounds. min == max yields a fixed delay.
func NewRandomBrewTimer(minDelay, maxDelay time.Duration) (RandomBrewTimer, error) {
	var err error
	if minDelay < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"brew min", fmt.Errorf("%s is negative", minDelay)))
	}
	if maxDelay < minDelay {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"brew max", fmt.Errorf("%s is less than brew min %s", maxDelay, minDelay)))
	}
	if err != nil {
		return RandomBrewTimer{}, err
	}
	return RandomBrewTimer{min: minDelay, max: maxDelay}, nil
}

// Delay draws the next brew duration.
func (t RandomBrewTimer) Delay() time.Duration {
	if t.max <= t.min {
		return t.min
	}
	return t.min + rand.N(t.max-t.min) //nolint:gosec // simulation jitter
}

// Brew blocks for Delay or until ctx is done, whichever comes first.
func (t RandomBrewTimer) Brew(ctx context.Context, _ string) error {
	timer := time.NewTimer(t.Delay())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrBrewInterrupted, context.Cause(ctx))
	case <-timer.C:
		return nil
	}
}
