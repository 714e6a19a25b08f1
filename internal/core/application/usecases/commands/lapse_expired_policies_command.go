package commands

import (
	"errors"
	"time"

	"insurance/internal/pkg/errs"
	"insurance/internal/pkg/guard"
)

var ErrLapseExpiredPoliciesCommandIsNotConstructed = errors.New(
	"LapseExpiredPoliciesCommand must be created via NewLapseExpiredPoliciesCommand constructor",
)

// LapseExpiredPoliciesCommand represents a scheduled sweep that lapses every
// Active policy whose end date has passed the given reference date.
type LapseExpiredPoliciesCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewLapseExpiredPoliciesCommand creates a sweep command for the given
// reference date, usually the current date.
func NewLapseExpiredPoliciesCommand(asOf time.Time) (LapseExpiredPoliciesCommand, error) {
	cmd := LapseExpiredPoliciesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAsOf(asOf); err != nil {
		return LapseExpiredPoliciesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LapseExpiredPoliciesCommand) Validate() error {
	return c.guard.Validate(ErrLapseExpiredPoliciesCommandIsNotConstructed)
}

// AsOf returns the reference date of the sweep.
func (c LapseExpiredPoliciesCommand) AsOf() time.Time {
	return c.asOf
}

func (c *LapseExpiredPoliciesCommand) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return errs.NewValueIsRequiredError("asOf")
	}

	c.asOf = asOf
	return nil
}
