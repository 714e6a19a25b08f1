package commands

import (
	"errors"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/pkg/guard"
)

var ErrDeactivatePolicyHolderCommandIsNotConstructed = errors.New(
	"DeactivatePolicyHolderCommand must be created via NewDeactivatePolicyHolderCommand constructor",
)

// DeactivatePolicyHolderCommand represents a request to soft-delete a holder.
// The holder's data and policies remain in storage; only the status changes.
type DeactivatePolicyHolderCommand struct { //nolint:recvcheck //using for validation
	holderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivatePolicyHolderCommand creates a command to deactivate a holder.
func NewDeactivatePolicyHolderCommand(holderID kernel.UUID) (DeactivatePolicyHolderCommand, error) {
	cmd := DeactivatePolicyHolderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setHolderID(holderID); err != nil {
		return DeactivatePolicyHolderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivatePolicyHolderCommand) Validate() error {
	return c.guard.Validate(ErrDeactivatePolicyHolderCommandIsNotConstructed)
}

// HolderID returns the target aggregate identifier.
func (c DeactivatePolicyHolderCommand) HolderID() kernel.UUID {
	return c.holderID
}

func (c *DeactivatePolicyHolderCommand) setHolderID(holderID kernel.UUID) error {
	if err := holderID.Validate(); err != nil {
		return err
	}

	c.holderID = holderID
	return nil
}
