package commands

import (
	"errors"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

// UpdateAddressCommand represents a request to replace a holder's address
// wholesale. There is no per-field update.
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	holderID kernel.UUID
	address  kernel.Address

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand creates a command to replace a holder's address.
func NewUpdateAddressCommand(
	holderID kernel.UUID,
	address kernel.Address,
) (UpdateAddressCommand, error) {
	cmd := UpdateAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHolderID(holderID),
		cmd.setAddress(address),
	); err != nil {
		return UpdateAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

// HolderID returns the target aggregate identifier.
func (c UpdateAddressCommand) HolderID() kernel.UUID {
	return c.holderID
}

// Address returns the replacement address.
func (c UpdateAddressCommand) Address() kernel.Address {
	return c.address
}

func (c *UpdateAddressCommand) setHolderID(holderID kernel.UUID) error {
	if err := holderID.Validate(); err != nil {
		return err
	}

	c.holderID = holderID
	return nil
}

func (c *UpdateAddressCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
