package commands

import (
	"errors"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/pkg/guard"
)

var ErrUpdateContactInfoCommandIsNotConstructed = errors.New(
	"UpdateContactInfoCommand must be created via NewUpdateContactInfoCommand constructor",
)

// UpdateContactInfoCommand represents a request to replace a holder's contact
// information wholesale. There is no per-field update.
type UpdateContactInfoCommand struct { //nolint:recvcheck //using for validation
	holderID    kernel.UUID
	contactInfo kernel.ContactInfo

	guard guard.ConstructorGuard
}

// NewUpdateContactInfoCommand creates a command to replace contact information.
func NewUpdateContactInfoCommand(
	holderID kernel.UUID,
	contactInfo kernel.ContactInfo,
) (UpdateContactInfoCommand, error) {
	cmd := UpdateContactInfoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHolderID(holderID),
		cmd.setContactInfo(contactInfo),
	); err != nil {
		return UpdateContactInfoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateContactInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateContactInfoCommandIsNotConstructed)
}

// HolderID returns the target aggregate identifier.
func (c UpdateContactInfoCommand) HolderID() kernel.UUID {
	return c.holderID
}

// ContactInfo returns the replacement contact information.
func (c UpdateContactInfoCommand) ContactInfo() kernel.ContactInfo {
	return c.contactInfo
}

func (c *UpdateContactInfoCommand) setHolderID(holderID kernel.UUID) error {
	if err := holderID.Validate(); err != nil {
		return err
	}

	c.holderID = holderID
	return nil
}

func (c *UpdateContactInfoCommand) setContactInfo(contactInfo kernel.ContactInfo) error {
	if err := contactInfo.Validate(); err != nil {
		return err
	}

	c.contactInfo = contactInfo
	return nil
}
