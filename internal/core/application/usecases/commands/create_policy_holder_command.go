package commands

import (
	"errors"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/pkg/guard"
)

var ErrCreatePolicyHolderCommandIsNotConstructed = errors.New(
	"CreatePolicyHolderCommand must be created via NewCreatePolicyHolderCommand constructor",
)

// CreatePolicyHolderCommand represents a request to register a new
// policyholder. All value objects arrive already constructed; the command
// only checks they were built through their constructors.
type CreatePolicyHolderCommand struct { //nolint:recvcheck //using for validation
	holderID     kernel.UUID
	nationalID   kernel.NationalID
	personalInfo kernel.PersonalInfo
	contactInfo  kernel.ContactInfo
	address      kernel.Address

	guard guard.ConstructorGuard
}

// NewCreatePolicyHolderCommand creates a command to register a policyholder.
// Returns an error if any of the value objects is not properly constructed.
func NewCreatePolicyHolderCommand(
	holderID kernel.UUID,
	nationalID kernel.NationalID,
	personalInfo kernel.PersonalInfo,
	contactInfo kernel.ContactInfo,
	address kernel.Address,
) (CreatePolicyHolderCommand, error) {
	cmd := CreatePolicyHolderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHolderID(holderID),
		cmd.setNationalID(nationalID),
		cmd.setPersonalInfo(personalInfo),
		cmd.setContactInfo(contactInfo),
		cmd.setAddress(address),
	); err != nil {
		return CreatePolicyHolderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePolicyHolderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePolicyHolderCommandIsNotConstructed)
}

// HolderID returns the identifier for the new aggregate.
func (c CreatePolicyHolderCommand) HolderID() kernel.UUID {
	return c.holderID
}

// NationalID returns the unique national identifier.
func (c CreatePolicyHolderCommand) NationalID() kernel.NationalID {
	return c.nationalID
}

// PersonalInfo returns the holder's personal information.
func (c CreatePolicyHolderCommand) PersonalInfo() kernel.PersonalInfo {
	return c.personalInfo
}

// ContactInfo returns the holder's contact information.
func (c CreatePolicyHolderCommand) ContactInfo() kernel.ContactInfo {
	return c.contactInfo
}

// Address returns the holder's address.
func (c CreatePolicyHolderCommand) Address() kernel.Address {
	return c.address
}

func (c *CreatePolicyHolderCommand) setHolderID(holderID kernel.UUID) error {
	if err := holderID.Validate(); err != nil {
		return err
	}

	c.holderID = holderID
	return nil
}

func (c *CreatePolicyHolderCommand) setNationalID(nationalID kernel.NationalID) error {
	if err := nationalID.Validate(); err != nil {
		return err
	}

	c.nationalID = nationalID
	return nil
}

func (c *CreatePolicyHolderCommand) setPersonalInfo(personalInfo kernel.PersonalInfo) error {
	if err := personalInfo.Validate(); err != nil {
		return err
	}

	c.personalInfo = personalInfo
	return nil
}

func (c *CreatePolicyHolderCommand) setContactInfo(contactInfo kernel.ContactInfo) error {
	if err := contactInfo.Validate(); err != nil {
		return err
	}

	c.contactInfo = contactInfo
	return nil
}

func (c *CreatePolicyHolderCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
