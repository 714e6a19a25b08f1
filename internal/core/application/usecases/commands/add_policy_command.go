package commands

import (
	"errors"
	"time"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/core/domain/model/policyholder"
	"insurance/internal/pkg/errs"
	"insurance/internal/pkg/guard"
)

var ErrAddPolicyCommandIsNotConstructed = errors.New(
	"AddPolicyCommand must be created via NewAddPolicyCommand constructor",
)

// AddPolicyCommand represents a request to write a new policy for an
// existing holder. Date-ordering and amount rules are enforced by the
// domain service and the Policy constructor, not here; the command only
// requires that the fields are present and constructed.
type AddPolicyCommand struct { //nolint:recvcheck //using for validation
	holderID   kernel.UUID
	policyID   kernel.UUID
	policyType policyholder.PolicyType
	premium    kernel.Money
	sumInsured kernel.Money
	startDate  time.Time
	endDate    time.Time

	guard guard.ConstructorGuard
}

// NewAddPolicyCommand creates a command to add a policy to a holder.
func NewAddPolicyCommand(
	holderID, policyID kernel.UUID,
	policyType policyholder.PolicyType,
	premium, sumInsured kernel.Money,
	startDate, endDate time.Time,
) (AddPolicyCommand, error) {
	cmd := AddPolicyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHolderID(holderID),
		cmd.setPolicyID(policyID),
		cmd.setPolicyType(policyType),
		cmd.setPremium(premium),
		cmd.setSumInsured(sumInsured),
		cmd.setPeriod(startDate, endDate),
	); err != nil {
		return AddPolicyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPolicyCommand) Validate() error {
	return c.guard.Validate(ErrAddPolicyCommandIsNotConstructed)
}

// HolderID returns the target aggregate identifier.
func (c AddPolicyCommand) HolderID() kernel.UUID {
	return c.holderID
}

// PolicyID returns the identifier for the new policy.
func (c AddPolicyCommand) PolicyID() kernel.UUID {
	return c.policyID
}

// PolicyType returns the product type.
func (c AddPolicyCommand) PolicyType() policyholder.PolicyType {
	return c.policyType
}

// Premium returns the premium amount.
func (c AddPolicyCommand) Premium() kernel.Money {
	return c.premium
}

// SumInsured returns the insured amount.
func (c AddPolicyCommand) SumInsured() kernel.Money {
	return c.sumInsured
}

// StartDate returns the first day of coverage.
func (c AddPolicyCommand) StartDate() time.Time {
	return c.startDate
}

// EndDate returns the last day of coverage.
func (c AddPolicyCommand) EndDate() time.Time {
	return c.endDate
}

func (c *AddPolicyCommand) setHolderID(holderID kernel.UUID) error {
	if err := holderID.Validate(); err != nil {
		return err
	}

	c.holderID = holderID
	return nil
}

func (c *AddPolicyCommand) setPolicyID(policyID kernel.UUID) error {
	if err := policyID.Validate(); err != nil {
		return err
	}

	c.policyID = policyID
	return nil
}

func (c *AddPolicyCommand) setPolicyType(policyType policyholder.PolicyType) error {
	if err := policyType.Validate(); err != nil {
		return err
	}

	c.policyType = policyType
	return nil
}

func (c *AddPolicyCommand) setPremium(premium kernel.Money) error {
	if err := premium.Validate(); err != nil {
		return err
	}

	c.premium = premium
	return nil
}

func (c *AddPolicyCommand) setSumInsured(sumInsured kernel.Money) error {
	if err := sumInsured.Validate(); err != nil {
		return err
	}

	c.sumInsured = sumInsured
	return nil
}

func (c *AddPolicyCommand) setPeriod(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}
	if endDate.IsZero() {
		return errs.NewValueIsRequiredError("endDate")
	}

	c.startDate = startDate
	c.endDate = endDate
	return nil
}
