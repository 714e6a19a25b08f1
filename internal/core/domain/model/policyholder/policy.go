package policyholder

import (
	"errors"
	"fmt"
	"time"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/pkg/errs"
	"insurance/internal/pkg/guard"
)

// ErrPolicyIsNotConstructed is returned when using a Policy that was not
// created via NewPolicy or RestorePolicy.
var ErrPolicyIsNotConstructed = errors.New("Policy must be created via NewPolicy or RestorePolicy constructor")

// Policy is a line item owned exclusively by one PolicyHolder aggregate.
// It has its own status state machine but no independent lifecycle: it is
// created, persisted, and loaded only through its owning holder, and once
// added it is never removed, only transitioned.
type Policy struct {
	id         kernel.UUID
	policyType PolicyType
	premium    kernel.Money
	sumInsured kernel.Money
	startDate  time.Time
	endDate    time.Time
	status     PolicyStatus
	version    int
	guard      guard.ConstructorGuard
}

// NewPolicy creates a new policy in Active status at version 0.
//
// Both dates are required. The end date must not precede the start date;
// equal dates are allowed, so a same-day policy is valid.
func NewPolicy(
	id kernel.UUID,
	policyType PolicyType,
	premium, sumInsured kernel.Money,
	startDate, endDate time.Time,
) (*Policy, error) {
	policy := &Policy{
		status: PolicyStatusActive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		policy.setID(id),
		policy.setPolicyType(policyType),
		policy.setPremium(premium),
		policy.setSumInsured(sumInsured),
		policy.setPeriod(startDate, endDate),
	); err != nil {
		return nil, err
	}

	return policy, nil
}

// RestorePolicy rebuilds a policy from persistence with its stored status and
// version. The start/end ordering rule is not re-run: historic rows are
// trusted as written.
func RestorePolicy(
	id kernel.UUID,
	policyType PolicyType,
	premium, sumInsured kernel.Money,
	startDate, endDate time.Time,
	status PolicyStatus,
	version int,
) (*Policy, error) {
	policy := &Policy{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		policy.setID(id),
		policy.setPolicyType(policyType),
		policy.setPremium(premium),
		policy.setSumInsured(sumInsured),
		policy.setStatus(status),
		policy.setVersion(version),
	); err != nil {
		return nil, err
	}

	policy.startDate = startDate
	policy.endDate = endDate
	return policy, nil
}

// Validate returns ErrPolicyIsNotConstructed for a zero-value Policy.
func (p *Policy) Validate() error {
	if p == nil {
		return ErrPolicyIsNotConstructed
	}
	return p.guard.Validate(ErrPolicyIsNotConstructed)
}

// IsEqual compares two policies by identity.
func (p *Policy) IsEqual(other *Policy) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the policy identifier.
func (p *Policy) ID() kernel.UUID {
	return p.id
}

// PolicyType returns the product type.
func (p *Policy) PolicyType() PolicyType {
	return p.policyType
}

// Premium returns the premium amount.
func (p *Policy) Premium() kernel.Money {
	return p.premium
}

// SumInsured returns the insured amount.
func (p *Policy) SumInsured() kernel.Money {
	return p.sumInsured
}

// StartDate returns the first day of coverage.
func (p *Policy) StartDate() time.Time {
	return p.startDate
}

// EndDate returns the last day of coverage.
func (p *Policy) EndDate() time.Time {
	return p.endDate
}

// Status returns the current policy status.
func (p *Policy) Status() PolicyStatus {
	return p.status
}

// Version returns the persisted entity version.
func (p *Policy) Version() int {
	return p.version
}

// Terminate transitions the policy Active -> Terminated.
// Fails with an InvalidStateError for any other current status.
func (p *Policy) Terminate() error {
	newStatus, err := p.status.Terminate()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.version++
	return nil
}

// Lapse transitions the policy Active -> Lapsed.
// Fails with an InvalidStateError for any other current status.
func (p *Policy) Lapse() error {
	newStatus, err := p.status.Lapse()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.version++
	return nil
}

// IsWithinValidPeriod reports whether the given date falls inside the
// coverage period. Both boundary dates are inclusive.
func (p *Policy) IsWithinValidPeriod(date time.Time) bool {
	return !date.Before(p.startDate) && !date.After(p.endDate)
}

func (p *Policy) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Policy) setPolicyType(policyType PolicyType) error {
	if err := policyType.Validate(); err != nil {
		return err
	}
	p.policyType = policyType
	return nil
}

func (p *Policy) setPremium(premium kernel.Money) error {
	if err := premium.Validate(); err != nil {
		return err
	}
	p.premium = premium
	return nil
}

func (p *Policy) setSumInsured(sumInsured kernel.Money) error {
	if err := sumInsured.Validate(); err != nil {
		return err
	}
	p.sumInsured = sumInsured
	return nil
}

func (p *Policy) setPeriod(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}
	if endDate.IsZero() {
		return errs.NewValueIsRequiredError("endDate")
	}
	if endDate.Before(startDate) {
		return errs.NewValueIsInvalidErrorWithCause("policy period", fmt.Errorf(
			"end date %s precedes start date %s",
			endDate.Format(time.DateOnly), startDate.Format(time.DateOnly)))
	}

	p.startDate = startDate
	p.endDate = endDate
	return nil
}

func (p *Policy) setStatus(status PolicyStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Policy) setVersion(version int) error {
	if version < 0 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"policy version", fmt.Errorf("%d is negative", version))
	}
	p.version = version
	return nil
}
