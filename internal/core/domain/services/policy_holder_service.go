package services

import (
	"time"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/core/domain/model/policyholder"
)

// adultAge is the minimum age for creating a policyholder.
const adultAge = 18

// PolicyHolderService is a stateless domain service providing eligibility and
// validity predicates for policyholder operations.
//
// Key responsibilities:
//   - Calendar-correct age calculation and adulthood checks
//   - Status gates for adding policies, updating data, and deactivation
//   - Validity rules for policy periods and monetary amounts
//
// All predicates are pure with respect to their inputs except for the ones
// comparing against the current date, which read the wall clock once per call.
// The service holds no aggregate reference and is safe for concurrent use.
type PolicyHolderService struct{}

// NewPolicyHolderService creates a new PolicyHolderService instance.
func NewPolicyHolderService() PolicyHolderService {
	return PolicyHolderService{}
}

// CalculateAge returns the calendar-correct age in whole years as of today.
// The age increments on the birthday itself, not on a fixed day count.
func (s PolicyHolderService) CalculateAge(birthDate time.Time) int {
	now := time.Now().UTC()

	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// IsAdult reports whether a person born on birthDate is at least 18 today.
func (s PolicyHolderService) IsAdult(birthDate time.Time) bool {
	return s.CalculateAge(birthDate) >= adultAge
}

// CanAddPolicy reports whether the holder status permits adding a policy.
// Only Active qualifies; Suspended is gated like Inactive.
func (s PolicyHolderService) CanAddPolicy(status policyholder.HolderStatus) bool {
	return status.IsActive()
}

// CanUpdate reports whether the holder status permits contact-info and
// address updates. Only Active qualifies.
func (s PolicyHolderService) CanUpdate(status policyholder.HolderStatus) bool {
	return status.IsActive()
}

// CanDeactivate reports whether the holder status permits deactivation.
// Only Active qualifies; Suspended is gated like Inactive.
func (s PolicyHolderService) CanDeactivate(status policyholder.HolderStatus) bool {
	return status.IsActive()
}

// IsValidPolicyPeriod reports whether a new policy's period is acceptable:
// the start date must not precede today, and a non-zero end date must be
// strictly after the start date.
func (s PolicyHolderService) IsValidPolicyPeriod(startDate, endDate time.Time) bool {
	if startDate.IsZero() {
		return false
	}

	today := truncateToDay(time.Now().UTC())
	if truncateToDay(startDate).Before(today) {
		return false
	}

	if !endDate.IsZero() && !endDate.After(startDate) {
		return false
	}
	return true
}

// IsValidPremiumAmount reports whether the premium is strictly positive.
func (s PolicyHolderService) IsValidPremiumAmount(premium kernel.Money) bool {
	return premium.Validate() == nil && premium.IsPositive()
}

// IsValidSumInsured reports whether the insured amount is strictly positive.
func (s PolicyHolderService) IsValidSumInsured(sumInsured kernel.Money) bool {
	return sumInsured.Validate() == nil && sumInsured.IsPositive()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
