package policyholder

import (
	"fmt"

	"insurance/internal/pkg/errs"
)

// PolicyStatus represents the lifecycle state of a single policy.
//
// State transitions:
//
//	Active ──> Lapsed              (end date passed)
//	Active ──> Terminated          (explicit termination)
//
// Lapsed and Terminated are both final.
type PolicyStatus int

const (
	// PolicyStatusUnknown is the invalid zero value.
	PolicyStatusUnknown PolicyStatus = iota

	// PolicyStatusActive is the initial status of every created policy.
	PolicyStatusActive

	// PolicyStatusLapsed marks a policy whose coverage period ended.
	PolicyStatusLapsed

	// PolicyStatusTerminated marks a policy explicitly terminated before its end date.
	PolicyStatusTerminated
)

func policyStatusStrings() map[PolicyStatus]string {
	return map[PolicyStatus]string{
		PolicyStatusUnknown:    "Unknown",
		PolicyStatusActive:     "Active",
		PolicyStatusLapsed:     "Lapsed",
		PolicyStatusTerminated: "Terminated",
	}
}

// PolicyStatusFromString parses the string form produced by String.
func PolicyStatusFromString(s string) (PolicyStatus, error) {
	for status, str := range policyStatusStrings() {
		if status != PolicyStatusUnknown && str == s {
			return status, nil
		}
	}
	return PolicyStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"policy status", fmt.Errorf("%q is not a valid policy status", s))
}

// Validate rejects PolicyStatusUnknown and out-of-range values.
func (s PolicyStatus) Validate() error {
	switch s {
	case PolicyStatusActive, PolicyStatusLapsed, PolicyStatusTerminated:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"policy status", fmt.Errorf("%d is not a valid policy status", s))
	}
}

// String implements fmt.Stringer.
func (s PolicyStatus) String() string {
	if str, ok := policyStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Terminate transitions Active -> Terminated.
func (s PolicyStatus) Terminate() (PolicyStatus, error) {
	if s != PolicyStatusActive {
		return PolicyStatusUnknown, errs.NewInvalidStateError("terminate", s.String())
	}
	return PolicyStatusTerminated, nil
}

// Lapse transitions Active -> Lapsed.
func (s PolicyStatus) Lapse() (PolicyStatus, error) {
	if s != PolicyStatusActive {
		return PolicyStatusUnknown, errs.NewInvalidStateError("lapse", s.String())
	}
	return PolicyStatusLapsed, nil
}
