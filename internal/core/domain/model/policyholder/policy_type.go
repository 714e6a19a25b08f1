package policyholder

import (
	"fmt"

	"insurance/internal/pkg/errs"
)

// PolicyType is the closed set of products a policy can be written for.
type PolicyType int

const (
	// PolicyTypeUnknown is the invalid zero value.
	PolicyTypeUnknown PolicyType = iota
	// PolicyTypeLife is a life insurance policy.
	PolicyTypeLife
	// PolicyTypeHealth is a health insurance policy.
	PolicyTypeHealth
	// PolicyTypeAccident is an accident insurance policy.
	PolicyTypeAccident
	// PolicyTypeTravel is a travel insurance policy.
	PolicyTypeTravel
)

func policyTypeStrings() map[PolicyType]string {
	return map[PolicyType]string{
		PolicyTypeUnknown:  "Unknown",
		PolicyTypeLife:     "Life",
		PolicyTypeHealth:   "Health",
		PolicyTypeAccident: "Accident",
		PolicyTypeTravel:   "Travel",
	}
}

// PolicyTypeFromString parses the string form produced by String.
func PolicyTypeFromString(s string) (PolicyType, error) {
	for policyType, str := range policyTypeStrings() {
		if policyType != PolicyTypeUnknown && str == s {
			return policyType, nil
		}
	}
	return PolicyTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"policy type", fmt.Errorf("%q is not a valid policy type", s))
}

// Validate rejects PolicyTypeUnknown and out-of-range values.
func (t PolicyType) Validate() error {
	switch t {
	case PolicyTypeLife, PolicyTypeHealth, PolicyTypeAccident, PolicyTypeTravel:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"policy type", fmt.Errorf("%d is not a valid policy type", t))
	}
}

// String implements fmt.Stringer.
func (t PolicyType) String() string {
	if str, ok := policyTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
