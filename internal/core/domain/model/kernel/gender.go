package kernel

import (
	"fmt"

	"insurance/internal/pkg/errs"
)

// Gender is a closed enumeration used inside PersonalInfo.
type Gender int

const (
	// GenderUnknown is the invalid zero value.
	GenderUnknown Gender = iota
	// GenderMale represents a male policyholder.
	GenderMale
	// GenderFemale represents a female policyholder.
	GenderFemale
	// GenderOther represents any other or undisclosed gender.
	GenderOther
)

func genderStrings() map[Gender]string {
	return map[Gender]string{
		GenderUnknown: "Unknown",
		GenderMale:    "Male",
		GenderFemale:  "Female",
		GenderOther:   "Other",
	}
}

// GenderFromString parses the string form produced by String.
func GenderFromString(s string) (Gender, error) {
	for g, str := range genderStrings() {
		if g != GenderUnknown && str == s {
			return g, nil
		}
	}
	return GenderUnknown, errs.NewValueIsInvalidErrorWithCause(
		"gender", fmt.Errorf("%q is not a valid gender", s))
}

// Validate rejects GenderUnknown and out-of-range values.
func (g Gender) Validate() error {
	if g == GenderUnknown {
		return errs.NewValueIsRequiredError("gender")
	}
	if _, ok := genderStrings()[g]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"gender", fmt.Errorf("%d is not a valid gender", g))
	}
	return nil
}

// String implements fmt.Stringer.
func (g Gender) String() string {
	if str, ok := genderStrings()[g]; ok {
		return str
	}
	return "Unknown"
}
