package kernel

import (
	"errors"
	"fmt"
	"time"

	"insurance/internal/pkg/errs"
	"insurance/internal/pkg/guard"
)

// ErrPersonalInfoIsNotConstructed is returned when using a zero-value PersonalInfo.
var ErrPersonalInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"PersonalInfo must be created via NewPersonalInfo")

// PersonalInfo holds the name, gender, and birth date of a policyholder.
// It is replaced wholesale on change, never field-patched.
type PersonalInfo struct {
	name      string
	gender    Gender
	birthDate time.Time
	guard     guard.ConstructorGuard
}

// NewPersonalInfo validates and creates a PersonalInfo value.
// The name must be non-empty, the gender valid, and the birth date non-zero
// and not in the future.
func NewPersonalInfo(name string, gender Gender, birthDate time.Time) (PersonalInfo, error) {
	info := PersonalInfo{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		info.setName(name),
		info.setGender(gender),
		info.setBirthDate(birthDate),
	); err != nil {
		return PersonalInfo{}, err
	}

	return info, nil
}

// Name returns the policyholder's name.
func (p PersonalInfo) Name() string {
	return p.name
}

// Gender returns the policyholder's gender.
func (p PersonalInfo) Gender() Gender {
	return p.gender
}

// BirthDate returns the policyholder's date of birth.
func (p PersonalInfo) BirthDate() time.Time {
	return p.birthDate
}

// IsEqual compares two PersonalInfo values field by field.
func (p PersonalInfo) IsEqual(other PersonalInfo) bool {
	return p.name == other.name &&
		p.gender == other.gender &&
		p.birthDate.Equal(other.birthDate)
}

// Validate returns ErrPersonalInfoIsNotConstructed for a zero value.
func (p PersonalInfo) Validate() error {
	return p.guard.Validate(ErrPersonalInfoIsNotConstructed)
}

func (p *PersonalInfo) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *PersonalInfo) setGender(gender Gender) error {
	if err := gender.Validate(); err != nil {
		return err
	}
	p.gender = gender
	return nil
}

func (p *PersonalInfo) setBirthDate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return errs.NewValueIsRequiredError("birthDate")
	}
	if birthDate.After(time.Now()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"birthDate", fmt.Errorf("%s is in the future", birthDate.Format(time.DateOnly)))
	}
	p.birthDate = birthDate
	return nil
}
