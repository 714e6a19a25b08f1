package kernel

import (
	"errors"
	"fmt"
	"regexp"

	"insurance/internal/pkg/errs"
	"insurance/internal/pkg/guard"
)

var (
	// mobilePhonePattern: local mobile format, "09" followed by eight digits.
	mobilePhonePattern = regexp.MustCompile(`^09[0-9]{8}$`)
	emailPattern       = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ErrContactInfoIsNotConstructed is returned when using a zero-value ContactInfo.
var ErrContactInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"ContactInfo must be created via NewContactInfo")

// ContactInfo holds the mobile phone and email of a policyholder.
// It is replaced wholesale on update.
type ContactInfo struct {
	mobilePhone string
	email       string
	guard       guard.ConstructorGuard
}

// NewContactInfo validates and creates a ContactInfo value.
func NewContactInfo(mobilePhone, email string) (ContactInfo, error) {
	info := ContactInfo{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		info.setMobilePhone(mobilePhone),
		info.setEmail(email),
	); err != nil {
		return ContactInfo{}, err
	}

	return info, nil
}

// MobilePhone returns the mobile phone number.
func (c ContactInfo) MobilePhone() string {
	return c.mobilePhone
}

// Email returns the email address.
func (c ContactInfo) Email() string {
	return c.email
}

// IsEqual compares two ContactInfo values field by field.
func (c ContactInfo) IsEqual(other ContactInfo) bool {
	return c.mobilePhone == other.mobilePhone && c.email == other.email
}

// Validate returns ErrContactInfoIsNotConstructed for a zero value.
func (c ContactInfo) Validate() error {
	return c.guard.Validate(ErrContactInfoIsNotConstructed)
}

func (c *ContactInfo) setMobilePhone(mobilePhone string) error {
	if mobilePhone == "" {
		return errs.NewValueIsRequiredError("mobilePhone")
	}
	if !mobilePhonePattern.MatchString(mobilePhone) {
		return errs.NewValueIsInvalidErrorWithCause(
			"mobilePhone", fmt.Errorf("%q does not match the required format", mobilePhone))
	}
	c.mobilePhone = mobilePhone
	return nil
}

func (c *ContactInfo) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not a valid email address", email))
	}
	c.email = email
	return nil
}
