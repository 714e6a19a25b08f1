package kernel

import (
	"errors"
	"fmt"
	"regexp"

	"insurance/internal/pkg/errs"
	"insurance/internal/pkg/guard"
)

// zipCodePattern: three to six digits.
var zipCodePattern = regexp.MustCompile(`^[0-9]{3,6}$`)

// ErrAddressIsNotConstructed is returned when using a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress")

// Address is the mailing address of a policyholder.
// It is replaced wholesale on update.
type Address struct {
	zipCode  string
	city     string
	district string
	street   string
	guard    guard.ConstructorGuard
}

// NewAddress validates and creates an Address value.
func NewAddress(zipCode, city, district, street string) (Address, error) {
	address := Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		address.setZipCode(zipCode),
		address.setPart(&address.city, city, "city"),
		address.setPart(&address.district, district, "district"),
		address.setPart(&address.street, street, "street"),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// ZipCode returns the postal code.
func (a Address) ZipCode() string {
	return a.zipCode
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// District returns the district.
func (a Address) District() string {
	return a.district
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.zipCode == other.zipCode &&
		a.city == other.city &&
		a.district == other.district &&
		a.street == other.street
}

// Validate returns ErrAddressIsNotConstructed for a zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) setZipCode(zipCode string) error {
	if zipCode == "" {
		return errs.NewValueIsRequiredError("zipCode")
	}
	if !zipCodePattern.MatchString(zipCode) {
		return errs.NewValueIsInvalidErrorWithCause(
			"zipCode", fmt.Errorf("%q is not a valid zip code", zipCode))
	}
	a.zipCode = zipCode
	return nil
}

func (a *Address) setPart(field *string, value, name string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*field = value
	return nil
}
