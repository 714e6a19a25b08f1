package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"insurance/internal/pkg/errs"
	"insurance/internal/pkg/guard"
)

// maskedPrefixLen is the number of leading characters left visible by Masked.
const maskedPrefixLen = 3

// nationalIDPattern: one uppercase letter followed by nine digits.
var nationalIDPattern = regexp.MustCompile(`^[A-Z][0-9]{9}$`)

// ErrNationalIDIsNotConstructed is returned when using a zero-value NationalID.
var ErrNationalIDIsNotConstructed = errs.NewValueIsRequiredError(
	"NationalID must be created via NewNationalID")

// NationalID is the government-issued identifier of a policyholder.
// It is immutable for the lifetime of the holder and never changes after
// aggregate creation.
//
// For privacy-sensitive output (audit events, logs) use Masked, which reveals
// only the leading characters of the identifier.
type NationalID struct {
	value string
	guard guard.ConstructorGuard
}

// NewNationalID validates and creates a NationalID.
// The accepted format is one uppercase letter followed by nine digits,
// for example "A123456789".
func NewNationalID(value string) (NationalID, error) {
	if value == "" {
		return NationalID{}, errs.NewValueIsRequiredError("nationalID")
	}
	if !nationalIDPattern.MatchString(value) {
		return NationalID{}, errs.NewValueIsInvalidErrorWithCause(
			"nationalID", fmt.Errorf("%q does not match the required format", value))
	}
	return NationalID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Value returns the raw identifier. Callers emitting the identifier outside
// the command path must prefer Masked.
func (n NationalID) Value() string {
	return n.value
}

// Masked returns the identifier with everything after the leading prefix
// replaced by asterisks, e.g. "A12*******".
func (n NationalID) Masked() string {
	if len(n.value) <= maskedPrefixLen {
		return n.value
	}
	return n.value[:maskedPrefixLen] + strings.Repeat("*", len(n.value)-maskedPrefixLen)
}

// IsEqual compares two national IDs by value.
func (n NationalID) IsEqual(other NationalID) bool {
	return n.value == other.value
}

// String implements fmt.Stringer and returns the masked form, so accidental
// formatting of a NationalID never leaks the full identifier.
func (n NationalID) String() string {
	return n.Masked()
}

// Validate returns ErrNationalIDIsNotConstructed for a zero-value NationalID.
func (n NationalID) Validate() error {
	return n.guard.Validate(ErrNationalIDIsNotConstructed)
}
