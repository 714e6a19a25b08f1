package policyholder

import (
	"fmt"

	"insurance/internal/pkg/errs"
)

// HolderStatus represents the lifecycle state of a policyholder.
//
// State transitions:
//
//	Active ────> Inactive          (Deactivate, one-directional)
//	Suspended ─> Inactive          (Deactivate)
//
// Inactive is the soft-deleted state; nothing is ever physically removed.
// Suspended is defined but currently unreachable: no operation transitions a
// holder into it, and all mutation gates treat it like Inactive.
type HolderStatus int

const (
	// HolderStatusUnknown is the invalid zero value.
	HolderStatusUnknown HolderStatus = iota

	// HolderStatusActive allows all mutations: adding policies, updates, deactivation.
	HolderStatusActive

	// HolderStatusInactive is the terminal soft-deleted state.
	HolderStatusInactive

	// HolderStatusSuspended blocks mutations like Inactive but still permits
	// deactivation.
	HolderStatusSuspended
)

func holderStatusStrings() map[HolderStatus]string {
	return map[HolderStatus]string{
		HolderStatusUnknown:   "Unknown",
		HolderStatusActive:    "Active",
		HolderStatusInactive:  "Inactive",
		HolderStatusSuspended: "Suspended",
	}
}

// HolderStatusFromString parses the string form produced by String.
func HolderStatusFromString(s string) (HolderStatus, error) {
	for status, str := range holderStatusStrings() {
		if status != HolderStatusUnknown && str == s {
			return status, nil
		}
	}
	return HolderStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"holder status", fmt.Errorf("%q is not a valid holder status", s))
}

// Validate rejects HolderStatusUnknown and out-of-range values.
func (s HolderStatus) Validate() error {
	switch s {
	case HolderStatusActive, HolderStatusInactive, HolderStatusSuspended:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"holder status", fmt.Errorf("%d is not a valid holder status", s))
	}
}

// String implements fmt.Stringer.
func (s HolderStatus) String() string {
	if str, ok := holderStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the status permits mutations.
func (s HolderStatus) IsActive() bool {
	return s == HolderStatusActive
}

// Deactivate transitions to Inactive.
//
// Any status other than Inactive may deactivate; Inactive -> Inactive is
// rejected with an InvalidStateError.
func (s HolderStatus) Deactivate() (HolderStatus, error) {
	if s == HolderStatusInactive {
		return HolderStatusUnknown, errs.NewInvalidStateError("deactivate", s.String())
	}
	return HolderStatusInactive, nil
}
