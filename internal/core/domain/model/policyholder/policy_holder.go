package policyholder

import (
	"errors"
	"fmt"

	"insurance/internal/core/domain/model/event"
	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/pkg/errs"
	"insurance/internal/pkg/guard"
)

// ErrPolicyHolderIsNotConstructed is returned when using a PolicyHolder that
// was not created via NewPolicyHolder or RestorePolicyHolder.
var ErrPolicyHolderIsNotConstructed = errors.New(
	"PolicyHolder must be created via NewPolicyHolder or RestorePolicyHolder constructor")

// PolicyHolder is the aggregate root and consistency boundary of the domain.
// It owns its policies and its pending-event buffer exclusively: external
// callers only ever receive copies, and every mutation goes through one of
// the methods below.
//
// Key invariants:
//   - The national ID never changes after creation.
//   - Policies may be added only while the holder is Active, and once added
//     are never removed, only transitioned through their own status machine.
//   - Every state-mutating operation increments the version by exactly 1;
//     the version is the sole optimistic-concurrency token.
//   - Pending events accumulate in FIFO order and are cleared only by
//     DrainEvents; reconstitution from storage never populates the buffer.
//
// The aggregate performs no I/O. Persistence and event publication are
// entirely the calling handler's responsibility.
type PolicyHolder struct {
	id           kernel.UUID
	nationalID   kernel.NationalID
	personalInfo kernel.PersonalInfo
	contactInfo  kernel.ContactInfo
	address      kernel.Address
	status       HolderStatus
	policies     []*Policy
	version      int

	// persistedVersion is the version the aggregate was loaded at. It never
	// changes in memory and is the compare-and-swap expectation at save time.
	persistedVersion int

	pendingEvents []event.DomainEvent

	guard guard.ConstructorGuard
}

// NewPolicyHolder creates a new aggregate in Active status at version 0.
// The pending-event buffer holds exactly one creation event.
func NewPolicyHolder(
	id kernel.UUID,
	nationalID kernel.NationalID,
	personalInfo kernel.PersonalInfo,
	contactInfo kernel.ContactInfo,
	address kernel.Address,
) (*PolicyHolder, error) {
	holder := &PolicyHolder{
		status: HolderStatusActive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		holder.setID(id),
		holder.setNationalID(nationalID),
		holder.setPersonalInfo(personalInfo),
		holder.setContactInfo(contactInfo),
		holder.setAddress(address),
	); err != nil {
		return nil, err
	}

	holder.registerEvent(event.NewPolicyHolderCreated(
		holder.id, holder.nationalID.Value(), holder.personalInfo.Name(), holder.version))

	return holder, nil
}

// RestorePolicyHolder rebuilds an aggregate from persistence with its stored
// status, version, and policies. No events are registered: the buffer of a
// reconstituted aggregate is always empty.
func RestorePolicyHolder(
	id kernel.UUID,
	nationalID kernel.NationalID,
	personalInfo kernel.PersonalInfo,
	contactInfo kernel.ContactInfo,
	address kernel.Address,
	status HolderStatus,
	version int,
	policies []*Policy,
) (*PolicyHolder, error) {
	holder := &PolicyHolder{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		holder.setID(id),
		holder.setNationalID(nationalID),
		holder.setPersonalInfo(personalInfo),
		holder.setContactInfo(contactInfo),
		holder.setAddress(address),
		holder.setStatus(status),
		holder.setVersion(version),
		holder.setPolicies(policies),
	); err != nil {
		return nil, err
	}

	holder.persistedVersion = holder.version
	return holder, nil
}

// Validate returns ErrPolicyHolderIsNotConstructed for a zero-value aggregate.
func (h *PolicyHolder) Validate() error {
	if h == nil {
		return ErrPolicyHolderIsNotConstructed
	}
	return h.guard.Validate(ErrPolicyHolderIsNotConstructed)
}

// IsEqual compares two holders by identity.
func (h *PolicyHolder) IsEqual(other *PolicyHolder) bool {
	return other != nil && h.id.IsEqual(other.id)
}

// ID returns the aggregate identifier.
func (h *PolicyHolder) ID() kernel.UUID {
	return h.id
}

// NationalID returns the immutable national identifier.
func (h *PolicyHolder) NationalID() kernel.NationalID {
	return h.nationalID
}

// PersonalInfo returns the holder's personal information.
func (h *PolicyHolder) PersonalInfo() kernel.PersonalInfo {
	return h.personalInfo
}

// ContactInfo returns the holder's contact information.
func (h *PolicyHolder) ContactInfo() kernel.ContactInfo {
	return h.contactInfo
}

// Address returns the holder's address.
func (h *PolicyHolder) Address() kernel.Address {
	return h.address
}

// Status returns the holder's lifecycle status.
func (h *PolicyHolder) Status() HolderStatus {
	return h.status
}

// Version returns the optimistic-concurrency token.
func (h *PolicyHolder) Version() int {
	return h.version
}

// PersistedVersion returns the version the aggregate was loaded at, or 0 for
// a new aggregate. The repository compares it against the stored row when
// saving; a mismatch means another writer committed first.
func (h *PolicyHolder) PersistedVersion() int {
	return h.persistedVersion
}

// Policies returns a copy of the owned policy sequence in insertion order.
func (h *PolicyHolder) Policies() []*Policy {
	out := make([]*Policy, len(h.policies))
	copy(out, h.policies)
	return out
}

// AddPolicy appends a policy to the holder.
//
// Fails with an InvalidStateError unless the holder is Active. On success the
// version increments by 1 and a policy-added event carrying a full snapshot
// of the policy's fields is registered.
func (h *PolicyHolder) AddPolicy(policy *Policy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	if !h.status.IsActive() {
		return errs.NewInvalidStateError("add policy", h.status.String())
	}

	h.policies = append(h.policies, policy)
	h.version++

	h.registerEvent(event.NewPolicyAdded(h.id, event.PolicyAddedPayload{
		PolicyID:   policy.ID().String(),
		PolicyType: policy.PolicyType().String(),
		Premium:    policy.Premium().String(),
		SumInsured: policy.SumInsured().String(),
		StartDate:  policy.StartDate(),
		EndDate:    policy.EndDate(),
		Status:     policy.Status().String(),
		Version:    h.version,
	}))

	return nil
}

// UpdateContactInfo replaces the contact information wholesale.
// The registered event carries the new values and the post-increment version,
// never a diff.
func (h *PolicyHolder) UpdateContactInfo(contactInfo kernel.ContactInfo) error {
	if err := contactInfo.Validate(); err != nil {
		return err
	}
	if !h.status.IsActive() {
		return errs.NewInvalidStateError("update contact info", h.status.String())
	}

	h.contactInfo = contactInfo
	h.version++

	h.registerEvent(event.NewContactInfoUpdated(
		h.id, contactInfo.MobilePhone(), contactInfo.Email(), h.version))

	return nil
}

// UpdateAddress replaces the address wholesale.
// The registered event carries the new values and the post-increment version.
func (h *PolicyHolder) UpdateAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	if !h.status.IsActive() {
		return errs.NewInvalidStateError("update address", h.status.String())
	}

	h.address = address
	h.version++

	h.registerEvent(event.NewAddressUpdated(h.id, event.AddressUpdatedPayload{
		ZipCode:  address.ZipCode(),
		City:     address.City(),
		District: address.District(),
		Street:   address.Street(),
		Version:  h.version,
	}))

	return nil
}

// Deactivate soft-deletes the holder.
//
// Any status other than Inactive transitions to Inactive; deactivating an
// already Inactive holder fails with an InvalidStateError and leaves state
// unchanged. The registered event carries the masked national ID and the
// name for audit, never the raw identifier.
func (h *PolicyHolder) Deactivate() error {
	newStatus, err := h.status.Deactivate()
	if err != nil {
		return err
	}

	h.status = newStatus
	h.version++

	h.registerEvent(event.NewPolicyHolderDeactivated(
		h.id, h.nationalID.Masked(), h.personalInfo.Name(), h.version))

	return nil
}

// LapsePolicy transitions the identified owned policy Active -> Lapsed.
//
// Fails with an ObjectNotFoundError if the holder owns no such policy, or an
// InvalidStateError if the policy is not Active. On success the holder's
// version increments and a policy-lapsed event is registered.
func (h *PolicyHolder) LapsePolicy(policyID kernel.UUID) error {
	if err := policyID.Validate(); err != nil {
		return err
	}

	policy := h.findPolicy(policyID)
	if policy == nil {
		return errs.NewObjectNotFoundError("policyId", policyID.String())
	}

	if err := policy.Lapse(); err != nil {
		return err
	}
	h.version++

	h.registerEvent(event.NewPolicyLapsed(h.id, policyID.String(), h.version))

	return nil
}

// DrainEvents returns the pending events in registration order and atomically
// clears the buffer. A second call before any mutation returns an empty
// sequence: delivery is at most once per drain cycle.
func (h *PolicyHolder) DrainEvents() []event.DomainEvent {
	drained := h.pendingEvents
	h.pendingEvents = nil
	return drained
}

func (h *PolicyHolder) registerEvent(e event.DomainEvent) {
	h.pendingEvents = append(h.pendingEvents, e)
}

func (h *PolicyHolder) findPolicy(id kernel.UUID) *Policy {
	for _, policy := range h.policies {
		if policy.ID().IsEqual(id) {
			return policy
		}
	}
	return nil
}

func (h *PolicyHolder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *PolicyHolder) setNationalID(nationalID kernel.NationalID) error {
	if err := nationalID.Validate(); err != nil {
		return err
	}
	h.nationalID = nationalID
	return nil
}

func (h *PolicyHolder) setPersonalInfo(personalInfo kernel.PersonalInfo) error {
	if err := personalInfo.Validate(); err != nil {
		return err
	}
	h.personalInfo = personalInfo
	return nil
}

func (h *PolicyHolder) setContactInfo(contactInfo kernel.ContactInfo) error {
	if err := contactInfo.Validate(); err != nil {
		return err
	}
	h.contactInfo = contactInfo
	return nil
}

func (h *PolicyHolder) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	h.address = address
	return nil
}

func (h *PolicyHolder) setStatus(status HolderStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	h.status = status
	return nil
}

func (h *PolicyHolder) setVersion(version int) error {
	if version < 0 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"holder version", fmt.Errorf("%d is negative", version))
	}
	h.version = version
	return nil
}

func (h *PolicyHolder) setPolicies(policies []*Policy) error {
	for _, policy := range policies {
		if err := policy.Validate(); err != nil {
			return err
		}
	}

	h.policies = make([]*Policy, len(policies))
	copy(h.policies, policies)
	return nil
}
