package event

import (
	"encoding/json"
	"time"

	"insurance/internal/core/domain/model/kernel"
)

// PolicyHolderCreatedPayload is the serialized body of a creation event.
type PolicyHolderCreatedPayload struct {
	NationalID string `json:"national_id"`
	Name       string `json:"name"`
	Version    int    `json:"version"`
}

// PolicyHolderCreated is registered when a new policyholder aggregate is created.
type PolicyHolderCreated struct {
	Base
	PolicyHolderCreatedPayload
}

// NewPolicyHolderCreated creates a creation event for the given holder.
func NewPolicyHolderCreated(holderID kernel.UUID, nationalID, name string, version int) PolicyHolderCreated {
	return PolicyHolderCreated{
		Base: NewBase(holderID, AggregateTypePolicyHolder, TypePolicyHolderCreated),
		PolicyHolderCreatedPayload: PolicyHolderCreatedPayload{
			NationalID: nationalID,
			Name:       name,
			Version:    version,
		},
	}
}

// EncodePayload implements DomainEvent.
func (e PolicyHolderCreated) EncodePayload() ([]byte, error) {
	return json.Marshal(e.PolicyHolderCreatedPayload)
}

// PolicyAddedPayload is a full snapshot of the added policy's fields, never a diff.
type PolicyAddedPayload struct {
	PolicyID   string    `json:"policy_id"`
	PolicyType string    `json:"policy_type"`
	Premium    string    `json:"premium"`
	SumInsured string    `json:"sum_insured"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Status     string    `json:"status"`
	Version    int       `json:"version"`
}

// PolicyAdded is registered when a policy is added to a holder.
type PolicyAdded struct {
	Base
	PolicyAddedPayload
}

// NewPolicyAdded creates a policy-added event carrying the policy snapshot and
// the holder's post-increment version.
func NewPolicyAdded(holderID kernel.UUID, payload PolicyAddedPayload) PolicyAdded {
	return PolicyAdded{
		Base:               NewBase(holderID, AggregateTypePolicyHolder, TypePolicyAdded),
		PolicyAddedPayload: payload,
	}
}

// EncodePayload implements DomainEvent.
func (e PolicyAdded) EncodePayload() ([]byte, error) {
	return json.Marshal(e.PolicyAddedPayload)
}

// ContactInfoUpdatedPayload carries the new contact values, not a diff.
type ContactInfoUpdatedPayload struct {
	MobilePhone string `json:"mobile_phone"`
	Email       string `json:"email"`
	Version     int    `json:"version"`
}

// ContactInfoUpdated is registered on a wholesale contact-info replacement.
type ContactInfoUpdated struct {
	Base
	ContactInfoUpdatedPayload
}

// NewContactInfoUpdated creates a contact-info-updated event.
func NewContactInfoUpdated(holderID kernel.UUID, mobilePhone, email string, version int) ContactInfoUpdated {
	return ContactInfoUpdated{
		Base: NewBase(holderID, AggregateTypePolicyHolder, TypeContactInfoUpdated),
		ContactInfoUpdatedPayload: ContactInfoUpdatedPayload{
			MobilePhone: mobilePhone,
			Email:       email,
			Version:     version,
		},
	}
}

// EncodePayload implements DomainEvent.
func (e ContactInfoUpdated) EncodePayload() ([]byte, error) {
	return json.Marshal(e.ContactInfoUpdatedPayload)
}

// AddressUpdatedPayload carries the new address values, not a diff.
type AddressUpdatedPayload struct {
	ZipCode  string `json:"zip_code"`
	City     string `json:"city"`
	District string `json:"district"`
	Street   string `json:"street"`
	Version  int    `json:"version"`
}

// AddressUpdated is registered on a wholesale address replacement.
type AddressUpdated struct {
	Base
	AddressUpdatedPayload
}

// NewAddressUpdated creates an address-updated event.
func NewAddressUpdated(holderID kernel.UUID, payload AddressUpdatedPayload) AddressUpdated {
	return AddressUpdated{
		Base:                  NewBase(holderID, AggregateTypePolicyHolder, TypeAddressUpdated),
		AddressUpdatedPayload: payload,
	}
}

// EncodePayload implements DomainEvent.
func (e AddressUpdated) EncodePayload() ([]byte, error) {
	return json.Marshal(e.AddressUpdatedPayload)
}

// PolicyHolderDeactivatedPayload carries the masked national ID and name for
// audit. The raw identifier is never stored in this event.
type PolicyHolderDeactivatedPayload struct {
	MaskedNationalID string `json:"masked_national_id"`
	Name             string `json:"name"`
	Version          int    `json:"version"`
}

// PolicyHolderDeactivated is registered on a soft delete (status Inactive).
type PolicyHolderDeactivated struct {
	Base
	PolicyHolderDeactivatedPayload
}

// NewPolicyHolderDeactivated creates a deactivation event.
func NewPolicyHolderDeactivated(holderID kernel.UUID, maskedNationalID, name string, version int) PolicyHolderDeactivated {
	return PolicyHolderDeactivated{
		Base: NewBase(holderID, AggregateTypePolicyHolder, TypePolicyHolderDeactivated),
		PolicyHolderDeactivatedPayload: PolicyHolderDeactivatedPayload{
			MaskedNationalID: maskedNationalID,
			Name:             name,
			Version:          version,
		},
	}
}

// EncodePayload implements DomainEvent.
func (e PolicyHolderDeactivated) EncodePayload() ([]byte, error) {
	return json.Marshal(e.PolicyHolderDeactivatedPayload)
}

// PolicyLapsedPayload identifies the policy that lapsed.
type PolicyLapsedPayload struct {
	PolicyID string `json:"policy_id"`
	Version  int    `json:"version"`
}

// PolicyLapsed is registered when an owned policy passes its end date and is
// transitioned to the Lapsed status.
type PolicyLapsed struct {
	Base
	PolicyLapsedPayload
}

// NewPolicyLapsed creates a policy-lapsed event.
func NewPolicyLapsed(holderID kernel.UUID, policyID string, version int) PolicyLapsed {
	return PolicyLapsed{
		Base: NewBase(holderID, AggregateTypePolicyHolder, TypePolicyLapsed),
		PolicyLapsedPayload: PolicyLapsedPayload{
			PolicyID: policyID,
			Version:  version,
		},
	}
}

// EncodePayload implements DomainEvent.
func (e PolicyLapsed) EncodePayload() ([]byte, error) {
	return json.Marshal(e.PolicyLapsedPayload)
}
