// Package event defines the closed set of domain events emitted by the
// policyholder aggregate, together with the registry used to decode stored
// events back into their concrete types.
//
// Events are immutable audit records of something that already happened.
// They are a side channel for audit and downstream integration, never the
// source of truth for current aggregate state.
package event

import (
	"time"

	"insurance/internal/core/domain/model/kernel"
)

// AggregateTypePolicyHolder is the aggregate type tag stored with every
// policyholder event.
const AggregateTypePolicyHolder = "PolicyHolder"

// Event type tags. The set is closed: persistence and publication switch on
// these tags, never on runtime type names.
const (
	TypePolicyHolderCreated     = "policyholder.created"
	TypePolicyAdded             = "policyholder.policy_added"
	TypeContactInfoUpdated      = "policyholder.contact_info_updated"
	TypeAddressUpdated          = "policyholder.address_updated"
	TypePolicyHolderDeactivated = "policyholder.deactivated"
	TypePolicyLapsed            = "policyholder.policy_lapsed"
)

// DomainEvent is an immutable record of a state change on an aggregate.
//
// OccurredOn is a wall-clock timestamp with no cross-process ordering
// guarantee; within one command's output, ordering is the pending-buffer
// insertion order.
type DomainEvent interface {
	// EventID returns the globally unique identifier of this event.
	EventID() kernel.UUID

	// AggregateID returns the identifier of the aggregate the event belongs to.
	AggregateID() kernel.UUID

	// AggregateType returns the aggregate type tag, e.g. AggregateTypePolicyHolder.
	AggregateType() string

	// EventType returns the closed-set tag identifying the event kind.
	EventType() string

	// OccurredOn returns the wall-clock time the event was registered.
	OccurredOn() time.Time

	// EncodePayload serializes the kind-specific payload for storage.
	EncodePayload() ([]byte, error)
}

// Base carries the fields shared by every domain event. Concrete events embed
// it by value; all fields are set at construction and never change.
type Base struct {
	eventID       kernel.UUID
	aggregateID   kernel.UUID
	aggregateType string
	eventType     string
	occurredOn    time.Time
}

// NewBase creates the shared part of a freshly registered event:
// a new event ID and the current wall-clock time.
func NewBase(aggregateID kernel.UUID, aggregateType, eventType string) Base {
	return Base{
		eventID:       kernel.NewUUID(),
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		eventType:     eventType,
		occurredOn:    time.Now().UTC(),
	}
}

// RestoreBase rebuilds the shared part of a stored event.
func RestoreBase(
	eventID, aggregateID kernel.UUID,
	aggregateType, eventType string,
	occurredOn time.Time,
) Base {
	return Base{
		eventID:       eventID,
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		eventType:     eventType,
		occurredOn:    occurredOn,
	}
}

// EventID returns the globally unique identifier of the event.
func (b Base) EventID() kernel.UUID {
	return b.eventID
}

// AggregateID returns the owning aggregate's identifier.
func (b Base) AggregateID() kernel.UUID {
	return b.aggregateID
}

// AggregateType returns the aggregate type tag.
func (b Base) AggregateType() string {
	return b.aggregateType
}

// EventType returns the event kind tag.
func (b Base) EventType() string {
	return b.eventType
}

// OccurredOn returns the registration timestamp.
func (b Base) OccurredOn() time.Time {
	return b.occurredOn
}
