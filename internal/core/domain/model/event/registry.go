package event

import (
	"encoding/json"

	"insurance/internal/pkg/errs"
)

// DecodeFunc rebuilds a concrete event from its shared base and stored payload.
type DecodeFunc func(base Base, payload []byte) (DomainEvent, error)

// registry maps each stored event type tag to its decode function. The map is
// the complete, closed set of decodable events; a stored tag outside it fails
// with ErrValueIsInvalid rather than being resolved into executable code.
var registry = map[string]DecodeFunc{
	TypePolicyHolderCreated: func(base Base, payload []byte) (DomainEvent, error) {
		var p PolicyHolderCreatedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return PolicyHolderCreated{Base: base, PolicyHolderCreatedPayload: p}, nil
	},
	TypePolicyAdded: func(base Base, payload []byte) (DomainEvent, error) {
		var p PolicyAddedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return PolicyAdded{Base: base, PolicyAddedPayload: p}, nil
	},
	TypeContactInfoUpdated: func(base Base, payload []byte) (DomainEvent, error) {
		var p ContactInfoUpdatedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return ContactInfoUpdated{Base: base, ContactInfoUpdatedPayload: p}, nil
	},
	TypeAddressUpdated: func(base Base, payload []byte) (DomainEvent, error) {
		var p AddressUpdatedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return AddressUpdated{Base: base, AddressUpdatedPayload: p}, nil
	},
	TypePolicyHolderDeactivated: func(base Base, payload []byte) (DomainEvent, error) {
		var p PolicyHolderDeactivatedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return PolicyHolderDeactivated{Base: base, PolicyHolderDeactivatedPayload: p}, nil
	},
	TypePolicyLapsed: func(base Base, payload []byte) (DomainEvent, error) {
		var p PolicyLapsedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return PolicyLapsed{Base: base, PolicyLapsedPayload: p}, nil
	},
}

// Decode rebuilds a stored event from its base fields and payload bytes by
// looking up the base's event type tag in the registry.
func Decode(base Base, payload []byte) (DomainEvent, error) {
	decode, ok := registry[base.EventType()]
	if !ok {
		return nil, errs.NewValueIsInvalidError("eventType " + base.EventType())
	}
	return decode(base, payload)
}
