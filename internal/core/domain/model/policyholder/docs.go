// Package policyholder implements the PolicyHolder aggregate root and its
// owned Policy entities.
//
// The package includes:
//   - PolicyHolder: The aggregate root managing identity, personal data,
//     lifecycle status, owned policies, and the pending domain-event buffer
//   - Policy: An entity owned exclusively by one holder, with its own
//     status state machine but no independent lifecycle
//   - HolderStatus, PolicyStatus, PolicyType: closed enumerations with
//     explicit transition methods
//
// Key business rules:
//   - The national ID is fixed at creation and never changes
//   - Policies can only be added to an Active holder and are never removed
//   - Contact info and address are replaced wholesale, never field by field
//   - Every mutation increments the aggregate version by exactly one; the
//     version is the optimistic-concurrency token checked at save time
//   - Deactivation is a soft delete: the holder transitions to Inactive and
//     all further mutations are rejected
//
// Every mutation registers a domain event in a FIFO buffer that callers
// drain after a successful save. Reconstituting an aggregate from storage
// never produces events.
package policyholder
