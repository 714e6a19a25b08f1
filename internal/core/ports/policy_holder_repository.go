// Package ports defines the contracts between the application core and
// infrastructure adapters: aggregate persistence, read-side queries, event
// storage, and event publication. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"
	"time"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/core/domain/model/policyholder"
)

// PolicyHolderRepository defines the persistence contract for policyholder
// aggregates. The write side is version-checked: Save compares the stored
// version with the version the aggregate was loaded at and rejects the write
// with a ConcurrencyConflictError when another writer got there first.
type PolicyHolderRepository interface {
	// Save persists the aggregate and returns the stored state.
	//
	// An aggregate at version 0 that does not yet exist is inserted; a
	// duplicate national ID fails the insert. Any other aggregate is updated
	// with a compare-and-swap on the version column: if no row matches the
	// expected prior version, Save returns a ConcurrencyConflictError and
	// writes nothing. Owned policies are persisted with the holder.
	Save(ctx context.Context, holder *policyholder.PolicyHolder) error

	// Get retrieves an aggregate by ID with all owned policies.
	// Returns an ObjectNotFoundError if no such holder exists.
	Get(ctx context.Context, id kernel.UUID) (*policyholder.PolicyHolder, error)

	// GetByNationalID retrieves an aggregate by its unique national ID.
	// Returns an ObjectNotFoundError if no such holder exists.
	GetByNationalID(ctx context.Context, nationalID kernel.NationalID) (*policyholder.PolicyHolder, error)

	// ExistsByNationalID reports whether a holder with the national ID exists,
	// regardless of status.
	ExistsByNationalID(ctx context.Context, nationalID kernel.NationalID) (bool, error)

	// GetAllWithActivePoliciesEndingBefore retrieves every holder owning at
	// least one Active policy whose end date is before the cutoff. Used by the
	// scheduled lapse run.
	GetAllWithActivePoliciesEndingBefore(ctx context.Context, cutoff time.Time) ([]*policyholder.PolicyHolder, error)

	// Delete physically removes the aggregate and its policies.
	// Regular decommissioning goes through Deactivate; Delete exists for
	// data-erasure requests only.
	Delete(ctx context.Context, id kernel.UUID) error
}
