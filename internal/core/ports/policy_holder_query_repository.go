package ports

import (
	"context"
	"time"
)

// PolicyHolderReadModel is the denormalized read-side projection of a holder.
// All fields are plain serializable types; the read side never reconstitutes
// domain aggregates.
type PolicyHolderReadModel struct {
	ID               string
	MaskedNationalID string
	Name             string
	Gender           string
	BirthDate        time.Time
	MobilePhone      string
	Email            string
	ZipCode          string
	City             string
	District         string
	Street           string
	Status           string
	Version          int
	Policies         []PolicyReadModel
}

// PolicyReadModel is the read-side projection of a single owned policy.
type PolicyReadModel struct {
	ID         string
	PolicyType string
	Premium    string
	SumInsured string
	StartDate  time.Time
	EndDate    time.Time
	Status     string
}

// PolicyHolderQueryRepository defines the read-side contract of the CQRS
// split. Implementations query storage directly and never touch the
// write-side repository or the domain model.
//
// Paged methods expect an already-clamped page (>= 0) and size; callers are
// responsible for clamping, which query objects do at construction.
type PolicyHolderQueryRepository interface {
	// GetByID retrieves one holder with policies.
	// Returns an ObjectNotFoundError if no such holder exists.
	GetByID(ctx context.Context, id string) (*PolicyHolderReadModel, error)

	// GetByNationalID retrieves one holder with policies by raw national ID.
	// Returns an ObjectNotFoundError if no such holder exists.
	GetByNationalID(ctx context.Context, nationalID string) (*PolicyHolderReadModel, error)

	// SearchByName retrieves a page of holders whose name contains the
	// keyword, case-insensitively, ordered by name. Policies are not loaded.
	SearchByName(ctx context.Context, keyword string, page, size int) ([]PolicyHolderReadModel, error)

	// FindByStatus retrieves a page of holders in the given status, ordered
	// by name. Policies are not loaded.
	FindByStatus(ctx context.Context, status string, page, size int) ([]PolicyHolderReadModel, error)

	// CountByName returns the total number of holders matching the keyword.
	CountByName(ctx context.Context, keyword string) (int64, error)

	// CountByStatus returns the total number of holders in the given status.
	CountByStatus(ctx context.Context, status string) (int64, error)
}
