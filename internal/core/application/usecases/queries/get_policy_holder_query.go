package queries

import (
	"errors"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/pkg/guard"
)

var ErrGetPolicyHolderQueryIsNotConstructed = errors.New(
	"GetPolicyHolderQuery must be created via NewGetPolicyHolderQuery constructor",
)

// GetPolicyHolderQuery retrieves one holder with all policies by ID.
type GetPolicyHolderQuery struct {
	holderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPolicyHolderQuery creates a query for one holder.
func NewGetPolicyHolderQuery(holderID kernel.UUID) (GetPolicyHolderQuery, error) {
	if err := holderID.Validate(); err != nil {
		return GetPolicyHolderQuery{}, err
	}

	return GetPolicyHolderQuery{
		holderID: holderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPolicyHolderQuery) Validate() error {
	return q.guard.Validate(ErrGetPolicyHolderQueryIsNotConstructed)
}

// HolderID returns the requested aggregate identifier.
func (q GetPolicyHolderQuery) HolderID() kernel.UUID {
	return q.holderID
}
