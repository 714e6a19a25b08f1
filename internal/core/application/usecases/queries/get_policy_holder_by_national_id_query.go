package queries

import (
	"errors"

	"insurance/internal/core/domain/model/kernel"
	"insurance/internal/pkg/guard"
)

var ErrGetPolicyHolderByNationalIDQueryIsNotConstructed = errors.New(
	"GetPolicyHolderByNationalIDQuery must be created via NewGetPolicyHolderByNationalIDQuery constructor",
)

// GetPolicyHolderByNationalIDQuery retrieves one holder with all policies by
// the raw national identifier.
type GetPolicyHolderByNationalIDQuery struct {
	nationalID kernel.NationalID

	guard guard.ConstructorGuard
}

// NewGetPolicyHolderByNationalIDQuery creates a lookup query by national ID.
func NewGetPolicyHolderByNationalIDQuery(nationalID kernel.NationalID) (GetPolicyHolderByNationalIDQuery, error) {
	if err := nationalID.Validate(); err != nil {
		return GetPolicyHolderByNationalIDQuery{}, err
	}

	return GetPolicyHolderByNationalIDQuery{
		nationalID: nationalID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPolicyHolderByNationalIDQuery) Validate() error {
	return q.guard.Validate(ErrGetPolicyHolderByNationalIDQueryIsNotConstructed)
}

// NationalID returns the requested national identifier.
func (q GetPolicyHolderByNationalIDQuery) NationalID() kernel.NationalID {
	return q.nationalID
}
