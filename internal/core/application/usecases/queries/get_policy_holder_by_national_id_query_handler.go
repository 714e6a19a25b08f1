package queries

import (
	"context"

	"insurance/internal/core/ports"
)

// GetPolicyHolderByNationalIDQueryHandler serves national-ID lookups from the
// read side.
type GetPolicyHolderByNationalIDQueryHandler struct {
	holders ports.PolicyHolderQueryRepository
}

// NewGetPolicyHolderByNationalIDQueryHandler creates a handler for the lookup.
func NewGetPolicyHolderByNationalIDQueryHandler(
	holders ports.PolicyHolderQueryRepository,
) GetPolicyHolderByNationalIDQueryHandler {
	return GetPolicyHolderByNationalIDQueryHandler{holders: holders}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no holder
// carries the national ID.
func (h GetPolicyHolderByNationalIDQueryHandler) Handle(
	ctx context.Context,
	query GetPolicyHolderByNationalIDQuery,
) (*ports.PolicyHolderReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.holders.GetByNationalID(ctx, query.NationalID().Value())
}
