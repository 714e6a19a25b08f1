package queries

import (
	"context"

	"insurance/internal/core/ports"
)

// GetPolicyHolderQueryHandler serves single-holder lookups from the read side.
type GetPolicyHolderQueryHandler struct {
	holders ports.PolicyHolderQueryRepository
}

// NewGetPolicyHolderQueryHandler creates a handler for holder lookups.
func NewGetPolicyHolderQueryHandler(holders ports.PolicyHolderQueryRepository) GetPolicyHolderQueryHandler {
	return GetPolicyHolderQueryHandler{holders: holders}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when the holder
// does not exist.
func (h GetPolicyHolderQueryHandler) Handle(
	ctx context.Context,
	query GetPolicyHolderQuery,
) (*ports.PolicyHolderReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.holders.GetByID(ctx, query.HolderID().String())
}
