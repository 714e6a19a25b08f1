package queries

import (
	"context"

	"insurance/internal/core/ports"
)

// ListPolicyHoldersByStatusResponse is one result page plus the total count
// of holders in the status across all pages.
type ListPolicyHoldersByStatusResponse struct {
	Holders []ports.PolicyHolderReadModel
	Total   int64
	Page    int
	Size    int
}

// ListPolicyHoldersByStatusQueryHandler serves paged status listings from the
// read side.
type ListPolicyHoldersByStatusQueryHandler struct {
	holders ports.PolicyHolderQueryRepository
}

// NewListPolicyHoldersByStatusQueryHandler creates a handler for status listings.
func NewListPolicyHoldersByStatusQueryHandler(
	holders ports.PolicyHolderQueryRepository,
) ListPolicyHoldersByStatusQueryHandler {
	return ListPolicyHoldersByStatusQueryHandler{holders: holders}
}

// Handle executes the listing. An empty page is a valid result, not an error.
func (h ListPolicyHoldersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListPolicyHoldersByStatusQuery,
) (ListPolicyHoldersByStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return ListPolicyHoldersByStatusResponse{}, err
	}

	holders, err := h.holders.FindByStatus(ctx, query.Status().String(), query.Page(), query.Size())
	if err != nil {
		return ListPolicyHoldersByStatusResponse{}, err
	}

	total, err := h.holders.CountByStatus(ctx, query.Status().String())
	if err != nil {
		return ListPolicyHoldersByStatusResponse{}, err
	}

	return ListPolicyHoldersByStatusResponse{
		Holders: holders,
		Total:   total,
		Page:    query.Page(),
		Size:    query.Size(),
	}, nil
}
