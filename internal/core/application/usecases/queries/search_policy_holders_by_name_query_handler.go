package queries

import (
	"context"

	"insurance/internal/core/ports"
)

// SearchPolicyHoldersByNameResponse is one result page plus the total match
// count across all pages.
type SearchPolicyHoldersByNameResponse struct {
	Holders []ports.PolicyHolderReadModel
	Total   int64
	Page    int
	Size    int
}

// SearchPolicyHoldersByNameQueryHandler serves paged name searches from the
// read side.
type SearchPolicyHoldersByNameQueryHandler struct {
	holders ports.PolicyHolderQueryRepository
}

// NewSearchPolicyHoldersByNameQueryHandler creates a handler for name searches.
func NewSearchPolicyHoldersByNameQueryHandler(
	holders ports.PolicyHolderQueryRepository,
) SearchPolicyHoldersByNameQueryHandler {
	return SearchPolicyHoldersByNameQueryHandler{holders: holders}
}

// Handle executes the search. An empty page is a valid result, not an error.
func (h SearchPolicyHoldersByNameQueryHandler) Handle(
	ctx context.Context,
	query SearchPolicyHoldersByNameQuery,
) (SearchPolicyHoldersByNameResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchPolicyHoldersByNameResponse{}, err
	}

	holders, err := h.holders.SearchByName(ctx, query.Keyword(), query.Page(), query.Size())
	if err != nil {
		return SearchPolicyHoldersByNameResponse{}, err
	}

	total, err := h.holders.CountByName(ctx, query.Keyword())
	if err != nil {
		return SearchPolicyHoldersByNameResponse{}, err
	}

	return SearchPolicyHoldersByNameResponse{
		Holders: holders,
		Total:   total,
		Page:    query.Page(),
		Size:    query.Size(),
	}, nil
}
