package queries

import (
	"errors"

	"insurance/internal/core/domain/model/policyholder"
	"insurance/internal/pkg/guard"
)

var ErrListPolicyHoldersByStatusQueryIsNotConstructed = errors.New(
	"ListPolicyHoldersByStatusQuery must be created via NewListPolicyHoldersByStatusQuery constructor",
)

// ListPolicyHoldersByStatusQuery retrieves a page of holders in one lifecycle
// status. Paging is clamped at construction.
type ListPolicyHoldersByStatusQuery struct {
	status policyholder.HolderStatus
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewListPolicyHoldersByStatusQuery creates a status-listing query.
// Page is clamped to >= 0 and size to [1, 100].
func NewListPolicyHoldersByStatusQuery(
	status policyholder.HolderStatus,
	page, size int,
) (ListPolicyHoldersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return ListPolicyHoldersByStatusQuery{}, err
	}

	page, size = clampPaging(page, size)
	return ListPolicyHoldersByStatusQuery{
		status: status,
		page:   page,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPolicyHoldersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListPolicyHoldersByStatusQueryIsNotConstructed)
}

// Status returns the requested lifecycle status.
func (q ListPolicyHoldersByStatusQuery) Status() policyholder.HolderStatus {
	return q.status
}

// Page returns the 0-indexed page.
func (q ListPolicyHoldersByStatusQuery) Page() int {
	return q.page
}

// Size returns the clamped page size.
func (q ListPolicyHoldersByStatusQuery) Size() int {
	return q.size
}
