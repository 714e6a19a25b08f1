package queries

import (
	"errors"

	"insurance/internal/pkg/errs"
	"insurance/internal/pkg/guard"
)

var ErrSearchPolicyHoldersByNameQueryIsNotConstructed = errors.New(
	"SearchPolicyHoldersByNameQuery must be created via NewSearchPolicyHoldersByNameQuery constructor",
)

// SearchPolicyHoldersByNameQuery retrieves a page of holders whose name
// contains the keyword. Paging is clamped at construction, so a handler
// never sees an out-of-range page or size.
type SearchPolicyHoldersByNameQuery struct {
	keyword string
	page    int
	size    int

	guard guard.ConstructorGuard
}

// NewSearchPolicyHoldersByNameQuery creates a name-search query. The keyword
// is required; page is clamped to >= 0 and size to [1, 100].
func NewSearchPolicyHoldersByNameQuery(keyword string, page, size int) (SearchPolicyHoldersByNameQuery, error) {
	if keyword == "" {
		return SearchPolicyHoldersByNameQuery{}, errs.NewValueIsRequiredError("keyword")
	}

	page, size = clampPaging(page, size)
	return SearchPolicyHoldersByNameQuery{
		keyword: keyword,
		page:    page,
		size:    size,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchPolicyHoldersByNameQuery) Validate() error {
	return q.guard.Validate(ErrSearchPolicyHoldersByNameQueryIsNotConstructed)
}

// Keyword returns the name fragment to search for.
func (q SearchPolicyHoldersByNameQuery) Keyword() string {
	return q.keyword
}

// Page returns the 0-indexed page.
func (q SearchPolicyHoldersByNameQuery) Page() int {
	return q.page
}

// Size returns the clamped page size.
func (q SearchPolicyHoldersByNameQuery) Size() int {
	return q.size
}
