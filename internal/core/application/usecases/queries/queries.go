// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
//
// Query handlers go through the read-side repository only and never touch
// the write-side ports or the domain model. Paged query objects clamp their
// paging parameters at construction: size to the inclusive range [1, 100],
// page to >= 0, regardless of what the caller asked for.
package queries

const (
	minPageSize = 1
	maxPageSize = 100
)

// clampPaging normalizes caller-supplied paging to the supported range.
func clampPaging(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size < minPageSize {
		size = minPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
