// Package services provides stateless domain services for business rules that
// don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PolicyHolderService: advisory eligibility and validity predicates used
//     by command handlers before invoking aggregate methods
//
// The predicates here are guards evaluated up front; the aggregate's own
// status checks remain the final authority on every mutation.
package services
