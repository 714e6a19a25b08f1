// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
//
// All handlers follow the same shape: validate the command, evaluate the
// domain-service gates, invoke exactly one mutating aggregate method, save,
// then publish the drained events. Saves that lose the optimistic-concurrency
// race are retried by reloading the aggregate and re-running the whole
// command against fresh state; a conflicting save is never replayed with
// stale state and never partially applied.
package commands

// maxSaveAttempts bounds the reload-and-retry loop on concurrency conflicts.
// The last conflict error is returned when the budget is exhausted.
const maxSaveAttempts = 3
