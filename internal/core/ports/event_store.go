package ports

import (
	"context"

	"insurance/internal/core/domain/model/event"
	"insurance/internal/core/domain/model/kernel"
)

// EventStore defines the append-only persistence contract for domain events.
// Stored events are immutable: there is no update or delete operation, and
// implementations must not mutate rows after the initial insert.
//
// All finders return events ordered by occurrence time ascending.
type EventStore interface {
	// Save appends a single event.
	Save(ctx context.Context, domainEvent event.DomainEvent) error

	// SaveAll appends a batch atomically: either every event in the batch is
	// stored or none is.
	SaveAll(ctx context.Context, domainEvents []event.DomainEvent) error

	// FindByAggregateID retrieves the full history of one aggregate.
	FindByAggregateID(ctx context.Context, aggregateID kernel.UUID) ([]event.DomainEvent, error)

	// FindByAggregateType retrieves all events of one aggregate type.
	FindByAggregateType(ctx context.Context, aggregateType string) ([]event.DomainEvent, error)

	// FindByEventType retrieves all events carrying the given type tag.
	FindByEventType(ctx context.Context, eventType string) ([]event.DomainEvent, error)
}
