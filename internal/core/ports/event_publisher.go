package ports

import (
	"context"

	"insurance/internal/core/domain/model/event"
)

// EventSubscriber receives published domain events.
//
// Handle errors are the subscriber's own problem: the publisher logs them and
// moves on, so a failing subscriber never blocks persistence or the other
// subscribers.
type EventSubscriber interface {
	Handle(ctx context.Context, domainEvent event.DomainEvent)
}

// EventPublisher defines the store-then-notify publication contract.
//
// Persistence always precedes notification: an event that could not be stored
// is never delivered to subscribers. Delivery after a successful store is
// at-most-once; the durable event store is the source of truth for replay.
type EventPublisher interface {
	// Publish stores the event, then notifies all subscribers.
	Publish(ctx context.Context, domainEvent event.DomainEvent) error

	// PublishAll stores the batch atomically, then notifies subscribers for
	// each event strictly in the input order. A failed store aborts the whole
	// batch with zero notifications.
	PublishAll(ctx context.Context, domainEvents []event.DomainEvent) error

	// Subscribe registers a subscriber for all subsequently published events.
	Subscribe(subscriber EventSubscriber)
}
