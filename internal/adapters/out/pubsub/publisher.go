// Package pubsub provides in-process publication of domain events with a
// store-then-notify guarantee.
package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"insurance/internal/core/domain/model/event"
	"insurance/internal/core/ports"
)

// InProcessEventPublisher implements ports.EventPublisher.
//
// Events are appended to the durable event store before any subscriber sees
// them; a failed store means zero notifications. Subscribers run synchronously
// in registration order, and a panicking subscriber is logged and skipped so
// it cannot poison the others.
type InProcessEventPublisher struct {
	store  ports.EventStore
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers []ports.EventSubscriber
}

// NewInProcessEventPublisher creates a publisher backed by the given event store.
func NewInProcessEventPublisher(store ports.EventStore, logger *slog.Logger) *InProcessEventPublisher {
	return &InProcessEventPublisher{
		store:  store,
		logger: logger.With("component", "event_publisher"),
	}
}

// Subscribe registers a subscriber for all subsequently published events.
func (p *InProcessEventPublisher) Subscribe(subscriber ports.EventSubscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, subscriber)
}

// Publish stores the event, then notifies all subscribers.
func (p *InProcessEventPublisher) Publish(ctx context.Context, domainEvent event.DomainEvent) error {
	if err := p.store.Save(ctx, domainEvent); err != nil {
		return err
	}

	p.notify(ctx, domainEvent)
	return nil
}

// PublishAll stores the batch atomically, then notifies subscribers for each
// event in the input order. A failed store aborts with zero notifications.
func (p *InProcessEventPublisher) PublishAll(ctx context.Context, domainEvents []event.DomainEvent) error {
	if len(domainEvents) == 0 {
		return nil
	}

	if err := p.store.SaveAll(ctx, domainEvents); err != nil {
		return err
	}

	for _, domainEvent := range domainEvents {
		p.notify(ctx, domainEvent)
	}
	return nil
}

func (p *InProcessEventPublisher) notify(ctx context.Context, domainEvent event.DomainEvent) {
	p.mu.RLock()
	subscribers := make([]ports.EventSubscriber, len(p.subscribers))
	copy(subscribers, p.subscribers)
	p.mu.RUnlock()

	for _, subscriber := range subscribers {
		p.deliver(ctx, subscriber, domainEvent)
	}
}

func (p *InProcessEventPublisher) deliver(
	ctx context.Context,
	subscriber ports.EventSubscriber,
	domainEvent event.DomainEvent,
) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.ErrorContext(ctx, "Event subscriber panicked",
				"event_type", domainEvent.EventType(),
				"event_id", domainEvent.EventID().String(),
				"panic", r)
		}
	}()

	subscriber.Handle(ctx, domainEvent)
}
