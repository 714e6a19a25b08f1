package eventstore

import (
	"context"

	"insurance/internal/core/domain/model/event"
	"insurance/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormEventStore implements ports.EventStore on PostgreSQL.
//
// Finders order by occurrence time with the event ID as tiebreak, so event
// sequences are stable across reads.
type GormEventStore struct {
	db *gorm.DB
}

// NewGormEventStore creates a new GORM event store.
func NewGormEventStore(db *gorm.DB) *GormEventStore {
	return &GormEventStore{db: db}
}

// Save appends a single event.
func (s *GormEventStore) Save(ctx context.Context, domainEvent event.DomainEvent) error {
	dto, err := fromDomainEvent(domainEvent)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Create(&dto).Error
}

// SaveAll appends a batch atomically. A batch with any unencodable event is
// rejected before anything touches the database.
func (s *GormEventStore) SaveAll(ctx context.Context, domainEvents []event.DomainEvent) error {
	if len(domainEvents) == 0 {
		return nil
	}

	dtos := make([]DomainEventDTO, 0, len(domainEvents))
	for _, domainEvent := range domainEvents {
		dto, err := fromDomainEvent(domainEvent)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dtos).Error
	})
}

// FindByAggregateID retrieves the full history of one aggregate.
func (s *GormEventStore) FindByAggregateID(
	ctx context.Context,
	aggregateID kernel.UUID,
) ([]event.DomainEvent, error) {
	if err := aggregateID.Validate(); err != nil {
		return nil, err
	}

	return s.find(ctx, "aggregate_id = ?", aggregateID.Bytes())
}

// FindByAggregateType retrieves all events of one aggregate type.
func (s *GormEventStore) FindByAggregateType(
	ctx context.Context,
	aggregateType string,
) ([]event.DomainEvent, error) {
	return s.find(ctx, "aggregate_type = ?", aggregateType)
}

// FindByEventType retrieves all events carrying the given type tag.
func (s *GormEventStore) FindByEventType(
	ctx context.Context,
	eventType string,
) ([]event.DomainEvent, error) {
	return s.find(ctx, "event_type = ?", eventType)
}

func (s *GormEventStore) find(
	ctx context.Context,
	condition string,
	value any,
) ([]event.DomainEvent, error) {
	var dtos []DomainEventDTO
	if err := s.db.WithContext(ctx).
		Where(condition, value).
		Order("occurred_on, event_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	events := make([]event.DomainEvent, 0, len(dtos))
	for _, dto := range dtos {
		domainEvent, err := toDomainEvent(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, domainEvent)
	}

	return events, nil
}
