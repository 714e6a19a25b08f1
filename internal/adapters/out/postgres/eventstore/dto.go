// Package eventstore implements append-only persistence of domain events on
// PostgreSQL. Rows are written once and never updated or deleted.
package eventstore

import (
	"time"

	"insurance/internal/core/domain/model/event"
	"insurance/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DomainEventDTO represents the database structure for persisting domain
// events. The payload column keeps the kind-specific JSON document produced
// by the event's own encoder.
type DomainEventDTO struct {
	EventID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	AggregateID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AggregateType string    `gorm:"type:varchar(100);not null;index"`
	EventType     string    `gorm:"type:varchar(100);not null;index"`
	OccurredOn    time.Time `gorm:"type:timestamptz;not null"`
	Payload       []byte    `gorm:"type:jsonb;not null"`
}

// TableName overrides GORM's default naming to use "domain_events".
func (DomainEventDTO) TableName() string {
	return "domain_events"
}

func fromDomainEvent(domainEvent event.DomainEvent) (DomainEventDTO, error) {
	payload, err := domainEvent.EncodePayload()
	if err != nil {
		return DomainEventDTO{}, err
	}

	return DomainEventDTO{
		EventID:       domainEvent.EventID().Bytes(),
		AggregateID:   domainEvent.AggregateID().Bytes(),
		AggregateType: domainEvent.AggregateType(),
		EventType:     domainEvent.EventType(),
		OccurredOn:    domainEvent.OccurredOn(),
		Payload:       payload,
	}, nil
}

func toDomainEvent(dto DomainEventDTO) (event.DomainEvent, error) {
	eventID, err := kernel.UUIDFromBytes(dto.EventID[:])
	if err != nil {
		return nil, err
	}

	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return nil, err
	}

	base := event.RestoreBase(eventID, aggregateID,
		dto.AggregateType, dto.EventType, dto.OccurredOn)

	return event.Decode(base, dto.Payload)
}
