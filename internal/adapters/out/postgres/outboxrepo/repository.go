// Package outboxrepo stores domain events in the transactional outbox and
// serves them to the relay.
package outboxrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OutboxEventDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null"`
	EventType   string     `gorm:"type:varchar(64);not null"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OutboxEventDTO) TableName() string {
	return "outbox_events"
}

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxEventDTO, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", e.EventName(), err)
		}
		dtos = append(dtos, OutboxEventDTO{
			ID:          e.EventID().Bytes(),
			AggregateID: e.AggregateID().Bytes(),
			EventType:   e.EventName(),
			Payload:     string(payload),
			OccurredAt:  e.OccurredAt(),
		})
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// ListUnpublished must run inside a transaction for the locks to matter.
func (r *GormOutboxRepository) ListUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxEventDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
		if err != nil {
			return nil, err
		}
		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			AggregateID: aggregateID,
			EventType:   dto.EventType,
			Payload:     []byte(dto.Payload),
			OccurredAt:  dto.OccurredAt.UTC(),
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Model(&OutboxEventDTO{}).
		Where("id IN ?", raw).
		Update("published_at", at.UTC()).Error
}
