package order

import (
	"encoding/json"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
)

// ChangeKind names what happened to an order.
type ChangeKind string

const (
	Placed        ChangeKind = "order.placed"
	StatusChanged ChangeKind = "order.status_changed"
	CrewAssigned  ChangeKind = "order.crew_assigned"
	Deleted       ChangeKind = "order.deleted"
)

// ChangedEvent is recorded by Order on every state change and relayed to
// downstream consumers through the outbox.
type ChangedEvent struct {
	id         kernel.UUID
	kind       ChangeKind
	orderID    kernel.UUID
	ownerID    kernel.UUID
	crewID     *kernel.UUID
	delivered  bool
	total      kernel.Money
	occurredAt time.Time
}

var _ kernel.DomainEvent = ChangedEvent{}

func newChangedEvent(kind ChangeKind, o *Order, at time.Time) ChangedEvent {
	var crew *kernel.UUID
	if o.crewID != nil {
		c := *o.crewID
		crew = &c
	}
	return ChangedEvent{
		id:         kernel.NewUUID(),
		kind:       kind,
		orderID:    o.id,
		ownerID:    o.ownerID,
		crewID:     crew,
		delivered:  o.status.IsDelivered(),
		total:      o.total,
		occurredAt: at.UTC(),
	}
}

func (e ChangedEvent) EventID() kernel.UUID {
	return e.id
}

func (e ChangedEvent) EventName() string {
	return string(e.kind)
}

func (e ChangedEvent) AggregateID() kernel.UUID {
	return e.orderID
}

func (e ChangedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e ChangedEvent) Kind() ChangeKind {
	return e.kind
}

// changedEventPayload is the JSON document stored in the outbox.
type changedEventPayload struct {
	EventID        kernel.UUID  `json:"event_id"`
	EventType      string       `json:"event_type"`
	OrderID        kernel.UUID  `json:"order_id"`
	UserID         kernel.UUID  `json:"user_id"`
	DeliveryCrewID *kernel.UUID `json:"delivery_crew_id"`
	Delivered      bool         `json:"delivered"`
	Total          kernel.Money `json:"total"`
	OccurredAt     time.Time    `json:"occurred_at"`
}

func (e ChangedEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(changedEventPayload{
		EventID:        e.id,
		EventType:      string(e.kind),
		OrderID:        e.orderID,
		UserID:         e.ownerID,
		DeliveryCrewID: e.crewID,
		Delivered:      e.delivered,
		Total:          e.total,
		OccurredAt:     e.occurredAt,
	})
}
