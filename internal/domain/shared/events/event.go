// Package events provides the in-process domain event plumbing. The
// allocation workflow publishes an event on every state transition and
// interested components (the activity projector, future UI push channels)
// subscribe instead of polling the store.
package events

import "time"

// DomainEvent is implemented by every event the domains publish.
type DomainEvent interface {
	// GetAggregateID returns the ID of the aggregate that generated the event
	GetAggregateID() string

	// GetEventType returns the type/name of the event
	GetEventType() string

	// GetOccurredAt returns when the event occurred
	GetOccurredAt() time.Time
}

// BaseEvent provides common fields for all domain events
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e BaseEvent) GetAggregateID() string {
	return e.AggregateID
}

func (e BaseEvent) GetEventType() string {
	return e.EventType
}

func (e BaseEvent) GetOccurredAt() time.Time {
	return e.OccurredAt
}

// EventHandler represents a handler for domain events
type EventHandler interface {
	// Handle processes a domain event
	Handle(event DomainEvent) error

	// CanHandle checks if this handler can handle the given event type
	CanHandle(eventType string) bool
}

// EventDispatcher publishes domain events and fans them out to subscribers.
type EventDispatcher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
	Subscribe(eventType string, handler EventHandler) error
}
