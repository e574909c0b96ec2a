package allocation

import (
	"fmt"
	"time"

	"studium/internal/domain/shared/events"
)

const (
	EventTypeAllocationReleased = "allocation.released"
	EventTypeAllocationExtended = "allocation.extended"
)

type AllocationReleasedEvent struct {
	events.BaseEvent
	AllocationID uint      `json:"allocation_id"`
	ResourceID   uint      `json:"resource_id"`
	HolderID     uint      `json:"holder_id"`
	ReleasedBy   uint      `json:"released_by"`
	ReleasedAt   time.Time `json:"released_at"`
}

func NewAllocationReleasedEvent(allocationID, resourceID, holderID, releasedBy uint) AllocationReleasedEvent {
	now := time.Now()
	return AllocationReleasedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("allocation:%d", allocationID),
			EventType:   EventTypeAllocationReleased,
			OccurredAt:  now,
		},
		AllocationID: allocationID,
		ResourceID:   resourceID,
		HolderID:     holderID,
		ReleasedBy:   releasedBy,
		ReleasedAt:   now,
	}
}

type AllocationExtendedEvent struct {
	events.BaseEvent
	AllocationID uint      `json:"allocation_id"`
	ResourceID   uint      `json:"resource_id"`
	HolderID     uint      `json:"holder_id"`
	NewDueAt     time.Time `json:"new_due_at"`
	ExtendedAt   time.Time `json:"extended_at"`
}

func NewAllocationExtendedEvent(allocationID, resourceID, holderID uint, newDueAt time.Time) AllocationExtendedEvent {
	now := time.Now()
	return AllocationExtendedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("allocation:%d", allocationID),
			EventType:   EventTypeAllocationExtended,
			OccurredAt:  now,
		},
		AllocationID: allocationID,
		ResourceID:   resourceID,
		HolderID:     holderID,
		NewDueAt:     newDueAt,
		ExtendedAt:   now,
	}
}
