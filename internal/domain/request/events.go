package request

import (
	"fmt"
	"time"

	"studium/internal/domain/shared/events"
)

const (
	EventTypeRequestSubmitted = "request.submitted"
	EventTypeRequestApproved  = "request.approved"
	EventTypeRequestRejected  = "request.rejected"
)

type RequestSubmittedEvent struct {
	events.BaseEvent
	RequestID    uint      `json:"request_id"`
	ResourceID   uint      `json:"resource_id"`
	ResourceKind string    `json:"resource_kind"`
	RequesterID  uint      `json:"requester_id"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

func NewRequestSubmittedEvent(requestID, resourceID uint, resourceKind string, requesterID uint) RequestSubmittedEvent {
	now := time.Now()
	return RequestSubmittedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("request:%d", requestID),
			EventType:   EventTypeRequestSubmitted,
			OccurredAt:  now,
		},
		RequestID:    requestID,
		ResourceID:   resourceID,
		ResourceKind: resourceKind,
		RequesterID:  requesterID,
		SubmittedAt:  now,
	}
}

type RequestApprovedEvent struct {
	events.BaseEvent
	RequestID    uint      `json:"request_id"`
	ResourceID   uint      `json:"resource_id"`
	ResourceKind string    `json:"resource_kind"`
	RequesterID  uint      `json:"requester_id"`
	ApprovedBy   uint      `json:"approved_by"`
	AllocationID uint      `json:"allocation_id"`
	ApprovedAt   time.Time `json:"approved_at"`
}

func NewRequestApprovedEvent(requestID, resourceID uint, resourceKind string, requesterID, approvedBy, allocationID uint) RequestApprovedEvent {
	now := time.Now()
	return RequestApprovedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("request:%d", requestID),
			EventType:   EventTypeRequestApproved,
			OccurredAt:  now,
		},
		RequestID:    requestID,
		ResourceID:   resourceID,
		ResourceKind: resourceKind,
		RequesterID:  requesterID,
		ApprovedBy:   approvedBy,
		AllocationID: allocationID,
		ApprovedAt:   now,
	}
}

type RequestRejectedEvent struct {
	events.BaseEvent
	RequestID    uint      `json:"request_id"`
	ResourceID   uint      `json:"resource_id"`
	ResourceKind string    `json:"resource_kind"`
	RequesterID  uint      `json:"requester_id"`
	RejectedBy   uint      `json:"rejected_by"`
	Reason       string    `json:"reason"`
	RejectedAt   time.Time `json:"rejected_at"`
}

func NewRequestRejectedEvent(requestID, resourceID uint, resourceKind string, requesterID, rejectedBy uint, reason string) RequestRejectedEvent {
	now := time.Now()
	return RequestRejectedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("request:%d", requestID),
			EventType:   EventTypeRequestRejected,
			OccurredAt:  now,
		},
		RequestID:    requestID,
		ResourceID:   resourceID,
		ResourceKind: resourceKind,
		RequesterID:  requesterID,
		RejectedBy:   rejectedBy,
		Reason:       reason,
		RejectedAt:   now,
	}
}
