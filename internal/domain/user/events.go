package user

import (
	"fmt"
	"time"

	"studium/internal/domain/shared/events"
)

const (
	EventTypeUserRegistered = "user.registered"
	EventTypeUserApproved   = "user.approved"
	EventTypeUserSuspended  = "user.suspended"
)

type UserRegisteredEvent struct {
	events.BaseEvent
	UserID       uint      `json:"user_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registered_at"`
}

func NewUserRegisteredEvent(userID uint, email, role string) UserRegisteredEvent {
	now := time.Now()
	return UserRegisteredEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("user:%d", userID),
			EventType:   EventTypeUserRegistered,
			OccurredAt:  now,
		},
		UserID:       userID,
		Email:        email,
		Role:         role,
		RegisteredAt: now,
	}
}

type UserApprovedEvent struct {
	events.BaseEvent
	UserID     uint      `json:"user_id"`
	ApprovedBy uint      `json:"approved_by"`
	ApprovedAt time.Time `json:"approved_at"`
}

func NewUserApprovedEvent(userID, approvedBy uint) UserApprovedEvent {
	now := time.Now()
	return UserApprovedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("user:%d", userID),
			EventType:   EventTypeUserApproved,
			OccurredAt:  now,
		},
		UserID:     userID,
		ApprovedBy: approvedBy,
		ApprovedAt: now,
	}
}

type UserSuspendedEvent struct {
	events.BaseEvent
	UserID      uint      `json:"user_id"`
	SuspendedBy uint      `json:"suspended_by"`
	SuspendedAt time.Time `json:"suspended_at"`
}

func NewUserSuspendedEvent(userID, suspendedBy uint) UserSuspendedEvent {
	now := time.Now()
	return UserSuspendedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("user:%d", userID),
			EventType:   EventTypeUserSuspended,
			OccurredAt:  now,
		},
		UserID:      userID,
		SuspendedBy: suspendedBy,
		SuspendedAt: now,
	}
}
