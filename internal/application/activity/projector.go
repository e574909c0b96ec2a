// Package activity projects domain events into a human-readable feed.
package activity

import (
	"context"
	"fmt"

	"studium/internal/domain/activity"
	"studium/internal/domain/allocation"
	"studium/internal/domain/request"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/domain/shared/events"
	"studium/internal/domain/user"
	"studium/internal/shared/logger"
)

// Projector subscribes to domain events and writes one activity record
// per event. Records are best effort: a failed write is logged and
// dropped, never bubbled back to the publishing use case.
type Projector struct {
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewProjector(activityRepo activity.Repository, logger logger.Interface) *Projector {
	return &Projector{
		activityRepo: activityRepo,
		logger:       logger.Named("activity"),
	}
}

// Register subscribes the projector to every event type it renders.
func (p *Projector) Register(dispatcher events.EventDispatcher) error {
	for _, eventType := range []string{
		request.EventTypeRequestSubmitted,
		request.EventTypeRequestApproved,
		request.EventTypeRequestRejected,
		allocation.EventTypeAllocationReleased,
		allocation.EventTypeAllocationExtended,
		user.EventTypeUserRegistered,
		user.EventTypeUserApproved,
		user.EventTypeUserSuspended,
	} {
		if err := dispatcher.Subscribe(eventType, events.NewHandlerFunc(eventType, p.project)); err != nil {
			return fmt.Errorf("subscribe %s: %w", eventType, err)
		}
	}
	return nil
}

func (p *Projector) project(event events.DomainEvent) error {
	actorID, subjectID, message := describe(event)
	if message == "" {
		p.logger.Debugw("no projection for event", "event_type", event.GetEventType())
		return nil
	}

	record, err := activity.NewRecord(event.GetEventType(), actorID, subjectID, message, event.GetOccurredAt())
	if err != nil {
		p.logger.Warnw("failed to build activity record",
			"event_type", event.GetEventType(),
			"error", err,
		)
		return nil
	}

	if err := p.activityRepo.Save(context.Background(), record); err != nil {
		p.logger.Warnw("failed to save activity record",
			"event_type", event.GetEventType(),
			"aggregate_id", event.GetAggregateID(),
			"error", err,
		)
	}
	return nil
}

// describe turns an event into feed copy. An empty message means the
// event type has no feed entry.
func describe(event events.DomainEvent) (actorID, subjectID uint, message string) {
	switch e := event.(type) {
	case request.RequestSubmittedEvent:
		return e.RequesterID, e.RequestID,
			fmt.Sprintf("requested %s", kindNoun(e.ResourceKind))
	case request.RequestApprovedEvent:
		return e.ApprovedBy, e.RequestID,
			fmt.Sprintf("approved %s request #%d", kindNoun(e.ResourceKind), e.RequestID)
	case request.RequestRejectedEvent:
		message = fmt.Sprintf("rejected %s request #%d", kindNoun(e.ResourceKind), e.RequestID)
		if e.Reason != "" {
			message += ": " + e.Reason
		}
		return e.RejectedBy, e.RequestID, message
	case allocation.AllocationReleasedEvent:
		return e.ReleasedBy, e.AllocationID,
			fmt.Sprintf("released allocation #%d", e.AllocationID)
	case allocation.AllocationExtendedEvent:
		return e.HolderID, e.AllocationID,
			fmt.Sprintf("extended loan #%d until %s", e.AllocationID, e.NewDueAt.Format("2006-01-02"))
	case user.UserRegisteredEvent:
		return e.UserID, e.UserID,
			fmt.Sprintf("registered as %s, awaiting approval", e.Role)
	case user.UserApprovedEvent:
		return e.ApprovedBy, e.UserID,
			fmt.Sprintf("approved account #%d", e.UserID)
	case user.UserSuspendedEvent:
		return e.SuspendedBy, e.UserID,
			fmt.Sprintf("suspended account #%d", e.UserID)
	default:
		return 0, 0, ""
	}
}

func kindNoun(kind string) string {
	switch resourcevo.ResourceKind(kind) {
	case resourcevo.KindBookCopies:
		return "a book copy"
	case resourcevo.KindClassSeats:
		return "a class seat"
	default:
		return "a resource"
	}
}
