package activity

import (
	"errors"
	"time"
)

// Record is one line in the activity feed. Records are projections of
// domain events, they carry no authority and losing one never affects
// the workflow itself.
type Record struct {
	id         uint
	eventType  string
	actorID    uint
	subjectID  uint
	message    string
	occurredAt time.Time
	createdAt  time.Time
}

func NewRecord(eventType string, actorID, subjectID uint, message string, occurredAt time.Time) (*Record, error) {
	if eventType == "" {
		return nil, errors.New("event type is required")
	}
	if message == "" {
		return nil, errors.New("message is required")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	return &Record{
		eventType:  eventType,
		actorID:    actorID,
		subjectID:  subjectID,
		message:    message,
		occurredAt: occurredAt,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructRecord(id uint, eventType string, actorID, subjectID uint, message string, occurredAt, createdAt time.Time) *Record {
	return &Record{
		id:         id,
		eventType:  eventType,
		actorID:    actorID,
		subjectID:  subjectID,
		message:    message,
		occurredAt: occurredAt,
		createdAt:  createdAt,
	}
}

func (r *Record) ID() uint              { return r.id }
func (r *Record) EventType() string     { return r.eventType }
func (r *Record) ActorID() uint         { return r.actorID }
func (r *Record) SubjectID() uint       { return r.subjectID }
func (r *Record) Message() string       { return r.message }
func (r *Record) OccurredAt() time.Time { return r.occurredAt }
func (r *Record) CreatedAt() time.Time  { return r.createdAt }

func (r *Record) SetID(id uint) error {
	if r.id != 0 {
		return errors.New("record ID already set")
	}
	if id == 0 {
		return errors.New("record ID cannot be zero")
	}
	r.id = id
	return nil
}
