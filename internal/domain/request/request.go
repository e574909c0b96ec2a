package request

import (
	"errors"
	"strings"
	"time"

	vo "studium/internal/domain/request/valueobjects"
)

const (
	maxNoteLength    = 500
	maxRequestedDays = 365
)

// Request is a requester's petition for one unit of a resource.
// It moves from pending to a terminal approved or rejected state
// through an explicit staff decision.
type Request struct {
	id            uint
	resourceID    uint
	requesterID   uint
	status        vo.RequestStatus
	requestedDays int
	note          string
	decidedBy     *uint
	decisionNote  string
	decidedAt     *time.Time
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewRequest creates a pending request. requestedDays carries the desired
// loan duration; zero means the configured default, and seat requests
// ignore it entirely.
func NewRequest(resourceID, requesterID uint, requestedDays int, note string) (*Request, error) {
	if resourceID == 0 {
		return nil, errors.New("resource ID is required")
	}
	if requesterID == 0 {
		return nil, errors.New("requester ID is required")
	}
	if requestedDays < 0 || requestedDays > maxRequestedDays {
		return nil, errors.New("requested days out of range")
	}
	note = strings.TrimSpace(note)
	if len(note) > maxNoteLength {
		return nil, errors.New("note exceeds maximum length")
	}

	now := time.Now()
	return &Request{
		resourceID:    resourceID,
		requesterID:   requesterID,
		status:        vo.StatusPending,
		requestedDays: requestedDays,
		note:          note,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructRequest(
	id uint,
	resourceID, requesterID uint,
	status vo.RequestStatus,
	requestedDays int,
	note string,
	decidedBy *uint,
	decisionNote string,
	decidedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:            id,
		resourceID:    resourceID,
		requesterID:   requesterID,
		status:        status,
		requestedDays: requestedDays,
		note:          note,
		decidedBy:     decidedBy,
		decisionNote:  decisionNote,
		decidedAt:     decidedAt,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Request) ID() uint                 { return r.id }
func (r *Request) ResourceID() uint         { return r.resourceID }
func (r *Request) RequesterID() uint        { return r.requesterID }
func (r *Request) Status() vo.RequestStatus { return r.status }
func (r *Request) RequestedDays() int       { return r.requestedDays }
func (r *Request) Note() string             { return r.note }
func (r *Request) DecidedBy() *uint         { return r.decidedBy }
func (r *Request) DecisionNote() string     { return r.decisionNote }
func (r *Request) DecidedAt() *time.Time    { return r.decidedAt }
func (r *Request) Version() int             { return r.version }
func (r *Request) CreatedAt() time.Time     { return r.createdAt }
func (r *Request) UpdatedAt() time.Time     { return r.updatedAt }

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return errors.New("request ID already set")
	}
	if id == 0 {
		return errors.New("request ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Request) IsPending() bool {
	return r.status == vo.StatusPending
}

// Approve marks the request approved by the given decider.
// The caller is responsible for reserving a unit first.
func (r *Request) Approve(deciderID uint, note string) error {
	return r.decide(vo.StatusApproved, deciderID, note)
}

// Reject marks the request rejected by the given decider.
func (r *Request) Reject(deciderID uint, note string) error {
	return r.decide(vo.StatusRejected, deciderID, note)
}

func (r *Request) decide(target vo.RequestStatus, deciderID uint, note string) error {
	if deciderID == 0 {
		return errors.New("decider ID is required")
	}
	if !r.status.CanTransitionTo(target) {
		return errors.New("request is not pending")
	}
	note = strings.TrimSpace(note)
	if len(note) > maxNoteLength {
		return errors.New("decision note exceeds maximum length")
	}

	now := time.Now()
	r.status = target
	r.decidedBy = &deciderID
	r.decisionNote = note
	r.decidedAt = &now
	r.version++
	r.updatedAt = now
	return nil
}
