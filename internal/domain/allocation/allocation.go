package allocation

import (
	"errors"
	"time"

	vo "studium/internal/domain/allocation/valueobjects"
)

// Allocation records one unit of a resource held by a user. It is
// created when a request is approved and ends when the unit is
// returned. Release is idempotent so a double return is harmless.
type Allocation struct {
	id         uint
	requestID  uint
	resourceID uint
	holderID   uint
	status     vo.AllocationStatus
	dueAt      *time.Time
	extensions int
	releasedAt *time.Time
	version    int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAllocation(requestID, resourceID, holderID uint, dueAt *time.Time) (*Allocation, error) {
	if requestID == 0 {
		return nil, errors.New("request ID is required")
	}
	if resourceID == 0 {
		return nil, errors.New("resource ID is required")
	}
	if holderID == 0 {
		return nil, errors.New("holder ID is required")
	}
	if dueAt != nil && dueAt.Before(time.Now()) {
		return nil, errors.New("due date cannot be in the past")
	}

	now := time.Now()
	return &Allocation{
		requestID:  requestID,
		resourceID: resourceID,
		holderID:   holderID,
		status:     vo.StatusActive,
		dueAt:      dueAt,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAllocation(
	id uint,
	requestID, resourceID, holderID uint,
	status vo.AllocationStatus,
	dueAt *time.Time,
	extensions int,
	releasedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) *Allocation {
	return &Allocation{
		id:         id,
		requestID:  requestID,
		resourceID: resourceID,
		holderID:   holderID,
		status:     status,
		dueAt:      dueAt,
		extensions: extensions,
		releasedAt: releasedAt,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Allocation) ID() uint                    { return a.id }
func (a *Allocation) RequestID() uint             { return a.requestID }
func (a *Allocation) ResourceID() uint            { return a.resourceID }
func (a *Allocation) HolderID() uint              { return a.holderID }
func (a *Allocation) Status() vo.AllocationStatus { return a.status }
func (a *Allocation) DueAt() *time.Time           { return a.dueAt }
func (a *Allocation) Extensions() int             { return a.extensions }
func (a *Allocation) ReleasedAt() *time.Time      { return a.releasedAt }
func (a *Allocation) Version() int                { return a.version }
func (a *Allocation) CreatedAt() time.Time        { return a.createdAt }
func (a *Allocation) UpdatedAt() time.Time        { return a.updatedAt }

func (a *Allocation) SetID(id uint) error {
	if a.id != 0 {
		return errors.New("allocation ID already set")
	}
	if id == 0 {
		return errors.New("allocation ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Allocation) IsActive() bool {
	return a.status == vo.StatusActive
}

// IsOverdue reports whether an active allocation has passed its due date.
func (a *Allocation) IsOverdue(now time.Time) bool {
	return a.status == vo.StatusActive && a.dueAt != nil && a.dueAt.Before(now)
}

// Release marks the allocation returned. Releasing an already released
// allocation is a no-op, the return value reports whether the state
// actually changed.
func (a *Allocation) Release() bool {
	if a.status == vo.StatusReleased {
		return false
	}
	now := time.Now()
	a.status = vo.StatusReleased
	a.releasedAt = &now
	a.version++
	a.updatedAt = now
	return true
}

// Extend pushes the due date out by the given duration. Only active
// allocations with a due date can be extended, and never past maxDueAt.
func (a *Allocation) Extend(by time.Duration, maxDueAt time.Time) error {
	if a.status != vo.StatusActive {
		return errors.New("allocation is not active")
	}
	if a.dueAt == nil {
		return errors.New("allocation has no due date")
	}
	if by <= 0 {
		return errors.New("extension must be positive")
	}

	newDue := a.dueAt.Add(by)
	if newDue.After(maxDueAt) {
		return errors.New("extension exceeds maximum loan period")
	}

	a.dueAt = &newDue
	a.extensions++
	a.version++
	a.updatedAt = time.Now()
	return nil
}
