// Package resource holds the unit pool aggregate shared by book lending and
// class enrollment. A pool tracks how many units exist and how many are
// still available; available units change only through the allocation
// workflow, and the repository performs the actual decrement as a guarded
// update so concurrent approvals cannot drive the count negative.
package resource

import (
	"fmt"
	"time"

	vo "studium/internal/domain/resource/valueobjects"
)

type Resource struct {
	id             uint
	kind           vo.ResourceKind
	refID          uint
	totalUnits     int
	availableUnits int
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

// NewResource creates a pool with all units available. refID points at the
// catalog entity (book or class) the pool belongs to.
func NewResource(kind vo.ResourceKind, refID uint, totalUnits int) (*Resource, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid resource kind")
	}
	if refID == 0 {
		return nil, fmt.Errorf("reference ID is required")
	}
	if totalUnits < 0 {
		return nil, fmt.Errorf("total units cannot be negative")
	}

	now := time.Now()
	return &Resource{
		kind:           kind,
		refID:          refID,
		totalUnits:     totalUnits,
		availableUnits: totalUnits,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructResource reconstructs a pool from persistence.
func ReconstructResource(id uint, kind vo.ResourceKind, refID uint, totalUnits, availableUnits, version int, createdAt, updatedAt time.Time) (*Resource, error) {
	if id == 0 {
		return nil, fmt.Errorf("resource ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid resource kind")
	}
	if availableUnits < 0 || availableUnits > totalUnits {
		return nil, fmt.Errorf("available units %d out of range [0, %d]", availableUnits, totalUnits)
	}

	return &Resource{
		id:             id,
		kind:           kind,
		refID:          refID,
		totalUnits:     totalUnits,
		availableUnits: availableUnits,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Resource) ID() uint {
	return r.id
}

func (r *Resource) Kind() vo.ResourceKind {
	return r.kind
}

func (r *Resource) RefID() uint {
	return r.refID
}

func (r *Resource) TotalUnits() int {
	return r.totalUnits
}

func (r *Resource) AvailableUnits() int {
	return r.availableUnits
}

func (r *Resource) Version() int {
	return r.version
}

func (r *Resource) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Resource) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Resource) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("resource ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("resource ID cannot be zero")
	}
	r.id = id
	return nil
}

// HasAvailable reports whether at least one unit can still be granted.
func (r *Resource) HasAvailable() bool {
	return r.availableUnits > 0
}

// Retotal changes the pool size, clamping available units into
// [0, newTotal]. Admin edits to a book's copy count go through here so a
// shrink below the number of outstanding loans cannot leave available
// negative, and a grow raises availability by the added units.
func (r *Resource) Retotal(newTotal int) error {
	if newTotal < 0 {
		return fmt.Errorf("total units cannot be negative")
	}

	delta := newTotal - r.totalUnits
	r.totalUnits = newTotal
	r.availableUnits += delta
	if r.availableUnits < 0 {
		r.availableUnits = 0
	}
	if r.availableUnits > r.totalUnits {
		r.availableUnits = r.totalUnits
	}
	r.version++
	r.updatedAt = time.Now()
	return nil
}
