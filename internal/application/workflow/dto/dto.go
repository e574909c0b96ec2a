package dto

import (
	"time"

	"studium/internal/domain/allocation"
	"studium/internal/domain/request"
)

// RequestDTO is the transport representation of an allocation request.
type RequestDTO struct {
	ID            uint       `json:"id"`
	ResourceID    uint       `json:"resource_id"`
	RequesterID   uint       `json:"requester_id"`
	Status        string     `json:"status"`
	RequestedDays int        `json:"requested_days,omitempty"`
	Note          string     `json:"note,omitempty"`
	DecidedBy     *uint      `json:"decided_by,omitempty"`
	DecisionNote  string     `json:"decision_note,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func RequestToDTO(req *request.Request) *RequestDTO {
	return &RequestDTO{
		ID:            req.ID(),
		ResourceID:    req.ResourceID(),
		RequesterID:   req.RequesterID(),
		Status:        req.Status().String(),
		RequestedDays: req.RequestedDays(),
		Note:          req.Note(),
		DecidedBy:     req.DecidedBy(),
		DecisionNote:  req.DecisionNote(),
		DecidedAt:     req.DecidedAt(),
		CreatedAt:     req.CreatedAt(),
	}
}

func RequestsToDTOs(reqs []*request.Request) []*RequestDTO {
	dtos := make([]*RequestDTO, 0, len(reqs))
	for _, req := range reqs {
		dtos = append(dtos, RequestToDTO(req))
	}
	return dtos
}

// AllocationDTO is the transport representation of an allocation.
type AllocationDTO struct {
	ID         uint       `json:"id"`
	RequestID  uint       `json:"request_id"`
	ResourceID uint       `json:"resource_id"`
	HolderID   uint       `json:"holder_id"`
	Status     string     `json:"status"`
	DueAt      *time.Time `json:"due_at,omitempty"`
	Extensions int        `json:"extensions"`
	ReleasedAt *time.Time `json:"released_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func AllocationToDTO(alloc *allocation.Allocation) *AllocationDTO {
	return &AllocationDTO{
		ID:         alloc.ID(),
		RequestID:  alloc.RequestID(),
		ResourceID: alloc.ResourceID(),
		HolderID:   alloc.HolderID(),
		Status:     alloc.Status().String(),
		DueAt:      alloc.DueAt(),
		Extensions: alloc.Extensions(),
		ReleasedAt: alloc.ReleasedAt(),
		CreatedAt:  alloc.CreatedAt(),
	}
}

func AllocationsToDTOs(allocs []*allocation.Allocation) []*AllocationDTO {
	dtos := make([]*AllocationDTO, 0, len(allocs))
	for _, alloc := range allocs {
		dtos = append(dtos, AllocationToDTO(alloc))
	}
	return dtos
}

// AvailabilityDTO reports the unit counts of one resource pool.
type AvailabilityDTO struct {
	ResourceID     uint   `json:"resource_id"`
	Kind           string `json:"kind"`
	RefID          uint   `json:"ref_id"`
	TotalUnits     int    `json:"total_units"`
	AvailableUnits int    `json:"available_units"`
}
