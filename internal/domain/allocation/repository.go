package allocation

import (
	"context"
	"time"

	"studium/internal/shared/utils"
)

// Repository defines persistence operations for allocations.
type Repository interface {
	Save(ctx context.Context, alloc *Allocation) error
	Update(ctx context.Context, alloc *Allocation) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Allocation, error)
	GetByRequestID(ctx context.Context, requestID uint) (*Allocation, error)

	// HasActiveByHolderAndResource reports whether the holder currently
	// holds an active allocation against the resource.
	HasActiveByHolderAndResource(ctx context.Context, holderID, resourceID uint) (bool, error)

	// ListByHolder returns the holder's allocations newest first.
	ListByHolder(ctx context.Context, holderID uint, pagination utils.Pagination) ([]*Allocation, int64, error)

	// ListActive returns all active allocations newest first.
	ListActive(ctx context.Context, pagination utils.Pagination) ([]*Allocation, int64, error)

	// ListOverdue returns active allocations whose due date passed
	// before the given instant, oldest due date first.
	ListOverdue(ctx context.Context, asOf time.Time, pagination utils.Pagination) ([]*Allocation, int64, error)

	// CountActiveByResource reports how many units of the resource are
	// currently held.
	CountActiveByResource(ctx context.Context, resourceID uint) (int64, error)
}
