package request

import (
	"context"

	"studium/internal/shared/utils"
)

// Repository defines persistence operations for allocation requests.
type Repository interface {
	Save(ctx context.Context, req *Request) error
	Update(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id uint) (*Request, error)

	// ListByRequester returns the requester's requests newest first.
	ListByRequester(ctx context.Context, requesterID uint, pagination utils.Pagination) ([]*Request, int64, error)

	// ListPending returns all pending requests newest first.
	ListPending(ctx context.Context, pagination utils.Pagination) ([]*Request, int64, error)

	// ListPendingByResource returns every pending request against the
	// given resource. Used to cascade-reject when a resource is removed.
	ListPendingByResource(ctx context.Context, resourceID uint) ([]*Request, error)

	// HasPending reports whether the requester already has a pending
	// request for the resource.
	HasPending(ctx context.Context, resourceID, requesterID uint) (bool, error)
}
