package activity

import (
	"context"

	"studium/internal/shared/utils"
)

// Repository defines persistence operations for activity records.
type Repository interface {
	Save(ctx context.Context, record *Record) error

	// List returns records newest first.
	List(ctx context.Context, pagination utils.Pagination) ([]*Record, int64, error)

	// ListByActor returns the actor's records newest first.
	ListByActor(ctx context.Context, actorID uint, pagination utils.Pagination) ([]*Record, int64, error)
}
