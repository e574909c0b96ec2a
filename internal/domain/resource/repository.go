package resource

import (
	"context"

	vo "studium/internal/domain/resource/valueobjects"
)

// Repository persists unit pools. ReserveUnit and ReleaseUnit are the only
// ways available units move; both must be implemented as atomic conditional
// updates at the store (guarded UPDATE checking affected rows), never as a
// read-modify-write in the application.
type Repository interface {
	Save(ctx context.Context, r *Resource) error
	Update(ctx context.Context, r *Resource) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Resource, error)
	GetByRef(ctx context.Context, kind vo.ResourceKind, refID uint) (*Resource, error)

	// ReserveUnit atomically decrements available units by one. Returns an
	// exhausted error when no unit is available, NotFound when the pool
	// does not exist.
	ReserveUnit(ctx context.Context, id uint) error

	// ReleaseUnit atomically increments available units by one, clamped to
	// the pool total. Releasing a full pool is a logic error upstream but
	// must not corrupt the count; the guard makes it a no-op.
	ReleaseUnit(ctx context.Context, id uint) error
}
