package user

import (
	"context"

	vo "studium/internal/domain/user/valueobjects"
	"studium/internal/shared/utils"
)

// Repository defines persistence operations for user accounts.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email *vo.Email) (*User, error)
	ExistsByEmail(ctx context.Context, email *vo.Email) (bool, error)

	// ListByStatus returns accounts in the given state, oldest first so
	// staff review registrations in arrival order.
	ListByStatus(ctx context.Context, status vo.UserStatus, pagination utils.Pagination) ([]*User, int64, error)
}
