package usecases

import (
	"context"

	"studium/internal/shared/authorization"
)

// TokenIssuer mints access tokens for authenticated accounts.
type TokenIssuer interface {
	Issue(userID uint, role authorization.UserRole) (token string, expiresIn int64, err error)
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type ApproveUserExecutor interface {
	Execute(ctx context.Context, cmd ApproveUserCommand) (*ApproveUserResult, error)
}

type SuspendUserExecutor interface {
	Execute(ctx context.Context, cmd SuspendUserCommand) (*SuspendUserResult, error)
}

type ListPendingUsersExecutor interface {
	Execute(ctx context.Context, query ListPendingUsersQuery) (*ListPendingUsersResult, error)
}
