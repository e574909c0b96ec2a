package usecases

import (
	"context"

	"studium/internal/domain/user"
	vo "studium/internal/domain/user/valueobjects"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresIn int64
	UserID    uint
	Name      string
	Role      string
}

// LoginUseCase authenticates an account and issues an access token.
// Credential failures and unknown emails produce the same unauthorized
// error so login probing reveals nothing about registered addresses.
type LoginUseCase struct {
	userRepo    user.Repository
	hasher      user.PasswordHasher
	tokenIssuer TokenIssuer
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}

	account, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to load user", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Infow("failed login attempt", "user_id", account.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !account.CanSignIn() {
		if account.IsPending() {
			return nil, errors.NewForbiddenError("account is awaiting approval")
		}
		return nil, errors.NewForbiddenError("account is suspended")
	}

	token, expiresIn, err := uc.tokenIssuer.Issue(account.ID(), account.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "role", account.Role().String())

	return &LoginResult{
		Token:     token,
		ExpiresIn: expiresIn,
		UserID:    account.ID(),
		Name:      account.Name(),
		Role:      account.Role().String(),
	}, nil
}
