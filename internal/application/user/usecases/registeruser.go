package usecases

import (
	"context"
	"time"

	"studium/internal/domain/shared/events"
	"studium/internal/domain/user"
	vo "studium/internal/domain/user/valueobjects"
	"studium/internal/shared/authorization"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

const minPasswordLength = 8

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type RegisterUserResult struct {
	UserID    uint
	Status    string
	CreatedAt time.Time
}

// RegisterUserUseCase creates a pending account. Only teacher and
// student accounts can self-register; staff accounts are provisioned by
// an admin.
type RegisterUserUseCase struct {
	userRepo        user.Repository
	hasher          user.PasswordHasher
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		hasher:          hasher,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	uc.logger.Infow("executing register user use case", "email", cmd.Email, "role", cmd.Role)

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	role := authorization.UserRole(cmd.Role)
	if role != authorization.RoleTeacher && role != authorization.RoleStudent {
		return nil, errors.NewValidationError("role must be teacher or student")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.Name, email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("an account with this email already exists")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	event := user.NewUserRegisteredEvent(newUser.ID(), email.String(), role.String())
	if err := uc.eventDispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish user registered event", "user_id", newUser.ID(), "error", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "status", newUser.Status().String())

	return &RegisterUserResult{
		UserID:    newUser.ID(),
		Status:    newUser.Status().String(),
		CreatedAt: newUser.CreatedAt(),
	}, nil
}
