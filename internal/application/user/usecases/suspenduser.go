package usecases

import (
	"context"

	"studium/internal/domain/shared/events"
	"studium/internal/domain/user"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type SuspendUserCommand struct {
	UserID  uint
	ActorID uint
}

type SuspendUserResult struct {
	UserID uint
	Status string
}

type SuspendUserUseCase struct {
	userRepo        user.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewSuspendUserUseCase(
	userRepo user.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *SuspendUserUseCase {
	return &SuspendUserUseCase{
		userRepo:        userRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *SuspendUserUseCase) Execute(ctx context.Context, cmd SuspendUserCommand) (*SuspendUserResult, error) {
	uc.logger.Infow("executing suspend user use case", "user_id", cmd.UserID, "actor_id", cmd.ActorID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	if cmd.UserID == cmd.ActorID {
		return nil, errors.NewValidationError("you cannot suspend your own account")
	}

	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := account.Suspend(); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", account.ID(), "error", err)
		return nil, err
	}

	event := user.NewUserSuspendedEvent(account.ID(), cmd.ActorID)
	if err := uc.eventDispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish user suspended event", "user_id", account.ID(), "error", err)
	}

	uc.logger.Infow("user suspended", "user_id", account.ID())

	return &SuspendUserResult{
		UserID: account.ID(),
		Status: account.Status().String(),
	}, nil
}
