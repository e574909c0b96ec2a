package usecases

import (
	"context"
	"time"

	"studium/internal/domain/shared/events"
	"studium/internal/domain/user"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type ApproveUserCommand struct {
	UserID     uint
	ApproverID uint
}

type ApproveUserResult struct {
	UserID     uint
	Status     string
	ApprovedAt *time.Time
}

type ApproveUserUseCase struct {
	userRepo        user.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewApproveUserUseCase(
	userRepo user.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *ApproveUserUseCase {
	return &ApproveUserUseCase{
		userRepo:        userRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *ApproveUserUseCase) Execute(ctx context.Context, cmd ApproveUserCommand) (*ApproveUserResult, error) {
	uc.logger.Infow("executing approve user use case", "user_id", cmd.UserID, "approver_id", cmd.ApproverID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.ApproverID == 0 {
		return nil, errors.NewValidationError("approver ID is required")
	}

	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := account.Approve(cmd.ApproverID); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", account.ID(), "error", err)
		return nil, err
	}

	event := user.NewUserApprovedEvent(account.ID(), cmd.ApproverID)
	if err := uc.eventDispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish user approved event", "user_id", account.ID(), "error", err)
	}

	uc.logger.Infow("user approved", "user_id", account.ID())

	return &ApproveUserResult{
		UserID:     account.ID(),
		Status:     account.Status().String(),
		ApprovedAt: account.ApprovedAt(),
	}, nil
}
