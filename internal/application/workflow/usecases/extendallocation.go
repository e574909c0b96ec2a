package usecases

import (
	"context"
	"time"

	"studium/internal/domain/allocation"
	"studium/internal/domain/shared/events"
	"studium/internal/shared/authorization"
	"studium/internal/shared/config"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type ExtendAllocationCommand struct {
	AllocationID uint
	ActorID      uint
	ActorRole    authorization.UserRole
}

type ExtendAllocationResult struct {
	AllocationID uint
	DueAt        *time.Time
	Extensions   int
}

// ExtendAllocationUseCase renews a loan by the configured extension
// period, capped so the total never exceeds the maximum loan period.
type ExtendAllocationUseCase struct {
	allocationRepo  allocation.Repository
	eventDispatcher events.EventDispatcher
	workflowCfg     *config.WorkflowConfig
	logger          logger.Interface
}

func NewExtendAllocationUseCase(
	allocationRepo allocation.Repository,
	eventDispatcher events.EventDispatcher,
	workflowCfg *config.WorkflowConfig,
	logger logger.Interface,
) *ExtendAllocationUseCase {
	return &ExtendAllocationUseCase{
		allocationRepo:  allocationRepo,
		eventDispatcher: eventDispatcher,
		workflowCfg:     workflowCfg,
		logger:          logger,
	}
}

func (uc *ExtendAllocationUseCase) Execute(ctx context.Context, cmd ExtendAllocationCommand) (*ExtendAllocationResult, error) {
	uc.logger.Infow("executing extend allocation use case", "allocation_id", cmd.AllocationID, "actor_id", cmd.ActorID)

	if cmd.AllocationID == 0 {
		return nil, errors.NewValidationError("allocation ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	alloc, err := uc.allocationRepo.GetByID(ctx, cmd.AllocationID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessOwnedRecord(cmd.ActorID, cmd.ActorRole, alloc.HolderID()) {
		return nil, errors.NewForbiddenError("you cannot extend this allocation")
	}

	extension := time.Duration(uc.workflowCfg.ExtensionDays) * 24 * time.Hour
	maxDue := alloc.CreatedAt().Add(time.Duration(uc.workflowCfg.MaxLoanDays) * 24 * time.Hour)

	if err := alloc.Extend(extension, maxDue); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.allocationRepo.Update(ctx, alloc); err != nil {
		uc.logger.Errorw("failed to update allocation", "allocation_id", alloc.ID(), "error", err)
		return nil, err
	}

	event := allocation.NewAllocationExtendedEvent(alloc.ID(), alloc.ResourceID(), alloc.HolderID(), *alloc.DueAt())
	if err := uc.eventDispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish allocation extended event", "allocation_id", alloc.ID(), "error", err)
	}

	uc.logger.Infow("allocation extended", "allocation_id", alloc.ID(), "due_at", alloc.DueAt())

	return &ExtendAllocationResult{
		AllocationID: alloc.ID(),
		DueAt:        alloc.DueAt(),
		Extensions:   alloc.Extensions(),
	}, nil
}
