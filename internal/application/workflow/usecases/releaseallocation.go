package usecases

import (
	"context"
	"time"

	"studium/internal/domain/allocation"
	"studium/internal/domain/resource"
	"studium/internal/domain/shared/events"
	"studium/internal/shared/authorization"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type ReleaseAllocationCommand struct {
	AllocationID uint
	ActorID      uint
	ActorRole    authorization.UserRole
}

type ReleaseAllocationResult struct {
	AllocationID uint
	Status       string
	ReleasedAt   *time.Time
	// AlreadyReleased is set when the allocation was released before
	// this call; the operation still succeeds.
	AlreadyReleased bool
}

// ReleaseAllocationUseCase returns a held unit to its pool. Releasing
// twice is safe: the second call reports success without touching the
// pool again.
type ReleaseAllocationUseCase struct {
	allocationRepo  allocation.Repository
	resourceRepo    resource.Repository
	eventDispatcher events.EventDispatcher
	txMgr           TransactionManager
	logger          logger.Interface
}

func NewReleaseAllocationUseCase(
	allocationRepo allocation.Repository,
	resourceRepo resource.Repository,
	eventDispatcher events.EventDispatcher,
	txMgr TransactionManager,
	logger logger.Interface,
) *ReleaseAllocationUseCase {
	return &ReleaseAllocationUseCase{
		allocationRepo:  allocationRepo,
		resourceRepo:    resourceRepo,
		eventDispatcher: eventDispatcher,
		txMgr:           txMgr,
		logger:          logger,
	}
}

func (uc *ReleaseAllocationUseCase) Execute(ctx context.Context, cmd ReleaseAllocationCommand) (*ReleaseAllocationResult, error) {
	uc.logger.Infow("executing release allocation use case", "allocation_id", cmd.AllocationID, "actor_id", cmd.ActorID)

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

	// Holders can return their own allocations, staff can return any.
	if !authorization.CanAccessOwnedRecord(cmd.ActorID, cmd.ActorRole, alloc.HolderID()) {
		return nil, errors.NewForbiddenError("you cannot release this allocation")
	}

	if !alloc.Release() {
		uc.logger.Infow("allocation already released", "allocation_id", alloc.ID())
		return &ReleaseAllocationResult{
			AllocationID:    alloc.ID(),
			Status:          alloc.Status().String(),
			ReleasedAt:      alloc.ReleasedAt(),
			AlreadyReleased: true,
		}, nil
	}

	// The status flip and the pool increment commit together. If the
	// unit cannot go back to the pool the release rolls back and the
	// allocation stays active, so the caller can retry.
	if err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.allocationRepo.Update(txCtx, alloc); err != nil {
			uc.logger.Errorw("failed to update allocation", "allocation_id", alloc.ID(), "error", err)
			return err
		}
		if err := uc.resourceRepo.ReleaseUnit(txCtx, alloc.ResourceID()); err != nil {
			uc.logger.Errorw("failed to return unit to pool", "resource_id", alloc.ResourceID(), "error", err)
			return err
		}
		return nil
	}); err != nil {
		return nil, err
	}

	event := allocation.NewAllocationReleasedEvent(alloc.ID(), alloc.ResourceID(), alloc.HolderID(), cmd.ActorID)
	if err := uc.eventDispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish allocation released event", "allocation_id", alloc.ID(), "error", err)
	}

	uc.logger.Infow("allocation released", "allocation_id", alloc.ID(), "resource_id", alloc.ResourceID())

	return &ReleaseAllocationResult{
		AllocationID: alloc.ID(),
		Status:       alloc.Status().String(),
		ReleasedAt:   alloc.ReleasedAt(),
	}, nil
}
