package usecases

import (
	"context"

	"studium/internal/domain/class"
	"studium/internal/domain/request"
	"studium/internal/domain/resource"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/shared/authorization"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type DeleteClassCommand struct {
	ClassID   uint
	ActorID   uint
	ActorRole authorization.UserRole
}

type DeleteClassResult struct {
	ClassID          uint
	RejectedRequests int
}

// DeleteClassUseCase removes a class, rejecting pending seat requests
// first. Enrollments already granted stay on record.
type DeleteClassUseCase struct {
	classRepo    class.Repository
	resourceRepo resource.Repository
	requestRepo  request.Repository
	txMgr        TransactionManager
	logger       logger.Interface
}

func NewDeleteClassUseCase(
	classRepo class.Repository,
	resourceRepo resource.Repository,
	requestRepo request.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *DeleteClassUseCase {
	return &DeleteClassUseCase{
		classRepo:    classRepo,
		resourceRepo: resourceRepo,
		requestRepo:  requestRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *DeleteClassUseCase) Execute(ctx context.Context, cmd DeleteClassCommand) (*DeleteClassResult, error) {
	uc.logger.Infow("executing delete class use case", "class_id", cmd.ClassID, "actor_id", cmd.ActorID)

	if cmd.ClassID == 0 {
		return nil, errors.NewValidationError("class ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	existing, err := uc.classRepo.GetByID(ctx, cmd.ClassID)
	if err != nil {
		return nil, err
	}

	if !cmd.ActorRole.IsAdmin() && !existing.IsTaughtBy(cmd.ActorID) {
		return nil, errors.NewForbiddenError("you can only remove your own classes")
	}

	pool, err := uc.resourceRepo.GetByRef(ctx, resourcevo.KindClassSeats, existing.ID())
	if err != nil {
		return nil, err
	}

	// Same transactional cascade as book deletion: pending rejections
	// and the deletes land together or not at all.
	var rejected int
	if err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		rejected, txErr = rejectPendingRequests(txCtx, uc.requestRepo, pool.ID(), cmd.ActorID, uc.logger)
		if txErr != nil {
			return txErr
		}

		if txErr := uc.resourceRepo.Delete(txCtx, pool.ID()); txErr != nil {
			uc.logger.Errorw("failed to delete seat pool", "resource_id", pool.ID(), "error", txErr)
			return txErr
		}
		if txErr := uc.classRepo.Delete(txCtx, existing.ID()); txErr != nil {
			uc.logger.Errorw("failed to delete class", "class_id", existing.ID(), "error", txErr)
			return txErr
		}
		return nil
	}); err != nil {
		return nil, err
	}

	uc.logger.Infow("class deleted", "class_id", existing.ID(), "rejected_requests", rejected)

	return &DeleteClassResult{
		ClassID:          existing.ID(),
		RejectedRequests: rejected,
	}, nil
}
