package usecases

import (
	"context"

	"studium/internal/application/catalog/dto"
	"studium/internal/domain/class"
	"studium/internal/domain/resource"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/shared/authorization"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type UpdateClassCommand struct {
	ClassID     uint
	ActorID     uint
	ActorRole   authorization.UserRole
	Title       string
	Description string
	Capacity    int
	Schedule    []dto.ScheduleSlotDTO
}

type UpdateClassResult struct {
	ClassID        uint
	Capacity       int
	AvailableSeats int
}

// UpdateClassUseCase edits a class and retotals its seat pool. Teachers
// may only edit their own classes; admins may edit any.
type UpdateClassUseCase struct {
	classRepo    class.Repository
	resourceRepo resource.Repository
	logger       logger.Interface
}

func NewUpdateClassUseCase(
	classRepo class.Repository,
	resourceRepo resource.Repository,
	logger logger.Interface,
) *UpdateClassUseCase {
	return &UpdateClassUseCase{
		classRepo:    classRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

func (uc *UpdateClassUseCase) Execute(ctx context.Context, cmd UpdateClassCommand) (*UpdateClassResult, error) {
	uc.logger.Infow("executing update class use case", "class_id", cmd.ClassID, "actor_id", cmd.ActorID)

	if cmd.ClassID == 0 {
		return nil, errors.NewValidationError("class ID is required")
	}

	existing, err := uc.classRepo.GetByID(ctx, cmd.ClassID)
	if err != nil {
		return nil, err
	}

	if !cmd.ActorRole.IsAdmin() && !existing.IsTaughtBy(cmd.ActorID) {
		return nil, errors.NewForbiddenError("you can only edit your own classes")
	}

	schedule, err := dto.SlotsFromDTOs(cmd.Schedule)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := existing.UpdateDetails(cmd.Title, cmd.Description, schedule); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.SetCapacity(cmd.Capacity); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.classRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update class", "class_id", existing.ID(), "error", err)
		return nil, err
	}

	pool, err := uc.resourceRepo.GetByRef(ctx, resourcevo.KindClassSeats, existing.ID())
	if err != nil {
		return nil, err
	}
	if err := pool.Retotal(cmd.Capacity); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.resourceRepo.Update(ctx, pool); err != nil {
		uc.logger.Errorw("failed to retotal seat pool", "resource_id", pool.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("class updated", "class_id", existing.ID(), "capacity", pool.TotalUnits())

	return &UpdateClassResult{
		ClassID:        existing.ID(),
		Capacity:       pool.TotalUnits(),
		AvailableSeats: pool.AvailableUnits(),
	}, nil
}
