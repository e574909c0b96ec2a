package usecases

import (
	"context"

	"studium/internal/application/catalog/dto"
	"studium/internal/domain/class"
	"studium/internal/domain/resource"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type CreateClassCommand struct {
	Title       string
	Description string
	TeacherID   uint
	Capacity    int
	Schedule    []dto.ScheduleSlotDTO
}

type CreateClassResult struct {
	ClassID    uint
	ResourceID uint
}

// CreateClassUseCase adds a course offering and opens its seat pool.
type CreateClassUseCase struct {
	classRepo    class.Repository
	resourceRepo resource.Repository
	logger       logger.Interface
}

func NewCreateClassUseCase(
	classRepo class.Repository,
	resourceRepo resource.Repository,
	logger logger.Interface,
) *CreateClassUseCase {
	return &CreateClassUseCase{
		classRepo:    classRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

func (uc *CreateClassUseCase) Execute(ctx context.Context, cmd CreateClassCommand) (*CreateClassResult, error) {
	uc.logger.Infow("executing create class use case", "title", cmd.Title, "teacher_id", cmd.TeacherID)

	schedule, err := dto.SlotsFromDTOs(cmd.Schedule)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newClass, err := class.NewClass(cmd.Title, cmd.Description, cmd.TeacherID, cmd.Capacity, schedule)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.classRepo.Save(ctx, newClass); err != nil {
		uc.logger.Errorw("failed to save class", "error", err)
		return nil, err
	}

	pool, err := resource.NewResource(resourcevo.KindClassSeats, newClass.ID(), newClass.Capacity())
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.resourceRepo.Save(ctx, pool); err != nil {
		uc.logger.Errorw("failed to create seat pool", "class_id", newClass.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("class created", "class_id", newClass.ID(), "resource_id", pool.ID())

	return &CreateClassResult{
		ClassID:    newClass.ID(),
		ResourceID: pool.ID(),
	}, nil
}
