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

type GetClassQuery struct {
	ClassID uint
}

type GetClassResult struct {
	Class          *dto.ClassDTO
	ResourceID     uint
	AvailableSeats int
}

type GetClassUseCase struct {
	classRepo    class.Repository
	resourceRepo resource.Repository
	logger       logger.Interface
}

func NewGetClassUseCase(
	classRepo class.Repository,
	resourceRepo resource.Repository,
	logger logger.Interface,
) *GetClassUseCase {
	return &GetClassUseCase{
		classRepo:    classRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

func (uc *GetClassUseCase) Execute(ctx context.Context, query GetClassQuery) (*GetClassResult, error) {
	if query.ClassID == 0 {
		return nil, errors.NewValidationError("class ID is required")
	}

	existing, err := uc.classRepo.GetByID(ctx, query.ClassID)
	if err != nil {
		return nil, err
	}

	pool, err := uc.resourceRepo.GetByRef(ctx, resourcevo.KindClassSeats, existing.ID())
	if err != nil {
		return nil, err
	}

	return &GetClassResult{
		Class:          dto.ClassToDTO(existing),
		ResourceID:     pool.ID(),
		AvailableSeats: pool.AvailableUnits(),
	}, nil
}
