package usecases

import (
	"context"

	"studium/internal/application/workflow/dto"
	"studium/internal/domain/resource"
	vo "studium/internal/domain/resource/valueobjects"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type GetAvailabilityQuery struct {
	Kind  string
	RefID uint
}

// GetAvailabilityUseCase reports the unit counts of the pool backing a
// catalog entry. The numbers are a point-in-time read; only the guarded
// reserve at approval time decides whether a unit is actually granted.
type GetAvailabilityUseCase struct {
	resourceRepo resource.Repository
	logger       logger.Interface
}

func NewGetAvailabilityUseCase(resourceRepo resource.Repository, logger logger.Interface) *GetAvailabilityUseCase {
	return &GetAvailabilityUseCase{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

func (uc *GetAvailabilityUseCase) Execute(ctx context.Context, query GetAvailabilityQuery) (*dto.AvailabilityDTO, error) {
	kind, err := vo.NewResourceKind(query.Kind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if query.RefID == 0 {
		return nil, errors.NewValidationError("reference ID is required")
	}

	res, err := uc.resourceRepo.GetByRef(ctx, kind, query.RefID)
	if err != nil {
		return nil, err
	}

	return &dto.AvailabilityDTO{
		ResourceID:     res.ID(),
		Kind:           res.Kind().String(),
		RefID:          res.RefID(),
		TotalUnits:     res.TotalUnits(),
		AvailableUnits: res.AvailableUnits(),
	}, nil
}
