package mappers

import (
	"fmt"

	"studium/internal/domain/allocation"
	vo "studium/internal/domain/allocation/valueobjects"
	"studium/internal/infrastructure/persistence/models"
)

// AllocationMapper handles the conversion between domain entities and persistence models
type AllocationMapper interface {
	ToEntity(model *models.AllocationModel) (*allocation.Allocation, error)
	ToModel(entity *allocation.Allocation) *models.AllocationModel
	ToEntities(models []*models.AllocationModel) ([]*allocation.Allocation, error)
}

type allocationMapper struct{}

// NewAllocationMapper creates a new allocation mapper
func NewAllocationMapper() AllocationMapper {
	return &allocationMapper{}
}

func (m *allocationMapper) ToEntity(model *models.AllocationModel) (*allocation.Allocation, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewAllocationStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create allocation status: %w", err)
	}

	return allocation.ReconstructAllocation(
		model.ID,
		model.RequestID,
		model.ResourceID,
		model.HolderID,
		status,
		model.DueAt,
		model.Extensions,
		model.ReleasedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *allocationMapper) ToModel(entity *allocation.Allocation) *models.AllocationModel {
	if entity == nil {
		return nil
	}

	return &models.AllocationModel{
		ID:         entity.ID(),
		RequestID:  entity.RequestID(),
		ResourceID: entity.ResourceID(),
		HolderID:   entity.HolderID(),
		Status:     entity.Status().String(),
		DueAt:      entity.DueAt(),
		Extensions: entity.Extensions(),
		ReleasedAt: entity.ReleasedAt(),
		Version:    entity.Version(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m *allocationMapper) ToEntities(allocationModels []*models.AllocationModel) ([]*allocation.Allocation, error) {
	entities := make([]*allocation.Allocation, 0, len(allocationModels))
	for _, model := range allocationModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
