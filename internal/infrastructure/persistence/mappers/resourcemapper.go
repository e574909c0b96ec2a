package mappers

import (
	"fmt"

	"studium/internal/domain/resource"
	vo "studium/internal/domain/resource/valueobjects"
	"studium/internal/infrastructure/persistence/models"
)

// ResourceMapper handles the conversion between domain entities and persistence models
type ResourceMapper interface {
	ToEntity(model *models.ResourceModel) (*resource.Resource, error)
	ToModel(entity *resource.Resource) *models.ResourceModel
	ToEntities(models []*models.ResourceModel) ([]*resource.Resource, error)
}

type resourceMapper struct{}

// NewResourceMapper creates a new resource mapper
func NewResourceMapper() ResourceMapper {
	return &resourceMapper{}
}

func (m *resourceMapper) ToEntity(model *models.ResourceModel) (*resource.Resource, error) {
	if model == nil {
		return nil, nil
	}

	kind, err := vo.NewResourceKind(model.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource kind: %w", err)
	}

	entity, err := resource.ReconstructResource(
		model.ID,
		kind,
		model.RefID,
		model.TotalUnits,
		model.AvailableUnits,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct resource %d: %w", model.ID, err)
	}

	return entity, nil
}

func (m *resourceMapper) ToModel(entity *resource.Resource) *models.ResourceModel {
	if entity == nil {
		return nil
	}

	return &models.ResourceModel{
		ID:             entity.ID(),
		Kind:           entity.Kind().String(),
		RefID:          entity.RefID(),
		TotalUnits:     entity.TotalUnits(),
		AvailableUnits: entity.AvailableUnits(),
		Version:        entity.Version(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *resourceMapper) ToEntities(resourceModels []*models.ResourceModel) ([]*resource.Resource, error) {
	entities := make([]*resource.Resource, 0, len(resourceModels))
	for _, model := range resourceModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
