package mappers

import (
	"fmt"

	"studium/internal/domain/request"
	vo "studium/internal/domain/request/valueobjects"
	"studium/internal/infrastructure/persistence/models"
)

// RequestMapper handles the conversion between domain entities and persistence models
type RequestMapper interface {
	ToEntity(model *models.RequestModel) (*request.Request, error)
	ToModel(entity *request.Request) *models.RequestModel
	ToEntities(models []*models.RequestModel) ([]*request.Request, error)
}

type requestMapper struct{}

// NewRequestMapper creates a new request mapper
func NewRequestMapper() RequestMapper {
	return &requestMapper{}
}

func (m *requestMapper) ToEntity(model *models.RequestModel) (*request.Request, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewRequestStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create request status: %w", err)
	}

	return request.ReconstructRequest(
		model.ID,
		model.ResourceID,
		model.RequesterID,
		status,
		model.RequestedDays,
		model.Note,
		model.DecidedBy,
		model.DecisionNote,
		model.DecidedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *requestMapper) ToModel(entity *request.Request) *models.RequestModel {
	if entity == nil {
		return nil
	}

	return &models.RequestModel{
		ID:            entity.ID(),
		ResourceID:    entity.ResourceID(),
		RequesterID:   entity.RequesterID(),
		Status:        entity.Status().String(),
		RequestedDays: entity.RequestedDays(),
		Note:          entity.Note(),
		DecidedBy:     entity.DecidedBy(),
		DecisionNote:  entity.DecisionNote(),
		DecidedAt:     entity.DecidedAt(),
		Version:       entity.Version(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *requestMapper) ToEntities(requestModels []*models.RequestModel) ([]*request.Request, error) {
	entities := make([]*request.Request, 0, len(requestModels))
	for _, model := range requestModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
