package mappers

import (
	"studium/internal/domain/activity"
	"studium/internal/infrastructure/persistence/models"
)

// ActivityMapper handles the conversion between feed records and persistence models
type ActivityMapper interface {
	ToEntity(model *models.ActivityModel) *activity.Record
	ToModel(entity *activity.Record) *models.ActivityModel
	ToEntities(models []*models.ActivityModel) []*activity.Record
}

type activityMapper struct{}

// NewActivityMapper creates a new activity mapper
func NewActivityMapper() ActivityMapper {
	return &activityMapper{}
}

func (m *activityMapper) ToEntity(model *models.ActivityModel) *activity.Record {
	if model == nil {
		return nil
	}

	return activity.ReconstructRecord(
		model.ID,
		model.EventType,
		model.ActorID,
		model.SubjectID,
		model.Message,
		model.OccurredAt,
		model.CreatedAt,
	)
}

func (m *activityMapper) ToModel(entity *activity.Record) *models.ActivityModel {
	if entity == nil {
		return nil
	}

	return &models.ActivityModel{
		ID:         entity.ID(),
		EventType:  entity.EventType(),
		ActorID:    entity.ActorID(),
		SubjectID:  entity.SubjectID(),
		Message:    entity.Message(),
		OccurredAt: entity.OccurredAt(),
		CreatedAt:  entity.CreatedAt(),
	}
}

func (m *activityMapper) ToEntities(activityModels []*models.ActivityModel) []*activity.Record {
	entities := make([]*activity.Record, 0, len(activityModels))
	for _, model := range activityModels {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
