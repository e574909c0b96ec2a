package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"studium/internal/domain/class"
	vo "studium/internal/domain/class/valueobjects"
	"studium/internal/infrastructure/persistence/models"
)

// scheduleSlotJSON is the stored form of a weekly slot.
type scheduleSlotJSON struct {
	DayOfWeek   int `json:"day_of_week"`
	StartMinute int `json:"start_minute"`
	EndMinute   int `json:"end_minute"`
}

// ClassMapper handles the conversion between domain entities and persistence models
type ClassMapper interface {
	ToEntity(model *models.ClassModel) (*class.Class, error)
	ToModel(entity *class.Class) (*models.ClassModel, error)
	ToEntities(models []*models.ClassModel) ([]*class.Class, error)
}

type classMapper struct{}

// NewClassMapper creates a new class mapper
func NewClassMapper() ClassMapper {
	return &classMapper{}
}

func (m *classMapper) ToEntity(model *models.ClassModel) (*class.Class, error) {
	if model == nil {
		return nil, nil
	}

	schedule, err := unmarshalSchedule(model.Schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to decode schedule for class %d: %w", model.ID, err)
	}

	return class.ReconstructClass(
		model.ID,
		model.Title,
		model.Description,
		model.TeacherID,
		model.Capacity,
		schedule,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *classMapper) ToModel(entity *class.Class) (*models.ClassModel, error) {
	if entity == nil {
		return nil, nil
	}

	schedule, err := marshalSchedule(entity.Schedule())
	if err != nil {
		return nil, fmt.Errorf("failed to encode schedule for class %d: %w", entity.ID(), err)
	}

	return &models.ClassModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		Description: entity.Description(),
		TeacherID:   entity.TeacherID(),
		Capacity:    entity.Capacity(),
		Schedule:    schedule,
		Version:     entity.Version(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *classMapper) ToEntities(classModels []*models.ClassModel) ([]*class.Class, error) {
	entities := make([]*class.Class, 0, len(classModels))
	for _, model := range classModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func marshalSchedule(slots []vo.ScheduleSlot) (string, error) {
	encoded := make([]scheduleSlotJSON, 0, len(slots))
	for _, slot := range slots {
		encoded = append(encoded, scheduleSlotJSON{
			DayOfWeek:   int(slot.DayOfWeek),
			StartMinute: slot.StartMinute,
			EndMinute:   slot.EndMinute,
		})
	}

	data, err := json.Marshal(encoded)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalSchedule(data string) ([]vo.ScheduleSlot, error) {
	if data == "" {
		return nil, nil
	}

	var encoded []scheduleSlotJSON
	if err := json.Unmarshal([]byte(data), &encoded); err != nil {
		return nil, err
	}

	slots := make([]vo.ScheduleSlot, 0, len(encoded))
	for _, item := range encoded {
		slot, err := vo.NewScheduleSlot(time.Weekday(item.DayOfWeek), item.StartMinute, item.EndMinute)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// FeedbackMapper handles the conversion between feedback entities and models
type FeedbackMapper interface {
	ToEntity(model *models.FeedbackModel) *class.Feedback
	ToModel(entity *class.Feedback) *models.FeedbackModel
	ToEntities(models []*models.FeedbackModel) []*class.Feedback
}

type feedbackMapper struct{}

// NewFeedbackMapper creates a new feedback mapper
func NewFeedbackMapper() FeedbackMapper {
	return &feedbackMapper{}
}

func (m *feedbackMapper) ToEntity(model *models.FeedbackModel) *class.Feedback {
	if model == nil {
		return nil
	}

	return class.ReconstructFeedback(
		model.ID,
		model.ClassID,
		model.StudentID,
		model.Rating,
		model.Comment,
		model.CreatedAt,
	)
}

func (m *feedbackMapper) ToModel(entity *class.Feedback) *models.FeedbackModel {
	if entity == nil {
		return nil
	}

	return &models.FeedbackModel{
		ID:        entity.ID(),
		ClassID:   entity.ClassID(),
		StudentID: entity.StudentID(),
		Rating:    entity.Rating(),
		Comment:   entity.Comment(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m *feedbackMapper) ToEntities(feedbackModels []*models.FeedbackModel) []*class.Feedback {
	entities := make([]*class.Feedback, 0, len(feedbackModels))
	for _, model := range feedbackModels {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
