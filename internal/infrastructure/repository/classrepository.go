package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studium/internal/domain/class"
	"studium/internal/infrastructure/persistence/mappers"
	"studium/internal/infrastructure/persistence/models"
	"studium/internal/shared/db"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// ClassRepository implements the class repository interface backed by MySQL
type ClassRepository struct {
	db     *gorm.DB
	mapper mappers.ClassMapper
	logger logger.Interface
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *gorm.DB, logger logger.Interface) class.Repository {
	return &ClassRepository{
		db:     db,
		mapper: mappers.NewClassMapper(),
		logger: logger,
	}
}

// Save creates a new class and sets the generated ID on the entity
func (r *ClassRepository) Save(ctx context.Context, entity *class.Class) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create class", "title", model.Title, "error", err)
		return err
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set class ID: %w", err)
	}

	return nil
}

// Update persists changes to an existing class
func (r *ClassRepository) Update(ctx context.Context, entity *class.Class) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ClassModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"capacity":    model.Capacity,
			"schedule":    model.Schedule,
			"version":     model.Version + 1,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update class", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update class: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("class was modified by another operation")
	}

	return nil
}

// Delete removes a class
func (r *ClassRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ClassModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete class", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete class: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("class not found")
	}

	return nil
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id uint) (*class.Class, error) {
	var model models.ClassModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("class not found")
		}
		r.logger.Errorw("failed to get class by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves classes ordered by title with optional search
func (r *ClassRepository) List(ctx context.Context, search string, pagination utils.Pagination) ([]*class.Class, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ClassModel{})
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	return r.list(query, pagination)
}

// ListByTeacher retrieves the teacher's classes ordered by title
func (r *ClassRepository) ListByTeacher(ctx context.Context, teacherID uint, pagination utils.Pagination) ([]*class.Class, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ClassModel{}).
		Where("teacher_id = ?", teacherID)

	return r.list(query, pagination)
}

func (r *ClassRepository) list(query *gorm.DB, pagination utils.Pagination) ([]*class.Class, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count classes", "error", err)
		return nil, 0, fmt.Errorf("failed to count classes: %w", err)
	}

	var classModels []*models.ClassModel
	if err := query.
		Order("title ASC").
		Offset(pagination.Offset()).
		Limit(pagination.PageSize).
		Find(&classModels).Error; err != nil {
		r.logger.Errorw("failed to list classes", "error", err)
		return nil, 0, fmt.Errorf("failed to list classes: %w", err)
	}

	entities, err := r.mapper.ToEntities(classModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

// FeedbackRepository implements the class feedback repository backed by MySQL
type FeedbackRepository struct {
	db     *gorm.DB
	mapper mappers.FeedbackMapper
	logger logger.Interface
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB, logger logger.Interface) class.FeedbackRepository {
	return &FeedbackRepository{
		db:     db,
		mapper: mappers.NewFeedbackMapper(),
		logger: logger,
	}
}

// Save creates a new feedback entry and sets the generated ID
func (r *FeedbackRepository) Save(ctx context.Context, entity *class.Feedback) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create feedback", "class_id", model.ClassID, "error", err)
		return err
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set feedback ID: %w", err)
	}

	return nil
}

// ListByClass retrieves feedback for a class newest first
func (r *FeedbackRepository) ListByClass(ctx context.Context, classID uint, pagination utils.Pagination) ([]*class.Feedback, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.FeedbackModel{}).
		Where("class_id = ?", classID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count feedback", "class_id", classID, "error", err)
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	var feedbackModels []*models.FeedbackModel
	if err := query.
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.PageSize).
		Find(&feedbackModels).Error; err != nil {
		r.logger.Errorw("failed to list feedback", "class_id", classID, "error", err)
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}

	return r.mapper.ToEntities(feedbackModels), total, nil
}

// HasFeedback reports whether the student already rated the class
func (r *FeedbackRepository) HasFeedback(ctx context.Context, classID, studentID uint) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.FeedbackModel{}).
		Where("class_id = ? AND student_id = ?", classID, studentID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check feedback existence", "class_id", classID, "error", err)
		return false, fmt.Errorf("failed to check feedback existence: %w", err)
	}

	return count > 0, nil
}
