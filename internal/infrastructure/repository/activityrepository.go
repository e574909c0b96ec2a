package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studium/internal/domain/activity"
	"studium/internal/infrastructure/persistence/mappers"
	"studium/internal/infrastructure/persistence/models"
	"studium/internal/shared/db"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// ActivityRepository implements the activity feed repository backed by MySQL
type ActivityRepository struct {
	db     *gorm.DB
	mapper mappers.ActivityMapper
	logger logger.Interface
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB, logger logger.Interface) activity.Repository {
	return &ActivityRepository{
		db:     db,
		mapper: mappers.NewActivityMapper(),
		logger: logger,
	}
}

// Save appends a record to the feed
func (r *ActivityRepository) Save(ctx context.Context, entity *activity.Record) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create activity record", "event_type", model.EventType, "error", err)
		return err
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set activity record ID: %w", err)
	}

	return nil
}

// List retrieves the feed newest first
func (r *ActivityRepository) List(ctx context.Context, pagination utils.Pagination) ([]*activity.Record, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ActivityModel{})
	return r.list(query, pagination)
}

// ListByActor retrieves one actor's records newest first
func (r *ActivityRepository) ListByActor(ctx context.Context, actorID uint, pagination utils.Pagination) ([]*activity.Record, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ActivityModel{}).
		Where("actor_id = ?", actorID)

	return r.list(query, pagination)
}

func (r *ActivityRepository) list(query *gorm.DB, pagination utils.Pagination) ([]*activity.Record, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count activity records", "error", err)
		return nil, 0, fmt.Errorf("failed to count activity records: %w", err)
	}

	var activityModels []*models.ActivityModel
	if err := query.
		Order("occurred_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.PageSize).
		Find(&activityModels).Error; err != nil {
		r.logger.Errorw("failed to list activity records", "error", err)
		return nil, 0, fmt.Errorf("failed to list activity records: %w", err)
	}

	return r.mapper.ToEntities(activityModels), total, nil
}
