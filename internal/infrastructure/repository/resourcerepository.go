package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studium/internal/domain/resource"
	vo "studium/internal/domain/resource/valueobjects"
	"studium/internal/infrastructure/persistence/mappers"
	"studium/internal/infrastructure/persistence/models"
	"studium/internal/shared/db"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

// ResourceRepository implements the resource repository interface backed
// by MySQL. Availability moves only through guarded UPDATE statements, so
// two concurrent approvals can never both take the last unit.
type ResourceRepository struct {
	db     *gorm.DB
	mapper mappers.ResourceMapper
	logger logger.Interface
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *gorm.DB, logger logger.Interface) resource.Repository {
	return &ResourceRepository{
		db:     db,
		mapper: mappers.NewResourceMapper(),
		logger: logger,
	}
}

// Save creates a new unit pool and sets the generated ID on the entity
func (r *ResourceRepository) Save(ctx context.Context, entity *resource.Resource) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create resource", "kind", model.Kind, "ref_id", model.RefID, "error", err)
		return err
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set resource ID: %w", err)
	}

	return nil
}

// Update persists a retotal. AvailableUnits is written here because a
// retotal recomputes it; reservation traffic must use ReserveUnit and
// ReleaseUnit instead.
func (r *ResourceRepository) Update(ctx context.Context, entity *resource.Resource) error {
	model := r.mapper.ToModel(entity)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ResourceModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"total_units":     model.TotalUnits,
			"available_units": model.AvailableUnits,
			"version":         model.Version + 1,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update resource", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("resource was modified by another operation")
	}

	return nil
}

// Delete removes a unit pool
func (r *ResourceRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ResourceModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete resource", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("resource not found")
	}

	return nil
}

// GetByID retrieves a unit pool by ID
func (r *ResourceRepository) GetByID(ctx context.Context, id uint) (*resource.Resource, error) {
	var model models.ResourceModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("resource not found")
		}
		r.logger.Errorw("failed to get resource by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByRef retrieves the unit pool backing a catalog entry
func (r *ResourceRepository) GetByRef(ctx context.Context, kind vo.ResourceKind, refID uint) (*resource.Resource, error) {
	var model models.ResourceModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("kind = ? AND ref_id = ?", kind.String(), refID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("resource not found")
		}
		r.logger.Errorw("failed to get resource by ref", "kind", kind.String(), "ref_id", refID, "error", err)
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ReserveUnit decrements available units by one if any remain. The guard
// in the WHERE clause is what serializes concurrent approvals: of two
// racing for the last unit, exactly one statement affects a row.
func (r *ResourceRepository) ReserveUnit(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ResourceModel{}).
		Where("id = ? AND available_units > 0", id).
		Update("available_units", gorm.Expr("available_units - 1"))
	if result.Error != nil {
		r.logger.Errorw("failed to reserve unit", "id", id, "error", result.Error)
		return fmt.Errorf("failed to reserve unit: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.GetTxFromContext(ctx, r.db).
			Model(&models.ResourceModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check resource existence: %w", err)
		}
		if count == 0 {
			return errors.NewNotFoundError("resource not found")
		}
		return errors.NewExhaustedError("no units available")
	}

	return nil
}

// ReleaseUnit increments available units by one, clamped at the pool
// total. Affecting zero rows means the pool is already full (or gone),
// which leaves the count intact either way.
func (r *ResourceRepository) ReleaseUnit(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ResourceModel{}).
		Where("id = ? AND available_units < total_units", id).
		Update("available_units", gorm.Expr("available_units + 1"))
	if result.Error != nil {
		r.logger.Errorw("failed to release unit", "id", id, "error", result.Error)
		return fmt.Errorf("failed to release unit: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Warnw("release did not change availability", "id", id)
	}

	return nil
}
