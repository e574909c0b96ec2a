package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studium/internal/domain/allocation"
	allocationvo "studium/internal/domain/allocation/valueobjects"
	"studium/internal/infrastructure/persistence/mappers"
	"studium/internal/infrastructure/persistence/models"
	"studium/internal/shared/db"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// AllocationRepository implements the allocation repository interface backed by MySQL
type AllocationRepository struct {
	db     *gorm.DB
	mapper mappers.AllocationMapper
	logger logger.Interface
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *gorm.DB, logger logger.Interface) allocation.Repository {
	return &AllocationRepository{
		db:     db,
		mapper: mappers.NewAllocationMapper(),
		logger: logger,
	}
}

// Save creates a new allocation and sets the generated ID on the entity
func (r *AllocationRepository) Save(ctx context.Context, entity *allocation.Allocation) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create allocation", "request_id", model.RequestID, "error", err)
		return err
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set allocation ID: %w", err)
	}

	return nil
}

// Update persists changes to an existing allocation
func (r *AllocationRepository) Update(ctx context.Context, entity *allocation.Allocation) error {
	model := r.mapper.ToModel(entity)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AllocationModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"status":      model.Status,
			"due_at":      model.DueAt,
			"extensions":  model.Extensions,
			"released_at": model.ReleasedAt,
			"version":     model.Version + 1,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update allocation", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update allocation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("allocation was modified by another operation")
	}

	return nil
}

// Delete removes an allocation row. Deleting an already-removed
// allocation is not an error.
func (r *AllocationRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.AllocationModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete allocation", "id", id, "error", err)
		return fmt.Errorf("failed to delete allocation: %w", err)
	}

	return nil
}

// GetByID retrieves an allocation by ID
func (r *AllocationRepository) GetByID(ctx context.Context, id uint) (*allocation.Allocation, error) {
	var model models.AllocationModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("allocation not found")
		}
		r.logger.Errorw("failed to get allocation by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get allocation: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByRequestID retrieves the allocation created for a request
func (r *AllocationRepository) GetByRequestID(ctx context.Context, requestID uint) (*allocation.Allocation, error) {
	var model models.AllocationModel

	if err := db.GetTxFromContext(ctx, r.db).Where("request_id = ?", requestID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("allocation not found")
		}
		r.logger.Errorw("failed to get allocation by request ID", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("failed to get allocation: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByHolder retrieves the holder's allocations newest first
func (r *AllocationRepository) ListByHolder(ctx context.Context, holderID uint, pagination utils.Pagination) ([]*allocation.Allocation, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.AllocationModel{}).
		Where("holder_id = ?", holderID)

	return r.list(query, "created_at DESC", pagination)
}

// ListActive retrieves all active allocations newest first
func (r *AllocationRepository) ListActive(ctx context.Context, pagination utils.Pagination) ([]*allocation.Allocation, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.AllocationModel{}).
		Where("status = ?", allocationvo.StatusActive.String())

	return r.list(query, "created_at DESC", pagination)
}

// ListOverdue retrieves active allocations past their due date, oldest
// due date first
func (r *AllocationRepository) ListOverdue(ctx context.Context, asOf time.Time, pagination utils.Pagination) ([]*allocation.Allocation, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.AllocationModel{}).
		Where("status = ? AND due_at IS NOT NULL AND due_at < ?",
			allocationvo.StatusActive.String(), asOf)

	return r.list(query, "due_at ASC", pagination)
}

// CountActiveByResource reports how many units of the resource are held
func (r *AllocationRepository) CountActiveByResource(ctx context.Context, resourceID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AllocationModel{}).
		Where("resource_id = ? AND status = ?", resourceID, allocationvo.StatusActive.String()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count active allocations", "resource_id", resourceID, "error", err)
		return 0, fmt.Errorf("failed to count active allocations: %w", err)
	}

	return count, nil
}

// HasActiveByHolderAndResource reports whether the holder currently holds
// an active allocation against the resource
func (r *AllocationRepository) HasActiveByHolderAndResource(ctx context.Context, holderID, resourceID uint) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AllocationModel{}).
		Where("holder_id = ? AND resource_id = ? AND status = ?",
			holderID, resourceID, allocationvo.StatusActive.String()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check active allocation", "holder_id", holderID, "resource_id", resourceID, "error", err)
		return false, fmt.Errorf("failed to check active allocation: %w", err)
	}

	return count > 0, nil
}

func (r *AllocationRepository) list(query *gorm.DB, order string, pagination utils.Pagination) ([]*allocation.Allocation, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count allocations", "error", err)
		return nil, 0, fmt.Errorf("failed to count allocations: %w", err)
	}

	var allocationModels []*models.AllocationModel
	if err := query.
		Order(order).
		Offset(pagination.Offset()).
		Limit(pagination.PageSize).
		Find(&allocationModels).Error; err != nil {
		r.logger.Errorw("failed to list allocations", "error", err)
		return nil, 0, fmt.Errorf("failed to list allocations: %w", err)
	}

	entities, err := r.mapper.ToEntities(allocationModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
