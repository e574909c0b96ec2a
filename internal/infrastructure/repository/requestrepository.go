package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studium/internal/domain/request"
	requestvo "studium/internal/domain/request/valueobjects"
	"studium/internal/infrastructure/persistence/mappers"
	"studium/internal/infrastructure/persistence/models"
	"studium/internal/shared/db"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// RequestRepository implements the request repository interface backed by MySQL
type RequestRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
	logger logger.Interface
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *gorm.DB, logger logger.Interface) request.Repository {
	return &RequestRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
		logger: logger,
	}
}

// Save creates a new request and sets the generated ID on the entity
func (r *RequestRepository) Save(ctx context.Context, entity *request.Request) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create request", "resource_id", model.ResourceID, "error", err)
		return err
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set request ID: %w", err)
	}

	return nil
}

// Update persists a decision on an existing request
func (r *RequestRepository) Update(ctx context.Context, entity *request.Request) error {
	model := r.mapper.ToModel(entity)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.RequestModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"status":        model.Status,
			"decided_by":    model.DecidedBy,
			"decision_note": model.DecisionNote,
			"decided_at":    model.DecidedAt,
			"version":       model.Version + 1,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update request", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("request was modified by another operation")
	}

	return nil
}

// GetByID retrieves a request by ID
func (r *RequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	var model models.RequestModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("request not found")
		}
		r.logger.Errorw("failed to get request by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByRequester retrieves the requester's requests newest first
func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID uint, pagination utils.Pagination) ([]*request.Request, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.RequestModel{}).
		Where("requester_id = ?", requesterID)

	return r.list(query, pagination)
}

// ListPending retrieves all pending requests newest first
func (r *RequestRepository) ListPending(ctx context.Context, pagination utils.Pagination) ([]*request.Request, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.RequestModel{}).
		Where("status = ?", requestvo.StatusPending.String())

	return r.list(query, pagination)
}

// ListPendingByResource retrieves every pending request against a resource
func (r *RequestRepository) ListPendingByResource(ctx context.Context, resourceID uint) ([]*request.Request, error) {
	var requestModels []*models.RequestModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("resource_id = ? AND status = ?", resourceID, requestvo.StatusPending.String()).
		Order("created_at ASC").
		Find(&requestModels).Error; err != nil {
		r.logger.Errorw("failed to list pending requests by resource", "resource_id", resourceID, "error", err)
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	return r.mapper.ToEntities(requestModels)
}

// HasPending reports whether the requester already has a pending request
// for the resource
func (r *RequestRepository) HasPending(ctx context.Context, resourceID, requesterID uint) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RequestModel{}).
		Where("resource_id = ? AND requester_id = ? AND status = ?",
			resourceID, requesterID, requestvo.StatusPending.String()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check pending request", "resource_id", resourceID, "error", err)
		return false, fmt.Errorf("failed to check pending request: %w", err)
	}

	return count > 0, nil
}

func (r *RequestRepository) list(query *gorm.DB, pagination utils.Pagination) ([]*request.Request, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count requests", "error", err)
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	var requestModels []*models.RequestModel
	if err := query.
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.PageSize).
		Find(&requestModels).Error; err != nil {
		r.logger.Errorw("failed to list requests", "error", err)
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}

	entities, err := r.mapper.ToEntities(requestModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
