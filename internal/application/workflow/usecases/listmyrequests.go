package usecases

import (
	"context"

	"studium/internal/application/workflow/dto"
	"studium/internal/domain/request"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

type ListMyRequestsQuery struct {
	RequesterID uint
	Pagination  utils.Pagination
}

type ListMyRequestsResult struct {
	Requests []*dto.RequestDTO
	Total    int64
}

type ListMyRequestsUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewListMyRequestsUseCase(requestRepo request.Repository, logger logger.Interface) *ListMyRequestsUseCase {
	return &ListMyRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListMyRequestsUseCase) Execute(ctx context.Context, query ListMyRequestsQuery) (*ListMyRequestsResult, error) {
	if query.RequesterID == 0 {
		return nil, errors.NewValidationError("requester ID is required")
	}

	requests, total, err := uc.requestRepo.ListByRequester(ctx, query.RequesterID, query.Pagination)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "requester_id", query.RequesterID, "error", err)
		return nil, err
	}

	return &ListMyRequestsResult{
		Requests: dto.RequestsToDTOs(requests),
		Total:    total,
	}, nil
}
