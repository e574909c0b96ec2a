package usecases

import (
	"context"

	"studium/internal/application/workflow/dto"
	"studium/internal/domain/request"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

type ListPendingRequestsQuery struct {
	Pagination utils.Pagination
}

type ListPendingRequestsResult struct {
	Requests []*dto.RequestDTO
	Total    int64
}

type ListPendingRequestsUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewListPendingRequestsUseCase(requestRepo request.Repository, logger logger.Interface) *ListPendingRequestsUseCase {
	return &ListPendingRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListPendingRequestsUseCase) Execute(ctx context.Context, query ListPendingRequestsQuery) (*ListPendingRequestsResult, error) {
	requests, total, err := uc.requestRepo.ListPending(ctx, query.Pagination)
	if err != nil {
		uc.logger.Errorw("failed to list pending requests", "error", err)
		return nil, err
	}

	return &ListPendingRequestsResult{
		Requests: dto.RequestsToDTOs(requests),
		Total:    total,
	}, nil
}
