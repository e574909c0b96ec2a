package usecases

import (
	"context"
	"time"

	"studium/internal/application/workflow/dto"
	"studium/internal/domain/allocation"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

type ListAllocationsQuery struct {
	// HolderID filters to one holder's allocations; zero lists all
	// active allocations (staff view).
	HolderID   uint
	Pagination utils.Pagination
}

type ListAllocationsResult struct {
	Allocations []*dto.AllocationDTO
	Total       int64
}

type ListAllocationsUseCase struct {
	allocationRepo allocation.Repository
	logger         logger.Interface
}

func NewListAllocationsUseCase(allocationRepo allocation.Repository, logger logger.Interface) *ListAllocationsUseCase {
	return &ListAllocationsUseCase{
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

func (uc *ListAllocationsUseCase) Execute(ctx context.Context, query ListAllocationsQuery) (*ListAllocationsResult, error) {
	var (
		allocs []*allocation.Allocation
		total  int64
		err    error
	)

	if query.HolderID != 0 {
		allocs, total, err = uc.allocationRepo.ListByHolder(ctx, query.HolderID, query.Pagination)
	} else {
		allocs, total, err = uc.allocationRepo.ListActive(ctx, query.Pagination)
	}
	if err != nil {
		uc.logger.Errorw("failed to list allocations", "holder_id", query.HolderID, "error", err)
		return nil, err
	}

	return &ListAllocationsResult{
		Allocations: dto.AllocationsToDTOs(allocs),
		Total:       total,
	}, nil
}

type ListOverdueAllocationsQuery struct {
	AsOf       time.Time
	Pagination utils.Pagination
}

type ListOverdueAllocationsResult struct {
	Allocations []*dto.AllocationDTO
	Total       int64
}

type ListOverdueAllocationsUseCase struct {
	allocationRepo allocation.Repository
	logger         logger.Interface
}

func NewListOverdueAllocationsUseCase(allocationRepo allocation.Repository, logger logger.Interface) *ListOverdueAllocationsUseCase {
	return &ListOverdueAllocationsUseCase{
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

func (uc *ListOverdueAllocationsUseCase) Execute(ctx context.Context, query ListOverdueAllocationsQuery) (*ListOverdueAllocationsResult, error) {
	asOf := query.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	allocs, total, err := uc.allocationRepo.ListOverdue(ctx, asOf, query.Pagination)
	if err != nil {
		uc.logger.Errorw("failed to list overdue allocations", "error", err)
		return nil, errors.NewInternalError("failed to list overdue allocations")
	}

	return &ListOverdueAllocationsResult{
		Allocations: dto.AllocationsToDTOs(allocs),
		Total:       total,
	}, nil
}
