package usecases

import (
	"context"

	"studium/internal/application/catalog/dto"
	"studium/internal/domain/class"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

type ListClassesQuery struct {
	Search string
	// TeacherID filters to one teacher's classes when non-zero.
	TeacherID  uint
	Pagination utils.Pagination
}

type ListClassesResult struct {
	Classes []*dto.ClassDTO
	Total   int64
}

type ListClassesUseCase struct {
	classRepo class.Repository
	logger    logger.Interface
}

func NewListClassesUseCase(classRepo class.Repository, logger logger.Interface) *ListClassesUseCase {
	return &ListClassesUseCase{
		classRepo: classRepo,
		logger:    logger,
	}
}

func (uc *ListClassesUseCase) Execute(ctx context.Context, query ListClassesQuery) (*ListClassesResult, error) {
	var (
		classes []*class.Class
		total   int64
		err     error
	)

	if query.TeacherID != 0 {
		classes, total, err = uc.classRepo.ListByTeacher(ctx, query.TeacherID, query.Pagination)
	} else {
		classes, total, err = uc.classRepo.List(ctx, query.Search, query.Pagination)
	}
	if err != nil {
		uc.logger.Errorw("failed to list classes", "error", err)
		return nil, err
	}

	return &ListClassesResult{
		Classes: dto.ClassesToDTOs(classes),
		Total:   total,
	}, nil
}
