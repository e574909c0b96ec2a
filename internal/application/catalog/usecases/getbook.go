package usecases

import (
	"context"

	"studium/internal/application/catalog/dto"
	"studium/internal/domain/book"
	"studium/internal/domain/resource"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type GetBookQuery struct {
	BookID uint
}

type GetBookResult struct {
	Book           *dto.BookDTO
	ResourceID     uint
	AvailableUnits int
}

type GetBookUseCase struct {
	bookRepo     book.Repository
	resourceRepo resource.Repository
	logger       logger.Interface
}

func NewGetBookUseCase(
	bookRepo book.Repository,
	resourceRepo resource.Repository,
	logger logger.Interface,
) *GetBookUseCase {
	return &GetBookUseCase{
		bookRepo:     bookRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

func (uc *GetBookUseCase) Execute(ctx context.Context, query GetBookQuery) (*GetBookResult, error) {
	if query.BookID == 0 {
		return nil, errors.NewValidationError("book ID is required")
	}

	existing, err := uc.bookRepo.GetByID(ctx, query.BookID)
	if err != nil {
		return nil, err
	}

	pool, err := uc.resourceRepo.GetByRef(ctx, resourcevo.KindBookCopies, existing.ID())
	if err != nil {
		return nil, err
	}

	return &GetBookResult{
		Book:           dto.BookToDTO(existing),
		ResourceID:     pool.ID(),
		AvailableUnits: pool.AvailableUnits(),
	}, nil
}
