package usecases

import (
	"context"

	"studium/internal/application/catalog/dto"
	"studium/internal/domain/book"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

type ListBooksQuery struct {
	Search     string
	Pagination utils.Pagination
}

type ListBooksResult struct {
	Books []*dto.BookDTO
	Total int64
}

type ListBooksUseCase struct {
	bookRepo book.Repository
	logger   logger.Interface
}

func NewListBooksUseCase(bookRepo book.Repository, logger logger.Interface) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookRepo: bookRepo,
		logger:   logger,
	}
}

func (uc *ListBooksUseCase) Execute(ctx context.Context, query ListBooksQuery) (*ListBooksResult, error) {
	books, total, err := uc.bookRepo.List(ctx, query.Search, query.Pagination)
	if err != nil {
		uc.logger.Errorw("failed to list books", "error", err)
		return nil, err
	}

	return &ListBooksResult{
		Books: dto.BooksToDTOs(books),
		Total: total,
	}, nil
}
