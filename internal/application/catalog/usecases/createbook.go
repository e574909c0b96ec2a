package usecases

import (
	"context"

	"studium/internal/domain/book"
	"studium/internal/domain/resource"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type CreateBookCommand struct {
	Title       string
	Author      string
	ISBN        string
	TotalCopies int
}

type CreateBookResult struct {
	BookID     uint
	ResourceID uint
}

// CreateBookUseCase adds a catalog entry and opens its copy pool in the
// same operation, so every book is requestable as soon as it exists.
type CreateBookUseCase struct {
	bookRepo     book.Repository
	resourceRepo resource.Repository
	logger       logger.Interface
}

func NewCreateBookUseCase(
	bookRepo book.Repository,
	resourceRepo resource.Repository,
	logger logger.Interface,
) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookRepo:     bookRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

func (uc *CreateBookUseCase) Execute(ctx context.Context, cmd CreateBookCommand) (*CreateBookResult, error) {
	uc.logger.Infow("executing create book use case", "title", cmd.Title)

	newBook, err := book.NewBook(cmd.Title, cmd.Author, cmd.ISBN, cmd.TotalCopies)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.bookRepo.Save(ctx, newBook); err != nil {
		uc.logger.Errorw("failed to save book", "error", err)
		return nil, err
	}

	pool, err := resource.NewResource(resourcevo.KindBookCopies, newBook.ID(), newBook.TotalCopies())
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.resourceRepo.Save(ctx, pool); err != nil {
		uc.logger.Errorw("failed to create copy pool", "book_id", newBook.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("book created", "book_id", newBook.ID(), "resource_id", pool.ID())

	return &CreateBookResult{
		BookID:     newBook.ID(),
		ResourceID: pool.ID(),
	}, nil
}
