package usecases

import (
	"context"

	"studium/internal/domain/book"
	"studium/internal/domain/resource"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type UpdateBookCommand struct {
	BookID      uint
	Title       string
	Author      string
	ISBN        string
	TotalCopies int
}

type UpdateBookResult struct {
	BookID         uint
	TotalCopies    int
	AvailableUnits int
}

// UpdateBookUseCase edits a catalog entry and retotals its copy pool.
// Shrinking below the number of copies out on loan clamps availability
// to zero; outstanding loans are never revoked.
type UpdateBookUseCase struct {
	bookRepo     book.Repository
	resourceRepo resource.Repository
	logger       logger.Interface
}

func NewUpdateBookUseCase(
	bookRepo book.Repository,
	resourceRepo resource.Repository,
	logger logger.Interface,
) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookRepo:     bookRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

func (uc *UpdateBookUseCase) Execute(ctx context.Context, cmd UpdateBookCommand) (*UpdateBookResult, error) {
	uc.logger.Infow("executing update book use case", "book_id", cmd.BookID)

	if cmd.BookID == 0 {
		return nil, errors.NewValidationError("book ID is required")
	}

	existing, err := uc.bookRepo.GetByID(ctx, cmd.BookID)
	if err != nil {
		return nil, err
	}

	if err := existing.UpdateDetails(cmd.Title, cmd.Author, cmd.ISBN); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.SetTotalCopies(cmd.TotalCopies); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.bookRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update book", "book_id", existing.ID(), "error", err)
		return nil, err
	}

	pool, err := uc.resourceRepo.GetByRef(ctx, resourcevo.KindBookCopies, existing.ID())
	if err != nil {
		return nil, err
	}
	if err := pool.Retotal(cmd.TotalCopies); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.resourceRepo.Update(ctx, pool); err != nil {
		uc.logger.Errorw("failed to retotal copy pool", "resource_id", pool.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("book updated",
		"book_id", existing.ID(),
		"total_units", pool.TotalUnits(),
		"available_units", pool.AvailableUnits(),
	)

	return &UpdateBookResult{
		BookID:         existing.ID(),
		TotalCopies:    pool.TotalUnits(),
		AvailableUnits: pool.AvailableUnits(),
	}, nil
}
