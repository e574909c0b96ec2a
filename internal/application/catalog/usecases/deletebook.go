package usecases

import (
	"context"

	"studium/internal/domain/book"
	"studium/internal/domain/request"
	"studium/internal/domain/resource"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type DeleteBookCommand struct {
	BookID  uint
	ActorID uint
}

type DeleteBookResult struct {
	BookID           uint
	RejectedRequests int
}

// DeleteBookUseCase removes a catalog entry. Pending requests against
// the copy pool are rejected first so no request is ever left pointing
// at a resource that no longer exists. Active loans stay on record.
type DeleteBookUseCase struct {
	bookRepo     book.Repository
	resourceRepo resource.Repository
	requestRepo  request.Repository
	txMgr        TransactionManager
	logger       logger.Interface
}

func NewDeleteBookUseCase(
	bookRepo book.Repository,
	resourceRepo resource.Repository,
	requestRepo request.Repository,
	txMgr TransactionManager,
	logger logger.Interface,
) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookRepo:     bookRepo,
		resourceRepo: resourceRepo,
		requestRepo:  requestRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *DeleteBookUseCase) Execute(ctx context.Context, cmd DeleteBookCommand) (*DeleteBookResult, error) {
	uc.logger.Infow("executing delete book use case", "book_id", cmd.BookID, "actor_id", cmd.ActorID)

	if cmd.BookID == 0 {
		return nil, errors.NewValidationError("book ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	existing, err := uc.bookRepo.GetByID(ctx, cmd.BookID)
	if err != nil {
		return nil, err
	}

	pool, err := uc.resourceRepo.GetByRef(ctx, resourcevo.KindBookCopies, existing.ID())
	if err != nil {
		return nil, err
	}

	// The cascade-reject and both deletes commit together so a failure
	// cannot leave requests rejected against a pool that still exists.
	var rejected int
	if err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		rejected, txErr = rejectPendingRequests(txCtx, uc.requestRepo, pool.ID(), cmd.ActorID, uc.logger)
		if txErr != nil {
			return txErr
		}

		if txErr := uc.resourceRepo.Delete(txCtx, pool.ID()); txErr != nil {
			uc.logger.Errorw("failed to delete copy pool", "resource_id", pool.ID(), "error", txErr)
			return txErr
		}
		if txErr := uc.bookRepo.Delete(txCtx, existing.ID()); txErr != nil {
			uc.logger.Errorw("failed to delete book", "book_id", existing.ID(), "error", txErr)
			return txErr
		}
		return nil
	}); err != nil {
		return nil, err
	}

	uc.logger.Infow("book deleted", "book_id", existing.ID(), "rejected_requests", rejected)

	return &DeleteBookResult{
		BookID:           existing.ID(),
		RejectedRequests: rejected,
	}, nil
}

// rejectPendingRequests rejects every pending request on the resource
// on behalf of the acting staff member. Shared by book and class
// deletion.
func rejectPendingRequests(
	ctx context.Context,
	requestRepo request.Repository,
	resourceID, actorID uint,
	log logger.Interface,
) (int, error) {
	pending, err := requestRepo.ListPendingByResource(ctx, resourceID)
	if err != nil {
		log.Errorw("failed to list pending requests for removal", "resource_id", resourceID, "error", err)
		return 0, err
	}

	for _, req := range pending {
		if err := req.Reject(actorID, "resource removed"); err != nil {
			return 0, errors.NewInvalidTransitionError(err.Error())
		}
		if err := requestRepo.Update(ctx, req); err != nil {
			log.Errorw("failed to reject pending request", "request_id", req.ID(), "error", err)
			return 0, err
		}
	}

	return len(pending), nil
}
