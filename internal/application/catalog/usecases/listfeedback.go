package usecases

import (
	"context"

	"studium/internal/application/catalog/dto"
	"studium/internal/domain/class"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

type ListFeedbackQuery struct {
	ClassID    uint
	Pagination utils.Pagination
}

type ListFeedbackResult struct {
	Feedback []*dto.FeedbackDTO
	Total    int64
}

type ListFeedbackUseCase struct {
	feedbackRepo class.FeedbackRepository
	logger       logger.Interface
}

func NewListFeedbackUseCase(feedbackRepo class.FeedbackRepository, logger logger.Interface) *ListFeedbackUseCase {
	return &ListFeedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *ListFeedbackUseCase) Execute(ctx context.Context, query ListFeedbackQuery) (*ListFeedbackResult, error) {
	if query.ClassID == 0 {
		return nil, errors.NewValidationError("class ID is required")
	}

	feedback, total, err := uc.feedbackRepo.ListByClass(ctx, query.ClassID, query.Pagination)
	if err != nil {
		uc.logger.Errorw("failed to list feedback", "class_id", query.ClassID, "error", err)
		return nil, err
	}

	return &ListFeedbackResult{
		Feedback: dto.FeedbacksToDTOs(feedback),
		Total:    total,
	}, nil
}
