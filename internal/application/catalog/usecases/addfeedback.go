package usecases

import (
	"context"
	"time"

	"studium/internal/domain/allocation"
	"studium/internal/domain/class"
	"studium/internal/domain/resource"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type AddFeedbackCommand struct {
	ClassID   uint
	StudentID uint
	Rating    int
	Comment   string
}

type AddFeedbackResult struct {
	FeedbackID uint
	CreatedAt  time.Time
}

// AddFeedbackUseCase records a student's rating of a class. Only
// students holding a seat may rate, and only once per class.
type AddFeedbackUseCase struct {
	classRepo      class.Repository
	feedbackRepo   class.FeedbackRepository
	resourceRepo   resource.Repository
	allocationRepo allocation.Repository
	logger         logger.Interface
}

func NewAddFeedbackUseCase(
	classRepo class.Repository,
	feedbackRepo class.FeedbackRepository,
	resourceRepo resource.Repository,
	allocationRepo allocation.Repository,
	logger logger.Interface,
) *AddFeedbackUseCase {
	return &AddFeedbackUseCase{
		classRepo:      classRepo,
		feedbackRepo:   feedbackRepo,
		resourceRepo:   resourceRepo,
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

func (uc *AddFeedbackUseCase) Execute(ctx context.Context, cmd AddFeedbackCommand) (*AddFeedbackResult, error) {
	uc.logger.Infow("executing add feedback use case", "class_id", cmd.ClassID, "student_id", cmd.StudentID)

	if _, err := uc.classRepo.GetByID(ctx, cmd.ClassID); err != nil {
		return nil, err
	}

	// Enrollment check: the student must hold an active seat allocation
	// in the class's seat pool.
	pool, err := uc.resourceRepo.GetByRef(ctx, resourcevo.KindClassSeats, cmd.ClassID)
	if err != nil {
		return nil, err
	}
	enrolled, err := uc.allocationRepo.HasActiveByHolderAndResource(ctx, cmd.StudentID, pool.ID())
	if err != nil {
		uc.logger.Errorw("failed to check enrollment", "class_id", cmd.ClassID, "student_id", cmd.StudentID, "error", err)
		return nil, err
	}
	if !enrolled {
		return nil, errors.NewForbiddenError("only enrolled students may rate a class")
	}

	already, err := uc.feedbackRepo.HasFeedback(ctx, cmd.ClassID, cmd.StudentID)
	if err != nil {
		uc.logger.Errorw("failed to check existing feedback", "error", err)
		return nil, err
	}
	if already {
		return nil, errors.NewConflictError("you have already rated this class")
	}

	feedback, err := class.NewFeedback(cmd.ClassID, cmd.StudentID, cmd.Rating, cmd.Comment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.feedbackRepo.Save(ctx, feedback); err != nil {
		uc.logger.Errorw("failed to save feedback", "error", err)
		return nil, err
	}

	uc.logger.Infow("feedback added", "feedback_id", feedback.ID(), "class_id", cmd.ClassID)

	return &AddFeedbackResult{
		FeedbackID: feedback.ID(),
		CreatedAt:  feedback.CreatedAt(),
	}, nil
}
