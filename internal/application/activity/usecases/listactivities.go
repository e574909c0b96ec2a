package usecases

import (
	"context"
	"time"

	"studium/internal/domain/activity"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

type ListActivitiesQuery struct {
	// ActorID filters the feed to one user's actions when non-zero.
	ActorID    uint
	Pagination utils.Pagination
}

type ActivityDTO struct {
	ID         uint      `json:"id"`
	EventType  string    `json:"event_type"`
	ActorID    uint      `json:"actor_id"`
	SubjectID  uint      `json:"subject_id"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ListActivitiesResult struct {
	Activities []ActivityDTO
	Total      int64
}

// ListActivitiesUseCase reads the activity feed, newest first.
type ListActivitiesUseCase struct {
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewListActivitiesUseCase(activityRepo activity.Repository, logger logger.Interface) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *ListActivitiesUseCase) Execute(ctx context.Context, query ListActivitiesQuery) (*ListActivitiesResult, error) {
	var (
		records []*activity.Record
		total   int64
		err     error
	)
	if query.ActorID != 0 {
		records, total, err = uc.activityRepo.ListByActor(ctx, query.ActorID, query.Pagination)
	} else {
		records, total, err = uc.activityRepo.List(ctx, query.Pagination)
	}
	if err != nil {
		uc.logger.Errorw("failed to list activities", "error", err)
		return nil, err
	}

	dtos := make([]ActivityDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, ActivityDTO{
			ID:         record.ID(),
			EventType:  record.EventType(),
			ActorID:    record.ActorID(),
			SubjectID:  record.SubjectID(),
			Message:    record.Message(),
			OccurredAt: record.OccurredAt(),
		})
	}

	return &ListActivitiesResult{Activities: dtos, Total: total}, nil
}

// ListActivitiesExecutor defines the interface for listing the feed.
type ListActivitiesExecutor interface {
	Execute(ctx context.Context, query ListActivitiesQuery) (*ListActivitiesResult, error)
}
