package usecases

import (
	"context"
	"time"

	"studium/internal/domain/request"
	"studium/internal/domain/resource"
	"studium/internal/domain/shared/events"
	"studium/internal/shared/config"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type SubmitRequestCommand struct {
	ResourceID    uint
	RequesterID   uint
	RequestedDays int
	Note          string
}

type SubmitRequestResult struct {
	RequestID uint
	Status    string
	CreatedAt time.Time
}

type SubmitRequestUseCase struct {
	requestRepo     request.Repository
	resourceRepo    resource.Repository
	eventDispatcher events.EventDispatcher
	workflowCfg     *config.WorkflowConfig
	logger          logger.Interface
}

func NewSubmitRequestUseCase(
	requestRepo request.Repository,
	resourceRepo resource.Repository,
	eventDispatcher events.EventDispatcher,
	workflowCfg *config.WorkflowConfig,
	logger logger.Interface,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		requestRepo:     requestRepo,
		resourceRepo:    resourceRepo,
		eventDispatcher: eventDispatcher,
		workflowCfg:     workflowCfg,
		logger:          logger,
	}
}

func (uc *SubmitRequestUseCase) Execute(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error) {
	uc.logger.Infow("executing submit request use case", "resource_id", cmd.ResourceID, "requester_id", cmd.RequesterID)

	if cmd.ResourceID == 0 {
		return nil, errors.NewValidationError("resource ID is required")
	}
	if cmd.RequesterID == 0 {
		return nil, errors.NewValidationError("requester ID is required")
	}
	if cmd.RequestedDays < 0 || cmd.RequestedDays > uc.workflowCfg.MaxLoanDays {
		return nil, errors.NewValidationError("requested loan period is out of range")
	}

	res, err := uc.resourceRepo.GetByID(ctx, cmd.ResourceID)
	if err != nil {
		uc.logger.Errorw("failed to load resource", "resource_id", cmd.ResourceID, "error", err)
		return nil, err
	}
	if res == nil {
		return nil, errors.NewNotFoundError("resource not found")
	}

	// One pending request per requester and resource. Submitting while
	// an earlier request is still undecided is rejected outright.
	hasPending, err := uc.requestRepo.HasPending(ctx, cmd.ResourceID, cmd.RequesterID)
	if err != nil {
		uc.logger.Errorw("failed to check pending requests", "error", err)
		return nil, err
	}
	if hasPending {
		return nil, errors.NewDuplicatePendingError("a pending request for this resource already exists")
	}

	newRequest, err := request.NewRequest(cmd.ResourceID, cmd.RequesterID, cmd.RequestedDays, cmd.Note)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Save(ctx, newRequest); err != nil {
		uc.logger.Errorw("failed to save request", "error", err)
		return nil, err
	}

	event := request.NewRequestSubmittedEvent(newRequest.ID(), res.ID(), res.Kind().String(), cmd.RequesterID)
	if err := uc.eventDispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish request submitted event", "request_id", newRequest.ID(), "error", err)
	}

	uc.logger.Infow("request submitted", "request_id", newRequest.ID(), "resource_id", cmd.ResourceID)

	return &SubmitRequestResult{
		RequestID: newRequest.ID(),
		Status:    newRequest.Status().String(),
		CreatedAt: newRequest.CreatedAt(),
	}, nil
}
