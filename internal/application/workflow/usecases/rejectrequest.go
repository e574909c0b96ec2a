package usecases

import (
	"context"
	"time"

	"studium/internal/domain/request"
	"studium/internal/domain/resource"
	"studium/internal/domain/shared/events"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type RejectRequestCommand struct {
	RequestID  uint
	RejecterID uint
	Note       string
}

type RejectRequestResult struct {
	RequestID uint
	Status    string
	DecidedAt *time.Time
}

// RejectRequestUseCase declines a pending request. No unit moves, the
// request simply reaches its terminal rejected state.
type RejectRequestUseCase struct {
	requestRepo     request.Repository
	resourceRepo    resource.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewRejectRequestUseCase(
	requestRepo request.Repository,
	resourceRepo resource.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *RejectRequestUseCase {
	return &RejectRequestUseCase{
		requestRepo:     requestRepo,
		resourceRepo:    resourceRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *RejectRequestUseCase) Execute(ctx context.Context, cmd RejectRequestCommand) (*RejectRequestResult, error) {
	uc.logger.Infow("executing reject request use case", "request_id", cmd.RequestID, "rejecter_id", cmd.RejecterID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.RejecterID == 0 {
		return nil, errors.NewValidationError("rejecter ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if !req.IsPending() {
		return nil, errors.NewInvalidTransitionError("request has already been decided")
	}

	if err := req.Reject(cmd.RejecterID, cmd.Note); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}
	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update request", "request_id", req.ID(), "error", err)
		return nil, err
	}

	// The kind only decorates the activity feed. Rejection is how
	// requests pointing at a removed pool get cleaned up, so a failed
	// lookup leaves the kind empty instead of blocking the rejection.
	kind := ""
	if res, err := uc.resourceRepo.GetByID(ctx, req.ResourceID()); err == nil {
		kind = res.Kind().String()
	} else {
		uc.logger.Debugw("resource lookup failed for rejection event", "resource_id", req.ResourceID(), "error", err)
	}

	event := request.NewRequestRejectedEvent(req.ID(), req.ResourceID(), kind, req.RequesterID(), cmd.RejecterID, cmd.Note)
	if err := uc.eventDispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish request rejected event", "request_id", req.ID(), "error", err)
	}

	uc.logger.Infow("request rejected", "request_id", req.ID())

	return &RejectRequestResult{
		RequestID: req.ID(),
		Status:    req.Status().String(),
		DecidedAt: req.DecidedAt(),
	}, nil
}
