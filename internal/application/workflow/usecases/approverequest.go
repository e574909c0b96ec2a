package usecases

import (
	"context"
	"time"

	"studium/internal/domain/allocation"
	"studium/internal/domain/request"
	"studium/internal/domain/resource"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/domain/shared/events"
	"studium/internal/shared/config"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

type ApproveRequestCommand struct {
	RequestID  uint
	ApproverID uint
	Note       string
}

type ApproveRequestResult struct {
	RequestID    uint
	AllocationID uint
	Status       string
	DueAt        *time.Time
}

// ApproveRequestUseCase grants a pending request. The unit is reserved
// first through an atomic guarded decrement, so two approvals racing for
// the last unit cannot both succeed. Every step after the reservation
// compensates by releasing the unit on failure.
type ApproveRequestUseCase struct {
	requestRepo     request.Repository
	allocationRepo  allocation.Repository
	resourceRepo    resource.Repository
	eventDispatcher events.EventDispatcher
	txMgr           TransactionManager
	workflowCfg     *config.WorkflowConfig
	logger          logger.Interface
}

func NewApproveRequestUseCase(
	requestRepo request.Repository,
	allocationRepo allocation.Repository,
	resourceRepo resource.Repository,
	eventDispatcher events.EventDispatcher,
	txMgr TransactionManager,
	workflowCfg *config.WorkflowConfig,
	logger logger.Interface,
) *ApproveRequestUseCase {
	return &ApproveRequestUseCase{
		requestRepo:     requestRepo,
		allocationRepo:  allocationRepo,
		resourceRepo:    resourceRepo,
		eventDispatcher: eventDispatcher,
		txMgr:           txMgr,
		workflowCfg:     workflowCfg,
		logger:          logger,
	}
}

func (uc *ApproveRequestUseCase) Execute(ctx context.Context, cmd ApproveRequestCommand) (*ApproveRequestResult, error) {
	uc.logger.Infow("executing approve request use case", "request_id", cmd.RequestID, "approver_id", cmd.ApproverID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.ApproverID == 0 {
		return nil, errors.NewValidationError("approver ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if !req.IsPending() {
		return nil, errors.NewInvalidTransitionError("request has already been decided")
	}

	res, err := uc.resourceRepo.GetByID(ctx, req.ResourceID())
	if err != nil {
		return nil, err
	}

	if err := uc.resourceRepo.ReserveUnit(ctx, res.ID()); err != nil {
		if errors.IsExhaustedError(err) {
			uc.logger.Infow("no units available for approval", "request_id", cmd.RequestID, "resource_id", res.ID())
		}
		return nil, err
	}

	var alloc *allocation.Allocation
	if err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		alloc, txErr = uc.allocate(txCtx, req, res, cmd)
		return txErr
	}); err != nil {
		// Compensation: the unit was reserved but the approval did not
		// land, hand it back before surfacing the error.
		uc.compensate(ctx, res.ID(), alloc, cmd.RequestID)
		return nil, err
	}

	event := request.NewRequestApprovedEvent(
		req.ID(), res.ID(), res.Kind().String(),
		req.RequesterID(), cmd.ApproverID, alloc.ID(),
	)
	if err := uc.eventDispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish request approved event", "request_id", req.ID(), "error", err)
	}

	uc.logger.Infow("request approved",
		"request_id", req.ID(),
		"allocation_id", alloc.ID(),
		"resource_id", res.ID(),
	)

	return &ApproveRequestResult{
		RequestID:    req.ID(),
		AllocationID: alloc.ID(),
		Status:       req.Status().String(),
		DueAt:        alloc.DueAt(),
	}, nil
}

func (uc *ApproveRequestUseCase) allocate(
	ctx context.Context,
	req *request.Request,
	res *resource.Resource,
	cmd ApproveRequestCommand,
) (*allocation.Allocation, error) {
	alloc, err := allocation.NewAllocation(req.ID(), res.ID(), req.RequesterID(), uc.dueDate(res.Kind(), req.RequestedDays()))
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.allocationRepo.Save(ctx, alloc); err != nil {
		uc.logger.Errorw("failed to save allocation", "request_id", req.ID(), "error", err)
		return nil, err
	}

	if err := req.Approve(cmd.ApproverID, cmd.Note); err != nil {
		return alloc, errors.NewInvalidTransitionError(err.Error())
	}
	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update request", "request_id", req.ID(), "error", err)
		return alloc, err
	}

	return alloc, nil
}

// compensate undoes a reservation after a failed approval. The rollback
// removes rows written inside the transaction, but an allocation that
// reached the table is deleted explicitly too: a leftover row would pin
// the unique request index and make the request unapprovable forever.
func (uc *ApproveRequestUseCase) compensate(ctx context.Context, resourceID uint, orphan *allocation.Allocation, requestID uint) {
	if orphan != nil && orphan.ID() != 0 {
		if err := uc.allocationRepo.Delete(ctx, orphan.ID()); err != nil {
			uc.logger.Errorw("failed to delete orphaned allocation after approval failure",
				"allocation_id", orphan.ID(),
				"request_id", requestID,
				"error", err,
			)
		}
	}
	if err := uc.resourceRepo.ReleaseUnit(ctx, resourceID); err != nil {
		uc.logger.Errorw("failed to release reserved unit after approval failure",
			"resource_id", resourceID,
			"request_id", requestID,
			"error", err,
		)
	}
}

// dueDate computes the loan due date. Book loans run for the requested
// period, falling back to the configured default and capped at the
// configured maximum; class seats are held until explicitly released.
func (uc *ApproveRequestUseCase) dueDate(kind resourcevo.ResourceKind, requestedDays int) *time.Time {
	if kind != resourcevo.KindBookCopies {
		return nil
	}
	days := requestedDays
	if days == 0 {
		days = uc.workflowCfg.DefaultLoanDays
	}
	if days > uc.workflowCfg.MaxLoanDays {
		days = uc.workflowCfg.MaxLoanDays
	}
	due := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	return &due
}
