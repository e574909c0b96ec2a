package usecases

import (
	"context"

	"studium/internal/application/workflow/dto"
)

// TransactionManager runs a function inside a database transaction.
// The concrete implementation lives in shared/db.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

type SubmitRequestExecutor interface {
	Execute(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error)
}

type ApproveRequestExecutor interface {
	Execute(ctx context.Context, cmd ApproveRequestCommand) (*ApproveRequestResult, error)
}

type RejectRequestExecutor interface {
	Execute(ctx context.Context, cmd RejectRequestCommand) (*RejectRequestResult, error)
}

type ReleaseAllocationExecutor interface {
	Execute(ctx context.Context, cmd ReleaseAllocationCommand) (*ReleaseAllocationResult, error)
}

type ExtendAllocationExecutor interface {
	Execute(ctx context.Context, cmd ExtendAllocationCommand) (*ExtendAllocationResult, error)
}

type ListPendingRequestsExecutor interface {
	Execute(ctx context.Context, query ListPendingRequestsQuery) (*ListPendingRequestsResult, error)
}

type ListMyRequestsExecutor interface {
	Execute(ctx context.Context, query ListMyRequestsQuery) (*ListMyRequestsResult, error)
}

type ListAllocationsExecutor interface {
	Execute(ctx context.Context, query ListAllocationsQuery) (*ListAllocationsResult, error)
}

type ListOverdueAllocationsExecutor interface {
	Execute(ctx context.Context, query ListOverdueAllocationsQuery) (*ListOverdueAllocationsResult, error)
}

type GetAvailabilityExecutor interface {
	Execute(ctx context.Context, query GetAvailabilityQuery) (*dto.AvailabilityDTO, error)
}
