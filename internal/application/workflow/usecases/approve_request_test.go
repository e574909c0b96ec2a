package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studium/internal/domain/allocation"
	"studium/internal/domain/request"
	requestvo "studium/internal/domain/request/valueobjects"
	"studium/internal/domain/resource"
	resourcevo "studium/internal/domain/resource/valueobjects"
	"studium/internal/shared/config"
	"studium/internal/shared/errors"
)

func testWorkflowConfig() *config.WorkflowConfig {
	return &config.WorkflowConfig{
		DefaultLoanDays: 14,
		MaxLoanDays:     60,
		ExtensionDays:   7,
	}
}

func pendingRequest(t *testing.T, id, resourceID, requesterID uint) *request.Request {
	t.Helper()
	req, err := request.NewRequest(resourceID, requesterID, 0, "")
	require.NoError(t, err)
	require.NoError(t, req.SetID(id))
	return req
}

func bookPool(t *testing.T, id uint, total, available int) *resource.Resource {
	t.Helper()
	now := time.Now()
	res, err := resource.ReconstructResource(id, resourcevo.KindBookCopies, 1, total, available, 1, now, now)
	require.NoError(t, err)
	return res
}

func TestApproveRequest_Success(t *testing.T) {
	req := pendingRequest(t, 10, 3, 9)

	reserved := false
	var savedAlloc *allocation.Allocation
	var updatedRequest *request.Request

	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
		UpdateFunc: func(ctx context.Context, r *request.Request) error {
			updatedRequest = r
			return nil
		},
	}
	resourceRepo := &mockResourceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
			return bookPool(t, 3, 5, 2), nil
		},
		ReserveUnitFunc: func(ctx context.Context, id uint) error {
			reserved = true
			return nil
		},
	}
	allocationRepo := &mockAllocationRepository{
		SaveFunc: func(ctx context.Context, alloc *allocation.Allocation) error {
			savedAlloc = alloc
			return alloc.SetID(77)
		},
	}

	uc := NewApproveRequestUseCase(requestRepo, allocationRepo, resourceRepo, &mockEventDispatcher{}, &mockTransactionManager{}, testWorkflowConfig(), &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveRequestCommand{RequestID: 10, ApproverID: 2, Note: "ok"})

	require.NoError(t, err)
	assert.True(t, reserved)
	assert.Equal(t, uint(10), result.RequestID)
	assert.Equal(t, uint(77), result.AllocationID)
	assert.Equal(t, requestvo.StatusApproved.String(), result.Status)
	require.NotNil(t, result.DueAt)

	require.NotNil(t, savedAlloc)
	assert.Equal(t, uint(9), savedAlloc.HolderID())
	assert.Equal(t, uint(3), savedAlloc.ResourceID())
	require.NotNil(t, updatedRequest)
	assert.Equal(t, requestvo.StatusApproved, updatedRequest.Status())
}

func TestApproveRequest_RequestedDaysDriveDueDate(t *testing.T) {
	newDeps := func(req *request.Request) (*mockRequestRepository, *mockResourceRepository, *mockAllocationRepository, **allocation.Allocation) {
		var savedAlloc *allocation.Allocation
		requestRepo := &mockRequestRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
				return req, nil
			},
		}
		resourceRepo := &mockResourceRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
				return bookPool(t, 3, 5, 2), nil
			},
		}
		allocationRepo := &mockAllocationRepository{
			SaveFunc: func(ctx context.Context, alloc *allocation.Allocation) error {
				savedAlloc = alloc
				return alloc.SetID(77)
			},
		}
		return requestRepo, resourceRepo, allocationRepo, &savedAlloc
	}

	t.Run("RequestedPeriodHonored", func(t *testing.T) {
		req, err := request.NewRequest(3, 9, 21, "")
		require.NoError(t, err)
		require.NoError(t, req.SetID(10))
		requestRepo, resourceRepo, allocationRepo, savedAlloc := newDeps(req)

		uc := NewApproveRequestUseCase(requestRepo, allocationRepo, resourceRepo, &mockEventDispatcher{}, &mockTransactionManager{}, testWorkflowConfig(), &mockLogger{})
		_, err = uc.Execute(context.Background(), ApproveRequestCommand{RequestID: 10, ApproverID: 2})
		require.NoError(t, err)

		require.NotNil(t, *savedAlloc)
		require.NotNil(t, (*savedAlloc).DueAt())
		assert.WithinDuration(t, time.Now().Add(21*24*time.Hour), *(*savedAlloc).DueAt(), time.Minute)
	})

	t.Run("CappedAtMaximum", func(t *testing.T) {
		req, err := request.NewRequest(3, 9, 120, "")
		require.NoError(t, err)
		require.NoError(t, req.SetID(10))
		requestRepo, resourceRepo, allocationRepo, savedAlloc := newDeps(req)

		uc := NewApproveRequestUseCase(requestRepo, allocationRepo, resourceRepo, &mockEventDispatcher{}, &mockTransactionManager{}, testWorkflowConfig(), &mockLogger{})
		_, err = uc.Execute(context.Background(), ApproveRequestCommand{RequestID: 10, ApproverID: 2})
		require.NoError(t, err)

		require.NotNil(t, (*savedAlloc).DueAt())
		assert.WithinDuration(t, time.Now().Add(60*24*time.Hour), *(*savedAlloc).DueAt(), time.Minute)
	})
}

func TestApproveRequest_ClassSeatHasNoDueDate(t *testing.T) {
	req := pendingRequest(t, 10, 3, 9)
	now := time.Now()
	seats, err := resource.ReconstructResource(3, resourcevo.KindClassSeats, 1, 30, 10, 1, now, now)
	require.NoError(t, err)

	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
	}
	resourceRepo := &mockResourceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
			return seats, nil
		},
	}
	allocationRepo := &mockAllocationRepository{
		SaveFunc: func(ctx context.Context, alloc *allocation.Allocation) error {
			return alloc.SetID(1)
		},
	}

	uc := NewApproveRequestUseCase(requestRepo, allocationRepo, resourceRepo, &mockEventDispatcher{}, &mockTransactionManager{}, testWorkflowConfig(), &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveRequestCommand{RequestID: 10, ApproverID: 2})

	require.NoError(t, err)
	assert.Nil(t, result.DueAt)
}

func TestApproveRequest_Exhausted(t *testing.T) {
	req := pendingRequest(t, 10, 3, 9)

	allocationSaved := false
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
	}
	resourceRepo := &mockResourceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
			return bookPool(t, 3, 5, 0), nil
		},
		ReserveUnitFunc: func(ctx context.Context, id uint) error {
			return errors.NewExhaustedError("no units available")
		},
	}
	allocationRepo := &mockAllocationRepository{
		SaveFunc: func(ctx context.Context, alloc *allocation.Allocation) error {
			allocationSaved = true
			return nil
		},
	}

	uc := NewApproveRequestUseCase(requestRepo, allocationRepo, resourceRepo, &mockEventDispatcher{}, &mockTransactionManager{}, testWorkflowConfig(), &mockLogger{})
	_, err := uc.Execute(context.Background(), ApproveRequestCommand{RequestID: 10, ApproverID: 2})

	require.Error(t, err)
	assert.True(t, errors.IsExhaustedError(err))
	assert.False(t, allocationSaved)
	assert.True(t, req.IsPending())
}

func TestApproveRequest_AlreadyDecided(t *testing.T) {
	req := pendingRequest(t, 10, 3, 9)
	require.NoError(t, req.Reject(2, ""))

	reserveCalled := false
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
	}
	resourceRepo := &mockResourceRepository{
		ReserveUnitFunc: func(ctx context.Context, id uint) error {
			reserveCalled = true
			return nil
		},
	}

	uc := NewApproveRequestUseCase(requestRepo, &mockAllocationRepository{}, resourceRepo, &mockEventDispatcher{}, &mockTransactionManager{}, testWorkflowConfig(), &mockLogger{})
	_, err := uc.Execute(context.Background(), ApproveRequestCommand{RequestID: 10, ApproverID: 2})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransitionError(err))
	assert.False(t, reserveCalled)
}

func TestApproveRequest_CompensatesWhenAllocationSaveFails(t *testing.T) {
	req := pendingRequest(t, 10, 3, 9)

	released := false
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
	}
	resourceRepo := &mockResourceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
			return bookPool(t, 3, 5, 2), nil
		},
		ReleaseUnitFunc: func(ctx context.Context, id uint) error {
			released = true
			assert.Equal(t, uint(3), id)
			return nil
		},
	}
	allocationRepo := &mockAllocationRepository{
		SaveFunc: func(ctx context.Context, alloc *allocation.Allocation) error {
			return errors.NewInternalError("store write failed")
		},
	}

	uc := NewApproveRequestUseCase(requestRepo, allocationRepo, resourceRepo, &mockEventDispatcher{}, &mockTransactionManager{}, testWorkflowConfig(), &mockLogger{})
	_, err := uc.Execute(context.Background(), ApproveRequestCommand{RequestID: 10, ApproverID: 2})

	require.Error(t, err)
	assert.True(t, released, "reserved unit must be returned when the approval fails")
}

// The allocation row lands before the request flips to approved. If
// that second write fails, compensation must remove the saved
// allocation too: its unique request index would otherwise block every
// later approval of the same request.
func TestApproveRequest_CompensatesWhenRequestUpdateFails(t *testing.T) {
	req := pendingRequest(t, 10, 3, 9)

	released := false
	var deletedAllocationID uint
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
		UpdateFunc: func(ctx context.Context, r *request.Request) error {
			return errors.NewStoreUnavailableError("store unavailable")
		},
	}
	resourceRepo := &mockResourceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
			return bookPool(t, 3, 5, 2), nil
		},
		ReleaseUnitFunc: func(ctx context.Context, id uint) error {
			released = true
			return nil
		},
	}
	allocationRepo := &mockAllocationRepository{
		SaveFunc: func(ctx context.Context, alloc *allocation.Allocation) error {
			return alloc.SetID(55)
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedAllocationID = id
			return nil
		},
	}

	uc := NewApproveRequestUseCase(requestRepo, allocationRepo, resourceRepo, &mockEventDispatcher{}, &mockTransactionManager{}, testWorkflowConfig(), &mockLogger{})
	_, err := uc.Execute(context.Background(), ApproveRequestCommand{RequestID: 10, ApproverID: 2})

	require.Error(t, err)
	assert.True(t, released)
	assert.Equal(t, uint(55), deletedAllocationID, "saved allocation must be removed so the request can be approved again")
}

func TestApproveRequest_WritesRunInsideTransaction(t *testing.T) {
	req := pendingRequest(t, 10, 3, 9)

	inTx := false
	txMgr := &mockTransactionManager{
		RunInTransactionFunc: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			inTx = true
			defer func() { inTx = false }()
			return fn(ctx)
		},
	}

	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return req, nil
		},
		UpdateFunc: func(ctx context.Context, r *request.Request) error {
			assert.True(t, inTx, "request decision must be written inside the transaction")
			return nil
		},
	}
	resourceRepo := &mockResourceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
			return bookPool(t, 3, 5, 2), nil
		},
	}
	allocationRepo := &mockAllocationRepository{
		SaveFunc: func(ctx context.Context, alloc *allocation.Allocation) error {
			assert.True(t, inTx, "allocation must be written inside the transaction")
			return alloc.SetID(1)
		},
	}

	uc := NewApproveRequestUseCase(requestRepo, allocationRepo, resourceRepo, &mockEventDispatcher{}, txMgr, testWorkflowConfig(), &mockLogger{})
	_, err := uc.Execute(context.Background(), ApproveRequestCommand{RequestID: 10, ApproverID: 2})
	require.NoError(t, err)
}

// Two staff members race to approve the last unit. The guarded decrement
// lets exactly one reservation through, so exactly one request ends up
// approved with an allocation.
func TestApproveRequest_LastUnitGoesToOneApproval(t *testing.T) {
	units := 1
	reserve := func(ctx context.Context, id uint) error {
		if units == 0 {
			return errors.NewExhaustedError("no units available")
		}
		units--
		return nil
	}

	resourceRepo := &mockResourceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*resource.Resource, error) {
			return bookPool(t, 3, 1, units), nil
		},
		ReserveUnitFunc: reserve,
	}

	allocations := 0
	allocationRepo := &mockAllocationRepository{
		SaveFunc: func(ctx context.Context, alloc *allocation.Allocation) error {
			allocations++
			return alloc.SetID(uint(allocations))
		},
	}

	reqA := pendingRequest(t, 10, 3, 9)
	reqB := pendingRequest(t, 11, 3, 8)
	byID := map[uint]*request.Request{10: reqA, 11: reqB}
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return byID[id], nil
		},
	}

	uc := NewApproveRequestUseCase(requestRepo, allocationRepo, resourceRepo, &mockEventDispatcher{}, &mockTransactionManager{}, testWorkflowConfig(), &mockLogger{})

	_, errA := uc.Execute(context.Background(), ApproveRequestCommand{RequestID: 10, ApproverID: 2})
	_, errB := uc.Execute(context.Background(), ApproveRequestCommand{RequestID: 11, ApproverID: 4})

	require.NoError(t, errA)
	require.Error(t, errB)
	assert.True(t, errors.IsExhaustedError(errB))
	assert.Equal(t, 1, allocations)
	assert.False(t, reqA.IsPending())
	assert.True(t, reqB.IsPending(), "losing request stays pending for a later decision")
}
