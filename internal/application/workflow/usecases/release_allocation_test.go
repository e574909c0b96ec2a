package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studium/internal/domain/allocation"
	allocationvo "studium/internal/domain/allocation/valueobjects"
	"studium/internal/shared/authorization"
	"studium/internal/shared/errors"
)

func activeAllocation(t *testing.T, id, resourceID, holderID uint) *allocation.Allocation {
	t.Helper()
	alloc, err := allocation.NewAllocation(1, resourceID, holderID, nil)
	require.NoError(t, err)
	require.NoError(t, alloc.SetID(id))
	return alloc
}

func TestReleaseAllocation_Success(t *testing.T) {
	alloc := activeAllocation(t, 5, 3, 9)

	releasedUnits := 0
	allocationRepo := &mockAllocationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*allocation.Allocation, error) {
			return alloc, nil
		},
	}
	resourceRepo := &mockResourceRepository{
		ReleaseUnitFunc: func(ctx context.Context, id uint) error {
			releasedUnits++
			assert.Equal(t, uint(3), id)
			return nil
		},
	}

	uc := NewReleaseAllocationUseCase(allocationRepo, resourceRepo, &mockEventDispatcher{}, &mockTransactionManager{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ReleaseAllocationCommand{AllocationID: 5, ActorID: 9, ActorRole: authorization.RoleStudent})

	require.NoError(t, err)
	assert.Equal(t, allocationvo.StatusReleased.String(), result.Status)
	assert.False(t, result.AlreadyReleased)
	assert.Equal(t, 1, releasedUnits)
}

// A release after a release succeeds without crediting the pool twice.
func TestReleaseAllocation_Idempotent(t *testing.T) {
	alloc := activeAllocation(t, 5, 3, 9)

	releasedUnits := 0
	allocationRepo := &mockAllocationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*allocation.Allocation, error) {
			return alloc, nil
		},
	}
	resourceRepo := &mockResourceRepository{
		ReleaseUnitFunc: func(ctx context.Context, id uint) error {
			releasedUnits++
			return nil
		},
	}

	uc := NewReleaseAllocationUseCase(allocationRepo, resourceRepo, &mockEventDispatcher{}, &mockTransactionManager{}, &mockLogger{})
	cmd := ReleaseAllocationCommand{AllocationID: 5, ActorID: 9, ActorRole: authorization.RoleStudent}

	first, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.False(t, first.AlreadyReleased)

	second, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.True(t, second.AlreadyReleased)
	assert.Equal(t, first.ReleasedAt, second.ReleasedAt)
	assert.Equal(t, 1, releasedUnits, "pool is credited exactly once")
}

func TestReleaseAllocation_ForbiddenForOtherStudent(t *testing.T) {
	alloc := activeAllocation(t, 5, 3, 9)

	allocationRepo := &mockAllocationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*allocation.Allocation, error) {
			return alloc, nil
		},
	}

	uc := NewReleaseAllocationUseCase(allocationRepo, &mockResourceRepository{}, &mockEventDispatcher{}, &mockTransactionManager{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), ReleaseAllocationCommand{AllocationID: 5, ActorID: 4, ActorRole: authorization.RoleStudent})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	assert.True(t, alloc.IsActive())
}

func TestReleaseAllocation_StaffCanReleaseAny(t *testing.T) {
	alloc := activeAllocation(t, 5, 3, 9)

	allocationRepo := &mockAllocationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*allocation.Allocation, error) {
			return alloc, nil
		},
	}

	uc := NewReleaseAllocationUseCase(allocationRepo, &mockResourceRepository{}, &mockEventDispatcher{}, &mockTransactionManager{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), ReleaseAllocationCommand{AllocationID: 5, ActorID: 2, ActorRole: authorization.RoleLibrarian})

	require.NoError(t, err)
	assert.False(t, alloc.IsActive())
}

// When the pool credit fails, the whole release rolls back: the status
// flip is not committed and the caller can retry.
func TestReleaseAllocation_PoolFailureRollsBackRelease(t *testing.T) {
	alloc := activeAllocation(t, 5, 3, 9)

	updated := false
	allocationRepo := &mockAllocationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*allocation.Allocation, error) {
			return alloc, nil
		},
		UpdateFunc: func(ctx context.Context, a *allocation.Allocation) error {
			updated = true
			return nil
		},
	}
	resourceRepo := &mockResourceRepository{
		ReleaseUnitFunc: func(ctx context.Context, id uint) error {
			return errors.NewStoreUnavailableError("store unavailable")
		},
	}

	txCalls := 0
	txMgr := &mockTransactionManager{
		RunInTransactionFunc: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			txCalls++
			return fn(ctx)
		},
	}

	uc := NewReleaseAllocationUseCase(allocationRepo, resourceRepo, &mockEventDispatcher{}, txMgr, &mockLogger{})
	_, err := uc.Execute(context.Background(), ReleaseAllocationCommand{AllocationID: 5, ActorID: 9, ActorRole: authorization.RoleStudent})

	require.Error(t, err)
	assert.Equal(t, 1, txCalls, "status flip and pool credit share one transaction")
	assert.True(t, updated, "update ran before the failing pool credit")
}

func TestExtendAllocation_Success(t *testing.T) {
	due := time.Now().Add(7 * 24 * time.Hour)
	alloc, err := allocation.NewAllocation(1, 3, 9, &due)
	require.NoError(t, err)
	require.NoError(t, alloc.SetID(5))

	allocationRepo := &mockAllocationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*allocation.Allocation, error) {
			return alloc, nil
		},
	}

	uc := NewExtendAllocationUseCase(allocationRepo, &mockEventDispatcher{}, testWorkflowConfig(), &mockLogger{})
	result, err := uc.Execute(context.Background(), ExtendAllocationCommand{AllocationID: 5, ActorID: 9, ActorRole: authorization.RoleStudent})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Extensions)
	require.NotNil(t, result.DueAt)
	assert.Equal(t, due.Add(7*24*time.Hour), *result.DueAt)
}

func TestExtendAllocation_CappedAtMaxLoanPeriod(t *testing.T) {
	due := time.Now().Add(7 * 24 * time.Hour)
	alloc, err := allocation.NewAllocation(1, 3, 9, &due)
	require.NoError(t, err)
	require.NoError(t, alloc.SetID(5))

	allocationRepo := &mockAllocationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*allocation.Allocation, error) {
			return alloc, nil
		},
	}

	cfg := testWorkflowConfig()
	cfg.MaxLoanDays = 10

	uc := NewExtendAllocationUseCase(allocationRepo, &mockEventDispatcher{}, cfg, &mockLogger{})
	_, err = uc.Execute(context.Background(), ExtendAllocationCommand{AllocationID: 5, ActorID: 9, ActorRole: authorization.RoleStudent})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransitionError(err))
}
