package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "studium/internal/domain/allocation/valueobjects"
)

func TestNewAllocation(t *testing.T) {
	due := time.Now().Add(14 * 24 * time.Hour)
	alloc, err := NewAllocation(1, 2, 3, &due)
	require.NoError(t, err)

	assert.Equal(t, uint(1), alloc.RequestID())
	assert.Equal(t, uint(2), alloc.ResourceID())
	assert.Equal(t, uint(3), alloc.HolderID())
	assert.Equal(t, vo.StatusActive, alloc.Status())
	assert.True(t, alloc.IsActive())
	assert.Zero(t, alloc.Extensions())
	assert.Nil(t, alloc.ReleasedAt())
}

func TestNewAllocation_Validation(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name       string
		requestID  uint
		resourceID uint
		holderID   uint
		dueAt      *time.Time
	}{
		{"missing request", 0, 2, 3, nil},
		{"missing resource", 1, 0, 3, nil},
		{"missing holder", 1, 2, 0, nil},
		{"due date in the past", 1, 2, 3, &past},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAllocation(tt.requestID, tt.resourceID, tt.holderID, tt.dueAt)
			assert.Error(t, err)
		})
	}
}

func TestAllocation_ReleaseIsIdempotent(t *testing.T) {
	alloc, err := NewAllocation(1, 2, 3, nil)
	require.NoError(t, err)

	assert.True(t, alloc.Release())
	released := alloc.ReleasedAt()
	require.NotNil(t, released)
	versionAfterFirst := alloc.Version()

	assert.False(t, alloc.Release())
	assert.Equal(t, vo.StatusReleased, alloc.Status())
	assert.Equal(t, released, alloc.ReleasedAt())
	assert.Equal(t, versionAfterFirst, alloc.Version())
}

func TestAllocation_IsOverdue(t *testing.T) {
	now := time.Now()
	due := now.Add(time.Hour)
	alloc, err := NewAllocation(1, 2, 3, &due)
	require.NoError(t, err)

	assert.False(t, alloc.IsOverdue(now))
	assert.True(t, alloc.IsOverdue(now.Add(2*time.Hour)))

	alloc.Release()
	assert.False(t, alloc.IsOverdue(now.Add(2*time.Hour)))
}

func TestAllocation_Extend(t *testing.T) {
	due := time.Now().Add(7 * 24 * time.Hour)
	maxDue := due.Add(30 * 24 * time.Hour)

	alloc, err := NewAllocation(1, 2, 3, &due)
	require.NoError(t, err)

	require.NoError(t, alloc.Extend(7*24*time.Hour, maxDue))
	require.NotNil(t, alloc.DueAt())
	assert.Equal(t, due.Add(7*24*time.Hour), *alloc.DueAt())
	assert.Equal(t, 1, alloc.Extensions())
}

func TestAllocation_Extend_Errors(t *testing.T) {
	due := time.Now().Add(7 * 24 * time.Hour)
	maxDue := due.Add(24 * time.Hour)

	t.Run("past the maximum", func(t *testing.T) {
		alloc, err := NewAllocation(1, 2, 3, &due)
		require.NoError(t, err)
		assert.Error(t, alloc.Extend(48*time.Hour, maxDue))
		assert.Equal(t, due, *alloc.DueAt())
	})

	t.Run("released allocation", func(t *testing.T) {
		alloc, err := NewAllocation(1, 2, 3, &due)
		require.NoError(t, err)
		alloc.Release()
		assert.Error(t, alloc.Extend(time.Hour, maxDue))
	})

	t.Run("no due date", func(t *testing.T) {
		alloc, err := NewAllocation(1, 2, 3, nil)
		require.NoError(t, err)
		assert.Error(t, alloc.Extend(time.Hour, maxDue))
	})

	t.Run("non-positive extension", func(t *testing.T) {
		alloc, err := NewAllocation(1, 2, 3, &due)
		require.NoError(t, err)
		assert.Error(t, alloc.Extend(0, maxDue))
	})
}
