package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "studium/internal/domain/resource/valueobjects"
)

func TestNewResource(t *testing.T) {
	r, err := NewResource(vo.KindBookCopies, 7, 3)
	require.NoError(t, err)

	assert.Equal(t, vo.KindBookCopies, r.Kind())
	assert.Equal(t, uint(7), r.RefID())
	assert.Equal(t, 3, r.TotalUnits())
	assert.Equal(t, 3, r.AvailableUnits())
	assert.True(t, r.HasAvailable())
}

func TestNewResource_Validation(t *testing.T) {
	tests := []struct {
		name  string
		kind  vo.ResourceKind
		refID uint
		total int
	}{
		{"invalid kind", vo.ResourceKind("parking_spots"), 1, 1},
		{"zero ref", vo.KindClassSeats, 0, 1},
		{"negative total", vo.KindClassSeats, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResource(tt.kind, tt.refID, tt.total)
			assert.Error(t, err)
		})
	}
}

func TestReconstructResource_RejectsOutOfRangeAvailability(t *testing.T) {
	now := time.Now()

	_, err := ReconstructResource(1, vo.KindBookCopies, 2, 3, 4, 1, now, now)
	assert.Error(t, err)

	_, err = ReconstructResource(1, vo.KindBookCopies, 2, 3, -1, 1, now, now)
	assert.Error(t, err)

	r, err := ReconstructResource(1, vo.KindBookCopies, 2, 3, 0, 1, now, now)
	require.NoError(t, err)
	assert.False(t, r.HasAvailable())
}

func TestResource_Retotal(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		available     int
		newTotal      int
		wantAvailable int
	}{
		{"grow adds availability", 3, 1, 5, 3},
		{"shrink clamps to zero", 5, 1, 2, 0},
		{"shrink within availability", 5, 4, 3, 2},
		{"shrink to zero", 2, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now()
			r, err := ReconstructResource(1, vo.KindBookCopies, 2, tt.total, tt.available, 1, now, now)
			require.NoError(t, err)

			require.NoError(t, r.Retotal(tt.newTotal))
			assert.Equal(t, tt.newTotal, r.TotalUnits())
			assert.Equal(t, tt.wantAvailable, r.AvailableUnits())
			assert.GreaterOrEqual(t, r.AvailableUnits(), 0)
			assert.LessOrEqual(t, r.AvailableUnits(), r.TotalUnits())
		})
	}
}

func TestResource_Retotal_RejectsNegative(t *testing.T) {
	r, err := NewResource(vo.KindClassSeats, 1, 10)
	require.NoError(t, err)
	assert.Error(t, r.Retotal(-1))
}

func TestResource_SetID(t *testing.T) {
	r, err := NewResource(vo.KindClassSeats, 1, 10)
	require.NoError(t, err)

	require.NoError(t, r.SetID(5))
	assert.Equal(t, uint(5), r.ID())
	assert.Error(t, r.SetID(6))
}
