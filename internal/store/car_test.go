package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

func TestCarDefaultProfile_MileageInvariantHolds(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, p.ClusterMileage+p.MileageOffset, p.ActualMileage)
}

func TestCarUpdateMileage_RecomputesActual(t *testing.T) {
	s := NewCarStore(storage.NewMemory())
	ctx := context.Background()

	require.NoError(t, s.UpdateMileage(ctx, 210000))
	p := s.Profile()
	assert.Equal(t, 210000, p.ClusterMileage)
	assert.Equal(t, 210000+p.MileageOffset, p.ActualMileage)
}

func TestCarSetProfile_CannotTouchMileage(t *testing.T) {
	s := NewCarStore(storage.NewMemory())
	ctx := context.Background()
	before := s.Profile()

	nickname := "The Wagon"
	color := "Candy White"
	require.NoError(t, s.SetProfile(ctx, models.CarProfilePatch{Nickname: &nickname, Color: &color}))

	p := s.Profile()
	assert.Equal(t, "The Wagon", p.Nickname)
	assert.Equal(t, "Candy White", p.Color)
	assert.Equal(t, before.ClusterMileage, p.ClusterMileage)
	assert.Equal(t, before.ActualMileage, p.ActualMileage)
}

func TestCarToggleMode(t *testing.T) {
	s := NewCarStore(storage.NewMemory())
	ctx := context.Background()

	require.Equal(t, models.ModeDaily, s.Profile().CurrentMode)
	require.NoError(t, s.ToggleMode(ctx))
	assert.Equal(t, models.ModeShow, s.Profile().CurrentMode)
	require.NoError(t, s.ToggleMode(ctx))
	assert.Equal(t, models.ModeDaily, s.Profile().CurrentMode)
}

func TestCarLoad_AbsentKeyKeepsDefault(t *testing.T) {
	s := NewCarStore(storage.NewMemory())
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, DefaultProfile(), s.Profile())
}

func TestCarLoad_RehydratesPersistedProfile(t *testing.T) {
	adapter := storage.NewMemory()
	ctx := context.Background()

	first := NewCarStore(adapter)
	require.NoError(t, first.UpdateMileage(ctx, 215000))

	second := NewCarStore(adapter)
	require.NoError(t, second.Load(ctx))
	assert.Equal(t, 215000, second.Profile().ClusterMileage)
}
