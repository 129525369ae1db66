package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

func TestModificationsSetStatus_StampsInstallDateOnCompletion(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	s := NewModificationsStore(storage.NewMemory())
	ctx := context.Background()

	mod, err := s.Add(ctx, models.Modification{Title: "K04 Turbo", Status: models.StatusPlanned})
	require.NoError(t, err)
	assert.Empty(t, mod.InstallDate)

	require.NoError(t, s.SetStatus(ctx, mod.ID, models.StatusCompleted))
	got, ok := s.Get(mod.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, "2024-04-02", got.InstallDate)
}

func TestModificationsSetStatus_KeepsInstallDateWhenAlreadyCompleted(t *testing.T) {
	s := NewModificationsStore(storage.NewMemory())
	ctx := context.Background()

	mod, err := s.Add(ctx, models.Modification{
		Title: "Diverter valve", Status: models.StatusCompleted, InstallDate: "2023-03-15",
	})
	require.NoError(t, err)

	require.NoError(t, s.SetStatus(ctx, mod.ID, models.StatusCompleted))
	got, _ := s.Get(mod.ID)
	assert.Equal(t, "2023-03-15", got.InstallDate)
}

func TestModificationsByStage(t *testing.T) {
	s := NewModificationsStore(storage.NewMemory())
	ctx := context.Background()

	_, err := s.Add(ctx, models.Modification{Title: "Catch can", Stage: 0})
	require.NoError(t, err)
	_, err = s.Add(ctx, models.Modification{Title: "K04", Stage: 1})
	require.NoError(t, err)
	_, err = s.Add(ctx, models.Modification{Title: "Meth kit", Stage: 1})
	require.NoError(t, err)

	assert.Len(t, s.ByStage(0), 1)
	assert.Len(t, s.ByStage(1), 2)
	assert.Empty(t, s.ByStage(3))
}

func TestAudioToggleInstalled_CouplesInstallDate(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	s := NewAudioStore(storage.NewMemory())
	ctx := context.Background()

	c, err := s.Add(ctx, models.AudioComponent{Name: "Kicker CVT", Type: models.AudioSubwoofer})
	require.NoError(t, err)
	require.False(t, c.Installed)

	require.NoError(t, s.ToggleInstalled(ctx, c.ID))
	got, ok := s.Get(c.ID)
	require.True(t, ok)
	assert.True(t, got.Installed)
	assert.Equal(t, "2024-04-02", got.InstallDate)

	require.NoError(t, s.ToggleInstalled(ctx, c.ID))
	got, _ = s.Get(c.ID)
	assert.False(t, got.Installed)
	assert.Empty(t, got.InstallDate)
}
