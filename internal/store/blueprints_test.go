package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

func TestBlueprintStore_BlueprintsAndDimensionsShareOneKey(t *testing.T) {
	adapter := storage.NewMemory()
	ctx := context.Background()

	s := NewBlueprintStore(adapter)
	require.NoError(t, s.Load(ctx))

	_, err := s.AddBlueprint(ctx, models.Blueprint{Title: "Downpipe install"})
	require.NoError(t, err)
	_, err = s.AddDimension(ctx, models.Dimension{Name: "Exhaust tunnel width", Measurement: 240, Unit: "mm"})
	require.NoError(t, err)

	// One snapshot holds both collections.
	payload, ok, err := adapter.Get(ctx, "blueprint-storage")
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, payload)

	second := NewBlueprintStore(adapter)
	require.NoError(t, second.Load(ctx))
	assert.Len(t, second.Blueprints(), 1)
	assert.Len(t, second.Dimensions(), 1)
}

func TestBlueprintStore_MutationsDoNotDisturbTheOtherCollection(t *testing.T) {
	s := NewBlueprintStore(storage.NewMemory())
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	bp, err := s.AddBlueprint(ctx, models.Blueprint{Title: "Downpipe install"})
	require.NoError(t, err)
	dim, err := s.AddDimension(ctx, models.Dimension{Name: "Tunnel width"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteBlueprint(ctx, bp.ID))
	assert.Empty(t, s.Blueprints())
	require.Len(t, s.Dimensions(), 1)
	assert.Equal(t, dim.ID, s.Dimensions()[0].ID)
}

func TestBlueprintStore_SeedsCollectionsIndependently(t *testing.T) {
	s := NewBlueprintStore(storage.NewMemory())
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	// A pre-existing blueprint blocks the blueprint seed but not the
	// dimension seed.
	_, err := s.AddBlueprint(ctx, models.Blueprint{Title: "Custom"})
	require.NoError(t, err)

	require.NoError(t, s.SeedIfEmpty(ctx))
	assert.Len(t, s.Blueprints(), 1)
	assert.Len(t, s.Dimensions(), 10)
}

func TestBlueprintStore_MissingIDIsSilentNoOp(t *testing.T) {
	s := NewBlueprintStore(storage.NewMemory())
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	title := "ghost"
	assert.NoError(t, s.UpdateBlueprint(ctx, "nope", models.BlueprintPatch{Title: &title}))
	assert.NoError(t, s.DeleteDimension(ctx, "nope"))
}
