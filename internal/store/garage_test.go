package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// failingAdapter rejects writes to exercise the surfaced-error path.
type failingAdapter struct{}

func (failingAdapter) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (failingAdapter) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func newTestGarage(t *testing.T) *Garage {
	t.Helper()
	g := NewGarage(storage.NewMemory())
	require.NoError(t, g.Load(context.Background()))
	return g
}

func TestGarageBootstrap_SeedsEmptyGarage(t *testing.T) {
	g := newTestGarage(t)
	ctx := context.Background()

	require.False(t, g.HasExistingData())
	require.NoError(t, g.Bootstrap(ctx))

	assert.Len(t, g.Maintenance.Entries(), 9)
	assert.Len(t, g.Diagnostics.Codes(), 6)
	assert.Len(t, g.Fuel.Entries(), 6)
	assert.Len(t, g.Lighting.Plans(), 3)
	assert.Len(t, g.Blueprints.Blueprints(), 3)
	assert.Len(t, g.Blueprints.Dimensions(), 10)
	assert.True(t, g.HasExistingData())
}

func TestGarageBootstrap_GateIsAllOrNothing(t *testing.T) {
	g := newTestGarage(t)
	ctx := context.Background()

	// One store holding data keeps every seed out, not just its own.
	_, err := g.Maintenance.Add(ctx, models.MaintenanceEntry{Title: "Oil change", Category: models.CategoryEngine})
	require.NoError(t, err)

	require.NoError(t, g.Bootstrap(ctx))
	assert.Len(t, g.Maintenance.Entries(), 1)
	assert.Empty(t, g.Fuel.Entries())
	assert.Empty(t, g.Diagnostics.Codes())
	assert.Empty(t, g.Lighting.Plans())
}

func TestGarageInitializeSeedData_PerStoreIdempotent(t *testing.T) {
	g := newTestGarage(t)
	ctx := context.Background()

	require.NoError(t, g.InitializeSeedData(ctx))
	require.NoError(t, g.InitializeSeedData(ctx))

	assert.Len(t, g.Maintenance.Entries(), 9)
	assert.Len(t, g.Fuel.Entries(), 6)
}

func TestGarageSeed_DeterministicIDs(t *testing.T) {
	g := newTestGarage(t)
	require.NoError(t, g.InitializeSeedData(context.Background()))

	entries := g.Maintenance.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "seed-maintenance-0", entries[0].ID)

	plans := g.Lighting.Plans()
	require.Len(t, plans, 3)
	assert.Equal(t, "1", plans[0].ID)

	dims := g.Blueprints.Dimensions()
	require.Len(t, dims, 10)
	assert.Equal(t, "10", dims[9].ID)
}

func TestGarageAdd_AssignsUniqueIDs(t *testing.T) {
	g := newTestGarage(t)
	ctx := context.Background()

	a, err := g.Maintenance.Add(ctx, models.MaintenanceEntry{Title: "First"})
	require.NoError(t, err)
	b, err := g.Maintenance.Add(ctx, models.MaintenanceEntry{Title: "Second"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGarageMutations_MissingIDIsSilentNoOp(t *testing.T) {
	g := newTestGarage(t)
	ctx := context.Background()

	title := "ghost"
	assert.NoError(t, g.Maintenance.Update(ctx, "nope", models.MaintenancePatch{Title: &title}))
	assert.NoError(t, g.Maintenance.Delete(ctx, "nope"))
	assert.NoError(t, g.Diagnostics.ToggleResolved(ctx, "nope"))
	assert.NoError(t, g.Reminders.Complete(ctx, "nope"))
	assert.Empty(t, g.Maintenance.Entries())
}

func TestGarageAdd_SurfacesPersistenceError(t *testing.T) {
	g := NewGarage(failingAdapter{})
	require.NoError(t, g.Load(context.Background()))

	_, err := g.Fuel.Add(context.Background(), models.FuelEntry{Date: "2024-01-01", Gallons: 5})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGarageLoad_RehydratesAcrossInstances(t *testing.T) {
	adapter := storage.NewMemory()
	ctx := context.Background()

	first := NewGarage(adapter)
	require.NoError(t, first.Load(ctx))
	added, err := first.Maintenance.Add(ctx, models.MaintenanceEntry{Title: "Valve cover gasket"})
	require.NoError(t, err)

	second := NewGarage(adapter)
	require.NoError(t, second.Load(ctx))
	got, ok := second.Maintenance.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, "Valve cover gasket", got.Title)
}

func TestGarageLogEvent_SnapshotsCurrentMileage(t *testing.T) {
	g := newTestGarage(t)
	ctx := context.Background()

	require.NoError(t, g.Car.UpdateMileage(ctx, 210000))
	require.NoError(t, g.LogEvent(ctx, models.EventMaintenance, "Oil change", "some-id", nil))

	events := g.Events.Events()
	require.Len(t, events, 1)
	assert.Equal(t, g.Car.Profile().ActualMileage, events[0].Mileage)
	assert.Equal(t, "some-id", events[0].RelatedID)
}

func TestGarageEvents_NoCascadeOnDelete(t *testing.T) {
	g := newTestGarage(t)
	ctx := context.Background()

	entry, err := g.Maintenance.Add(ctx, models.MaintenanceEntry{Title: "Coil packs"})
	require.NoError(t, err)
	require.NoError(t, g.LogEvent(ctx, models.EventMaintenance, entry.Title, entry.ID, nil))

	require.NoError(t, g.Maintenance.Delete(ctx, entry.ID))

	events := g.Events.Events()
	require.Len(t, events, 1)
	assert.Equal(t, entry.ID, events[0].RelatedID)
	assert.Equal(t, "Coil packs", events[0].Title)
}
