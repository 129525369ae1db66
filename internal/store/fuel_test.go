package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

func TestFuelAdd_FirstEntryHasNoMPG(t *testing.T) {
	s := NewFuelStore(storage.NewMemory())
	ctx := context.Background()

	entry, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-01-01", Mileage: 1000, Gallons: 5, Octane: models.Octane91, FullTank: true,
	})
	assert.NoError(t, err)
	assert.Nil(t, entry.MPG)
}

func TestFuelAdd_FullTankComputesMPGAgainstLatestFullTank(t *testing.T) {
	s := NewFuelStore(storage.NewMemory())
	ctx := context.Background()

	_, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-01-01", Mileage: 1000, Gallons: 5, Octane: models.Octane91, FullTank: true,
	})
	require.NoError(t, err)

	entry, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-02-01", Mileage: 1300, Gallons: 10, Octane: models.Octane91, FullTank: true,
	})
	assert.NoError(t, err)
	require.NotNil(t, entry.MPG)
	assert.Equal(t, 30.0, *entry.MPG)
}

func TestFuelAdd_PartialFillNeverGetsMPG(t *testing.T) {
	s := NewFuelStore(storage.NewMemory())
	ctx := context.Background()

	_, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-01-01", Mileage: 1000, Gallons: 5, Octane: models.Octane91, FullTank: true,
	})
	require.NoError(t, err)

	entry, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-01-15", Mileage: 1150, Gallons: 3, Octane: models.Octane91, FullTank: false,
	})
	assert.NoError(t, err)
	assert.Nil(t, entry.MPG)
}

func TestFuelAdd_PartialFillDoesNotAnchor(t *testing.T) {
	s := NewFuelStore(storage.NewMemory())
	ctx := context.Background()

	_, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-01-01", Mileage: 1000, Gallons: 5, Octane: models.Octane91, FullTank: true,
	})
	require.NoError(t, err)
	_, err = s.Add(ctx, models.FuelEntry{
		Date: "2024-01-15", Mileage: 1200, Gallons: 4, Octane: models.Octane91, FullTank: false,
	})
	require.NoError(t, err)

	// The partial at 1200 is skipped; the anchor is the full tank at 1000.
	entry, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-02-01", Mileage: 1500, Gallons: 10, Octane: models.Octane91, FullTank: true,
	})
	assert.NoError(t, err)
	require.NotNil(t, entry.MPG)
	assert.Equal(t, 50.0, *entry.MPG)
}

func TestFuelAdd_NonPositiveDeltaLeavesMPGNil(t *testing.T) {
	s := NewFuelStore(storage.NewMemory())
	ctx := context.Background()

	_, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-01-01", Mileage: 1000, Gallons: 5, Octane: models.Octane91, FullTank: true,
	})
	require.NoError(t, err)

	entry, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-02-01", Mileage: 900, Gallons: 10, Octane: models.Octane91, FullTank: true,
	})
	assert.NoError(t, err)
	assert.Nil(t, entry.MPG)
}

func TestFuelAdd_MPGIsNotRecomputedOnUpdate(t *testing.T) {
	s := NewFuelStore(storage.NewMemory())
	ctx := context.Background()

	_, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-01-01", Mileage: 1000, Gallons: 5, Octane: models.Octane91, FullTank: true,
	})
	require.NoError(t, err)
	entry, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-02-01", Mileage: 1300, Gallons: 10, Octane: models.Octane91, FullTank: true,
	})
	require.NoError(t, err)
	require.NotNil(t, entry.MPG)

	// Correcting the mileage leaves the stale MPG in place.
	newMileage := 1400
	require.NoError(t, s.Update(ctx, entry.ID, models.FuelEntryPatch{Mileage: &newMileage}))

	got, ok := s.Get(entry.ID)
	require.True(t, ok)
	assert.Equal(t, 1400, got.Mileage)
	require.NotNil(t, got.MPG)
	assert.Equal(t, 30.0, *got.MPG)
}

func TestFuelRecalculateMPG(t *testing.T) {
	s := NewFuelStore(storage.NewMemory())
	ctx := context.Background()

	entry, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-01-01", Mileage: 1300, Gallons: 10, Octane: models.Octane93, FullTank: true,
	})
	require.NoError(t, err)
	require.Nil(t, entry.MPG)

	require.NoError(t, s.RecalculateMPG(ctx, entry.ID, 1000))
	got, ok := s.Get(entry.ID)
	require.True(t, ok)
	require.NotNil(t, got.MPG)
	assert.Equal(t, 30.0, *got.MPG)

	// A previous reading at or past the entry clears the value.
	require.NoError(t, s.RecalculateMPG(ctx, entry.ID, 1300))
	got, _ = s.Get(entry.ID)
	assert.Nil(t, got.MPG)
}

func TestFuelAverageMPG(t *testing.T) {
	s := NewFuelStore(storage.NewMemory())
	ctx := context.Background()

	assert.Equal(t, 0.0, s.AverageMPG())

	_, err := s.Add(ctx, models.FuelEntry{
		Date: "2024-01-01", Mileage: 1000, Gallons: 5, Octane: models.Octane91, FullTank: true,
	})
	require.NoError(t, err)
	_, err = s.Add(ctx, models.FuelEntry{
		Date: "2024-02-01", Mileage: 1300, Gallons: 10, Octane: models.Octane91, FullTank: true,
	})
	require.NoError(t, err)
	_, err = s.Add(ctx, models.FuelEntry{
		Date: "2024-03-01", Mileage: 1500, Gallons: 10, Octane: models.Octane91, FullTank: true,
	})
	require.NoError(t, err)

	// Entries without an MPG stay out of the average: (30 + 20) / 2.
	assert.Equal(t, 25.0, s.AverageMPG())
}
