package store

import (
	"context"
	"math"
	"sort"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// FuelStore owns the fill-up log and the MPG-at-insert computation.
type FuelStore struct {
	c *collection[models.FuelEntry]
}

// NewFuelStore returns an empty store bound to the adapter.
func NewFuelStore(adapter storage.Adapter) *FuelStore {
	return &FuelStore{c: newCollection(adapter, "fuel-data",
		func(e models.FuelEntry) string { return e.ID },
		func(e models.FuelEntry, id string) models.FuelEntry { e.ID = id; return e },
	)}
}

// Load rehydrates the collection.
func (s *FuelStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Entries returns all fill-ups in insertion order.
func (s *FuelStore) Entries() []models.FuelEntry { return s.c.all() }

// Get returns the fill-up with the given id.
func (s *FuelStore) Get(id string) (models.FuelEntry, bool) { return s.c.find(id) }

// Add computes MPG for full-tank entries against the most recent earlier
// full tank, then assigns an id, appends, and persists. Partial fills
// never receive an MPG and never anchor a later calculation. The value
// is computed once here and not revisited when older entries change.
func (s *FuelStore) Add(ctx context.Context, e models.FuelEntry) (models.FuelEntry, error) {
	e.MPG = nil
	if e.FullTank && !s.c.empty() {
		if prev, ok := s.latestFullTank(); ok {
			if delta := e.Mileage - prev.Mileage; delta > 0 && e.Gallons > 0 {
				mpg := round2(float64(delta) / e.Gallons)
				e.MPG = &mpg
			}
		}
	}
	return s.c.add(ctx, e)
}

// latestFullTank returns the most recent full-tank entry by date.
func (s *FuelStore) latestFullTank() (models.FuelEntry, bool) {
	entries := s.c.all()
	sort.SliceStable(entries, func(i, j int) bool {
		return parseDate(entries[i].Date).After(parseDate(entries[j].Date))
	})
	for _, e := range entries {
		if e.FullTank {
			return e, true
		}
	}
	return models.FuelEntry{}, false
}

// Update merges the patch into the matching fill-up. MPG stays as
// computed at insert; use RecalculateMPG to revise it deliberately.
func (s *FuelStore) Update(ctx context.Context, id string, p models.FuelEntryPatch) error {
	return s.c.mutate(ctx, id, func(e models.FuelEntry) models.FuelEntry { return e.Apply(p) })
}

// Delete removes the matching fill-up. MPG values on other entries are
// left untouched even when this entry anchored them.
func (s *FuelStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

// RecalculateMPG recomputes one entry's MPG against a caller-supplied
// previous odometer reading. This is the only path that revises a stored
// MPG after insertion.
func (s *FuelStore) RecalculateMPG(ctx context.Context, id string, previousMileage int) error {
	return s.c.mutate(ctx, id, func(e models.FuelEntry) models.FuelEntry {
		delta := e.Mileage - previousMileage
		if delta > 0 && e.Gallons > 0 {
			mpg := round2(float64(delta) / e.Gallons)
			e.MPG = &mpg
		} else {
			e.MPG = nil
		}
		return e
	})
}

// AverageMPG averages over the entries that carry an MPG. Returns 0 when
// none do.
func (s *FuelStore) AverageMPG() float64 {
	sum, n := 0.0, 0
	for _, e := range s.c.all() {
		if e.MPG != nil {
			sum += *e.MPG
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// SeedIfEmpty populates the fixture fill-ups; no-op once any exists.
func (s *FuelStore) SeedIfEmpty(ctx context.Context) error {
	return s.c.seed(ctx, seedFuel())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
