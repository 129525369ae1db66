package store

import (
	"context"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// CrashStore owns crash incidents and their repair state.
type CrashStore struct {
	c *collection[models.CrashEntry]
}

// NewCrashStore returns an empty store bound to the adapter.
func NewCrashStore(adapter storage.Adapter) *CrashStore {
	return &CrashStore{c: newCollection(adapter, "crash-data",
		func(e models.CrashEntry) string { return e.ID },
		func(e models.CrashEntry, id string) models.CrashEntry { e.ID = id; return e },
	)}
}

// Load rehydrates the collection.
func (s *CrashStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Entries returns all crash entries in insertion order.
func (s *CrashStore) Entries() []models.CrashEntry { return s.c.all() }

// Get returns the entry with the given id.
func (s *CrashStore) Get(id string) (models.CrashEntry, bool) { return s.c.find(id) }

// Add assigns an id, appends, and persists.
func (s *CrashStore) Add(ctx context.Context, e models.CrashEntry) (models.CrashEntry, error) {
	return s.c.add(ctx, e)
}

// Update merges the patch into the matching entry.
func (s *CrashStore) Update(ctx context.Context, id string, p models.CrashEntryPatch) error {
	return s.c.mutate(ctx, id, func(e models.CrashEntry) models.CrashEntry { return e.Apply(p) })
}

// Delete removes the matching entry.
func (s *CrashStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

// SetRepairStatus moves a repair to a new lifecycle state.
func (s *CrashStore) SetRepairStatus(ctx context.Context, id string, status models.RepairStatus) error {
	return s.c.mutate(ctx, id, func(e models.CrashEntry) models.CrashEntry {
		e.RepairStatus = status
		return e
	})
}

// SeedIfEmpty populates the fixture incidents; no-op once any exists.
func (s *CrashStore) SeedIfEmpty(ctx context.Context) error {
	return s.c.seed(ctx, seedCrashes())
}
