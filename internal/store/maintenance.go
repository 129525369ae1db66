package store

import (
	"context"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// MaintenanceStore owns the maintenance log.
type MaintenanceStore struct {
	c *collection[models.MaintenanceEntry]
}

// NewMaintenanceStore returns an empty store bound to the adapter.
func NewMaintenanceStore(adapter storage.Adapter) *MaintenanceStore {
	return &MaintenanceStore{c: newCollection(adapter, "maintenance-data",
		func(e models.MaintenanceEntry) string { return e.ID },
		func(e models.MaintenanceEntry, id string) models.MaintenanceEntry { e.ID = id; return e },
	)}
}

// Load rehydrates the collection.
func (s *MaintenanceStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Entries returns all entries in insertion order.
func (s *MaintenanceStore) Entries() []models.MaintenanceEntry { return s.c.all() }

// Get returns the entry with the given id.
func (s *MaintenanceStore) Get(id string) (models.MaintenanceEntry, bool) { return s.c.find(id) }

// Add assigns an id, appends, and persists.
func (s *MaintenanceStore) Add(ctx context.Context, e models.MaintenanceEntry) (models.MaintenanceEntry, error) {
	return s.c.add(ctx, e)
}

// Update merges the patch into the matching entry; missing ids are a
// silent no-op.
func (s *MaintenanceStore) Update(ctx context.Context, id string, p models.MaintenancePatch) error {
	return s.c.mutate(ctx, id, func(e models.MaintenanceEntry) models.MaintenanceEntry { return e.Apply(p) })
}

// Delete removes the matching entry; missing ids are a silent no-op.
func (s *MaintenanceStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

// ToggleCompleted flips the completed flag.
func (s *MaintenanceStore) ToggleCompleted(ctx context.Context, id string) error {
	return s.c.mutate(ctx, id, func(e models.MaintenanceEntry) models.MaintenanceEntry {
		e.Completed = !e.Completed
		return e
	})
}

// SeedIfEmpty populates the fixture history; no-op once any entry exists.
func (s *MaintenanceStore) SeedIfEmpty(ctx context.Context) error {
	return s.c.seed(ctx, seedMaintenance())
}
