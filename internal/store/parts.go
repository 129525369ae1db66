package store

import (
	"context"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// PartsStore owns the standalone parts inventory.
type PartsStore struct {
	c *collection[models.Part]
}

// NewPartsStore returns an empty store bound to the adapter.
func NewPartsStore(adapter storage.Adapter) *PartsStore {
	return &PartsStore{c: newCollection(adapter, "parts-data",
		func(p models.Part) string { return p.ID },
		func(p models.Part, id string) models.Part { p.ID = id; return p },
	)}
}

// Load rehydrates the collection.
func (s *PartsStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Parts returns all parts in insertion order.
func (s *PartsStore) Parts() []models.Part { return s.c.all() }

// Get returns the part with the given id.
func (s *PartsStore) Get(id string) (models.Part, bool) { return s.c.find(id) }

// Add assigns an id, appends, and persists.
func (s *PartsStore) Add(ctx context.Context, p models.Part) (models.Part, error) {
	return s.c.add(ctx, p)
}

// Update merges the patch into the matching part.
func (s *PartsStore) Update(ctx context.Context, id string, p models.PartPatch) error {
	return s.c.mutate(ctx, id, func(pt models.Part) models.Part { return pt.Apply(p) })
}

// Delete removes the matching part.
func (s *PartsStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

// ToggleInstalled flips the installed flag. Unlike audio components,
// parts carry no install date coupling.
func (s *PartsStore) ToggleInstalled(ctx context.Context, id string) error {
	return s.c.mutate(ctx, id, func(p models.Part) models.Part { return p.ToggleInstalled() })
}
