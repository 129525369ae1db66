package store

import (
	"context"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// ModificationsStore owns the build's modification list.
type ModificationsStore struct {
	c *collection[models.Modification]
}

// NewModificationsStore returns an empty store bound to the adapter.
func NewModificationsStore(adapter storage.Adapter) *ModificationsStore {
	return &ModificationsStore{c: newCollection(adapter, "modifications-data",
		func(m models.Modification) string { return m.ID },
		func(m models.Modification, id string) models.Modification { m.ID = id; return m },
	)}
}

// Load rehydrates the collection.
func (s *ModificationsStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Modifications returns all modifications in insertion order.
func (s *ModificationsStore) Modifications() []models.Modification { return s.c.all() }

// Get returns the modification with the given id.
func (s *ModificationsStore) Get(id string) (models.Modification, bool) { return s.c.find(id) }

// Add assigns an id, appends, and persists.
func (s *ModificationsStore) Add(ctx context.Context, m models.Modification) (models.Modification, error) {
	return s.c.add(ctx, m)
}

// Update merges the patch into the matching modification.
func (s *ModificationsStore) Update(ctx context.Context, id string, p models.ModificationPatch) error {
	return s.c.mutate(ctx, id, func(m models.Modification) models.Modification { return m.Apply(p) })
}

// Delete removes the matching modification.
func (s *ModificationsStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

// SetStatus moves a modification to a new lifecycle state, stamping the
// install date on the transition into completed.
func (s *ModificationsStore) SetStatus(ctx context.Context, id string, status models.ModificationStatus) error {
	return s.c.mutate(ctx, id, func(m models.Modification) models.Modification {
		return m.SetStatus(status, today())
	})
}

// ByStage returns the modifications in one build phase.
func (s *ModificationsStore) ByStage(stage models.ModificationStage) []models.Modification {
	var out []models.Modification
	for _, m := range s.c.all() {
		if m.Stage == stage {
			out = append(out, m)
		}
	}
	return out
}

// SeedIfEmpty populates the fixture list; no-op once any record exists.
func (s *ModificationsStore) SeedIfEmpty(ctx context.Context) error {
	return s.c.seed(ctx, seedModifications())
}
