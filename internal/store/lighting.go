package store

import (
	"context"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// LightingStore owns lighting plans.
type LightingStore struct {
	c *collection[models.LightingPlan]
}

// NewLightingStore returns an empty store bound to the adapter.
func NewLightingStore(adapter storage.Adapter) *LightingStore {
	return &LightingStore{c: newCollection(adapter, "lighting-data",
		func(l models.LightingPlan) string { return l.ID },
		func(l models.LightingPlan, id string) models.LightingPlan { l.ID = id; return l },
	)}
}

// Load rehydrates the collection.
func (s *LightingStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Plans returns all plans in insertion order.
func (s *LightingStore) Plans() []models.LightingPlan { return s.c.all() }

// Get returns the plan with the given id.
func (s *LightingStore) Get(id string) (models.LightingPlan, bool) { return s.c.find(id) }

// Add assigns an id, appends, and persists.
func (s *LightingStore) Add(ctx context.Context, l models.LightingPlan) (models.LightingPlan, error) {
	return s.c.add(ctx, l)
}

// Update merges the patch into the matching plan.
func (s *LightingStore) Update(ctx context.Context, id string, p models.LightingPlanPatch) error {
	return s.c.mutate(ctx, id, func(l models.LightingPlan) models.LightingPlan { return l.Apply(p) })
}

// Delete removes the matching plan.
func (s *LightingStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

// SetStatus moves a plan to a new lifecycle state.
func (s *LightingStore) SetStatus(ctx context.Context, id string, status models.ModificationStatus) error {
	return s.c.mutate(ctx, id, func(l models.LightingPlan) models.LightingPlan {
		l.Status = status
		return l
	})
}

// SeedIfEmpty populates the fixture plans; no-op once any exists.
func (s *LightingStore) SeedIfEmpty(ctx context.Context) error {
	return s.c.seed(ctx, seedLighting())
}
