package store

import (
	"context"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// AudioStore owns the audio system component list.
type AudioStore struct {
	c *collection[models.AudioComponent]
}

// NewAudioStore returns an empty store bound to the adapter.
func NewAudioStore(adapter storage.Adapter) *AudioStore {
	return &AudioStore{c: newCollection(adapter, "audio-data",
		func(a models.AudioComponent) string { return a.ID },
		func(a models.AudioComponent, id string) models.AudioComponent { a.ID = id; return a },
	)}
}

// Load rehydrates the collection.
func (s *AudioStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Components returns all components in insertion order.
func (s *AudioStore) Components() []models.AudioComponent { return s.c.all() }

// Get returns the component with the given id.
func (s *AudioStore) Get(id string) (models.AudioComponent, bool) { return s.c.find(id) }

// Add assigns an id, appends, and persists.
func (s *AudioStore) Add(ctx context.Context, a models.AudioComponent) (models.AudioComponent, error) {
	return s.c.add(ctx, a)
}

// Update merges the patch into the matching component.
func (s *AudioStore) Update(ctx context.Context, id string, p models.AudioComponentPatch) error {
	return s.c.mutate(ctx, id, func(a models.AudioComponent) models.AudioComponent { return a.Apply(p) })
}

// Delete removes the matching component.
func (s *AudioStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

// ToggleInstalled flips the installed flag, stamping or clearing the
// install date with it.
func (s *AudioStore) ToggleInstalled(ctx context.Context, id string) error {
	return s.c.mutate(ctx, id, func(a models.AudioComponent) models.AudioComponent {
		return a.ToggleInstalled(today())
	})
}

// SeedIfEmpty populates the fixture components; no-op once any exists.
func (s *AudioStore) SeedIfEmpty(ctx context.Context) error {
	return s.c.seed(ctx, seedAudio())
}
