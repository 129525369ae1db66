package store

import (
	"context"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// GalleryStore owns the photo log.
type GalleryStore struct {
	c *collection[models.PhotoEntry]
}

// NewGalleryStore returns an empty store bound to the adapter.
func NewGalleryStore(adapter storage.Adapter) *GalleryStore {
	return &GalleryStore{c: newCollection(adapter, "gallery-data",
		func(p models.PhotoEntry) string { return p.ID },
		func(p models.PhotoEntry, id string) models.PhotoEntry { p.ID = id; return p },
	)}
}

// Load rehydrates the collection.
func (s *GalleryStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Photos returns all photos in insertion order.
func (s *GalleryStore) Photos() []models.PhotoEntry { return s.c.all() }

// Get returns the photo with the given id.
func (s *GalleryStore) Get(id string) (models.PhotoEntry, bool) { return s.c.find(id) }

// Add assigns an id, appends, and persists.
func (s *GalleryStore) Add(ctx context.Context, p models.PhotoEntry) (models.PhotoEntry, error) {
	return s.c.add(ctx, p)
}

// Update merges the patch into the matching photo.
func (s *GalleryStore) Update(ctx context.Context, id string, p models.PhotoPatch) error {
	return s.c.mutate(ctx, id, func(e models.PhotoEntry) models.PhotoEntry { return e.Apply(p) })
}

// Delete removes the matching photo.
func (s *GalleryStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

// SeedIfEmpty populates the fixture photos; no-op once any exists.
func (s *GalleryStore) SeedIfEmpty(ctx context.Context) error {
	return s.c.seed(ctx, seedPhotos())
}
