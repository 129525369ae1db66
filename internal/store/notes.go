package store

import (
	"context"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// NotesStore owns free-form notes.
type NotesStore struct {
	c *collection[models.Note]
}

// NewNotesStore returns an empty store bound to the adapter.
func NewNotesStore(adapter storage.Adapter) *NotesStore {
	return &NotesStore{c: newCollection(adapter, "notes-data",
		func(n models.Note) string { return n.ID },
		func(n models.Note, id string) models.Note { n.ID = id; return n },
	)}
}

// Load rehydrates the collection.
func (s *NotesStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Notes returns all notes in insertion order.
func (s *NotesStore) Notes() []models.Note { return s.c.all() }

// Get returns the note with the given id.
func (s *NotesStore) Get(id string) (models.Note, bool) { return s.c.find(id) }

// Add assigns an id, appends, and persists.
func (s *NotesStore) Add(ctx context.Context, n models.Note) (models.Note, error) {
	return s.c.add(ctx, n)
}

// Update merges the patch into the matching note.
func (s *NotesStore) Update(ctx context.Context, id string, p models.NotePatch) error {
	return s.c.mutate(ctx, id, func(n models.Note) models.Note { return n.Apply(p) })
}

// Delete removes the matching note.
func (s *NotesStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }
