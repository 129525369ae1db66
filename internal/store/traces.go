package store

import (
	"context"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// TraceStore owns structured diagnostic trace sessions.
type TraceStore struct {
	c *collection[models.DiagnosticTrace]
}

// NewTraceStore returns an empty store bound to the adapter.
func NewTraceStore(adapter storage.Adapter) *TraceStore {
	return &TraceStore{c: newCollection(adapter, "diagnostic-trace-data",
		func(t models.DiagnosticTrace) string { return t.ID },
		func(t models.DiagnosticTrace, id string) models.DiagnosticTrace { t.ID = id; return t },
	)}
}

// Load rehydrates the collection.
func (s *TraceStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Traces returns all traces in insertion order.
func (s *TraceStore) Traces() []models.DiagnosticTrace { return s.c.all() }

// Get returns the trace with the given id.
func (s *TraceStore) Get(id string) (models.DiagnosticTrace, bool) { return s.c.find(id) }

// Add assigns an id, appends, and persists.
func (s *TraceStore) Add(ctx context.Context, t models.DiagnosticTrace) (models.DiagnosticTrace, error) {
	return s.c.add(ctx, t)
}

// Update merges the patch into the matching trace.
func (s *TraceStore) Update(ctx context.Context, id string, p models.DiagnosticTracePatch) error {
	return s.c.mutate(ctx, id, func(t models.DiagnosticTrace) models.DiagnosticTrace { return t.Apply(p) })
}

// Delete removes the matching trace.
func (s *TraceStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

// Complete marks a trace finished. One-way, matching reminders.
func (s *TraceStore) Complete(ctx context.Context, id string) error {
	return s.c.mutate(ctx, id, func(t models.DiagnosticTrace) models.DiagnosticTrace {
		t.Completed = true
		return t
	})
}
