package store

import (
	"context"
	"time"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// DiagnosticsStore owns the DTC log.
type DiagnosticsStore struct {
	c *collection[models.DiagnosticCode]
}

// NewDiagnosticsStore returns an empty store bound to the adapter.
func NewDiagnosticsStore(adapter storage.Adapter) *DiagnosticsStore {
	return &DiagnosticsStore{c: newCollection(adapter, "diagnostics-data",
		func(c models.DiagnosticCode) string { return c.ID },
		func(c models.DiagnosticCode, id string) models.DiagnosticCode { c.ID = id; return c },
	)}
}

// Load rehydrates the collection.
func (s *DiagnosticsStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Codes returns all codes in insertion order.
func (s *DiagnosticsStore) Codes() []models.DiagnosticCode { return s.c.all() }

// Get returns the code record with the given id.
func (s *DiagnosticsStore) Get(id string) (models.DiagnosticCode, bool) { return s.c.find(id) }

// ActiveCount counts codes currently triggering the fault lamp.
func (s *DiagnosticsStore) ActiveCount() int {
	n := 0
	for _, c := range s.c.all() {
		if c.Active {
			n++
		}
	}
	return n
}

// Add canonicalizes the code, assigns an id, appends, and persists.
func (s *DiagnosticsStore) Add(ctx context.Context, c models.DiagnosticCode) (models.DiagnosticCode, error) {
	c.Code = models.CanonicalCode(c.Code)
	return s.c.add(ctx, c)
}

// Update merges the patch into the matching code record.
func (s *DiagnosticsStore) Update(ctx context.Context, id string, p models.DiagnosticCodePatch) error {
	return s.c.mutate(ctx, id, func(c models.DiagnosticCode) models.DiagnosticCode { return c.Apply(p) })
}

// Delete removes the matching code record.
func (s *DiagnosticsStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

// ToggleResolved flips the resolved flag, stamping or clearing the
// resolved date with it.
func (s *DiagnosticsStore) ToggleResolved(ctx context.Context, id string) error {
	return s.c.mutate(ctx, id, func(c models.DiagnosticCode) models.DiagnosticCode {
		return c.ToggleResolved(timeNow().Format(time.RFC3339))
	})
}

// ToggleActive flips the fault lamp flag.
func (s *DiagnosticsStore) ToggleActive(ctx context.Context, id string) error {
	return s.c.mutate(ctx, id, func(c models.DiagnosticCode) models.DiagnosticCode {
		return c.ToggleActive()
	})
}

// SeedIfEmpty populates the known-DTC fixtures; no-op once any exists.
func (s *DiagnosticsStore) SeedIfEmpty(ctx context.Context) error {
	return s.c.seed(ctx, seedDiagnostics())
}
