package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

func TestDiagnosticsAdd_CanonicalizesCode(t *testing.T) {
	s := NewDiagnosticsStore(storage.NewMemory())

	code, err := s.Add(context.Background(), models.DiagnosticCode{Code: "  p0341 "})
	assert.NoError(t, err)
	assert.Equal(t, "P0341", code.Code)
}

func TestDiagnosticsToggleResolved_CouplesResolvedDate(t *testing.T) {
	restore := timeNow
	fixed := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	defer func() { timeNow = restore }()

	s := NewDiagnosticsStore(storage.NewMemory())
	ctx := context.Background()

	code, err := s.Add(ctx, models.DiagnosticCode{Code: "P0300", Active: true})
	require.NoError(t, err)
	assert.False(t, code.Resolved)
	assert.Empty(t, code.ResolvedDate)

	require.NoError(t, s.ToggleResolved(ctx, code.ID))
	got, ok := s.Get(code.ID)
	require.True(t, ok)
	assert.True(t, got.Resolved)
	assert.Equal(t, fixed.Format(time.RFC3339), got.ResolvedDate)

	// Toggling back clears the date with the flag.
	require.NoError(t, s.ToggleResolved(ctx, code.ID))
	got, _ = s.Get(code.ID)
	assert.False(t, got.Resolved)
	assert.Empty(t, got.ResolvedDate)
}

func TestDiagnosticsToggleActive_IndependentOfResolved(t *testing.T) {
	s := NewDiagnosticsStore(storage.NewMemory())
	ctx := context.Background()

	code, err := s.Add(ctx, models.DiagnosticCode{Code: "P0299", Active: true})
	require.NoError(t, err)

	require.NoError(t, s.ToggleActive(ctx, code.ID))
	got, ok := s.Get(code.ID)
	require.True(t, ok)
	assert.False(t, got.Active)
	assert.False(t, got.Resolved)
}

func TestDiagnosticsActiveCount(t *testing.T) {
	s := NewDiagnosticsStore(storage.NewMemory())
	ctx := context.Background()

	_, err := s.Add(ctx, models.DiagnosticCode{Code: "P0341", Active: true})
	require.NoError(t, err)
	_, err = s.Add(ctx, models.DiagnosticCode{Code: "P0100", Active: true})
	require.NoError(t, err)
	_, err = s.Add(ctx, models.DiagnosticCode{Code: "P0016", Active: false})
	require.NoError(t, err)

	assert.Equal(t, 2, s.ActiveCount())
}

func TestDiagnosticsUpdate_CannotTouchResolvedFlag(t *testing.T) {
	s := NewDiagnosticsStore(storage.NewMemory())
	ctx := context.Background()

	code, err := s.Add(ctx, models.DiagnosticCode{Code: "P0341", Active: true})
	require.NoError(t, err)

	notes := "harness traced, ok"
	require.NoError(t, s.Update(ctx, code.ID, models.DiagnosticCodePatch{Notes: &notes}))

	got, ok := s.Get(code.ID)
	require.True(t, ok)
	assert.Equal(t, notes, got.Notes)
	assert.False(t, got.Resolved)
	assert.Empty(t, got.ResolvedDate)
}
