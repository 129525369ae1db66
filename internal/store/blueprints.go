package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

const blueprintKey = "blueprint-storage"

// BlueprintStore owns build blueprints and recorded dimensions. The two
// collections share one persisted snapshot, so every mutation writes
// both.
type BlueprintStore struct {
	adapter    storage.Adapter
	blueprints []models.Blueprint
	dimensions []models.Dimension
}

type blueprintSnapshot struct {
	Blueprints []models.Blueprint `json:"blueprints"`
	Dimensions []models.Dimension `json:"dimensions"`
}

// NewBlueprintStore returns an empty store bound to the adapter.
func NewBlueprintStore(adapter storage.Adapter) *BlueprintStore {
	return &BlueprintStore{adapter: adapter}
}

// Load rehydrates both collections; an absent key leaves them empty.
func (s *BlueprintStore) Load(ctx context.Context) error {
	payload, ok, err := s.adapter.Get(ctx, blueprintKey)
	if err != nil {
		return fmt.Errorf("load %s: %w", blueprintKey, err)
	}
	if !ok || len(payload) == 0 {
		return nil
	}
	var snap blueprintSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return fmt.Errorf("decode %s: %w", blueprintKey, err)
	}
	s.blueprints = snap.Blueprints
	s.dimensions = snap.Dimensions
	return nil
}

func (s *BlueprintStore) persist(ctx context.Context) error {
	snap := blueprintSnapshot{Blueprints: s.blueprints, Dimensions: s.dimensions}
	if snap.Blueprints == nil {
		snap.Blueprints = []models.Blueprint{}
	}
	if snap.Dimensions == nil {
		snap.Dimensions = []models.Dimension{}
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode %s: %w", blueprintKey, err)
	}
	if err := s.adapter.Set(ctx, blueprintKey, payload); err != nil {
		return fmt.Errorf("persist %s: %w", blueprintKey, err)
	}
	return nil
}

// Blueprints returns all blueprints in insertion order.
func (s *BlueprintStore) Blueprints() []models.Blueprint {
	out := make([]models.Blueprint, len(s.blueprints))
	copy(out, s.blueprints)
	return out
}

// Dimensions returns all dimensions in insertion order.
func (s *BlueprintStore) Dimensions() []models.Dimension {
	out := make([]models.Dimension, len(s.dimensions))
	copy(out, s.dimensions)
	return out
}

// AddBlueprint assigns an id, appends, and persists.
func (s *BlueprintStore) AddBlueprint(ctx context.Context, b models.Blueprint) (models.Blueprint, error) {
	b.ID = uuid.NewString()
	s.blueprints = append(s.blueprints, b)
	return b, s.persist(ctx)
}

// UpdateBlueprint merges the patch into the matching blueprint; missing
// ids are a silent no-op.
func (s *BlueprintStore) UpdateBlueprint(ctx context.Context, id string, p models.BlueprintPatch) error {
	for i, b := range s.blueprints {
		if b.ID == id {
			s.blueprints[i] = b.Apply(p)
			return s.persist(ctx)
		}
	}
	return nil
}

// DeleteBlueprint removes the matching blueprint; missing ids are a
// silent no-op.
func (s *BlueprintStore) DeleteBlueprint(ctx context.Context, id string) error {
	for i, b := range s.blueprints {
		if b.ID == id {
			s.blueprints = append(s.blueprints[:i], s.blueprints[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// AddDimension assigns an id, appends, and persists.
func (s *BlueprintStore) AddDimension(ctx context.Context, d models.Dimension) (models.Dimension, error) {
	d.ID = uuid.NewString()
	s.dimensions = append(s.dimensions, d)
	return d, s.persist(ctx)
}

// UpdateDimension merges the patch into the matching dimension.
func (s *BlueprintStore) UpdateDimension(ctx context.Context, id string, p models.DimensionPatch) error {
	for i, d := range s.dimensions {
		if d.ID == id {
			s.dimensions[i] = d.Apply(p)
			return s.persist(ctx)
		}
	}
	return nil
}

// DeleteDimension removes the matching dimension.
func (s *BlueprintStore) DeleteDimension(ctx context.Context, id string) error {
	for i, d := range s.dimensions {
		if d.ID == id {
			s.dimensions = append(s.dimensions[:i], s.dimensions[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// SeedIfEmpty populates each collection independently; a collection that
// already holds records keeps them.
func (s *BlueprintStore) SeedIfEmpty(ctx context.Context) error {
	changed := false
	if len(s.blueprints) == 0 {
		s.blueprints = seedBlueprints()
		changed = true
	}
	if len(s.dimensions) == 0 {
		s.dimensions = seedDimensions()
		changed = true
	}
	if !changed {
		return nil
	}
	return s.persist(ctx)
}
