package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

const carProfileKey = "car-profile"

// CarStore owns the single vehicle profile.
type CarStore struct {
	adapter storage.Adapter
	profile models.CarProfile
}

// NewCarStore returns a store holding the default profile until Load
// rehydrates a persisted one.
func NewCarStore(adapter storage.Adapter) *CarStore {
	return &CarStore{adapter: adapter, profile: DefaultProfile()}
}

// DefaultProfile is the project car this garage was started for.
func DefaultProfile() models.CarProfile {
	return models.CarProfile{
		VIN:             "WVWZZZ3CZ8P123456",
		Year:            2008,
		Make:            "Volkswagen",
		Model:           "Passat",
		Trim:            "B6",
		Engine:          "BPY 2.0T FSI",
		Transmission:    "6MT",
		Color:           "Black",
		PurchaseDate:    "2023-01-15",
		PurchaseMileage: 142643,
		ClusterMileage:  209843,
		ActualMileage:   277043,
		MileageOffset:   67200, // instrument cluster swap correction
		CurrentMode:     models.ModeDaily,
		Nickname:        "CS",
	}
}

// Load rehydrates the profile; an absent key keeps the default.
func (s *CarStore) Load(ctx context.Context) error {
	payload, ok, err := s.adapter.Get(ctx, carProfileKey)
	if err != nil {
		return fmt.Errorf("load %s: %w", carProfileKey, err)
	}
	if !ok || len(payload) == 0 {
		return nil
	}
	var profile models.CarProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return fmt.Errorf("decode %s: %w", carProfileKey, err)
	}
	s.profile = profile
	return nil
}

func (s *CarStore) persist(ctx context.Context) error {
	payload, err := json.Marshal(s.profile)
	if err != nil {
		return fmt.Errorf("encode %s: %w", carProfileKey, err)
	}
	if err := s.adapter.Set(ctx, carProfileKey, payload); err != nil {
		return fmt.Errorf("persist %s: %w", carProfileKey, err)
	}
	return nil
}

// Profile returns the current profile.
func (s *CarStore) Profile() models.CarProfile {
	return s.profile
}

// SetProfile merges identity fields into the profile.
func (s *CarStore) SetProfile(ctx context.Context, patch models.CarProfilePatch) error {
	s.profile = s.profile.Apply(patch)
	return s.persist(ctx)
}

// UpdateMileage records a new cluster reading. The actual mileage is
// recomputed from the fixed offset; regression checks belong to the
// caller's input boundary, not here.
func (s *CarStore) UpdateMileage(ctx context.Context, clusterMileage int) error {
	s.profile = s.profile.SetClusterMileage(clusterMileage)
	return s.persist(ctx)
}

// ToggleMode flips between daily and show mode.
func (s *CarStore) ToggleMode(ctx context.Context) error {
	s.profile = s.profile.ToggleMode()
	return s.persist(ctx)
}
