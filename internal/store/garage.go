package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// Garage wires every entity store to one storage adapter. It is the
// single entry point callers use: construct, Load, then work with the
// individual stores.
type Garage struct {
	Car           *CarStore
	Maintenance   *MaintenanceStore
	Modifications *ModificationsStore
	Diagnostics   *DiagnosticsStore
	Traces        *TraceStore
	Fuel          *FuelStore
	Reminders     *ReminderStore
	Events        *EventStore
	Gallery       *GalleryStore
	Audio         *AudioStore
	Crashes       *CrashStore
	Lighting      *LightingStore
	Notes         *NotesStore
	Parts         *PartsStore
	Blueprints    *BlueprintStore
}

// NewGarage binds all stores to the adapter.
func NewGarage(adapter storage.Adapter) *Garage {
	return &Garage{
		Car:           NewCarStore(adapter),
		Maintenance:   NewMaintenanceStore(adapter),
		Modifications: NewModificationsStore(adapter),
		Diagnostics:   NewDiagnosticsStore(adapter),
		Traces:        NewTraceStore(adapter),
		Fuel:          NewFuelStore(adapter),
		Reminders:     NewReminderStore(adapter),
		Events:        NewEventStore(adapter),
		Gallery:       NewGalleryStore(adapter),
		Audio:         NewAudioStore(adapter),
		Crashes:       NewCrashStore(adapter),
		Lighting:      NewLightingStore(adapter),
		Notes:         NewNotesStore(adapter),
		Parts:         NewPartsStore(adapter),
		Blueprints:    NewBlueprintStore(adapter),
	}
}

// Load rehydrates every store from the adapter. The first failure stops
// the load; a partially hydrated garage must not be used.
func (g *Garage) Load(ctx context.Context) error {
	loaders := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"car", g.Car.Load},
		{"maintenance", g.Maintenance.Load},
		{"modifications", g.Modifications.Load},
		{"diagnostics", g.Diagnostics.Load},
		{"traces", g.Traces.Load},
		{"fuel", g.Fuel.Load},
		{"reminders", g.Reminders.Load},
		{"events", g.Events.Load},
		{"gallery", g.Gallery.Load},
		{"audio", g.Audio.Load},
		{"crashes", g.Crashes.Load},
		{"lighting", g.Lighting.Load},
		{"notes", g.Notes.Load},
		{"parts", g.Parts.Load},
		{"blueprints", g.Blueprints.Load},
	}
	for _, l := range loaders {
		if err := l.fn(ctx); err != nil {
			return fmt.Errorf("load garage: %s: %w", l.name, err)
		}
	}
	return nil
}

// HasExistingData reports whether any seeded collection already holds
// records. The check covers only collections that carry seed fixtures;
// notes, parts, traces, reminders, and events stay out of the gate.
func (g *Garage) HasExistingData() bool {
	return len(g.Maintenance.Entries()) > 0 ||
		len(g.Modifications.Modifications()) > 0 ||
		len(g.Diagnostics.Codes()) > 0 ||
		len(g.Fuel.Entries()) > 0 ||
		len(g.Gallery.Photos()) > 0 ||
		len(g.Audio.Components()) > 0 ||
		len(g.Crashes.Entries()) > 0 ||
		len(g.Lighting.Plans()) > 0 ||
		len(g.Blueprints.Blueprints()) > 0 ||
		len(g.Blueprints.Dimensions()) > 0
}

// InitializeSeedData populates every seedable store with fixture
// history. Each store seeds independently and skips itself when it
// already holds records.
func (g *Garage) InitializeSeedData(ctx context.Context) error {
	seeders := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"maintenance", g.Maintenance.SeedIfEmpty},
		{"modifications", g.Modifications.SeedIfEmpty},
		{"diagnostics", g.Diagnostics.SeedIfEmpty},
		{"fuel", g.Fuel.SeedIfEmpty},
		{"gallery", g.Gallery.SeedIfEmpty},
		{"audio", g.Audio.SeedIfEmpty},
		{"crashes", g.Crashes.SeedIfEmpty},
		{"lighting", g.Lighting.SeedIfEmpty},
		{"blueprints", g.Blueprints.SeedIfEmpty},
	}
	for _, s := range seeders {
		if err := s.fn(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", s.name, err)
		}
		log.WithFields(log.Fields{"store": s.name}).Debug("Seed pass complete")
	}
	return nil
}

// Bootstrap runs the all-or-nothing seed gate: if any seedable store
// already holds data the whole seed pass is skipped, so a user with a
// partially cleared garage never gets fixture records mixed back in.
func (g *Garage) Bootstrap(ctx context.Context) error {
	if g.HasExistingData() {
		log.Info("Existing garage data found, skipping seed")
		return nil
	}
	log.Info("Empty garage, seeding fixture history")
	return g.InitializeSeedData(ctx)
}

// LogEvent appends a denormalized record to the activity feed. The feed
// never cascades: later edits or deletes of the related record leave the
// event untouched.
func (g *Garage) LogEvent(ctx context.Context, t models.EventType, title string, relatedID string, tags []string) error {
	profile := g.Car.Profile()
	_, err := g.Events.Add(ctx, models.Event{
		Type:      t,
		Title:     title,
		Date:      today(),
		Mileage:   profile.ActualMileage,
		Tags:      tags,
		RelatedID: relatedID,
	})
	return err
}
