// Package export renders garage records as shareable text and as a
// whole-garage YAML snapshot.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/store"
)

const footer = "Exported from CS Build Tracker"

func stamp() string {
	return time.Now().Format("1/2/2006")
}

// formatMileage renders an odometer value with thousands separators.
func formatMileage(mileage int) string {
	s := strconv.Itoa(mileage)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// DiagnosticText renders one DTC as a shareable block.
func DiagnosticText(c models.DiagnosticCode) string {
	lines := []string{
		fmt.Sprintf("DTC: %s", c.Code),
		fmt.Sprintf("Description: %s", c.Description),
	}
	if c.FreezeFrameData != "" {
		lines = append(lines, fmt.Sprintf("Freeze Frame: %s", c.FreezeFrameData))
	}
	lines = append(lines, fmt.Sprintf("%s - %s", footer, stamp()))
	return strings.Join(lines, "\n")
}

// MaintenanceText renders one maintenance record as a shareable block.
func MaintenanceText(e models.MaintenanceEntry) string {
	lines := []string{
		fmt.Sprintf("Maintenance: %s", e.Title),
		fmt.Sprintf("Date: %s", e.Date),
		fmt.Sprintf("Mileage: %s mi", formatMileage(e.Mileage)),
	}
	if len(e.Parts) > 0 {
		lines = append(lines, fmt.Sprintf("Parts: %s", strings.Join(e.Parts, ", ")))
	}
	lines = append(lines,
		fmt.Sprintf("Cost: $%.2f", e.Cost),
		fmt.Sprintf("%s - %s", footer, stamp()),
	)
	return strings.Join(lines, "\n")
}

// FuelLogText renders the fill-up history as a one-line-per-entry log.
// Entries without an MPG show N/A.
func FuelLogText(entries []models.FuelEntry) string {
	lines := []string{"Fuel Log Export", "=================="}
	for _, e := range entries {
		mpg := "N/A"
		if e.MPG != nil {
			mpg = fmt.Sprintf("%.1f", *e.MPG)
		}
		lines = append(lines, fmt.Sprintf("%s | %.2fgal | %d octane | $%.2f/gal | %s MPG",
			e.Date, e.Gallons, e.Octane, e.Cost, mpg))
	}
	lines = append(lines, "", fmt.Sprintf("%s - %s", footer, stamp()))
	return strings.Join(lines, "\n")
}

// Snapshot is the whole garage in one document, for backup or transfer
// between machines.
type Snapshot struct {
	Profile       models.CarProfile        `yaml:"profile"`
	Maintenance   []models.MaintenanceEntry `yaml:"maintenance"`
	Modifications []models.Modification    `yaml:"modifications"`
	Diagnostics   []models.DiagnosticCode  `yaml:"diagnostics"`
	Traces        []models.DiagnosticTrace `yaml:"traces,omitempty"`
	Fuel          []models.FuelEntry       `yaml:"fuel"`
	Reminders     []models.Reminder        `yaml:"reminders"`
	Events        []models.Event           `yaml:"events"`
	Gallery       []models.PhotoEntry      `yaml:"gallery"`
	Audio         []models.AudioComponent  `yaml:"audio"`
	Crashes       []models.CrashEntry      `yaml:"crashes"`
	Lighting      []models.LightingPlan    `yaml:"lighting"`
	Notes         []models.Note            `yaml:"notes,omitempty"`
	Parts         []models.Part            `yaml:"parts,omitempty"`
	Blueprints    []models.Blueprint       `yaml:"blueprints"`
	Dimensions    []models.Dimension       `yaml:"dimensions"`
}

// GarageYAML marshals the full garage state.
func GarageYAML(g *store.Garage) ([]byte, error) {
	snap := Snapshot{
		Profile:       g.Car.Profile(),
		Maintenance:   g.Maintenance.Entries(),
		Modifications: g.Modifications.Modifications(),
		Diagnostics:   g.Diagnostics.Codes(),
		Traces:        g.Traces.Traces(),
		Fuel:          g.Fuel.Entries(),
		Reminders:     g.Reminders.Reminders(),
		Events:        g.Events.Events(),
		Gallery:       g.Gallery.Photos(),
		Audio:         g.Audio.Components(),
		Crashes:       g.Crashes.Entries(),
		Lighting:      g.Lighting.Plans(),
		Notes:         g.Notes.Notes(),
		Parts:         g.Parts.Parts(),
		Blueprints:    g.Blueprints.Blueprints(),
		Dimensions:    g.Blueprints.Dimensions(),
	}
	out, err := yaml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode garage snapshot: %w", err)
	}
	return out, nil
}
