package models

// LightSyncMode says what drives a lighting effect.
type LightSyncMode string

const (
	SyncMusic  LightSyncMode = "music"
	SyncBoost  LightSyncMode = "boost"
	SyncManual LightSyncMode = "manual"
	SyncOff    LightSyncMode = "off"
)

// LightingPlan is one planned or installed lighting setup.
type LightingPlan struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Components  []string           `json:"components"`
	Wiring      string             `json:"wiring"`
	Controller  string             `json:"controller"`
	Status      ModificationStatus `json:"status"`
	Notes       string             `json:"notes"`
	SyncMode    LightSyncMode      `json:"sync_mode"` // "music", "boost", "manual", "off"
	Tags        []string           `json:"tags"`
}

// LightingPlanPatch carries the fields of a partial update. Status is
// absent on purpose; status changes go through the store's SetStatus.
type LightingPlanPatch struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Components  *[]string      `json:"components,omitempty"`
	Wiring      *string        `json:"wiring,omitempty"`
	Controller  *string        `json:"controller,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
	SyncMode    *LightSyncMode `json:"sync_mode,omitempty"`
	Tags        *[]string      `json:"tags,omitempty"`
}

// Apply merges the provided fields into the plan.
func (l LightingPlan) Apply(p LightingPlanPatch) LightingPlan {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Components != nil {
		l.Components = *p.Components
	}
	if p.Wiring != nil {
		l.Wiring = *p.Wiring
	}
	if p.Controller != nil {
		l.Controller = *p.Controller
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
	if p.SyncMode != nil {
		l.SyncMode = *p.SyncMode
	}
	if p.Tags != nil {
		l.Tags = *p.Tags
	}
	return l
}
