package models

// ModificationStage groups build work into planned phases 0-3.
type ModificationStage int

// ModificationStatus tracks a modification through its lifecycle.
// "ordered" is a side branch before "in-progress", not a strict step.
type ModificationStatus string

const (
	StatusPlanned    ModificationStatus = "planned"
	StatusOrdered    ModificationStatus = "ordered"
	StatusInProgress ModificationStatus = "in-progress"
	StatusCompleted  ModificationStatus = "completed"
)

// IsValidModificationStatus checks if a status belongs to the closed set.
func IsValidModificationStatus(s ModificationStatus) bool {
	switch s {
	case StatusPlanned, StatusOrdered, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Modification is one planned or installed performance/appearance change.
type Modification struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Stage       ModificationStage  `json:"stage"` // 0-3
	System      Category           `json:"system"`
	Status      ModificationStatus `json:"status"`
	Parts       []Part             `json:"parts"`
	Cost        float64            `json:"cost"`
	InstallDate string             `json:"install_date,omitempty"` // set on transition to completed
	Notes       string             `json:"notes"`
	Priority    int                `json:"priority"`
	Tags        []string           `json:"tags"`
	Photos      []string           `json:"photos"`
}

// ModificationPatch carries the fields of a partial update. Status is
// absent on purpose: status changes go through SetStatus so the install
// date coupling holds.
type ModificationPatch struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Stage       *ModificationStage `json:"stage,omitempty"`
	System      *Category          `json:"system,omitempty"`
	Parts       *[]Part            `json:"parts,omitempty"`
	Cost        *float64           `json:"cost,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	Priority    *int               `json:"priority,omitempty"`
	Tags        *[]string          `json:"tags,omitempty"`
	Photos      *[]string          `json:"photos,omitempty"`
}

// Apply merges the provided fields into the modification.
func (m Modification) Apply(p ModificationPatch) Modification {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Stage != nil {
		m.Stage = *p.Stage
	}
	if p.System != nil {
		m.System = *p.System
	}
	if p.Parts != nil {
		m.Parts = *p.Parts
	}
	if p.Cost != nil {
		m.Cost = *p.Cost
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
	if p.Priority != nil {
		m.Priority = *p.Priority
	}
	if p.Tags != nil {
		m.Tags = *p.Tags
	}
	if p.Photos != nil {
		m.Photos = *p.Photos
	}
	return m
}

// SetStatus moves the modification to a new lifecycle state. The install
// date is stamped on the transition into completed and left alone
// otherwise.
func (m Modification) SetStatus(status ModificationStatus, today string) Modification {
	if status == StatusCompleted && m.Status != StatusCompleted {
		m.InstallDate = today
	}
	m.Status = status
	return m
}
