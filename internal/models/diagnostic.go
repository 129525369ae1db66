package models

import "strings"

// Severity rates the impact of a diagnostic trouble code.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// DiagnosticCode is one logged DTC. Active means the code currently
// triggers a fault lamp; resolved is an independent axis. ResolvedDate
// is present exactly when Resolved is true.
type DiagnosticCode struct {
	ID              string   `json:"id"`
	Code            string   `json:"code"` // canonicalized to uppercase
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	Mileage         int      `json:"mileage"`
	Active          bool     `json:"active"`
	FreezeFrameData string   `json:"freeze_frame_data,omitempty"`
	Notes           string   `json:"notes"`
	Resolved        bool     `json:"resolved"`
	ResolvedDate    string   `json:"resolved_date,omitempty"`
	Severity        Severity `json:"severity"` // "low", "medium", "high", "critical"
	System          Category `json:"system"`
	Tags            []string `json:"tags"`
}

// CanonicalCode uppercases and trims a raw code string.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DiagnosticCodePatch carries the fields of a partial update. Resolved is
// absent on purpose: the resolved flag goes through ToggleResolved so the
// resolved date coupling holds.
type DiagnosticCodePatch struct {
	Code            *string   `json:"code,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Date            *string   `json:"date,omitempty"`
	Mileage         *int      `json:"mileage,omitempty"`
	Active          *bool     `json:"active,omitempty"`
	FreezeFrameData *string   `json:"freeze_frame_data,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	Severity        *Severity `json:"severity,omitempty"`
	System          *Category `json:"system,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
}

// Apply merges the provided fields into the code record.
func (c DiagnosticCode) Apply(p DiagnosticCodePatch) DiagnosticCode {
	if p.Code != nil {
		c.Code = CanonicalCode(*p.Code)
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Date != nil {
		c.Date = *p.Date
	}
	if p.Mileage != nil {
		c.Mileage = *p.Mileage
	}
	if p.Active != nil {
		c.Active = *p.Active
	}
	if p.FreezeFrameData != nil {
		c.FreezeFrameData = *p.FreezeFrameData
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Severity != nil {
		c.Severity = *p.Severity
	}
	if p.System != nil {
		c.System = *p.System
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	return c
}

// ToggleResolved flips the resolved flag. Flipping to resolved stamps the
// resolved date; flipping back clears it.
func (c DiagnosticCode) ToggleResolved(now string) DiagnosticCode {
	c.Resolved = !c.Resolved
	if c.Resolved {
		c.ResolvedDate = now
	} else {
		c.ResolvedDate = ""
	}
	return c
}

// ToggleActive flips the fault lamp flag. Independent of resolved.
func (c DiagnosticCode) ToggleActive() DiagnosticCode {
	c.Active = !c.Active
	return c
}

// DiagnosticStep is one step of a structured trace session.
type DiagnosticStep struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Expected    string `json:"expected"`
	Actual      string `json:"actual"`
	Passed      bool   `json:"passed"`
	Notes       string `json:"notes"`
}

// DiagnosticTrace is a structured troubleshooting session with steps.
type DiagnosticTrace struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	System    Category         `json:"system"`
	Date      string           `json:"date"`
	Mileage   int              `json:"mileage"`
	Steps     []DiagnosticStep `json:"steps"`
	Completed bool             `json:"completed"`
	Notes     string           `json:"notes"`
	Tags      []string         `json:"tags"`
}

// DiagnosticTracePatch carries the fields of a partial update.
type DiagnosticTracePatch struct {
	Title     *string           `json:"title,omitempty"`
	System    *Category         `json:"system,omitempty"`
	Date      *string           `json:"date,omitempty"`
	Mileage   *int              `json:"mileage,omitempty"`
	Steps     *[]DiagnosticStep `json:"steps,omitempty"`
	Completed *bool             `json:"completed,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
	Tags      *[]string         `json:"tags,omitempty"`
}

// Apply merges the provided fields into the trace.
func (t DiagnosticTrace) Apply(p DiagnosticTracePatch) DiagnosticTrace {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.System != nil {
		t.System = *p.System
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Mileage != nil {
		t.Mileage = *p.Mileage
	}
	if p.Steps != nil {
		t.Steps = *p.Steps
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	return t
}
