package models

// Category is the closed set of vehicle systems shared by maintenance
// entries, modifications, diagnostics, and reminders.
type Category string

const (
	CategoryEngine      Category = "engine"
	CategorySuspension  Category = "suspension"
	CategoryElectrical  Category = "electrical"
	CategoryExterior    Category = "exterior"
	CategoryInterior    Category = "interior"
	CategoryLighting    Category = "lighting"
	CategoryPerformance Category = "performance"
	CategoryOther       Category = "other"
)

// IsValidCategory checks if a category belongs to the closed set.
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryEngine, CategorySuspension, CategoryElectrical, CategoryExterior,
		CategoryInterior, CategoryLighting, CategoryPerformance, CategoryOther:
		return true
	default:
		return false
	}
}

// Priority ranks maintenance work.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityRoutine  Priority = "routine"
	PriorityPlanned  Priority = "planned"
)

// MaintenanceEntry is one logged service or repair job.
type MaintenanceEntry struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Mileage     int      `json:"mileage"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Parts       []string `json:"parts"`
	Cost        float64  `json:"cost"`
	Priority    Priority `json:"priority"` // "critical", "routine", "planned"
	Completed   bool     `json:"completed"`
	Tags        []string `json:"tags"`
	Photos      []string `json:"photos"`
}

// MaintenancePatch carries the fields of a partial update.
type MaintenancePatch struct {
	Date        *string   `json:"date,omitempty"`
	Mileage     *int      `json:"mileage,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Parts       *[]string `json:"parts,omitempty"`
	Cost        *float64  `json:"cost,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Photos      *[]string `json:"photos,omitempty"`
}

// Apply merges the provided fields into the entry. The id is never touched.
func (e MaintenanceEntry) Apply(p MaintenancePatch) MaintenanceEntry {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Mileage != nil {
		e.Mileage = *p.Mileage
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Parts != nil {
		e.Parts = *p.Parts
	}
	if p.Cost != nil {
		e.Cost = *p.Cost
	}
	if p.Priority != nil {
		e.Priority = *p.Priority
	}
	if p.Completed != nil {
		e.Completed = *p.Completed
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
	if p.Photos != nil {
		e.Photos = *p.Photos
	}
	return e
}
