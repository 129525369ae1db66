package models

// EventType tags which store an event's related record lives in.
type EventType string

const (
	EventMaintenance  EventType = "maintenance"
	EventFuel         EventType = "fuel"
	EventDiagnostic   EventType = "diagnostic"
	EventModification EventType = "modification"
	EventNote         EventType = "note"
	EventPhoto        EventType = "photo"
)

// Event is one record of the denormalized activity feed. It references
// the authoritative record by RelatedID and is never updated or deleted
// when that record changes; the feed is an append-only index, not a
// second source of truth.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Mileage   int       `json:"mileage"`
	Category  Category  `json:"category,omitempty"`
	Priority  Priority  `json:"priority,omitempty"`
	Tags      []string  `json:"tags"`
	RelatedID string    `json:"related_id"`
}

// EventPatch carries the fields of a partial update.
type EventPatch struct {
	Type      *EventType `json:"type,omitempty"`
	Title     *string    `json:"title,omitempty"`
	Date      *string    `json:"date,omitempty"`
	Mileage   *int       `json:"mileage,omitempty"`
	Category  *Category  `json:"category,omitempty"`
	Priority  *Priority  `json:"priority,omitempty"`
	Tags      *[]string  `json:"tags,omitempty"`
	RelatedID *string    `json:"related_id,omitempty"`
}

// Apply merges the provided fields into the event.
func (e Event) Apply(p EventPatch) Event {
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Mileage != nil {
		e.Mileage = *p.Mileage
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Priority != nil {
		e.Priority = *p.Priority
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
	if p.RelatedID != nil {
		e.RelatedID = *p.RelatedID
	}
	return e
}
