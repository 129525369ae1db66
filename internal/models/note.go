package models

// NoteCategory buckets free-form notes.
type NoteCategory string

const (
	NoteJournal   NoteCategory = "journal"
	NoteTuning    NoteCategory = "tuning"
	NoteRouteTest NoteCategory = "route-test"
	NoteIdea      NoteCategory = "idea"
	NoteReminder  NoteCategory = "reminder"
)

// Note is one free-form note. Mileage is optional; zero means unset.
type Note struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Date     string       `json:"date"`
	Tags     []string     `json:"tags"`
	Mileage  int          `json:"mileage,omitempty"`
	Category NoteCategory `json:"category"` // "journal", "tuning", "route-test", "idea", "reminder"
}

// NotePatch carries the fields of a partial update.
type NotePatch struct {
	Title    *string       `json:"title,omitempty"`
	Content  *string       `json:"content,omitempty"`
	Date     *string       `json:"date,omitempty"`
	Tags     *[]string     `json:"tags,omitempty"`
	Mileage  *int          `json:"mileage,omitempty"`
	Category *NoteCategory `json:"category,omitempty"`
}

// Apply merges the provided fields into the note.
func (n Note) Apply(p NotePatch) Note {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Date != nil {
		n.Date = *p.Date
	}
	if p.Tags != nil {
		n.Tags = *p.Tags
	}
	if p.Mileage != nil {
		n.Mileage = *p.Mileage
	}
	if p.Category != nil {
		n.Category = *p.Category
	}
	return n
}
