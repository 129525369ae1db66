package models

// PhotoCategory buckets gallery photos.
type PhotoCategory string

const (
	PhotoMod         PhotoCategory = "mod"
	PhotoLighting    PhotoCategory = "lighting"
	PhotoAesthetic   PhotoCategory = "aesthetic"
	PhotoDiagnostic  PhotoCategory = "diagnostic"
	PhotoMaintenance PhotoCategory = "maintenance"
)

// PhotoEntry is one gallery photo.
type PhotoEntry struct {
	ID          string        `json:"id"`
	URL         string        `json:"url"`
	Date        string        `json:"date"`
	Title       string        `json:"title"`
	Tags        []string      `json:"tags"`
	Description string        `json:"description"`
	Category    PhotoCategory `json:"category"` // "mod", "lighting", "aesthetic", "diagnostic", "maintenance"
	Version     string        `json:"version,omitempty"`
}

// PhotoPatch carries the fields of a partial update.
type PhotoPatch struct {
	URL         *string        `json:"url,omitempty"`
	Date        *string        `json:"date,omitempty"`
	Title       *string        `json:"title,omitempty"`
	Tags        *[]string      `json:"tags,omitempty"`
	Description *string        `json:"description,omitempty"`
	Category    *PhotoCategory `json:"category,omitempty"`
	Version     *string        `json:"version,omitempty"`
}

// Apply merges the provided fields into the photo.
func (e PhotoEntry) Apply(p PhotoPatch) PhotoEntry {
	if p.URL != nil {
		e.URL = *p.URL
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Version != nil {
		e.Version = *p.Version
	}
	return e
}
