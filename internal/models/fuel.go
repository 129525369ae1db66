package models

// Octane is the pump rating of a fill-up.
type Octane int

const (
	Octane87 Octane = 87
	Octane89 Octane = 89
	Octane91 Octane = 91
	Octane93 Octane = 93
)

// IsValidOctane checks if a rating belongs to the closed set.
func IsValidOctane(o Octane) bool {
	switch o {
	case Octane87, Octane89, Octane91, Octane93:
		return true
	default:
		return false
	}
}

// FuelEntry is one fill-up. MPG is present only when an earlier full-tank
// entry anchors the calculation; partial fills never carry one. It is
// computed once at insert and not recomputed when older entries change.
type FuelEntry struct {
	ID               string   `json:"id"`
	Date             string   `json:"date"`
	Mileage          int      `json:"mileage"`
	Gallons          float64  `json:"gallons"`
	Octane           Octane   `json:"octane"` // 87, 89, 91, 93
	Cost             float64  `json:"cost"`   // price per gallon
	FullTank         bool     `json:"full_tank"`
	MPG              *float64 `json:"mpg,omitempty"`
	Notes            string   `json:"notes"`
	PerformanceNotes string   `json:"performance_notes"`
	Tags             []string `json:"tags"`
}

// FuelEntryPatch carries the fields of a partial update.
type FuelEntryPatch struct {
	Date             *string   `json:"date,omitempty"`
	Mileage          *int      `json:"mileage,omitempty"`
	Gallons          *float64  `json:"gallons,omitempty"`
	Octane           *Octane   `json:"octane,omitempty"`
	Cost             *float64  `json:"cost,omitempty"`
	FullTank         *bool     `json:"full_tank,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	PerformanceNotes *string   `json:"performance_notes,omitempty"`
	Tags             *[]string `json:"tags,omitempty"`
}

// Apply merges the provided fields into the entry. MPG is left alone;
// it only changes through the fuel store's recalculation path.
func (e FuelEntry) Apply(p FuelEntryPatch) FuelEntry {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Mileage != nil {
		e.Mileage = *p.Mileage
	}
	if p.Gallons != nil {
		e.Gallons = *p.Gallons
	}
	if p.Octane != nil {
		e.Octane = *p.Octane
	}
	if p.Cost != nil {
		e.Cost = *p.Cost
	}
	if p.FullTank != nil {
		e.FullTank = *p.FullTank
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.PerformanceNotes != nil {
		e.PerformanceNotes = *p.PerformanceNotes
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
	return e
}
