package models

// CrashLocation says where on the car the damage is.
type CrashLocation string

const (
	CrashFront    CrashLocation = "front"
	CrashRear     CrashLocation = "rear"
	CrashSide     CrashLocation = "side"
	CrashMultiple CrashLocation = "multiple"
)

// CrashSeverity rates the damage.
type CrashSeverity string

const (
	CrashMinor    CrashSeverity = "minor"
	CrashModerate CrashSeverity = "moderate"
	CrashMajor    CrashSeverity = "major"
)

// RepairStatus tracks a crash repair through its lifecycle.
type RepairStatus string

const (
	RepairPending    RepairStatus = "pending"
	RepairInProgress RepairStatus = "in-progress"
	RepairCompleted  RepairStatus = "completed"
)

// CrashEntry is one crash incident and its repair state. ActualCost is
// nil until the repair is costed.
type CrashEntry struct {
	ID               string        `json:"id"`
	Date             string        `json:"date"`
	Location         CrashLocation `json:"location"` // "front", "rear", "side", "multiple"
	Severity         CrashSeverity `json:"severity"` // "minor", "moderate", "major"
	Description      string        `json:"description"`
	DamageAssessment []string      `json:"damage_assessment"`
	RepairStatus     RepairStatus  `json:"repair_status"`
	EstimatedCost    float64       `json:"estimated_cost"`
	ActualCost       *float64      `json:"actual_cost,omitempty"`
	PartsNeeded      []string      `json:"parts_needed"`
	DonorParts       []string      `json:"donor_parts"`
	InsuranceClaim   bool          `json:"insurance_claim"`
	Photos           []string      `json:"photos"`
	Notes            string        `json:"notes"`
	Tags             []string      `json:"tags"`
}

// CrashEntryPatch carries the fields of a partial update.
type CrashEntryPatch struct {
	Date             *string        `json:"date,omitempty"`
	Location         *CrashLocation `json:"location,omitempty"`
	Severity         *CrashSeverity `json:"severity,omitempty"`
	Description      *string        `json:"description,omitempty"`
	DamageAssessment *[]string      `json:"damage_assessment,omitempty"`
	RepairStatus     *RepairStatus  `json:"repair_status,omitempty"`
	EstimatedCost    *float64       `json:"estimated_cost,omitempty"`
	ActualCost       *float64       `json:"actual_cost,omitempty"`
	PartsNeeded      *[]string      `json:"parts_needed,omitempty"`
	DonorParts       *[]string      `json:"donor_parts,omitempty"`
	InsuranceClaim   *bool          `json:"insurance_claim,omitempty"`
	Photos           *[]string      `json:"photos,omitempty"`
	Notes            *string        `json:"notes,omitempty"`
	Tags             *[]string      `json:"tags,omitempty"`
}

// Apply merges the provided fields into the entry.
func (e CrashEntry) Apply(p CrashEntryPatch) CrashEntry {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Severity != nil {
		e.Severity = *p.Severity
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.DamageAssessment != nil {
		e.DamageAssessment = *p.DamageAssessment
	}
	if p.RepairStatus != nil {
		e.RepairStatus = *p.RepairStatus
	}
	if p.EstimatedCost != nil {
		e.EstimatedCost = *p.EstimatedCost
	}
	if p.ActualCost != nil {
		e.ActualCost = p.ActualCost
	}
	if p.PartsNeeded != nil {
		e.PartsNeeded = *p.PartsNeeded
	}
	if p.DonorParts != nil {
		e.DonorParts = *p.DonorParts
	}
	if p.InsuranceClaim != nil {
		e.InsuranceClaim = *p.InsuranceClaim
	}
	if p.Photos != nil {
		e.Photos = *p.Photos
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
	return e
}
