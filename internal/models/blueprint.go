package models

// BlueprintCategory is the kind of build procedure a blueprint covers.
type BlueprintCategory string

const (
	BlueprintModification BlueprintCategory = "modification"
	BlueprintRepair       BlueprintCategory = "repair"
	BlueprintWiring       BlueprintCategory = "wiring"
	BlueprintFabrication  BlueprintCategory = "fabrication"
)

// BlueprintDifficulty rates how hard a procedure is.
type BlueprintDifficulty string

const (
	DifficultyEasy   BlueprintDifficulty = "easy"
	DifficultyMedium BlueprintDifficulty = "medium"
	DifficultyHard   BlueprintDifficulty = "hard"
	DifficultyExpert BlueprintDifficulty = "expert"
)

// BlueprintStatus tracks a blueprint through its lifecycle.
type BlueprintStatus string

const (
	BlueprintPlanned    BlueprintStatus = "planned"
	BlueprintInProgress BlueprintStatus = "in-progress"
	BlueprintCompleted  BlueprintStatus = "completed"
)

// Blueprint is a step-by-step plan for a repair or modification.
type Blueprint struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Category      BlueprintCategory   `json:"category"` // "modification", "repair", "wiring", "fabrication"
	Description   string              `json:"description"`
	Steps         []string            `json:"steps"`
	Materials     []string            `json:"materials"`
	Tools         []string            `json:"tools"`
	Difficulty    BlueprintDifficulty `json:"difficulty"` // "easy", "medium", "hard", "expert"
	EstimatedTime string              `json:"estimated_time"`
	Cost          float64             `json:"cost"`
	Status        BlueprintStatus     `json:"status"`
	Notes         string              `json:"notes"`
	Tags          []string            `json:"tags"`
	Dimensions    string              `json:"dimensions,omitempty"`
}

// BlueprintPatch carries the fields of a partial update.
type BlueprintPatch struct {
	Title         *string              `json:"title,omitempty"`
	Category      *BlueprintCategory   `json:"category,omitempty"`
	Description   *string              `json:"description,omitempty"`
	Steps         *[]string            `json:"steps,omitempty"`
	Materials     *[]string            `json:"materials,omitempty"`
	Tools         *[]string            `json:"tools,omitempty"`
	Difficulty    *BlueprintDifficulty `json:"difficulty,omitempty"`
	EstimatedTime *string              `json:"estimated_time,omitempty"`
	Cost          *float64             `json:"cost,omitempty"`
	Status        *BlueprintStatus     `json:"status,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
	Tags          *[]string            `json:"tags,omitempty"`
	Dimensions    *string              `json:"dimensions,omitempty"`
}

// Apply merges the provided fields into the blueprint.
func (b Blueprint) Apply(p BlueprintPatch) Blueprint {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Steps != nil {
		b.Steps = *p.Steps
	}
	if p.Materials != nil {
		b.Materials = *p.Materials
	}
	if p.Tools != nil {
		b.Tools = *p.Tools
	}
	if p.Difficulty != nil {
		b.Difficulty = *p.Difficulty
	}
	if p.EstimatedTime != nil {
		b.EstimatedTime = *p.EstimatedTime
	}
	if p.Cost != nil {
		b.Cost = *p.Cost
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if p.Tags != nil {
		b.Tags = *p.Tags
	}
	if p.Dimensions != nil {
		b.Dimensions = *p.Dimensions
	}
	return b
}

// DimensionCategory buckets recorded measurements.
type DimensionCategory string

const (
	DimensionVehicle    DimensionCategory = "vehicle"
	DimensionGlass      DimensionCategory = "glass"
	DimensionInterior   DimensionCategory = "interior"
	DimensionEngine     DimensionCategory = "engine"
	DimensionSuspension DimensionCategory = "suspension"
	DimensionCustom     DimensionCategory = "custom"
)

// Dimension is one recorded measurement of the car or a part.
type Dimension struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    DimensionCategory `json:"category"` // "vehicle", "glass", "interior", "engine", "suspension", "custom"
	Measurement float64           `json:"measurement"`
	Unit        string            `json:"unit"`
	Description string            `json:"description"`
	Reference   string            `json:"reference"`
	Verified    bool              `json:"verified"`
	Notes       string            `json:"notes,omitempty"`
	Tags        []string          `json:"tags"`
}

// DimensionPatch carries the fields of a partial update.
type DimensionPatch struct {
	Name        *string            `json:"name,omitempty"`
	Category    *DimensionCategory `json:"category,omitempty"`
	Measurement *float64           `json:"measurement,omitempty"`
	Unit        *string            `json:"unit,omitempty"`
	Description *string            `json:"description,omitempty"`
	Reference   *string            `json:"reference,omitempty"`
	Verified    *bool              `json:"verified,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	Tags        *[]string          `json:"tags,omitempty"`
}

// Apply merges the provided fields into the dimension.
func (d Dimension) Apply(p DimensionPatch) Dimension {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.Measurement != nil {
		d.Measurement = *p.Measurement
	}
	if p.Unit != nil {
		d.Unit = *p.Unit
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Reference != nil {
		d.Reference = *p.Reference
	}
	if p.Verified != nil {
		d.Verified = *p.Verified
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
	if p.Tags != nil {
		d.Tags = *p.Tags
	}
	return d
}
