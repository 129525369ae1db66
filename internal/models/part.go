package models

// PartSource is where a part came from.
type PartSource string

const (
	SourceOEM         PartSource = "oem"
	SourceAftermarket PartSource = "aftermarket"
	SourceJunkyard    PartSource = "junkyard"
	SourceCustom      PartSource = "custom"
	SourceECS         PartSource = "ecs"
	SourceAmazon      PartSource = "amazon"
	SourceEbay        PartSource = "ebay"
)

// PartCondition is the condition a part was acquired in.
type PartCondition string

const (
	ConditionNew         PartCondition = "new"
	ConditionUsed        PartCondition = "used"
	ConditionRefurbished PartCondition = "refurbished"
)

// Part is one tracked part, installed or on the shelf.
type Part struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	PartNumber    string        `json:"part_number"`
	Source        PartSource    `json:"source"`
	Compatibility []string      `json:"compatibility"`
	Location      string        `json:"location"`
	Condition     PartCondition `json:"condition"` // "new", "used", "refurbished"
	Installed     bool          `json:"installed"`
	Cost          float64       `json:"cost"`
	PurchaseDate  string        `json:"purchase_date,omitempty"`
	Notes         string        `json:"notes"`
	URL           string        `json:"url,omitempty"`
	Tags          []string      `json:"tags"`
}

// PartPatch carries the fields of a partial update.
type PartPatch struct {
	Name          *string        `json:"name,omitempty"`
	PartNumber    *string        `json:"part_number,omitempty"`
	Source        *PartSource    `json:"source,omitempty"`
	Compatibility *[]string      `json:"compatibility,omitempty"`
	Location      *string        `json:"location,omitempty"`
	Condition     *PartCondition `json:"condition,omitempty"`
	Cost          *float64       `json:"cost,omitempty"`
	PurchaseDate  *string        `json:"purchase_date,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	URL           *string        `json:"url,omitempty"`
	Tags          *[]string      `json:"tags,omitempty"`
}

// Apply merges the provided fields into the part.
func (pt Part) Apply(p PartPatch) Part {
	if p.Name != nil {
		pt.Name = *p.Name
	}
	if p.PartNumber != nil {
		pt.PartNumber = *p.PartNumber
	}
	if p.Source != nil {
		pt.Source = *p.Source
	}
	if p.Compatibility != nil {
		pt.Compatibility = *p.Compatibility
	}
	if p.Location != nil {
		pt.Location = *p.Location
	}
	if p.Condition != nil {
		pt.Condition = *p.Condition
	}
	if p.Cost != nil {
		pt.Cost = *p.Cost
	}
	if p.PurchaseDate != nil {
		pt.PurchaseDate = *p.PurchaseDate
	}
	if p.Notes != nil {
		pt.Notes = *p.Notes
	}
	if p.URL != nil {
		pt.URL = *p.URL
	}
	if p.Tags != nil {
		pt.Tags = *p.Tags
	}
	return pt
}

// ToggleInstalled flips the installed flag.
func (pt Part) ToggleInstalled() Part {
	pt.Installed = !pt.Installed
	return pt
}
