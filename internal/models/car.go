package models

// CarMode selects the display theme for the app.
type CarMode string

const (
	ModeDaily CarMode = "daily"
	ModeShow  CarMode = "show"
)

// CarProfile identifies the tracked vehicle. There is exactly one per
// garage. ActualMileage is always ClusterMileage + MileageOffset; it is
// only ever recomputed through SetClusterMileage.
type CarProfile struct {
	VIN             string  `json:"vin"`
	Year            int     `json:"year"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	Trim            string  `json:"trim"`
	Engine          string  `json:"engine"`
	Transmission    string  `json:"transmission"`
	Color           string  `json:"color"`
	PurchaseDate    string  `json:"purchase_date"`
	PurchaseMileage int     `json:"purchase_mileage"`
	ClusterMileage  int     `json:"cluster_mileage"`
	ActualMileage   int     `json:"actual_mileage"`
	MileageOffset   int     `json:"mileage_offset"` // cluster swap correction, constant
	CurrentMode     CarMode `json:"current_mode"`   // "daily" or "show"
	Nickname        string  `json:"nickname"`
}

// CarProfilePatch updates identity fields. Mileage fields are absent on
// purpose: cluster mileage goes through SetClusterMileage so the actual
// mileage invariant cannot be broken by a partial update.
type CarProfilePatch struct {
	VIN             *string  `json:"vin,omitempty"`
	Year            *int     `json:"year,omitempty"`
	Make            *string  `json:"make,omitempty"`
	Model           *string  `json:"model,omitempty"`
	Trim            *string  `json:"trim,omitempty"`
	Engine          *string  `json:"engine,omitempty"`
	Transmission    *string  `json:"transmission,omitempty"`
	Color           *string  `json:"color,omitempty"`
	PurchaseDate    *string  `json:"purchase_date,omitempty"`
	PurchaseMileage *int     `json:"purchase_mileage,omitempty"`
	CurrentMode     *CarMode `json:"current_mode,omitempty"`
	Nickname        *string  `json:"nickname,omitempty"`
}

// Apply merges the provided fields into the profile.
func (p CarProfile) Apply(patch CarProfilePatch) CarProfile {
	if patch.VIN != nil {
		p.VIN = *patch.VIN
	}
	if patch.Year != nil {
		p.Year = *patch.Year
	}
	if patch.Make != nil {
		p.Make = *patch.Make
	}
	if patch.Model != nil {
		p.Model = *patch.Model
	}
	if patch.Trim != nil {
		p.Trim = *patch.Trim
	}
	if patch.Engine != nil {
		p.Engine = *patch.Engine
	}
	if patch.Transmission != nil {
		p.Transmission = *patch.Transmission
	}
	if patch.Color != nil {
		p.Color = *patch.Color
	}
	if patch.PurchaseDate != nil {
		p.PurchaseDate = *patch.PurchaseDate
	}
	if patch.PurchaseMileage != nil {
		p.PurchaseMileage = *patch.PurchaseMileage
	}
	if patch.CurrentMode != nil {
		p.CurrentMode = *patch.CurrentMode
	}
	if patch.Nickname != nil {
		p.Nickname = *patch.Nickname
	}
	return p
}

// SetClusterMileage records a new cluster reading and recomputes the
// actual mileage from the fixed offset.
func (p CarProfile) SetClusterMileage(cluster int) CarProfile {
	p.ClusterMileage = cluster
	p.ActualMileage = cluster + p.MileageOffset
	return p
}

// ToggleMode flips between daily and show mode.
func (p CarProfile) ToggleMode() CarProfile {
	if p.CurrentMode == ModeDaily {
		p.CurrentMode = ModeShow
	} else {
		p.CurrentMode = ModeDaily
	}
	return p
}
