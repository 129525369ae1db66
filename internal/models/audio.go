package models

// AudioComponentType is the kind of audio hardware.
type AudioComponentType string

const (
	AudioSpeakers  AudioComponentType = "speakers"
	AudioSubwoofer AudioComponentType = "subwoofer"
	AudioAmplifier AudioComponentType = "amplifier"
	AudioHeadUnit  AudioComponentType = "head-unit"
	AudioTweeter   AudioComponentType = "tweeter"
	AudioProcessor AudioComponentType = "processor"
)

// AudioComponent is one piece of the audio system. InstallDate is present
// exactly when Installed is true.
type AudioComponent struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Type        AudioComponentType `json:"type"`
	Location    string             `json:"location"`
	Brand       string             `json:"brand"`
	Model       string             `json:"model"`
	PowerRating string             `json:"power_rating,omitempty"`
	Impedance   string             `json:"impedance,omitempty"`
	Installed   bool               `json:"installed"`
	InstallDate string             `json:"install_date,omitempty"`
	Cost        float64            `json:"cost"`
	Notes       string             `json:"notes"`
	Tags        []string           `json:"tags"`
}

// AudioComponentPatch carries the fields of a partial update. Installed
// is absent on purpose: the flag goes through ToggleInstalled so the
// install date coupling holds.
type AudioComponentPatch struct {
	Name        *string             `json:"name,omitempty"`
	Type        *AudioComponentType `json:"type,omitempty"`
	Location    *string             `json:"location,omitempty"`
	Brand       *string             `json:"brand,omitempty"`
	Model       *string             `json:"model,omitempty"`
	PowerRating *string             `json:"power_rating,omitempty"`
	Impedance   *string             `json:"impedance,omitempty"`
	Cost        *float64            `json:"cost,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
	Tags        *[]string           `json:"tags,omitempty"`
}

// Apply merges the provided fields into the component.
func (c AudioComponent) Apply(p AudioComponentPatch) AudioComponent {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Brand != nil {
		c.Brand = *p.Brand
	}
	if p.Model != nil {
		c.Model = *p.Model
	}
	if p.PowerRating != nil {
		c.PowerRating = *p.PowerRating
	}
	if p.Impedance != nil {
		c.Impedance = *p.Impedance
	}
	if p.Cost != nil {
		c.Cost = *p.Cost
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	return c
}

// ToggleInstalled flips the installed flag. Flipping to installed stamps
// the install date; flipping back clears it.
func (c AudioComponent) ToggleInstalled(today string) AudioComponent {
	c.Installed = !c.Installed
	if c.Installed {
		c.InstallDate = today
	} else {
		c.InstallDate = ""
	}
	return c
}
