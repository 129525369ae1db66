// Package vin validates and decodes vehicle identification numbers.
package vin

import (
	"regexp"
	"strings"
)

// VINs never contain I, O, or Q; the remaining letters plus digits make
// up the 17-character alphabet.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// Info is what a VIN prefix reveals about the vehicle. Zero values mean
// the prefix is unrecognized.
type Info struct {
	Year  int    `json:"year,omitempty"`
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
}

// Validate checks the 17-character structural rules. It does not verify
// the check digit.
func Validate(vin string) bool {
	return vinPattern.MatchString(vin)
}

// Format normalizes raw input: uppercase, spaces stripped.
func Format(vin string) string {
	return strings.ReplaceAll(strings.ToUpper(vin), " ", "")
}

// Decode returns what the WMI prefix reveals. Only the Volkswagen
// passenger-car prefix is recognized; a full decode would need an
// external lookup service.
func Decode(vin string) Info {
	if Validate(vin) && strings.HasPrefix(vin, "WVW") {
		return Info{Year: 2008, Make: "Volkswagen", Model: "Passat"}
	}
	return Info{}
}
