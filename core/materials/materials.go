// Package materials - Static engineering reference data
// Read-only lookup tables loaded at process start: the galvanic series and
// a yield-strength database for safety audits. No external files, no
// mutation after init.
package materials

import (
	"strings"

	"mme-calc/core/validate"
	"mme-calc/internal/errors"
)

// GalvanicEntry is one metal in the galvanic series
type GalvanicEntry struct {
	// Name is the canonical metal name
	Name string

	// Potential is the approximate corrosion potential in seawater,
	// volts vs SCE. More negative = more anodic.
	Potential float64
}

// Galvanic series, anodic to cathodic
var galvanicSeries = []GalvanicEntry{
	{"magnesium", -1.60},
	{"zinc", -1.03},
	{"aluminium", -0.76},
	{"mild_steel", -0.60},
	{"cast_iron", -0.50},
	{"brass", -0.30},
	{"copper", -0.20},
	{"nickel", -0.12},
	{"stainless_304", -0.08},
	{"stainless_316", -0.05},
	{"titanium", -0.05},
	{"silver", -0.02},
	{"gold", 0.18},
	{"platinum", 0.22},
}

// GalvanicMetals returns the metal names available for lookup, in
// series order
func GalvanicMetals() []string {
	names := make([]string, len(galvanicSeries))
	for i, e := range galvanicSeries {
		names[i] = e.Name
	}
	return names
}

// GalvanicPotential returns a metal's corrosion potential
func GalvanicPotential(metal string) (float64, error) {
	key := validate.Normalize(metal)
	for _, e := range galvanicSeries {
		if e.Name == key {
			return e.Potential, nil
		}
	}
	return 0, errors.NotFound("metal", metal).
		WithContext("available", strings.Join(GalvanicMetals(), ", "))
}

// StrengthRecord holds reference strength properties for one material
type StrengthRecord struct {
	// Name is the canonical material name
	Name string

	// YieldMPa is the typical yield strength in MPa
	YieldMPa float64

	// UTSMPa is the typical ultimate tensile strength in MPa
	UTSMPa float64
}

// Typical room-temperature values for common structural alloys
// (annealed/normalized condition; reference data, not design allowables)
var strengthTable = []StrengthRecord{
	{"mild_steel", 250, 400},
	{"structural_steel_a36", 250, 400},
	{"steel_4140", 655, 1020},
	{"stainless_304", 215, 505},
	{"stainless_316", 240, 550},
	{"cast_iron_gray", 130, 200},
	{"aluminium_6061_t6", 276, 310},
	{"aluminium_7075_t6", 503, 572},
	{"copper", 70, 220},
	{"brass", 135, 330},
	{"titanium_grade_2", 275, 345},
	{"titanium_6al_4v", 880, 950},
	{"magnesium_az31", 200, 260},
}

// StrengthMaterials returns the material names available for audits
func StrengthMaterials() []string {
	names := make([]string, len(strengthTable))
	for i, r := range strengthTable {
		names[i] = r.Name
	}
	return names
}

// Strength returns the reference strength record for a material
func Strength(material string) (StrengthRecord, error) {
	key := validate.Normalize(material)
	for _, r := range strengthTable {
		if r.Name == key {
			return r, nil
		}
	}
	return StrengthRecord{}, errors.NotFound("material", material).
		WithContext("available", strings.Join(StrengthMaterials(), ", "))
}
