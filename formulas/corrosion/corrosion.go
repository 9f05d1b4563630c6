// Package corrosion - Corrosion and degradation formulas
// Weight-loss corrosion rates, Pilling-Bedworth ratio, galvanic couple
// analysis over the built-in series, and parabolic oxidation kinetics.
package corrosion

import (
	"math"

	"mme-calc/core/materials"
	"mme-calc/internal/errors"
)

// Weight-loss rate constants for W in g, A in cm², T in hours,
// D in g/cm³ (ASTM G31 convention)
const (
	KMilsPerYear = 3.45e6
	KMMPerYear   = 8.76e4
)

// RateMPY computes the corrosion rate in mils per year:
// CR = (K × W) / (A × T × D).
func RateMPY(weightLoss, density, area, timeHours float64) (float64, error) {
	return weightLossRate(KMilsPerYear, weightLoss, density, area, timeHours)
}

// RateMMPY computes the corrosion rate in mm per year.
func RateMMPY(weightLoss, density, area, timeHours float64) (float64, error) {
	return weightLossRate(KMMPerYear, weightLoss, density, area, timeHours)
}

func weightLossRate(k, weightLoss, density, area, timeHours float64) (float64, error) {
	if weightLoss < 0 {
		return 0, errors.Range("weight loss must be non-negative")
	}
	if density <= 0 || area <= 0 || timeHours <= 0 {
		return 0, errors.Range("density, area, and time must be positive")
	}
	return k * weightLoss / (area * timeHours * density), nil
}

// Pilling-Bedworth classification bounds
const (
	PBRPorousBelow   = 1.0
	PBRProtectiveMax = 2.0
)

// PillingBedworth computes PBR = (M_oxide × ρ_metal) / (n × M_metal × ρ_oxide).
func PillingBedworth(mOxide, rhoMetal, n, mMetal, rhoOxide float64) (float64, error) {
	if mOxide <= 0 || rhoMetal <= 0 || n <= 0 || mMetal <= 0 || rhoOxide <= 0 {
		return 0, errors.Range("all parameters must be positive")
	}
	return (mOxide * rhoMetal) / (n * mMetal * rhoOxide), nil
}

// PBRVerdict classifies oxide character from the Pilling-Bedworth ratio
func PBRVerdict(pbr float64) string {
	switch {
	case pbr < PBRPorousBelow:
		return "Porous, non-protective oxide"
	case pbr <= PBRProtectiveMax:
		return "Protective oxide"
	default:
		return "Oxide prone to spalling or cracking"
	}
}

// Couple is the outcome of a galvanic pairing
type Couple struct {
	// PotentialDiff is |V_a − V_b| in volts
	PotentialDiff float64

	// Anode is the metal that corrodes preferentially
	Anode string

	// Cathode is the protected metal
	Cathode string
}

// GalvanicCouple looks both metals up in the galvanic series and
// identifies the anode (more negative potential) and cathode.
func GalvanicCouple(metalA, metalB string) (Couple, error) {
	va, err := materials.GalvanicPotential(metalA)
	if err != nil {
		return Couple{}, err
	}
	vb, err := materials.GalvanicPotential(metalB)
	if err != nil {
		return Couple{}, err
	}
	c := Couple{PotentialDiff: math.Abs(va - vb), Anode: metalA, Cathode: metalB}
	if vb < va {
		c.Anode, c.Cathode = metalB, metalA
	}
	return c, nil
}

// ParabolicOxideThickness computes oxide growth under parabolic
// kinetics: x² = k_p × t, so x = √(k_p × t).
func ParabolicOxideThickness(kp, t float64) (float64, error) {
	if kp < 0 || t < 0 {
		return 0, errors.Range("rate constant and time must be non-negative")
	}
	return math.Sqrt(kp * t), nil
}
