// Package mechanical - Mechanical property formulas
// Hardness conversions, tensile/yield strength, ductility measures,
// true stress-strain, resilience, fatigue, and impact toughness.
// All stresses in MPa unless noted.
package mechanical

import (
	"math"

	"mme-calc/internal/errors"
)

// BrinellToTensile estimates UTS (MPa) from Brinell hardness.
// Standard steel correlation (SAE J417 / ASM): UTS ≈ 3.45 × HB.
func BrinellToTensile(hb float64) (float64, error) {
	if hb <= 0 {
		return 0, errors.Range("Brinell hardness must be positive")
	}
	return 3.45 * hb, nil
}

// VickersToTensile estimates UTS (MPa) from Vickers hardness.
// Empirical steel correlation: UTS ≈ 3.18 × HV.
func VickersToTensile(hv float64) (float64, error) {
	if hv <= 0 {
		return 0, errors.Range("Vickers hardness must be positive")
	}
	return 3.18 * hv, nil
}

// YieldStrength computes engineering yield strength σ_y = F / A₀
// (MPa when F in N, A₀ in mm²).
func YieldStrength(force, area float64) (float64, error) {
	if area <= 0 {
		return 0, errors.Range("cross-sectional area must be positive")
	}
	return force / area, nil
}

// PercentElongation computes (L_f − L₀) / L₀ × 100.
func PercentElongation(l0, lf float64) (float64, error) {
	if l0 <= 0 {
		return 0, errors.Range("original gauge length must be positive")
	}
	return (lf - l0) / l0 * 100, nil
}

// PercentReductionArea computes (A₀ − A_f) / A₀ × 100.
func PercentReductionArea(a0, af float64) (float64, error) {
	if a0 <= 0 {
		return 0, errors.Range("original area must be positive")
	}
	return (a0 - af) / a0 * 100, nil
}

// TrueStress converts engineering stress to true stress:
// σ_true = σ_eng × (1 + ε_eng).
func TrueStress(engStress, engStrain float64) (float64, error) {
	if engStrain <= -1 {
		return 0, errors.Range("engineering strain must be > -1")
	}
	return engStress * (1 + engStrain), nil
}

// TrueStrain converts engineering strain to true strain:
// ε_true = ln(1 + ε_eng).
func TrueStrain(engStrain float64) (float64, error) {
	if engStrain <= -1 {
		return 0, errors.Range("engineering strain must be > -1")
	}
	return math.Log(1 + engStrain), nil
}

// EngineeringStrain inverts TrueStrain: ε_eng = exp(ε_true) − 1.
func EngineeringStrain(trueStrain float64) float64 {
	return math.Expm1(trueStrain)
}

// EngineeringStress inverts TrueStress: σ_eng = σ_true / (1 + ε_eng).
func EngineeringStress(trueStress, engStrain float64) (float64, error) {
	if engStrain <= -1 {
		return 0, errors.Range("engineering strain must be > -1")
	}
	return trueStress / (1 + engStrain), nil
}

// ModulusOfResilience computes U_r = σ_y² / (2E), energy per unit volume.
func ModulusOfResilience(yieldStress, youngsModulus float64) (float64, error) {
	if youngsModulus <= 0 {
		return 0, errors.Range("Young's modulus must be positive")
	}
	return yieldStress * yieldStress / (2 * youngsModulus), nil
}

// BasquinLife solves Basquin's equation σ_a = σ_f' × (2N)^b for cycles
// to failure: N = 0.5 × (σ_a / σ_f')^(1/b).
func BasquinLife(stressAmplitude, fatigueCoeff, b float64) (float64, error) {
	if stressAmplitude <= 0 || fatigueCoeff <= 0 {
		return 0, errors.Range("stress values must be positive")
	}
	if b >= 0 {
		return 0, errors.Range("Basquin exponent b must be negative")
	}
	return 0.5 * math.Pow(stressAmplitude/fatigueCoeff, 1/b), nil
}

// BasquinAmplitude computes the allowable stress amplitude for a given
// life: σ_a = σ_f' × (2N)^b.
func BasquinAmplitude(fatigueCoeff, cycles, b float64) (float64, error) {
	if fatigueCoeff <= 0 {
		return 0, errors.Range("fatigue strength coefficient must be positive")
	}
	if cycles <= 0 {
		return 0, errors.Range("number of cycles must be positive")
	}
	return fatigueCoeff * math.Pow(2*cycles, b), nil
}

// CharpyToughness computes impact toughness = absorbed energy /
// cross-section area (J/mm²).
func CharpyToughness(energy, area float64) (float64, error) {
	if area <= 0 {
		return 0, errors.Range("cross-section area must be positive")
	}
	return energy / area, nil
}
