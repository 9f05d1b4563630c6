// Package stress - Stress and strain analysis formulas
// Hooke's law, elastic constants, von Mises equivalent stress, factor of
// safety, stress concentration, and steady-state creep. Stresses in MPa.
package stress

import (
	"math"

	"mme-calc/internal/errors"
)

// GasConstant is R in J/mol·K
const GasConstant = 8.314

// HookeStress computes σ = E × ε (uniaxial).
func HookeStress(e, strain float64) (float64, error) {
	if e <= 0 {
		return 0, errors.Range("Young's modulus must be positive")
	}
	return e * strain, nil
}

// HookeStrain computes ε = σ / E.
func HookeStrain(e, stress float64) (float64, error) {
	if e <= 0 {
		return 0, errors.Range("Young's modulus must be positive")
	}
	return stress / e, nil
}

// PoissonLateralStrain computes ε_lateral = −ν × ε_axial.
func PoissonLateralStrain(nu, axialStrain float64) float64 {
	return -nu * axialStrain
}

// ShearModulus computes G = E / [2(1 + ν)].
func ShearModulus(e, nu float64) (float64, error) {
	if e <= 0 {
		return 0, errors.Range("Young's modulus must be positive")
	}
	if nu == -1 {
		return 0, errors.Range("(1 + ν) must not be zero")
	}
	return e / (2 * (1 + nu)), nil
}

// BulkModulus computes K = E / [3(1 − 2ν)]; undefined at ν = 0.5.
func BulkModulus(e, nu float64) (float64, error) {
	if e <= 0 {
		return 0, errors.Range("Young's modulus must be positive")
	}
	if nu == 0.5 {
		return 0, errors.Range("(1 - 2ν) must not be zero (ν ≠ 0.5)")
	}
	return e / (3 * (1 - 2*nu)), nil
}

// VonMises computes the equivalent stress from principal stresses:
// σ_vm = √(½[(σ₁−σ₂)² + (σ₂−σ₃)² + (σ₃−σ₁)²]).
func VonMises(s1, s2, s3 float64) float64 {
	return math.Sqrt(0.5 * ((s1-s2)*(s1-s2) + (s2-s3)*(s2-s3) + (s3-s1)*(s3-s1)))
}

// FactorOfSafety computes FoS = σ_yield / σ_applied.
func FactorOfSafety(yieldStrength, appliedStress float64) (float64, error) {
	if yieldStrength <= 0 {
		return 0, errors.Range("yield strength must be positive")
	}
	if appliedStress == 0 {
		return 0, errors.Range("applied stress must not be zero")
	}
	return yieldStrength / appliedStress, nil
}

// Safety verdict strings
const (
	VerdictSafe   = "SAFE"
	VerdictUnsafe = "UNSAFE"
)

// SafetyVerdict classifies a factor of safety against a threshold
// (the design is safe iff FoS >= threshold).
func SafetyVerdict(fos, threshold float64) string {
	if fos >= threshold {
		return VerdictSafe
	}
	return VerdictUnsafe
}

// StressConcentration computes σ_max = K_t × σ_nom.
func StressConcentration(kt, nominal float64) (float64, error) {
	if kt <= 0 {
		return 0, errors.Range("stress concentration factor must be positive")
	}
	return kt * nominal, nil
}

// CreepRate computes the Norton power-law steady-state creep rate
// ε̇ = A × σⁿ × exp(−Q / RT), with Q in J/mol and T in K.
func CreepRate(a, stress, n, q, t float64) (float64, error) {
	if stress < 0 {
		return 0, errors.Range("stress must be non-negative")
	}
	if q < 0 {
		return 0, errors.Range("activation energy must be non-negative")
	}
	if t <= 0 {
		return 0, errors.Range("temperature must be positive (Kelvin)")
	}
	return a * math.Pow(stress, n) * math.Exp(-q/(GasConstant*t)), nil
}
