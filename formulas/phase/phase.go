// Package phase - Phase transformation formulas
// Lever rule, Gibbs phase rule, Avrami kinetics, IIW carbon equivalent,
// and Scheil micro-segregation. Compositions in wt%.
package phase

import (
	"math"

	"mme-calc/internal/errors"
)

// LeverRule computes the phase weight fractions on a tie line:
// W_α = (C_β − C₀) / (C_β − C_α), W_β = 1 − W_α.
// C₀ must lie within the two-phase field [C_α, C_β]; the returned
// fractions are non-negative and sum to 1.
func LeverRule(c0, cAlpha, cBeta float64) (wAlpha, wBeta float64, err error) {
	if cAlpha == cBeta {
		return 0, 0, errors.Range("phase boundary compositions must differ")
	}
	lo, hi := cAlpha, cBeta
	if lo > hi {
		lo, hi = hi, lo
	}
	if c0 < lo || c0 > hi {
		return 0, 0, errors.Rangef("overall composition %g is outside the two-phase field [%g, %g]", c0, lo, hi)
	}
	wAlpha = (cBeta - c0) / (cBeta - cAlpha)
	return wAlpha, 1 - wAlpha, nil
}

// GibbsPhaseRule computes degrees of freedom F = C − P + 2.
func GibbsPhaseRule(components, phases int) (int, error) {
	if components < 1 || phases < 1 {
		return 0, errors.Range("components and phases must be >= 1")
	}
	f := components - phases + 2
	if f < 0 {
		return 0, errors.Range("invalid system: degrees of freedom cannot be negative")
	}
	return f, nil
}

// AvramiFraction computes the fraction transformed
// X = 1 − exp(−k × tⁿ). The result is always in [0, 1] and is
// monotonically non-decreasing in t for k, n > 0.
func AvramiFraction(k, t, n float64) (float64, error) {
	if k < 0 {
		return 0, errors.Range("rate constant k must be non-negative")
	}
	if t < 0 {
		return 0, errors.Range("time must be non-negative")
	}
	if n < 0 {
		return 0, errors.Range("Avrami exponent n must be non-negative")
	}
	return 1 - math.Exp(-k*math.Pow(t, n)), nil
}

// Weldability bands for the IIW carbon equivalent
const (
	CEGoodWeldability = 0.40
	CEFairWeldability = 0.60
)

// CarbonEquivalent computes the IIW carbon equivalent for weldability:
// CE = C + Mn/6 + (Cr+Mo+V)/5 + (Ni+Cu)/15, all in wt%.
func CarbonEquivalent(c, mn, cr, mo, v, ni, cu float64) (float64, error) {
	for _, pct := range []float64{c, mn, cr, mo, v, ni, cu} {
		if pct < 0 {
			return 0, errors.Range("alloying element content must be non-negative")
		}
	}
	return c + mn/6 + (cr+mo+v)/5 + (ni+cu)/15, nil
}

// WeldabilityVerdict classifies a carbon equivalent value
func WeldabilityVerdict(ce float64) string {
	switch {
	case ce < CEGoodWeldability:
		return "Good weldability"
	case ce <= CEFairWeldability:
		return "Fair weldability - preheat recommended"
	default:
		return "Poor weldability - special procedures needed"
	}
}

// ScheilEquation computes the solid composition during non-equilibrium
// solidification: C_s = k × C₀ × (1 − f_s)^(k−1), with 0 ≤ f_s < 1.
func ScheilEquation(k, c0, fs float64) (float64, error) {
	if k <= 0 {
		return 0, errors.Range("partition coefficient must be positive")
	}
	if fs < 0 || fs >= 1 {
		return 0, errors.Range("fraction solid must be in [0, 1)")
	}
	return k * c0 * math.Pow(1-fs, k-1), nil
}
