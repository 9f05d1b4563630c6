// Package casting - Casting and solidification formulas
// Chvorinov's rule, riser modulus, shrinkage allowance, fluidity index,
// and the Newtonian (lumped-capacitance) cooling rate.
package casting

import (
	"math"

	"mme-calc/internal/errors"
)

// ChvorinovTime computes solidification time t_s = B × (V/A)ⁿ.
// B is the mold constant (s/cm² for n=2), n defaults to 2 in the
// registered calculator.
func ChvorinovTime(b, volume, surfaceArea, n float64) (float64, error) {
	if b <= 0 {
		return 0, errors.Range("mold constant must be positive")
	}
	if volume <= 0 || surfaceArea <= 0 {
		return 0, errors.Range("volume and surface area must be positive")
	}
	if n <= 0 {
		return 0, errors.Range("exponent must be positive")
	}
	return b * math.Pow(volume/surfaceArea, n), nil
}

// Modulus computes the casting/riser modulus M = V / A. A sound riser
// needs a modulus exceeding the casting's.
func Modulus(volume, surfaceArea float64) (float64, error) {
	if volume <= 0 {
		return 0, errors.Range("volume must be positive")
	}
	if surfaceArea <= 0 {
		return 0, errors.Range("surface area must be positive")
	}
	return volume / surfaceArea, nil
}

// ShrinkageAllowance computes the pattern dimension
// L_pattern = L × (1 + s/100). Typical s: cast iron ~1.0, steel ~2.0,
// aluminium ~1.3, brass/bronze ~1.5.
func ShrinkageAllowance(length, shrinkagePct float64) (float64, error) {
	if length <= 0 {
		return 0, errors.Range("length must be positive")
	}
	if shrinkagePct < 0 {
		return 0, errors.Range("shrinkage percentage must be non-negative")
	}
	return length * (1 + shrinkagePct/100), nil
}

// FluidityIndex computes the simplified fluidity index
// f = ρ × c_p × ΔT_superheat / L_f. Higher values flow farther.
func FluidityIndex(rho, cp, superheat, latentHeat float64) (float64, error) {
	if rho <= 0 || cp <= 0 {
		return 0, errors.Range("density and specific heat must be positive")
	}
	if superheat < 0 {
		return 0, errors.Range("superheat must be non-negative")
	}
	if latentHeat <= 0 {
		return 0, errors.Range("latent heat must be positive")
	}
	return rho * cp * superheat / latentHeat, nil
}

// NewtonianCoolingRate computes the lumped-capacitance cooling rate
// dT/dt = −[h × A / (ρ × c_p × V)] × (T − T_∞) in K/s; negative values
// mean the casting is cooling.
func NewtonianCoolingRate(h, area, rho, cp, volume, tCurrent, tAmbient float64) (float64, error) {
	if h <= 0 || area <= 0 {
		return 0, errors.Range("heat transfer coefficient and area must be positive")
	}
	if rho <= 0 || cp <= 0 || volume <= 0 {
		return 0, errors.Range("density, specific heat, and volume must be positive")
	}
	group := h * area / (rho * cp * volume)
	return -group * (tCurrent - tAmbient), nil
}
