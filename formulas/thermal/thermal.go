// Package thermal - Thermal property formulas
// Heat conduction (Fourier), thermal expansion, series composite slab
// conduction, Newton's law of cooling, and thermal diffusivity.
// Temperatures are differences in K (or °C, equivalent for ΔT).
package thermal

import (
	"math"

	"mme-calc/internal/errors"
)

// Layer is one slab in a series composite wall
type Layer struct {
	// Thickness in m
	Thickness float64

	// Conductivity in W/m·K
	Conductivity float64
}

// FourierHeatFlux computes the steady-state conduction flux magnitude
// q = k × |ΔT| / dx in W/m².
func FourierHeatFlux(k, deltaT, dx float64) (float64, error) {
	if k <= 0 {
		return 0, errors.Range("thermal conductivity must be positive")
	}
	if dx <= 0 {
		return 0, errors.Range("thickness must be positive")
	}
	return k * math.Abs(deltaT) / dx, nil
}

// LinearExpansion computes ΔL = α × L₀ × ΔT (same unit as L₀).
func LinearExpansion(alpha, l0, deltaT float64) (float64, error) {
	if l0 <= 0 {
		return 0, errors.Range("original length must be positive")
	}
	return alpha * l0 * deltaT, nil
}

// VolumetricExpansion computes ΔV ≈ 3α × V₀ × ΔT for an isotropic
// material.
func VolumetricExpansion(alpha, v0, deltaT float64) (float64, error) {
	if v0 <= 0 {
		return 0, errors.Range("original volume must be positive")
	}
	return 3 * alpha * v0 * deltaT, nil
}

// CompositeSlabFlux computes steady-state heat flux through a series
// composite slab: q = |ΔT| / Σ(Lᵢ/kᵢ) in W/m².
func CompositeSlabFlux(deltaT float64, layers []Layer) (float64, error) {
	if len(layers) == 0 {
		return 0, errors.Range("at least one layer is required")
	}
	resistance := 0.0
	for _, l := range layers {
		if l.Thickness <= 0 {
			return 0, errors.Range("layer thickness must be positive")
		}
		if l.Conductivity <= 0 {
			return 0, errors.Range("layer conductivity must be positive")
		}
		resistance += l.Thickness / l.Conductivity
	}
	return math.Abs(deltaT) / resistance, nil
}

// NewtonCooling computes the convective heat transfer rate
// Q̇ = h × A × (T_s − T_∞) in W.
func NewtonCooling(h, area, tSurface, tAmbient float64) (float64, error) {
	if area <= 0 {
		return 0, errors.Range("surface area must be positive")
	}
	return h * area * (tSurface - tAmbient), nil
}

// ThermalDiffusivity computes α = k / (ρ × c_p) in m²/s.
func ThermalDiffusivity(k, rho, cp float64) (float64, error) {
	if k <= 0 || rho <= 0 || cp <= 0 {
		return 0, errors.Range("conductivity, density, and specific heat must be positive")
	}
	return k / (rho * cp), nil
}
