// Package composite - Composite material formulas
// Rule of mixtures (Voigt and Reuss bounds), composite density, critical
// fiber length, and the Halpin-Tsai equation. Moduli in MPa.
package composite

import (
	"math"

	"mme-calc/internal/errors"
)

// FractionTolerance bounds |V_f + V_m − 1| for a valid fraction pair
const FractionTolerance = 1e-6

// DefaultXi is the Halpin-Tsai reinforcement geometry parameter for
// circular fibers loaded transversely
const DefaultXi = 2.0

func checkFractions(vf, vm float64) error {
	if vf < 0 || vf > 1 || vm < 0 || vm > 1 {
		return errors.Range("volume fractions must be in [0, 1]")
	}
	if math.Abs(vf+vm-1) > FractionTolerance {
		return errors.Rangef("fiber and matrix volume fractions must sum to 1 (got %g)", vf+vm)
	}
	return nil
}

// Longitudinal computes the iso-strain (Voigt) rule of mixtures:
// E_c = E_f × V_f + E_m × V_m. Also applies to strength and density.
func Longitudinal(ef, vf, em, vm float64) (float64, error) {
	if ef <= 0 || em <= 0 {
		return 0, errors.Range("fiber and matrix properties must be positive")
	}
	if err := checkFractions(vf, vm); err != nil {
		return 0, err
	}
	return ef*vf + em*vm, nil
}

// Transverse computes the iso-stress (Reuss) inverse rule of mixtures:
// 1/E_c = V_f/E_f + V_m/E_m.
func Transverse(ef, vf, em, vm float64) (float64, error) {
	if ef <= 0 || em <= 0 {
		return 0, errors.Range("moduli must be positive")
	}
	if err := checkFractions(vf, vm); err != nil {
		return 0, err
	}
	return 1 / (vf/ef + vm/em), nil
}

// Density computes ρ_c = ρ_f × V_f + ρ_m × (1 − V_f).
func Density(rhoFiber, vf, rhoMatrix float64) (float64, error) {
	if rhoFiber <= 0 || rhoMatrix <= 0 {
		return 0, errors.Range("densities must be positive")
	}
	if vf < 0 || vf > 1 {
		return 0, errors.Range("fiber volume fraction must be in [0, 1]")
	}
	return rhoFiber*vf + rhoMatrix*(1-vf), nil
}

// CriticalFiberLength computes l_c = (σ_f × d) / (2 × τ_c). Fibers
// longer than l_c carry load effectively.
func CriticalFiberLength(sigmaF, d, tauC float64) (float64, error) {
	if sigmaF <= 0 {
		return 0, errors.Range("fiber strength must be positive")
	}
	if d <= 0 || tauC <= 0 {
		return 0, errors.Range("fiber diameter and shear strength must be positive")
	}
	return sigmaF * d / (2 * tauC), nil
}

// HalpinTsai computes the semi-empirical composite modulus:
// η = (E_f/E_m − 1) / (E_f/E_m + ξ), E_c = E_m × (1 + ξηV_f) / (1 − ηV_f).
// ξ is the reinforcement geometry parameter; DefaultXi applies to
// circular fibers in transverse loading.
func HalpinTsai(em, ef, vf, xi float64) (float64, error) {
	if em <= 0 || ef <= 0 {
		return 0, errors.Range("moduli must be positive")
	}
	if vf < 0 || vf > 1 {
		return 0, errors.Range("fiber volume fraction must be in [0, 1]")
	}
	if xi <= 0 {
		return 0, errors.Range("geometry parameter ξ must be positive")
	}
	ratio := ef / em
	eta := (ratio - 1) / (ratio + xi)
	return em * (1 + xi*eta*vf) / (1 - eta*vf), nil
}
