// Package crystal - Crystallography and defect formulas
// Atomic packing factors, planar/linear density, ASTM grain size,
// Hall-Petch strengthening, and Burgers vector magnitude.
package crystal

import (
	"math"

	"mme-calc/internal/errors"
)

// Structure identifies a crystal structure
type Structure string

const (
	BCC         Structure = "BCC"
	FCC         Structure = "FCC"
	HCP         Structure = "HCP"
	SimpleCubic Structure = "SC"
)

// Structures lists the supported crystal structures
func Structures() []string {
	return []string{string(BCC), string(FCC), string(HCP), string(SimpleCubic)}
}

// APF returns the atomic packing factor for a structure. These are
// geometric constants of the ideal hard-sphere cell: BCC 0.68, FCC 0.74,
// ideal HCP 0.74, simple cubic 0.52.
func APF(s Structure) (float64, error) {
	switch s {
	case BCC:
		// 2 atoms per cell, a = 4r/√3
		return 2 * (4.0 / 3.0) * math.Pi / math.Pow(4/math.Sqrt(3), 3), nil
	case FCC:
		// 4 atoms per cell, a = 2√2 r
		return 4 * (4.0 / 3.0) * math.Pi / math.Pow(2*math.Sqrt2, 3), nil
	case HCP:
		// 6 atoms per cell, a = 2r, ideal c/a = √(8/3),
		// V = (3√3/2) a² c
		a, c := 2.0, 2*math.Sqrt(8.0/3.0)
		return 6 * (4.0 / 3.0) * math.Pi / (3 * math.Sqrt(3) / 2 * a * a * c), nil
	case SimpleCubic:
		// 1 atom per cell, a = 2r
		return (4.0 / 3.0) * math.Pi / 8, nil
	}
	return 0, errors.NotFound("crystal structure", string(s))
}

// CellVolume returns the unit-cell volume for a structure and atomic
// radius (same cube of the radius unit).
func CellVolume(s Structure, radius float64) (float64, error) {
	if radius <= 0 {
		return 0, errors.Range("atomic radius must be positive")
	}
	switch s {
	case BCC:
		a := 4 * radius / math.Sqrt(3)
		return a * a * a, nil
	case FCC:
		a := 2 * math.Sqrt2 * radius
		return a * a * a, nil
	case HCP:
		a := 2 * radius
		c := math.Sqrt(8.0/3.0) * a
		return 3 * math.Sqrt(3) / 2 * a * a * c, nil
	case SimpleCubic:
		a := 2 * radius
		return a * a * a, nil
	}
	return 0, errors.NotFound("crystal structure", string(s))
}

// PlanarDensity computes atoms per unit area on a plane.
func PlanarDensity(atoms, planeArea float64) (float64, error) {
	if atoms < 0 {
		return 0, errors.Range("atom count must be non-negative")
	}
	if planeArea <= 0 {
		return 0, errors.Range("plane area must be positive")
	}
	return atoms / planeArea, nil
}

// LinearDensity computes atoms per unit length along a direction.
func LinearDensity(atoms, length float64) (float64, error) {
	if atoms < 0 {
		return 0, errors.Range("atom count must be non-negative")
	}
	if length <= 0 {
		return 0, errors.Range("direction length must be positive")
	}
	return atoms / length, nil
}

// ASTMGrainCount computes N = 2^(n−1), the grains per square inch at
// 100× magnification for ASTM grain size number n.
func ASTMGrainCount(n float64) float64 {
	return math.Pow(2, n-1)
}

// ASTMGrainNumber solves the inverse: n = 1 + log₂(N).
func ASTMGrainNumber(grainCount float64) (float64, error) {
	if grainCount <= 0 {
		return 0, errors.Range("grain count must be positive")
	}
	return 1 + math.Log2(grainCount), nil
}

// HallPetch computes yield strength σ_y = σ₀ + k_y / √d.
// σ₀ in MPa, k_y in MPa·√(length unit of d), d > 0.
func HallPetch(sigma0, ky, d float64) (float64, error) {
	if d <= 0 {
		return 0, errors.Range("grain diameter must be positive")
	}
	return sigma0 + ky/math.Sqrt(d), nil
}

// BurgersVector computes |b| = (a/2) × √(h² + k² + l²) for slip
// direction <hkl> and lattice parameter a.
func BurgersVector(a, h, k, l float64) (float64, error) {
	if a <= 0 {
		return 0, errors.Range("lattice parameter must be positive")
	}
	return a / 2 * math.Sqrt(h*h+k*k+l*l), nil
}
