// Package composite - calculator registration
package composite

import (
	"mme-calc/core/calc"
)

// Specs returns the composite-material calculators in menu order
func Specs() []calc.Spec {
	return []calc.Spec{
		{
			Category: calc.Composites,
			Slug:     "rom-longitudinal",
			Name:     "Rule of Mixtures — Longitudinal (E or σ)",
			Fields: []calc.Field{
				{Key: "ef", Label: "Fiber property (E_f or σ_f)", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "vf", Label: "Fiber volume fraction V_f", Unit: "", Constraint: calc.UnitInterval()},
				{Key: "em", Label: "Matrix property (E_m or σ_m)", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "vm", Label: "Matrix volume fraction V_m", Unit: "", Constraint: calc.UnitInterval()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				ec, err := Longitudinal(in.Float("ef"), in.Float("vf"), in.Float("em"), in.Float("vm"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Composite Property (longitudinal)", ec, "MPa"), nil
			},
		},
		{
			Category: calc.Composites,
			Slug:     "rom-transverse",
			Name:     "Inverse Rule of Mixtures — Transverse (E)",
			Fields: []calc.Field{
				{Key: "ef", Label: "Fiber modulus E_f", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "vf", Label: "Fiber volume fraction V_f", Unit: "", Constraint: calc.UnitInterval()},
				{Key: "em", Label: "Matrix modulus E_m", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "vm", Label: "Matrix volume fraction V_m", Unit: "", Constraint: calc.UnitInterval()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				ec, err := Transverse(in.Float("ef"), in.Float("vf"), in.Float("em"), in.Float("vm"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Composite Modulus (transverse)", ec, "MPa"), nil
			},
		},
		{
			Category: calc.Composites,
			Slug:     "density",
			Name:     "Composite Density",
			Fields: []calc.Field{
				{Key: "rho_f", Label: "Fiber density ρ_f", Unit: "kg/m³", Constraint: calc.Positive()},
				{Key: "vf", Label: "Fiber volume fraction V_f", Unit: "", Constraint: calc.UnitInterval()},
				{Key: "rho_m", Label: "Matrix density ρ_m", Unit: "kg/m³", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				rho, err := Density(in.Float("rho_f"), in.Float("vf"), in.Float("rho_m"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Composite Density", rho, "kg/m³"), nil
			},
		},
		{
			Category: calc.Composites,
			Slug:     "critical-fiber-length",
			Name:     "Critical Fiber Length",
			Fields: []calc.Field{
				{Key: "sigma_f", Label: "Fiber ultimate strength σ_f", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "d", Label: "Fiber diameter d", Unit: "mm", Constraint: calc.Positive()},
				{Key: "tau_c", Label: "Interfacial shear strength τ_c", Unit: "MPa", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				lc, err := CriticalFiberLength(in.Float("sigma_f"), in.Float("d"), in.Float("tau_c"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Critical Fiber Length l_c", lc, "mm"), nil
			},
		},
		{
			Category: calc.Composites,
			Slug:     "halpin-tsai",
			Name:     "Halpin-Tsai Equation",
			Fields: []calc.Field{
				{Key: "em", Label: "Matrix modulus E_m", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "ef", Label: "Fiber modulus E_f", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "vf", Label: "Fiber volume fraction V_f", Unit: "", Constraint: calc.UnitInterval()},
				{Key: "xi", Label: "Geometry parameter ξ", Unit: "", Constraint: calc.Positive(), Default: calc.DefaultOf(DefaultXi)},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				ec, err := HalpinTsai(in.Float("em"), in.Float("ef"), in.Float("vf"), in.Float("xi"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Composite Modulus (Halpin-Tsai)", ec, "MPa"), nil
			},
		},
	}
}
