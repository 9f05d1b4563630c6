// Package casting - calculator registration
package casting

import (
	"mme-calc/core/calc"
)

// Specs returns the casting calculators in menu order
func Specs() []calc.Spec {
	return []calc.Spec{
		{
			Category: calc.Casting,
			Slug:     "chvorinov",
			Name:     "Chvorinov's Rule (solidification time)",
			Fields: []calc.Field{
				{Key: "b", Label: "Mold constant B", Unit: "s/cm²", Constraint: calc.Positive()},
				{Key: "volume", Label: "Casting volume V", Unit: "cm³", Constraint: calc.Positive()},
				{Key: "area", Label: "Surface area A", Unit: "cm²", Constraint: calc.Positive()},
				{Key: "n", Label: "Exponent n", Unit: "", Constraint: calc.Positive(), Default: calc.DefaultOf(2)},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				t, err := ChvorinovTime(in.Float("b"), in.Float("volume"), in.Float("area"), in.Float("n"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Solidification Time", t, "s"), nil
			},
		},
		{
			Category: calc.Casting,
			Slug:     "modulus",
			Name:     "Casting / Riser Modulus",
			Fields: []calc.Field{
				{Key: "volume", Label: "Volume", Unit: "cm³", Constraint: calc.Positive()},
				{Key: "area", Label: "Surface area", Unit: "cm²", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				m, err := Modulus(in.Float("volume"), in.Float("area"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Modulus (V/A)", m, "cm"), nil
			},
		},
		{
			Category: calc.Casting,
			Slug:     "shrinkage-allowance",
			Name:     "Shrinkage Allowance",
			Fields: []calc.Field{
				{Key: "length", Label: "Desired casting length", Unit: "mm", Constraint: calc.Positive()},
				{Key: "shrinkage", Label: "Shrinkage % (e.g. 2.0 for steel)", Unit: "%", Constraint: calc.NonNegative()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				l, err := ShrinkageAllowance(in.Float("length"), in.Float("shrinkage"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Pattern Length", l, "mm"), nil
			},
		},
		{
			Category: calc.Casting,
			Slug:     "fluidity-index",
			Name:     "Fluidity Index",
			Fields: []calc.Field{
				{Key: "rho", Label: "Metal density", Unit: "kg/m³", Constraint: calc.Positive()},
				{Key: "cp", Label: "Specific heat", Unit: "J/kg·K", Constraint: calc.Positive()},
				{Key: "superheat", Label: "Superheat ΔT", Unit: "K", Constraint: calc.NonNegative()},
				{Key: "latent_heat", Label: "Latent heat of fusion", Unit: "J/kg", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				f, err := FluidityIndex(in.Float("rho"), in.Float("cp"), in.Float("superheat"), in.Float("latent_heat"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Fluidity Index", f, ""), nil
			},
		},
		{
			Category: calc.Casting,
			Slug:     "newtonian-cooling",
			Name:     "Newtonian Cooling Rate",
			Fields: []calc.Field{
				{Key: "h", Label: "Heat transfer coeff h", Unit: "W/m²·K", Constraint: calc.Positive()},
				{Key: "area", Label: "Surface area A", Unit: "m²", Constraint: calc.Positive()},
				{Key: "rho", Label: "Density ρ", Unit: "kg/m³", Constraint: calc.Positive()},
				{Key: "cp", Label: "Specific heat c_p", Unit: "J/kg·K", Constraint: calc.Positive()},
				{Key: "volume", Label: "Volume V", Unit: "m³", Constraint: calc.Positive()},
				{Key: "t_current", Label: "Current temperature T", Unit: "K", Constraint: calc.Any()},
				{Key: "t_ambient", Label: "Ambient temperature T_∞", Unit: "K", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				rate, err := NewtonianCoolingRate(
					in.Float("h"), in.Float("area"), in.Float("rho"), in.Float("cp"),
					in.Float("volume"), in.Float("t_current"), in.Float("t_ambient"),
				)
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Cooling Rate dT/dt", rate, "K/s"), nil
			},
		},
	}
}
