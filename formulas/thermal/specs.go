// Package thermal - calculator registration
package thermal

import (
	"mme-calc/core/calc"
)

// Specs returns the thermal-property calculators in menu order
func Specs() []calc.Spec {
	return []calc.Spec{
		{
			Category: calc.Thermal,
			Slug:     "fourier-heat-flux",
			Name:     "Fourier's Law — Heat Flux",
			Fields: []calc.Field{
				{Key: "k", Label: "Thermal conductivity k", Unit: "W/m·K", Constraint: calc.Positive()},
				{Key: "delta_t", Label: "Temperature difference ΔT", Unit: "K", Constraint: calc.Any()},
				{Key: "dx", Label: "Thickness dx", Unit: "m", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				q, err := FourierHeatFlux(in.Float("k"), in.Float("delta_t"), in.Float("dx"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Heat Flux", q, "W/m²"), nil
			},
		},
		{
			Category: calc.Thermal,
			Slug:     "linear-expansion",
			Name:     "Linear Thermal Expansion (ΔL)",
			Fields: []calc.Field{
				{Key: "alpha", Label: "Coeff. of linear expansion α", Unit: "1/K", Constraint: calc.Any()},
				{Key: "l0", Label: "Original length L₀", Unit: "m", Constraint: calc.Positive()},
				{Key: "delta_t", Label: "Temperature change ΔT", Unit: "K", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				dl, err := LinearExpansion(in.Float("alpha"), in.Float("l0"), in.Float("delta_t"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Change in Length ΔL", dl, "m"), nil
			},
		},
		{
			Category: calc.Thermal,
			Slug:     "volumetric-expansion",
			Name:     "Volumetric Thermal Expansion (ΔV)",
			Fields: []calc.Field{
				{Key: "alpha", Label: "Coeff. of linear expansion α", Unit: "1/K", Constraint: calc.Any()},
				{Key: "v0", Label: "Original volume V₀", Unit: "m³", Constraint: calc.Positive()},
				{Key: "delta_t", Label: "Temperature change ΔT", Unit: "K", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				dv, err := VolumetricExpansion(in.Float("alpha"), in.Float("v0"), in.Float("delta_t"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Change in Volume ΔV", dv, "m³"), nil
			},
		},
		{
			Category: calc.Thermal,
			Slug:     "composite-slab-flux",
			Name:     "Composite Slab Heat Flux",
			Fields: []calc.Field{
				{Key: "delta_t", Label: "Total temperature difference ΔT", Unit: "K", Constraint: calc.Any()},
			},
			Repeat: &calc.RepeatGroup{
				RowLabel: "Layer",
				CountField: calc.Field{
					Key: "layers", Label: "Number of layers", Kind: calc.FieldInt,
					Constraint: calc.Range(1, 64),
				},
				Fields: []calc.Field{
					{Key: "thickness", Label: "Thickness", Unit: "m", Constraint: calc.Positive()},
					{Key: "conductivity", Label: "Conductivity", Unit: "W/m·K", Constraint: calc.Positive()},
				},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				layers := make([]Layer, len(in.Rows()))
				for i := range in.Rows() {
					layers[i] = Layer{
						Thickness:    in.RowFloat(i, "thickness"),
						Conductivity: in.RowFloat(i, "conductivity"),
					}
				}
				q, err := CompositeSlabFlux(in.Float("delta_t"), layers)
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Heat Flux", q, "W/m²"), nil
			},
		},
		{
			Category: calc.Thermal,
			Slug:     "newton-cooling",
			Name:     "Newton's Law of Cooling (Q̇)",
			Fields: []calc.Field{
				{Key: "h", Label: "Convective coeff h", Unit: "W/m²·K", Constraint: calc.Positive()},
				{Key: "area", Label: "Surface area A", Unit: "m²", Constraint: calc.Positive()},
				{Key: "t_surface", Label: "Surface temp T_s", Unit: "K", Constraint: calc.Any()},
				{Key: "t_ambient", Label: "Ambient temp T_∞", Unit: "K", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				q, err := NewtonCooling(in.Float("h"), in.Float("area"), in.Float("t_surface"), in.Float("t_ambient"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Heat Transfer Rate", q, "W"), nil
			},
		},
		{
			Category: calc.Thermal,
			Slug:     "thermal-diffusivity",
			Name:     "Thermal Diffusivity (α)",
			Fields: []calc.Field{
				{Key: "k", Label: "Thermal conductivity k", Unit: "W/m·K", Constraint: calc.Positive()},
				{Key: "rho", Label: "Density ρ", Unit: "kg/m³", Constraint: calc.Positive()},
				{Key: "cp", Label: "Specific heat c_p", Unit: "J/kg·K", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				a, err := ThermalDiffusivity(in.Float("k"), in.Float("rho"), in.Float("cp"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Thermal Diffusivity", a, "m²/s"), nil
			},
		},
	}
}
