// Package crystal - calculator registration
package crystal

import (
	"mme-calc/core/calc"
)

// Specs returns the crystallography calculators in menu order
func Specs() []calc.Spec {
	return []calc.Spec{
		{
			Category: calc.Crystallography,
			Slug:     "apf",
			Name:     "Atomic Packing Factor (BCC/FCC/HCP/SC)",
			Fields: []calc.Field{
				{Key: "structure", Label: "Crystal structure", Kind: calc.FieldChoice, Choices: Structures()},
				{Key: "radius", Label: "Atomic radius (blank to skip cell volume)", Unit: "nm",
					Constraint: calc.NonNegative(), Default: calc.DefaultOf(0)},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				s := Structure(in.Str("structure"))
				apf, err := APF(s)
				if err != nil {
					return calc.Result{}, err
				}
				res := calc.Result{Values: []calc.ResultValue{
					{Label: "APF (" + string(s) + ")", Value: apf},
				}}
				if r := in.Float("radius"); r > 0 {
					vc, err := CellVolume(s, r)
					if err != nil {
						return calc.Result{}, err
					}
					res.Values = append(res.Values, calc.ResultValue{Label: "Unit Cell Volume", Value: vc, Unit: "nm³"})
				}
				return res, nil
			},
		},
		{
			Category: calc.Crystallography,
			Slug:     "planar-density",
			Name:     "Planar Density",
			Fields: []calc.Field{
				{Key: "atoms", Label: "Atoms centered on plane", Unit: "", Constraint: calc.NonNegative()},
				{Key: "area", Label: "Plane area", Unit: "nm²", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				pd, err := PlanarDensity(in.Float("atoms"), in.Float("area"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Planar Density", pd, "atoms/nm²"), nil
			},
		},
		{
			Category: calc.Crystallography,
			Slug:     "linear-density",
			Name:     "Linear Density",
			Fields: []calc.Field{
				{Key: "atoms", Label: "Atoms centered on direction", Unit: "", Constraint: calc.NonNegative()},
				{Key: "length", Label: "Direction length", Unit: "nm", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				ld, err := LinearDensity(in.Float("atoms"), in.Float("length"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Linear Density", ld, "atoms/nm"), nil
			},
		},
		{
			Category: calc.Crystallography,
			Slug:     "astm-grain-count",
			Name:     "ASTM Grain Size → Grain Count",
			Fields: []calc.Field{
				{Key: "n", Label: "ASTM grain size number n", Unit: "", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				return calc.Single("Grains per sq inch at 100×", ASTMGrainCount(in.Float("n")), ""), nil
			},
		},
		{
			Category: calc.Crystallography,
			Slug:     "astm-grain-number",
			Name:     "Grain Count → ASTM Grain Size Number",
			Fields: []calc.Field{
				{Key: "count", Label: "Grain count N", Unit: "", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				n, err := ASTMGrainNumber(in.Float("count"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("ASTM Grain Size Number", n, ""), nil
			},
		},
		{
			Category: calc.Crystallography,
			Slug:     "hall-petch",
			Name:     "Hall-Petch Equation (σ_y)",
			Fields: []calc.Field{
				{Key: "sigma0", Label: "Friction stress σ₀", Unit: "MPa", Constraint: calc.Any()},
				{Key: "ky", Label: "Hall-Petch slope k_y", Unit: "MPa·√mm", Constraint: calc.Any()},
				{Key: "d", Label: "Grain diameter d", Unit: "mm", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				sy, err := HallPetch(in.Float("sigma0"), in.Float("ky"), in.Float("d"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Yield Strength σ_y", sy, "MPa"), nil
			},
		},
		{
			Category: calc.Crystallography,
			Slug:     "burgers-vector",
			Name:     "Burgers Vector Magnitude",
			Fields: []calc.Field{
				{Key: "a", Label: "Lattice parameter a", Unit: "nm", Constraint: calc.Positive()},
				{Key: "h", Label: "Miller index h", Unit: "", Constraint: calc.Any()},
				{Key: "k", Label: "Miller index k", Unit: "", Constraint: calc.Any()},
				{Key: "l", Label: "Miller index l", Unit: "", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				b, err := BurgersVector(in.Float("a"), in.Float("h"), in.Float("k"), in.Float("l"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("|b|", b, "nm"), nil
			},
		},
	}
}
