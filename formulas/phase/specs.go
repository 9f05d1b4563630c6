// Package phase - calculator registration
package phase

import (
	"mme-calc/core/calc"
)

// Specs returns the phase-transformation calculators in menu order
func Specs() []calc.Spec {
	return []calc.Spec{
		{
			Category: calc.Phase,
			Slug:     "lever-rule",
			Name:     "Lever Rule (phase fractions)",
			Fields: []calc.Field{
				{Key: "c0", Label: "Overall composition C₀", Unit: "wt%", Constraint: calc.Any()},
				{Key: "c_alpha", Label: "Phase α boundary Cα", Unit: "wt%", Constraint: calc.Any()},
				{Key: "c_beta", Label: "Phase β boundary Cβ", Unit: "wt%", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				wa, wb, err := LeverRule(in.Float("c0"), in.Float("c_alpha"), in.Float("c_beta"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Result{Values: []calc.ResultValue{
					{Label: "Weight fraction α (Wα)", Value: wa},
					{Label: "Weight fraction β (Wβ)", Value: wb},
				}}, nil
			},
		},
		{
			Category: calc.Phase,
			Slug:     "gibbs-phase-rule",
			Name:     "Gibbs Phase Rule",
			Fields: []calc.Field{
				{Key: "components", Label: "Number of components C", Kind: calc.FieldInt, Constraint: calc.Min(1)},
				{Key: "phases", Label: "Number of phases P", Kind: calc.FieldInt, Constraint: calc.Min(1)},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				f, err := GibbsPhaseRule(in.Int("components"), in.Int("phases"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Degrees of Freedom F", float64(f), ""), nil
			},
		},
		{
			Category: calc.Phase,
			Slug:     "avrami",
			Name:     "Avrami Equation (transformation kinetics)",
			Fields: []calc.Field{
				{Key: "k", Label: "Rate constant k", Unit: "", Constraint: calc.NonNegative()},
				{Key: "t", Label: "Time t", Unit: "s", Constraint: calc.NonNegative()},
				{Key: "n", Label: "Avrami exponent n", Unit: "", Constraint: calc.NonNegative()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				x, err := AvramiFraction(in.Float("k"), in.Float("t"), in.Float("n"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Fraction Transformed X", x, ""), nil
			},
		},
		{
			Category: calc.Phase,
			Slug:     "carbon-equivalent",
			Name:     "Carbon Equivalent (weldability)",
			Fields: []calc.Field{
				{Key: "c", Label: "Carbon (C)", Unit: "wt%", Constraint: calc.NonNegative()},
				{Key: "mn", Label: "Manganese (Mn)", Unit: "wt%", Constraint: calc.NonNegative(), Default: calc.DefaultOf(0)},
				{Key: "cr", Label: "Chromium (Cr)", Unit: "wt%", Constraint: calc.NonNegative(), Default: calc.DefaultOf(0)},
				{Key: "mo", Label: "Molybdenum (Mo)", Unit: "wt%", Constraint: calc.NonNegative(), Default: calc.DefaultOf(0)},
				{Key: "v", Label: "Vanadium (V)", Unit: "wt%", Constraint: calc.NonNegative(), Default: calc.DefaultOf(0)},
				{Key: "ni", Label: "Nickel (Ni)", Unit: "wt%", Constraint: calc.NonNegative(), Default: calc.DefaultOf(0)},
				{Key: "cu", Label: "Copper (Cu)", Unit: "wt%", Constraint: calc.NonNegative(), Default: calc.DefaultOf(0)},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				ce, err := CarbonEquivalent(
					in.Float("c"), in.Float("mn"), in.Float("cr"), in.Float("mo"),
					in.Float("v"), in.Float("ni"), in.Float("cu"),
				)
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Result{
					Values:  []calc.ResultValue{{Label: "Carbon Equivalent (CE)", Value: ce}},
					Verdict: WeldabilityVerdict(ce),
				}, nil
			},
		},
		{
			Category: calc.Phase,
			Slug:     "scheil",
			Name:     "Scheil Equation (micro-segregation)",
			Fields: []calc.Field{
				{Key: "k", Label: "Partition coefficient k", Unit: "", Constraint: calc.Positive()},
				{Key: "c0", Label: "Nominal composition C₀", Unit: "wt%", Constraint: calc.Any()},
				{Key: "fs", Label: "Fraction solid f_s", Unit: "", Constraint: calc.Range(0, 0.99)},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				cs, err := ScheilEquation(in.Float("k"), in.Float("c0"), in.Float("fs"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Solid Composition C_s", cs, "wt%"), nil
			},
		},
	}
}
