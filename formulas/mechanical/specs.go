// Package mechanical - calculator registration
package mechanical

import (
	"mme-calc/core/calc"
)

// Specs returns the mechanical-property calculators in menu order
func Specs() []calc.Spec {
	return []calc.Spec{
		{
			Category: calc.Mechanical,
			Slug:     "brinell-to-uts",
			Name:     "Brinell Hardness → Tensile Strength",
			Fields: []calc.Field{
				{Key: "hb", Label: "Brinell Hardness", Unit: "HB", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				uts, err := BrinellToTensile(in.Float("hb"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Estimated UTS", uts, "MPa"), nil
			},
		},
		{
			Category: calc.Mechanical,
			Slug:     "vickers-to-uts",
			Name:     "Vickers Hardness → Tensile Strength",
			Fields: []calc.Field{
				{Key: "hv", Label: "Vickers Hardness", Unit: "HV", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				uts, err := VickersToTensile(in.Float("hv"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Estimated UTS", uts, "MPa"), nil
			},
		},
		{
			Category: calc.Mechanical,
			Slug:     "hrc-to-hb",
			Name:     "HRC → HB Conversion",
			Fields: []calc.Field{
				{Key: "hrc", Label: "Rockwell C Hardness", Unit: "HRC", Constraint: calc.Range(20, 55)},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				hb, err := HRCToHB(in.Float("hrc"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Brinell Hardness", hb, "HB"), nil
			},
		},
		{
			Category: calc.Mechanical,
			Slug:     "hb-to-hrc",
			Name:     "HB → HRC Conversion",
			Fields: []calc.Field{
				{Key: "hb", Label: "Brinell Hardness", Unit: "HB", Constraint: calc.Range(226, 545)},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				hrc, err := HBToHRC(in.Float("hb"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Rockwell C Hardness", hrc, "HRC"), nil
			},
		},
		{
			Category: calc.Mechanical,
			Slug:     "yield-strength",
			Name:     "Yield Strength (F / A₀)",
			Fields: []calc.Field{
				{Key: "force", Label: "Force", Unit: "N", Constraint: calc.Any()},
				{Key: "area", Label: "Original area A₀", Unit: "mm²", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				sy, err := YieldStrength(in.Float("force"), in.Float("area"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Yield Strength", sy, "MPa"), nil
			},
		},
		{
			Category: calc.Mechanical,
			Slug:     "percent-elongation",
			Name:     "Percent Elongation",
			Fields: []calc.Field{
				{Key: "l0", Label: "Original gauge length L₀", Unit: "mm", Constraint: calc.Positive()},
				{Key: "lf", Label: "Final gauge length L_f", Unit: "mm", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				el, err := PercentElongation(in.Float("l0"), in.Float("lf"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Percent Elongation", el, "%"), nil
			},
		},
		{
			Category: calc.Mechanical,
			Slug:     "percent-reduction-area",
			Name:     "Percent Reduction in Area",
			Fields: []calc.Field{
				{Key: "a0", Label: "Original area A₀", Unit: "mm²", Constraint: calc.Positive()},
				{Key: "af", Label: "Final area A_f", Unit: "mm²", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				ra, err := PercentReductionArea(in.Float("a0"), in.Float("af"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Percent Reduction in Area", ra, "%"), nil
			},
		},
		{
			Category: calc.Mechanical,
			Slug:     "true-stress",
			Name:     "True Stress from Engineering Stress",
			Fields: []calc.Field{
				{Key: "stress", Label: "Engineering stress", Unit: "MPa", Constraint: calc.Any()},
				{Key: "strain", Label: "Engineering strain", Unit: "", Constraint: calc.GreaterThan(-1)},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				ts, err := TrueStress(in.Float("stress"), in.Float("strain"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("True Stress", ts, "MPa"), nil
			},
		},
		{
			Category: calc.Mechanical,
			Slug:     "true-strain",
			Name:     "True Strain from Engineering Strain",
			Fields: []calc.Field{
				{Key: "strain", Label: "Engineering strain", Unit: "", Constraint: calc.GreaterThan(-1)},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				te, err := TrueStrain(in.Float("strain"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("True Strain", te, ""), nil
			},
		},
		{
			Category: calc.Mechanical,
			Slug:     "modulus-of-resilience",
			Name:     "Modulus of Resilience",
			Fields: []calc.Field{
				{Key: "yield", Label: "Yield stress", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "modulus", Label: "Young's modulus", Unit: "MPa", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				ur, err := ModulusOfResilience(in.Float("yield"), in.Float("modulus"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Modulus of Resilience", ur, "MPa"), nil
			},
		},
		{
			Category: calc.Mechanical,
			Slug:     "basquin-life",
			Name:     "Basquin Fatigue Life (cycles to failure)",
			Fields: []calc.Field{
				{Key: "amplitude", Label: "Stress amplitude σ_a", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "coeff", Label: "Fatigue strength coeff σ_f'", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "exponent", Label: "Basquin exponent b (negative)", Unit: "", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				n, err := BasquinLife(in.Float("amplitude"), in.Float("coeff"), in.Float("exponent"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Cycles to failure N", n, "cycles"), nil
			},
		},
		{
			Category: calc.Mechanical,
			Slug:     "basquin-amplitude",
			Name:     "Basquin Stress Amplitude",
			Fields: []calc.Field{
				{Key: "coeff", Label: "Fatigue strength coeff σ_f'", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "cycles", Label: "Number of cycles N", Unit: "", Constraint: calc.Positive()},
				{Key: "exponent", Label: "Basquin exponent b (negative)", Unit: "", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				sa, err := BasquinAmplitude(in.Float("coeff"), in.Float("cycles"), in.Float("exponent"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Stress Amplitude", sa, "MPa"), nil
			},
		},
		{
			Category: calc.Mechanical,
			Slug:     "charpy-toughness",
			Name:     "Charpy Impact Toughness",
			Fields: []calc.Field{
				{Key: "energy", Label: "Absorbed energy", Unit: "J", Constraint: calc.NonNegative()},
				{Key: "area", Label: "Cross-section area", Unit: "mm²", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				it, err := CharpyToughness(in.Float("energy"), in.Float("area"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Impact Toughness", it, "J/mm²"), nil
			},
		},
	}
}
