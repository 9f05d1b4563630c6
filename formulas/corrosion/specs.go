// Package corrosion - calculator registration
package corrosion

import (
	"fmt"

	"mme-calc/core/calc"
	"mme-calc/core/materials"
)

func weightLossFields() []calc.Field {
	return []calc.Field{
		{Key: "weight_loss", Label: "Weight loss", Unit: "g", Constraint: calc.NonNegative()},
		{Key: "density", Label: "Metal density", Unit: "g/cm³", Constraint: calc.Positive()},
		{Key: "area", Label: "Exposed area", Unit: "cm²", Constraint: calc.Positive()},
		{Key: "time", Label: "Exposure time", Unit: "hours", Constraint: calc.Positive()},
	}
}

// Specs returns the corrosion calculators in menu order
func Specs() []calc.Spec {
	return []calc.Spec{
		{
			Category: calc.Corrosion,
			Slug:     "rate-mpy",
			Name:     "Corrosion Rate (mils per year)",
			Fields:   weightLossFields(),
			Compute: func(in calc.Inputs) (calc.Result, error) {
				cr, err := RateMPY(in.Float("weight_loss"), in.Float("density"), in.Float("area"), in.Float("time"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Corrosion Rate", cr, "mpy"), nil
			},
		},
		{
			Category: calc.Corrosion,
			Slug:     "rate-mmpy",
			Name:     "Corrosion Rate (mm per year)",
			Fields:   weightLossFields(),
			Compute: func(in calc.Inputs) (calc.Result, error) {
				cr, err := RateMMPY(in.Float("weight_loss"), in.Float("density"), in.Float("area"), in.Float("time"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Corrosion Rate", cr, "mm/y"), nil
			},
		},
		{
			Category: calc.Corrosion,
			Slug:     "pilling-bedworth",
			Name:     "Pilling-Bedworth Ratio",
			Fields: []calc.Field{
				{Key: "m_oxide", Label: "Molar mass of oxide", Unit: "g/mol", Constraint: calc.Positive()},
				{Key: "rho_metal", Label: "Metal density", Unit: "g/cm³", Constraint: calc.Positive()},
				{Key: "n", Label: "Metal atoms per oxide formula unit", Unit: "", Constraint: calc.Positive()},
				{Key: "m_metal", Label: "Molar mass of metal", Unit: "g/mol", Constraint: calc.Positive()},
				{Key: "rho_oxide", Label: "Oxide density", Unit: "g/cm³", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				pbr, err := PillingBedworth(
					in.Float("m_oxide"), in.Float("rho_metal"), in.Float("n"),
					in.Float("m_metal"), in.Float("rho_oxide"),
				)
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Result{
					Values:  []calc.ResultValue{{Label: "Pilling-Bedworth Ratio", Value: pbr}},
					Verdict: PBRVerdict(pbr),
				}, nil
			},
		},
		{
			Category: calc.Corrosion,
			Slug:     "galvanic-couple",
			Name:     "Galvanic Series — Potential Difference",
			Fields: []calc.Field{
				{Key: "metal_a", Label: "Metal A", Kind: calc.FieldChoice, Choices: materials.GalvanicMetals()},
				{Key: "metal_b", Label: "Metal B", Kind: calc.FieldChoice, Choices: materials.GalvanicMetals()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				couple, err := GalvanicCouple(in.Str("metal_a"), in.Str("metal_b"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Result{
					Values: []calc.ResultValue{{Label: "Potential Difference", Value: couple.PotentialDiff, Unit: "V"}},
					Details: []string{
						fmt.Sprintf("Anode (corrodes): %s", couple.Anode),
						fmt.Sprintf("Cathode (protected): %s", couple.Cathode),
					},
				}, nil
			},
		},
		{
			Category: calc.Corrosion,
			Slug:     "parabolic-oxidation",
			Name:     "Parabolic Oxidation — Oxide Thickness",
			Fields: []calc.Field{
				{Key: "kp", Label: "Parabolic rate constant k_p", Unit: "µm²/s", Constraint: calc.NonNegative()},
				{Key: "t", Label: "Time", Unit: "s", Constraint: calc.NonNegative()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				x, err := ParabolicOxideThickness(in.Float("kp"), in.Float("t"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Oxide Thickness", x, "µm"), nil
			},
		},
	}
}
