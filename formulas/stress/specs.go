// Package stress - calculator registration
package stress

import (
	"fmt"

	"mme-calc/core/calc"
	"mme-calc/core/materials"
)

// Specs returns the stress-strain calculators in menu order.
// fosThreshold is the minimum factor of safety reported as safe.
func Specs(fosThreshold float64) []calc.Spec {
	if fosThreshold <= 0 {
		fosThreshold = 1.0
	}
	return []calc.Spec{
		{
			Category: calc.StressStrain,
			Slug:     "hooke-stress",
			Name:     "Hooke's Law — Stress from Strain",
			Fields: []calc.Field{
				{Key: "e", Label: "Young's modulus E", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "strain", Label: "Strain ε", Unit: "", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				s, err := HookeStress(in.Float("e"), in.Float("strain"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Stress σ", s, "MPa"), nil
			},
		},
		{
			Category: calc.StressStrain,
			Slug:     "hooke-strain",
			Name:     "Hooke's Law — Strain from Stress",
			Fields: []calc.Field{
				{Key: "e", Label: "Young's modulus E", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "stress", Label: "Stress σ", Unit: "MPa", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				eps, err := HookeStrain(in.Float("e"), in.Float("stress"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Strain ε", eps, ""), nil
			},
		},
		{
			Category: calc.StressStrain,
			Slug:     "poisson-strain",
			Name:     "Poisson's Lateral Strain",
			Fields: []calc.Field{
				{Key: "nu", Label: "Poisson's ratio ν", Unit: "", Constraint: calc.Range(-1, 0.5)},
				{Key: "axial", Label: "Axial strain ε_axial", Unit: "", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				return calc.Single("Lateral Strain", PoissonLateralStrain(in.Float("nu"), in.Float("axial")), ""), nil
			},
		},
		{
			Category: calc.StressStrain,
			Slug:     "shear-modulus",
			Name:     "Shear Modulus (G)",
			Fields: []calc.Field{
				{Key: "e", Label: "Young's modulus E", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "nu", Label: "Poisson's ratio ν", Unit: "", Constraint: calc.GreaterThan(-1)},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				g, err := ShearModulus(in.Float("e"), in.Float("nu"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Shear Modulus G", g, "MPa"), nil
			},
		},
		{
			Category: calc.StressStrain,
			Slug:     "bulk-modulus",
			Name:     "Bulk Modulus (K)",
			Fields: []calc.Field{
				{Key: "e", Label: "Young's modulus E", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "nu", Label: "Poisson's ratio ν", Unit: "", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				k, err := BulkModulus(in.Float("e"), in.Float("nu"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Bulk Modulus K", k, "MPa"), nil
			},
		},
		{
			Category: calc.StressStrain,
			Slug:     "von-mises",
			Name:     "von Mises Equivalent Stress",
			Fields: []calc.Field{
				{Key: "s1", Label: "Principal stress σ₁", Unit: "MPa", Constraint: calc.Any()},
				{Key: "s2", Label: "Principal stress σ₂", Unit: "MPa", Constraint: calc.Any()},
				{Key: "s3", Label: "Principal stress σ₃", Unit: "MPa", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				vm := VonMises(in.Float("s1"), in.Float("s2"), in.Float("s3"))
				return calc.Single("von Mises Stress", vm, "MPa"), nil
			},
		},
		{
			Category: calc.StressStrain,
			Slug:     "factor-of-safety",
			Name:     "Factor of Safety",
			Fields: []calc.Field{
				{Key: "yield", Label: "Yield strength", Unit: "MPa", Constraint: calc.Positive()},
				{Key: "applied", Label: "Applied stress", Unit: "MPa", Constraint: calc.NonZero()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				fos, err := FactorOfSafety(in.Float("yield"), in.Float("applied"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Result{
					Values:  []calc.ResultValue{{Label: "Factor of Safety", Value: fos}},
					Verdict: SafetyVerdict(fos, fosThreshold),
				}, nil
			},
		},
		{
			Category: calc.StressStrain,
			Slug:     "safety-audit",
			Name:     "Material Safety Audit (von Mises + FoS)",
			Fields: []calc.Field{
				{Key: "material", Label: "Material", Kind: calc.FieldChoice, Choices: materials.StrengthMaterials()},
				{Key: "s1", Label: "Principal stress σ₁", Unit: "MPa", Constraint: calc.Any()},
				{Key: "s2", Label: "Principal stress σ₂", Unit: "MPa", Constraint: calc.Any()},
				{Key: "s3", Label: "Principal stress σ₃", Unit: "MPa", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				record, err := materials.Strength(in.Str("material"))
				if err != nil {
					return calc.Result{}, err
				}
				vm := VonMises(in.Float("s1"), in.Float("s2"), in.Float("s3"))
				if vm == 0 {
					return calc.Result{
						Values: []calc.ResultValue{
							{Label: "von Mises Stress", Value: 0, Unit: "MPa"},
						},
						Verdict: VerdictSafe,
						Details: []string{fmt.Sprintf("Reference yield strength (%s): %g MPa", record.Name, record.YieldMPa)},
					}, nil
				}
				fos, err := FactorOfSafety(record.YieldMPa, vm)
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Result{
					Values: []calc.ResultValue{
						{Label: "von Mises Stress", Value: vm, Unit: "MPa"},
						{Label: "Factor of Safety", Value: fos},
					},
					Verdict: SafetyVerdict(fos, fosThreshold),
					Details: []string{fmt.Sprintf("Reference yield strength (%s): %g MPa", record.Name, record.YieldMPa)},
				}, nil
			},
		},
		{
			Category: calc.StressStrain,
			Slug:     "stress-concentration",
			Name:     "Stress Concentration (σ_max)",
			Fields: []calc.Field{
				{Key: "kt", Label: "Stress concentration factor K_t", Unit: "", Constraint: calc.Positive()},
				{Key: "nominal", Label: "Nominal stress σ_nom", Unit: "MPa", Constraint: calc.Any()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				smax, err := StressConcentration(in.Float("kt"), in.Float("nominal"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Max Stress σ_max", smax, "MPa"), nil
			},
		},
		{
			Category: calc.StressStrain,
			Slug:     "creep-rate",
			Name:     "Steady-State Creep Rate",
			Fields: []calc.Field{
				{Key: "a", Label: "Material constant A", Unit: "", Constraint: calc.Positive()},
				{Key: "stress", Label: "Applied stress σ", Unit: "MPa", Constraint: calc.NonNegative()},
				{Key: "n", Label: "Stress exponent n", Unit: "", Constraint: calc.Any()},
				{Key: "q", Label: "Activation energy Q", Unit: "J/mol", Constraint: calc.NonNegative()},
				{Key: "t", Label: "Temperature T", Unit: "K", Constraint: calc.Positive()},
			},
			Compute: func(in calc.Inputs) (calc.Result, error) {
				rate, err := CreepRate(in.Float("a"), in.Float("stress"), in.Float("n"), in.Float("q"), in.Float("t"))
				if err != nil {
					return calc.Result{}, err
				}
				return calc.Single("Steady-state Creep Rate ε̇", rate, "1/s"), nil
			},
		},
	}
}
