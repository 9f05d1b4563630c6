// Package formulas wires every domain's calculators into a registry.
// The calculator set is fixed at compile time; this is the only place
// the full table is assembled.
package formulas

import (
	"mme-calc/core/calc"
	"mme-calc/formulas/casting"
	"mme-calc/formulas/composite"
	"mme-calc/formulas/corrosion"
	"mme-calc/formulas/crystal"
	"mme-calc/formulas/mechanical"
	"mme-calc/formulas/phase"
	"mme-calc/formulas/stress"
	"mme-calc/formulas/thermal"
)

// Options configure registry assembly
type Options struct {
	// FoSThreshold is the minimum factor of safety reported as safe
	FoSThreshold float64
}

// NewRegistry builds the full calculator registry in menu order
func NewRegistry(opts Options) *calc.Registry {
	reg := calc.NewRegistry()
	reg.MustRegister(mechanical.Specs()...)
	reg.MustRegister(thermal.Specs()...)
	reg.MustRegister(phase.Specs()...)
	reg.MustRegister(corrosion.Specs()...)
	reg.MustRegister(casting.Specs()...)
	reg.MustRegister(crystal.Specs()...)
	reg.MustRegister(composite.Specs()...)
	reg.MustRegister(stress.Specs(opts.FoSThreshold)...)
	return reg
}
