// Package calc - Calculator data model and dispatch
// This package defines the contract every calculator must satisfy: a
// declared input schema and a pure compute function over validated values.
// Calculators never read input or print output themselves.
package calc

import (
	"fmt"

	"mme-calc/internal/errors"
)

// Category identifies one of the eight engineering domains
type Category int

const (
	Mechanical Category = iota + 1
	Thermal
	Phase
	Corrosion
	Casting
	Crystallography
	Composites
	StressStrain
)

// Categories in menu order
var AllCategories = []Category{
	Mechanical,
	Thermal,
	Phase,
	Corrosion,
	Casting,
	Crystallography,
	Composites,
	StressStrain,
}

// Name returns a human-readable category name
func (c Category) Name() string {
	switch c {
	case Mechanical:
		return "Mechanical Properties"
	case Thermal:
		return "Thermal Properties"
	case Phase:
		return "Phase Transformations"
	case Corrosion:
		return "Corrosion & Degradation"
	case Casting:
		return "Casting & Solidification"
	case Crystallography:
		return "Crystallography & Defects"
	case Composites:
		return "Composite Materials"
	case StressStrain:
		return "Stress & Strain Analysis"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Slug returns the stable identifier used in batch files
func (c Category) Slug() string {
	switch c {
	case Mechanical:
		return "mechanical"
	case Thermal:
		return "thermal"
	case Phase:
		return "phase"
	case Corrosion:
		return "corrosion"
	case Casting:
		return "casting"
	case Crystallography:
		return "crystallography"
	case Composites:
		return "composites"
	case StressStrain:
		return "stress-strain"
	}
	return ""
}

// FieldKind identifies the value type of an input field
type FieldKind int

const (
	// FieldNumber is a floating-point input
	FieldNumber FieldKind = iota

	// FieldInt is an integer input
	FieldInt

	// FieldChoice is one of an enumerated set of names
	FieldChoice
)

// Constraint is a validation predicate over a numeric input
type Constraint struct {
	// Describe states the constraint for prompts and error messages
	Describe string

	// Check returns a range error when the value is outside the domain
	Check func(v float64) error
}

// Any accepts every finite value
func Any() Constraint {
	return Constraint{Describe: "", Check: func(float64) error { return nil }}
}

// Positive requires v > 0
func Positive() Constraint {
	return Constraint{
		Describe: "must be > 0",
		Check: func(v float64) error {
			if v <= 0 {
				return errors.Range("value must be positive")
			}
			return nil
		},
	}
}

// NonNegative requires v >= 0
func NonNegative() Constraint {
	return Constraint{
		Describe: "must be >= 0",
		Check: func(v float64) error {
			if v < 0 {
				return errors.Range("value must be non-negative")
			}
			return nil
		},
	}
}

// NonZero requires v != 0
func NonZero() Constraint {
	return Constraint{
		Describe: "must be non-zero",
		Check: func(v float64) error {
			if v == 0 {
				return errors.Range("value must not be zero")
			}
			return nil
		},
	}
}

// Min requires v >= lo
func Min(lo float64) Constraint {
	return Constraint{
		Describe: fmt.Sprintf("must be >= %g", lo),
		Check: func(v float64) error {
			if v < lo {
				return errors.Rangef("value must be >= %g", lo)
			}
			return nil
		},
	}
}

// GreaterThan requires v > lo
func GreaterThan(lo float64) Constraint {
	return Constraint{
		Describe: fmt.Sprintf("must be > %g", lo),
		Check: func(v float64) error {
			if v <= lo {
				return errors.Rangef("value must be > %g", lo)
			}
			return nil
		},
	}
}

// Range requires lo <= v <= hi
func Range(lo, hi float64) Constraint {
	return Constraint{
		Describe: fmt.Sprintf("must be in [%g, %g]", lo, hi),
		Check: func(v float64) error {
			if v < lo || v > hi {
				return errors.Rangef("value must be in [%g, %g]", lo, hi)
			}
			return nil
		},
	}
}

// UnitInterval requires 0 <= v <= 1 (volume fractions, probabilities)
func UnitInterval() Constraint {
	return Range(0, 1)
}

// Field is a named input parameter with its validation predicate
type Field struct {
	// Key is the stable identifier used in batch files and Inputs lookups
	Key string

	// Label is the prompt text
	Label string

	// Unit annotates the expected unit (documentation only, no conversion)
	Unit string

	// Kind is the value type
	Kind FieldKind

	// Constraint is checked after parsing
	Constraint Constraint

	// Choices enumerates legal values for FieldChoice fields
	Choices []string

	// Default is substituted when the input is left blank, if non-nil
	Default *float64
}

// DefaultOf is a convenience for optional fields
func DefaultOf(v float64) *float64 {
	return &v
}

// RepeatGroup declares a variable-length list of field rows
// (e.g. the layers of a composite slab)
type RepeatGroup struct {
	// CountField prompts for the number of rows; must be a positive int
	CountField Field

	// Fields are prompted once per row
	Fields []Field

	// RowLabel names one row in prompts (e.g. "Layer")
	RowLabel string
}

// Value is one validated input value
type Value struct {
	Num float64
	Str string
}

// Inputs carries validated values into a compute function
type Inputs struct {
	values map[string]Value
	rows   []map[string]Value
}

// NewInputs creates an input set
func NewInputs(values map[string]Value, rows []map[string]Value) Inputs {
	if values == nil {
		values = make(map[string]Value)
	}
	return Inputs{values: values, rows: rows}
}

// Float returns a numeric input by key
func (in Inputs) Float(key string) float64 {
	return in.values[key].Num
}

// Int returns an integer input by key
func (in Inputs) Int(key string) int {
	return int(in.values[key].Num)
}

// Str returns a choice input by key
func (in Inputs) Str(key string) string {
	return in.values[key].Str
}

// Rows returns the repeated-group rows
func (in Inputs) Rows() []map[string]Value {
	return in.rows
}

// RowFloat returns a numeric value from a repeated-group row
func (in Inputs) RowFloat(i int, key string) float64 {
	return in.rows[i][key].Num
}

// ResultValue is one named numeric output
type ResultValue struct {
	Label string
	Value float64
	Unit  string
}

// Result is the outcome of one calculation
type Result struct {
	// Values are the numeric outputs in display order
	Values []ResultValue

	// Verdict is an optional qualitative judgement (e.g. "SAFE", "UNSAFE")
	Verdict string

	// Details are optional explanatory lines shown after the values
	Details []string
}

// Single is a convenience for the common one-output case
func Single(label string, value float64, unit string) Result {
	return Result{Values: []ResultValue{{Label: label, Value: value, Unit: unit}}}
}

// ComputeFunc evaluates a calculator over validated inputs
type ComputeFunc func(in Inputs) (Result, error)

// Spec identifies one calculator: its category, name, input schema,
// and compute function. Immutable once registered.
type Spec struct {
	// Category is the domain the calculator belongs to
	Category Category

	// Slug is the stable identifier used in batch files
	Slug string

	// Name is the menu label
	Name string

	// Fields is the ordered input schema
	Fields []Field

	// Repeat is the optional repeated field group
	Repeat *RepeatGroup

	// Compute is the formula implementation
	Compute ComputeFunc
}
