// Package batch - HCL batch calculation files
// The eval command runs calculation files of the form:
//
//	calculation "mechanical" "brinell-to-uts" {
//	  inputs = { hb = 200 }
//	}
//
// Calculators with a repeated field group take one block per row:
//
//	calculation "thermal" "composite-slab-flux" {
//	  inputs = { delta_t = 50 }
//	  layer { thickness = 0.1, conductivity = 1.5 }
//	}
//
// Calculations are evaluated strictly in file order; the first failure
// aborts the run with the offending field named.
package batch

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"mme-calc/core/calc"
	"mme-calc/core/output"
	"mme-calc/core/validate"
	"mme-calc/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "calculation", LabelNames: []string{"category", "calculator"}},
	},
}

// Runner evaluates batch files against a registry
type Runner struct {
	reg  *calc.Registry
	fmtr *output.Formatter
	out  io.Writer
}

// NewRunner creates a batch runner
func NewRunner(reg *calc.Registry, fmtr *output.Formatter, out io.Writer) *Runner {
	return &Runner{reg: reg, fmtr: fmtr, out: out}
}

// RunFile parses and evaluates one batch file
func (r *Runner) RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Config("failed to read batch file", err)
	}
	return r.Run(src, path)
}

// Run parses and evaluates batch file source
func (r *Runner) Run(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return errors.Config("invalid batch file", diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return errors.Config("invalid batch file structure", diags)
	}

	for _, block := range content.Blocks {
		if err := r.runCalculation(block); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runCalculation(block *hcl.Block) error {
	categorySlug, calcSlug := block.Labels[0], block.Labels[1]

	spec, err := r.reg.Find(categorySlug, calcSlug)
	if err != nil {
		return err
	}

	in, err := decodeInputs(spec, block.Body)
	if err != nil {
		return err
	}

	result, err := r.reg.Run(spec, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "%s/%s — %s\n", categorySlug, calcSlug, spec.Name)
	for _, line := range r.fmtr.Result(result) {
		fmt.Fprintf(r.out, "  %s\n", line)
	}
	fmt.Fprintln(r.out)
	return nil
}

// decodeInputs resolves a calculation block body against a spec's
// declared field schema
func decodeInputs(spec calc.Spec, body hcl.Body) (calc.Inputs, error) {
	schema := &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: "inputs", Required: true}},
	}
	if spec.Repeat != nil {
		schema.Blocks = []hcl.BlockHeaderSchema{{Type: rowBlockType(spec)}}
	}

	content, diags := body.Content(schema)
	if diags.HasErrors() {
		return calc.Inputs{}, errors.Config("invalid calculation block", diags)
	}

	attr := content.Attributes["inputs"]
	inputsVal, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return calc.Inputs{}, errors.Config("invalid inputs expression", diags)
	}
	if !inputsVal.Type().IsObjectType() && !inputsVal.Type().IsMapType() {
		return calc.Inputs{}, errors.Parse("inputs must be an object")
	}
	raw := inputsVal.AsValueMap()

	values := make(map[string]calc.Value)
	for _, f := range spec.Fields {
		v, err := decodeField(f, raw)
		if err != nil {
			return calc.Inputs{}, err
		}
		values[f.Key] = v
	}

	var rows []map[string]calc.Value
	if spec.Repeat != nil {
		for _, rowBlock := range content.Blocks {
			row, err := decodeRow(spec.Repeat.Fields, rowBlock)
			if err != nil {
				return calc.Inputs{}, err
			}
			rows = append(rows, row)
		}
		count := spec.Repeat.CountField
		n := float64(len(rows))
		if count.Constraint.Check != nil {
			if err := count.Constraint.Check(n); err != nil {
				if e, ok := err.(*errors.Error); ok {
					return calc.Inputs{}, e.WithField(count.Label)
				}
				return calc.Inputs{}, err
			}
		}
		values[count.Key] = calc.Value{Num: n}
	}

	return calc.NewInputs(values, rows), nil
}

func decodeRow(fields []calc.Field, block *hcl.Block) (map[string]calc.Value, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.Config("invalid "+block.Type+" block", diags)
	}

	raw := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.Config("invalid "+block.Type+" attribute", diags)
		}
		raw[name] = v
	}

	row := make(map[string]calc.Value)
	for _, f := range fields {
		v, err := decodeField(f, raw)
		if err != nil {
			return nil, err
		}
		row[f.Key] = v
	}
	return row, nil
}

// decodeField converts one cty value to a validated calc value,
// applying the same constraints as the interactive prompt
func decodeField(f calc.Field, raw map[string]cty.Value) (calc.Value, error) {
	v, ok := raw[f.Key]
	if !ok {
		if f.Default != nil {
			return calc.Value{Num: *f.Default}, nil
		}
		return calc.Value{}, errors.Parsef("missing input %q", f.Key).WithField(f.Label)
	}

	if f.Kind == calc.FieldChoice {
		if v.Type() != cty.String {
			return calc.Value{}, errors.Parsef("input %q must be a string", f.Key).WithField(f.Label)
		}
		return validate.Parse(v.AsString(), f)
	}

	if v.Type() != cty.Number {
		return calc.Value{}, errors.Parsef("input %q must be a number", f.Key).WithField(f.Label)
	}
	num, _ := v.AsBigFloat().Float64()
	if f.Kind == calc.FieldInt && num != math.Trunc(num) {
		return calc.Value{}, errors.Parsef("input %q must be an integer", f.Key).WithField(f.Label)
	}
	if f.Constraint.Check != nil {
		if err := f.Constraint.Check(num); err != nil {
			if e, ok := err.(*errors.Error); ok {
				return calc.Value{}, e.WithField(f.Label)
			}
			return calc.Value{}, err
		}
	}
	return calc.Value{Num: num}, nil
}

func rowBlockType(spec calc.Spec) string {
	return strings.ToLower(spec.Repeat.RowLabel)
}
