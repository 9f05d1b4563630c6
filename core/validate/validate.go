// Package validate - Input validation layer
// Parses raw user text into typed values and enforces each field's
// physical-domain constraint. Rejections carry the field name; values are
// never silently coerced or clamped.
package validate

import (
	"math"
	"strconv"
	"strings"

	"mme-calc/core/calc"
	"mme-calc/internal/errors"
)

// Parse converts raw input text into a validated value for a field.
// Blank input resolves to the field's default when one is declared,
// otherwise it is a parse error.
func Parse(raw string, f calc.Field) (calc.Value, error) {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		if f.Default != nil {
			return calc.Value{Num: *f.Default}, nil
		}
		return calc.Value{}, errors.Parse("input is empty").WithField(f.Label)
	}

	switch f.Kind {
	case calc.FieldChoice:
		return parseChoice(raw, f)
	case calc.FieldInt:
		return parseInt(raw, f)
	default:
		return parseNumber(raw, f)
	}
}

func parseNumber(raw string, f calc.Field) (calc.Value, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return calc.Value{}, errors.Parsef("%q is not a number", raw).WithField(f.Label)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return calc.Value{}, errors.Parse("value must be finite").WithField(f.Label)
	}
	if err := check(v, f); err != nil {
		return calc.Value{}, err
	}
	return calc.Value{Num: v}, nil
}

func parseInt(raw string, f calc.Field) (calc.Value, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return calc.Value{}, errors.Parsef("%q is not an integer", raw).WithField(f.Label)
	}
	v := float64(n)
	if err := check(v, f); err != nil {
		return calc.Value{}, err
	}
	return calc.Value{Num: v}, nil
}

func parseChoice(raw string, f calc.Field) (calc.Value, error) {
	key := Normalize(raw)
	for _, choice := range f.Choices {
		if Normalize(choice) == key {
			return calc.Value{Str: choice}, nil
		}
	}
	return calc.Value{}, errors.Rangef("%q is not one of: %s", raw, strings.Join(f.Choices, ", ")).WithField(f.Label)
}

func check(v float64, f calc.Field) error {
	if f.Constraint.Check == nil {
		return nil
	}
	if err := f.Constraint.Check(v); err != nil {
		if e, ok := err.(*errors.Error); ok {
			return e.WithField(f.Label)
		}
		return err
	}
	return nil
}

// Normalize canonicalizes a categorical input for lookup
// ("Mild Steel" -> "mild_steel")
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
