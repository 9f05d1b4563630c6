// Package output - Result formatting
package output

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"mme-calc/core/calc"
)

// Formatter renders calculation results as human-readable lines
type Formatter struct {
	precision int
}

// NewFormatter creates a formatter with the given decimal precision
func NewFormatter(precision int) *Formatter {
	if precision <= 0 {
		precision = 6
	}
	return &Formatter{precision: precision}
}

// Number formats one numeric value. Values of ordinary magnitude are
// rounded decimally; extreme magnitudes fall back to scientific notation
// (creep rates, fatigue cycle counts).
func (f *Formatter) Number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e15 || abs < 1e-6) {
		return strconv.FormatFloat(v, 'g', f.precision, 64)
	}
	return decimal.NewFromFloat(v).Round(int32(f.precision)).String()
}

// Value formats one labeled output with its unit
func (f *Formatter) Value(rv calc.ResultValue) string {
	if rv.Unit != "" {
		return fmt.Sprintf("%s: %s %s", rv.Label, f.Number(rv.Value), rv.Unit)
	}
	return fmt.Sprintf("%s: %s", rv.Label, f.Number(rv.Value))
}

// Result renders a full result: one line per value, then the verdict,
// then any detail lines
func (f *Formatter) Result(res calc.Result) []string {
	lines := make([]string, 0, len(res.Values)+len(res.Details)+1)
	for _, rv := range res.Values {
		lines = append(lines, f.Value(rv))
	}
	if res.Verdict != "" {
		lines = append(lines, "Verdict: "+res.Verdict)
	}
	lines = append(lines, res.Details...)
	return lines
}
