// Package phase_test - Phase transformation formula tests
package phase_test

import (
	"math"
	"testing"

	"mme-calc/formulas/phase"
)

const tolerance = 1e-9

func TestLeverRule(t *testing.T) {
	tests := []struct {
		name      string
		c0        float64
		cAlpha    float64
		cBeta     float64
		wantAlpha float64
		wantErr   bool
	}{
		{name: "midpoint", c0: 0.5, cAlpha: 0.0, cBeta: 1.0, wantAlpha: 0.5},
		{name: "hypoeutectoid steel", c0: 0.4, cAlpha: 0.022, cBeta: 0.76, wantAlpha: (0.76 - 0.4) / (0.76 - 0.022)},
		{name: "at alpha boundary", c0: 0.022, cAlpha: 0.022, cBeta: 0.76, wantAlpha: 1.0},
		{name: "at beta boundary", c0: 0.76, cAlpha: 0.022, cBeta: 0.76, wantAlpha: 0.0},
		{name: "reversed boundaries", c0: 0.5, cAlpha: 1.0, cBeta: 0.0, wantAlpha: 0.5},
		{name: "below field rejected", c0: 0.01, cAlpha: 0.022, cBeta: 0.76, wantErr: true},
		{name: "above field rejected", c0: 0.9, cAlpha: 0.022, cBeta: 0.76, wantErr: true},
		{name: "degenerate tie line rejected", c0: 0.5, cAlpha: 0.5, cBeta: 0.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wAlpha, wBeta, err := phase.LeverRule(tt.c0, tt.cAlpha, tt.cBeta)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if wAlpha < 0 || wBeta < 0 {
				t.Errorf("negative fraction: wAlpha=%g wBeta=%g", wAlpha, wBeta)
			}
			if math.Abs(wAlpha+wBeta-1) > tolerance {
				t.Errorf("fractions sum to %g, want 1", wAlpha+wBeta)
			}
			if math.Abs(wAlpha-tt.wantAlpha) > tolerance {
				t.Errorf("wAlpha = %g, want %g", wAlpha, tt.wantAlpha)
			}
		})
	}
}

func TestGibbsPhaseRule(t *testing.T) {
	tests := []struct {
		name       string
		components int
		phases     int
		want       int
		wantErr    bool
	}{
		{name: "binary two-phase", components: 2, phases: 2, want: 2},
		{name: "unary triple point", components: 1, phases: 3, want: 0},
		{name: "zero components rejected", components: 0, phases: 1, wantErr: true},
		{name: "impossible system rejected", components: 1, phases: 4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := phase.GibbsPhaseRule(tt.components, tt.phases)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got F=%d, want %d", got, tt.want)
			}
		})
	}
}

func TestAvramiFraction(t *testing.T) {
	// bounded in [0, 1] and monotonically non-decreasing in time
	prev := -1.0
	for _, tm := range []float64{0, 1, 10, 100, 1000, 1e6} {
		x, err := phase.AvramiFraction(0.01, tm, 2)
		if err != nil {
			t.Fatalf("unexpected error at t=%g: %v", tm, err)
		}
		if x < 0 || x > 1 {
			t.Errorf("fraction %g outside [0, 1] at t=%g", x, tm)
		}
		if x < prev {
			t.Errorf("fraction decreased: %g < %g at t=%g", x, prev, tm)
		}
		prev = x
	}

	x, err := phase.AvramiFraction(0.01, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if x != 0 {
		t.Errorf("fraction at t=0 is %g, want 0", x)
	}

	if _, err := phase.AvramiFraction(-0.01, 1, 2); err == nil {
		t.Error("expected error for negative k")
	}
	if _, err := phase.AvramiFraction(0.01, -1, 2); err == nil {
		t.Error("expected error for negative time")
	}
}

func TestCarbonEquivalent(t *testing.T) {
	// plain carbon steel: CE = C + Mn/6
	ce, err := phase.CarbonEquivalent(0.2, 0.9, 0, 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 0.2 + 0.9/6
	if math.Abs(ce-want) > tolerance {
		t.Errorf("CE = %g, want %g", ce, want)
	}

	if _, err := phase.CarbonEquivalent(0.2, -0.9, 0, 0, 0, 0, 0); err == nil {
		t.Error("expected error for negative element content")
	}
}

func TestWeldabilityVerdict(t *testing.T) {
	tests := []struct {
		name string
		ce   float64
		want string
	}{
		{name: "good", ce: 0.35, want: "Good weldability"},
		{name: "fair at boundary", ce: 0.40, want: "Fair weldability - preheat recommended"},
		{name: "fair at upper boundary", ce: 0.60, want: "Fair weldability - preheat recommended"},
		{name: "poor", ce: 0.61, want: "Poor weldability - special procedures needed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := phase.WeldabilityVerdict(tt.ce); got != tt.want {
				t.Errorf("WeldabilityVerdict(%g) = %q, want %q", tt.ce, got, tt.want)
			}
		})
	}
}

func TestScheilEquation(t *testing.T) {
	// at fs=0 the first solid forms at k × C0
	cs, err := phase.ScheilEquation(0.17, 4.5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(cs-0.17*4.5) > tolerance {
		t.Errorf("Scheil at fs=0: got %g, want %g", cs, 0.17*4.5)
	}

	// for k < 1 the solid composition rises as solidification proceeds
	later, err := phase.ScheilEquation(0.17, 4.5, 0.8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if later <= cs {
		t.Errorf("solid composition should rise for k<1: %g <= %g", later, cs)
	}

	if _, err := phase.ScheilEquation(0, 4.5, 0.5); err == nil {
		t.Error("expected error for zero partition coefficient")
	}
	if _, err := phase.ScheilEquation(0.17, 4.5, 1); err == nil {
		t.Error("expected error at fs=1")
	}
}
