// Package stress_test - Stress-strain formula tests
package stress_test

import (
	"math"
	"testing"

	"mme-calc/formulas/stress"
)

const tolerance = 1e-9

func TestHookeRoundTrip(t *testing.T) {
	const e = 200000.0
	s, err := stress.HookeStress(e, 0.00125)
	if err != nil {
		t.Fatalf("HookeStress: %v", err)
	}
	if math.Abs(s-250) > tolerance {
		t.Errorf("HookeStress = %g, want 250", s)
	}

	eps, err := stress.HookeStrain(e, s)
	if err != nil {
		t.Fatalf("HookeStrain: %v", err)
	}
	if math.Abs(eps-0.00125) > tolerance {
		t.Errorf("round trip strain = %g, want 0.00125", eps)
	}

	if _, err := stress.HookeStress(0, 0.001); err == nil {
		t.Error("expected error for zero modulus")
	}
}

func TestPoissonLateralStrain(t *testing.T) {
	got := stress.PoissonLateralStrain(0.3, 0.002)
	if math.Abs(got-(-0.0006)) > tolerance {
		t.Errorf("lateral strain = %g, want -0.0006", got)
	}
}

func TestElasticConstants(t *testing.T) {
	const (
		e  = 200000.0
		nu = 0.3
	)
	g, err := stress.ShearModulus(e, nu)
	if err != nil {
		t.Fatalf("ShearModulus: %v", err)
	}
	if math.Abs(g-e/2.6) > tolerance {
		t.Errorf("G = %g, want %g", g, e/2.6)
	}

	k, err := stress.BulkModulus(e, nu)
	if err != nil {
		t.Fatalf("BulkModulus: %v", err)
	}
	if math.Abs(k-e/1.2) > tolerance {
		t.Errorf("K = %g, want %g", k, e/1.2)
	}

	if _, err := stress.ShearModulus(e, -1); err == nil {
		t.Error("expected error at nu=-1")
	}
	if _, err := stress.BulkModulus(e, 0.5); err == nil {
		t.Error("expected error at nu=0.5")
	}
}

func TestVonMises(t *testing.T) {
	tests := []struct {
		name       string
		s1, s2, s3 float64
		want       float64
	}{
		{name: "uniaxial tension", s1: 100, s2: 0, s3: 0, want: 100},
		{name: "hydrostatic is zero", s1: 50, s2: 50, s3: 50, want: 0},
		{name: "pure shear", s1: 60, s2: 0, s3: -60, want: math.Sqrt(3) * 60},
		{name: "uniaxial compression", s1: -100, s2: 0, s3: 0, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stress.VonMises(tt.s1, tt.s2, tt.s3)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("VonMises(%g, %g, %g) = %g, want %g", tt.s1, tt.s2, tt.s3, got, tt.want)
			}
		})
	}
}

func TestFactorOfSafety(t *testing.T) {
	tests := []struct {
		name        string
		yield       float64
		applied     float64
		want        float64
		wantVerdict string
		wantErr     bool
	}{
		{name: "safe", yield: 250, applied: 200, want: 1.25, wantVerdict: stress.VerdictSafe},
		{name: "unsafe", yield: 250, applied: 300, want: 250.0 / 300.0, wantVerdict: stress.VerdictUnsafe},
		{name: "exactly at threshold", yield: 250, applied: 250, want: 1, wantVerdict: stress.VerdictSafe},
		{name: "zero applied rejected", yield: 250, applied: 0, wantErr: true},
		{name: "zero yield rejected", yield: 0, applied: 100, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fos, err := stress.FactorOfSafety(tt.yield, tt.applied)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(fos-tt.want) > tolerance {
				t.Errorf("FoS = %g, want %g", fos, tt.want)
			}
			if got := stress.SafetyVerdict(fos, 1.0); got != tt.wantVerdict {
				t.Errorf("verdict = %q, want %q", got, tt.wantVerdict)
			}
		})
	}
}

func TestSafetyVerdictThreshold(t *testing.T) {
	// a stricter threshold flips marginal designs to unsafe
	if got := stress.SafetyVerdict(1.2, 1.5); got != stress.VerdictUnsafe {
		t.Errorf("FoS 1.2 against threshold 1.5 = %q, want UNSAFE", got)
	}
	if got := stress.SafetyVerdict(1.5, 1.5); got != stress.VerdictSafe {
		t.Errorf("FoS 1.5 against threshold 1.5 = %q, want SAFE", got)
	}
}

func TestStressConcentration(t *testing.T) {
	smax, err := stress.StressConcentration(3, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(smax-150) > tolerance {
		t.Errorf("StressConcentration = %g, want 150", smax)
	}
	if _, err := stress.StressConcentration(0, 50); err == nil {
		t.Error("expected error for zero Kt")
	}
}

func TestCreepRate(t *testing.T) {
	const (
		a = 1e-10
		s = 100.0
		n = 5.0
		q = 200000.0
	)
	low, err := stress.CreepRate(a, s, n, q, 800)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	high, err := stress.CreepRate(a, s, n, q, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if low <= 0 || high <= 0 {
		t.Fatalf("creep rates must be positive: %g, %g", low, high)
	}
	// thermally activated: rate grows with temperature
	if high <= low {
		t.Errorf("creep rate must increase with temperature: %g <= %g", high, low)
	}

	// power-law: rate grows with stress for n > 0
	harder, err := stress.CreepRate(a, 2*s, n, q, 800)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(harder/low-math.Pow(2, n)) > 1e-6*math.Pow(2, n) {
		t.Errorf("stress exponent ratio = %g, want %g", harder/low, math.Pow(2, n))
	}

	if _, err := stress.CreepRate(a, s, n, q, 0); err == nil {
		t.Error("expected error for zero temperature")
	}
	if _, err := stress.CreepRate(a, -1, n, q, 800); err == nil {
		t.Error("expected error for negative stress")
	}
}
