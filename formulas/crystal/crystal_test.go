// Package crystal_test - Crystallography formula tests
package crystal_test

import (
	"math"
	"testing"

	"mme-calc/formulas/crystal"
)

const tolerance = 1e-9

func TestAPF(t *testing.T) {
	tests := []struct {
		name      string
		structure crystal.Structure
		want      float64
	}{
		{name: "BCC", structure: crystal.BCC, want: math.Sqrt(3) * math.Pi / 8},
		{name: "FCC", structure: crystal.FCC, want: math.Pi / (3 * math.Sqrt2)},
		{name: "HCP", structure: crystal.HCP, want: math.Pi / (3 * math.Sqrt2)},
		{name: "simple cubic", structure: crystal.SimpleCubic, want: math.Pi / 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := crystal.APF(tt.structure)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("APF(%s) = %g, want %g", tt.structure, got, tt.want)
			}
		})
	}

	if _, err := crystal.APF(crystal.Structure("BCT")); err == nil {
		t.Error("expected error for unknown structure")
	}
}

func TestAPFClassicValues(t *testing.T) {
	// the textbook constants: BCC 0.68, FCC/HCP 0.74, SC 0.52
	bcc, _ := crystal.APF(crystal.BCC)
	if math.Abs(bcc-0.68) > 0.005 {
		t.Errorf("BCC APF = %g, want ~0.68", bcc)
	}
	fcc, _ := crystal.APF(crystal.FCC)
	if math.Abs(fcc-0.74) > 0.005 {
		t.Errorf("FCC APF = %g, want ~0.74", fcc)
	}
	sc, _ := crystal.APF(crystal.SimpleCubic)
	if math.Abs(sc-0.52) > 0.005 {
		t.Errorf("SC APF = %g, want ~0.52", sc)
	}
}

func TestCellVolume(t *testing.T) {
	// APF must equal (atoms × sphere volume) / cell volume for each
	// structure; verify via the FCC cell with r = 1
	v, err := crystal.CellVolume(crystal.FCC, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sphere := 4.0 / 3.0 * math.Pi
	apf, _ := crystal.APF(crystal.FCC)
	if math.Abs(4*sphere/v-apf) > tolerance {
		t.Errorf("FCC cell volume inconsistent with APF: %g vs %g", 4*sphere/v, apf)
	}

	if _, err := crystal.CellVolume(crystal.BCC, 0); err == nil {
		t.Error("expected error for zero radius")
	}
	if _, err := crystal.CellVolume(crystal.Structure("BCT"), 1); err == nil {
		t.Error("expected error for unknown structure")
	}
}

func TestDensities(t *testing.T) {
	pd, err := crystal.PlanarDensity(2, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(pd-4) > tolerance {
		t.Errorf("PlanarDensity = %g, want 4", pd)
	}

	ld, err := crystal.LinearDensity(2, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(ld-5) > tolerance {
		t.Errorf("LinearDensity = %g, want 5", ld)
	}

	if _, err := crystal.PlanarDensity(2, 0); err == nil {
		t.Error("expected error for zero area")
	}
	if _, err := crystal.LinearDensity(-1, 0.4); err == nil {
		t.Error("expected error for negative atom count")
	}
}

func TestASTMGrainSizeRoundTrip(t *testing.T) {
	for _, n := range []float64{1, 4, 7.5, 10} {
		count := crystal.ASTMGrainCount(n)
		back, err := crystal.ASTMGrainNumber(count)
		if err != nil {
			t.Fatalf("unexpected error at n=%g: %v", n, err)
		}
		if math.Abs(back-n) > tolerance {
			t.Errorf("round trip n=%g -> N=%g -> %g", n, count, back)
		}
	}

	// n=1 means one grain per square inch at 100x
	if got := crystal.ASTMGrainCount(1); got != 1 {
		t.Errorf("ASTMGrainCount(1) = %g, want 1", got)
	}

	if _, err := crystal.ASTMGrainNumber(0); err == nil {
		t.Error("expected error for zero grain count")
	}
}

func TestHallPetch(t *testing.T) {
	// σ = 200 + 0.5/√0.01 = 205
	got, err := crystal.HallPetch(200, 0.5, 0.01)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-205) > tolerance {
		t.Errorf("HallPetch = %g, want 205", got)
	}

	// finer grains strengthen
	fine, _ := crystal.HallPetch(200, 0.5, 0.0001)
	coarse, _ := crystal.HallPetch(200, 0.5, 0.01)
	if fine <= coarse {
		t.Errorf("finer grains must be stronger: %g <= %g", fine, coarse)
	}

	if _, err := crystal.HallPetch(200, 0.5, 0); err == nil {
		t.Error("expected error for zero grain diameter")
	}
}

func TestBurgersVector(t *testing.T) {
	// FCC slip <110>: |b| = a/2 × √2
	got, err := crystal.BurgersVector(0.3615, 1, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 0.3615 / 2 * math.Sqrt2
	if math.Abs(got-want) > tolerance {
		t.Errorf("BurgersVector = %g, want %g", got, want)
	}
	if _, err := crystal.BurgersVector(0, 1, 1, 0); err == nil {
		t.Error("expected error for zero lattice parameter")
	}
}
