// Package thermal_test - Thermal formula tests
package thermal_test

import (
	"math"
	"testing"

	"mme-calc/formulas/thermal"
)

const tolerance = 1e-9

func TestFourierHeatFlux(t *testing.T) {
	tests := []struct {
		name    string
		k       float64
		deltaT  float64
		dx      float64
		want    float64
		wantErr bool
	}{
		{name: "brick wall", k: 0.72, deltaT: 20, dx: 0.1, want: 144},
		{name: "negative delta uses magnitude", k: 0.72, deltaT: -20, dx: 0.1, want: 144},
		{name: "zero conductivity rejected", k: 0, deltaT: 20, dx: 0.1, wantErr: true},
		{name: "zero thickness rejected", k: 0.72, deltaT: 20, dx: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := thermal.FourierHeatFlux(tt.k, tt.deltaT, tt.dx)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("got %g, want %g", got, tt.want)
			}
		})
	}
}

func TestExpansion(t *testing.T) {
	dl, err := thermal.LinearExpansion(12e-6, 10, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(dl-6e-3) > tolerance {
		t.Errorf("LinearExpansion = %g, want 6e-3", dl)
	}

	dv, err := thermal.VolumetricExpansion(12e-6, 1, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(dv-1.8e-3) > tolerance {
		t.Errorf("VolumetricExpansion = %g, want 1.8e-3", dv)
	}

	if _, err := thermal.LinearExpansion(12e-6, 0, 50); err == nil {
		t.Error("expected error for zero length")
	}
}

func TestCompositeSlabFlux(t *testing.T) {
	// a single layer must agree with Fourier's law
	single, err := thermal.CompositeSlabFlux(20, []thermal.Layer{{Thickness: 0.1, Conductivity: 0.72}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fourier, _ := thermal.FourierHeatFlux(0.72, 20, 0.1)
	if math.Abs(single-fourier) > tolerance {
		t.Errorf("single layer flux %g != Fourier flux %g", single, fourier)
	}

	// two layers in series: q = ΔT / (L1/k1 + L2/k2)
	two, err := thermal.CompositeSlabFlux(50, []thermal.Layer{
		{Thickness: 0.1, Conductivity: 1.5},
		{Thickness: 0.05, Conductivity: 0.8},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 50 / (0.1/1.5 + 0.05/0.8)
	if math.Abs(two-want) > tolerance {
		t.Errorf("two layer flux = %g, want %g", two, want)
	}

	if _, err := thermal.CompositeSlabFlux(50, nil); err == nil {
		t.Error("expected error for empty layer list")
	}
	if _, err := thermal.CompositeSlabFlux(50, []thermal.Layer{{Thickness: -0.1, Conductivity: 1}}); err == nil {
		t.Error("expected error for negative thickness")
	}
}

func TestNewtonCooling(t *testing.T) {
	q, err := thermal.NewtonCooling(25, 2, 80, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(q-3000) > tolerance {
		t.Errorf("NewtonCooling = %g, want 3000", q)
	}

	// heat flows into a colder surface: negative rate
	q, err = thermal.NewtonCooling(25, 2, 20, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q >= 0 {
		t.Errorf("expected negative rate for cold surface, got %g", q)
	}
}

func TestThermalDiffusivity(t *testing.T) {
	// steel-ish: k=50, ρ=7850, cp=490
	alpha, err := thermal.ThermalDiffusivity(50, 7850, 490)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 50.0 / (7850 * 490)
	if math.Abs(alpha-want) > tolerance {
		t.Errorf("ThermalDiffusivity = %g, want %g", alpha, want)
	}
	if _, err := thermal.ThermalDiffusivity(50, 0, 490); err == nil {
		t.Error("expected error for zero density")
	}
}
