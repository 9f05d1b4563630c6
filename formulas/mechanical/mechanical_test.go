// Package mechanical_test - Mechanical property formula tests
package mechanical_test

import (
	"math"
	"testing"

	"mme-calc/formulas/mechanical"
)

const tolerance = 1e-9

func TestBrinellToTensile(t *testing.T) {
	tests := []struct {
		name    string
		hb      float64
		want    float64
		wantErr bool
	}{
		{name: "typical steel", hb: 200, want: 690},
		{name: "soft steel", hb: 120, want: 414},
		{name: "zero rejected", hb: 0, wantErr: true},
		{name: "negative rejected", hb: -50, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mechanical.BrinellToTensile(tt.hb)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for HB=%g", tt.hb)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("BrinellToTensile(%g) = %g, want %g", tt.hb, got, tt.want)
			}
		})
	}
}

func TestVickersToTensile(t *testing.T) {
	got, err := mechanical.VickersToTensile(100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-318) > tolerance {
		t.Errorf("VickersToTensile(100) = %g, want 318", got)
	}
	if _, err := mechanical.VickersToTensile(-1); err == nil {
		t.Error("expected error for negative HV")
	}
}

func TestHardnessConversionRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		hrc  float64
		hb   float64
	}{
		{name: "lower bound", hrc: 20, hb: 226},
		{name: "mid table", hrc: 40, hb: 371},
		{name: "upper bound", hrc: 55, hb: 545},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hb, err := mechanical.HRCToHB(tt.hrc)
			if err != nil {
				t.Fatalf("HRCToHB(%g): %v", tt.hrc, err)
			}
			if math.Abs(hb-tt.hb) > tolerance {
				t.Errorf("HRCToHB(%g) = %g, want %g", tt.hrc, hb, tt.hb)
			}

			hrc, err := mechanical.HBToHRC(tt.hb)
			if err != nil {
				t.Fatalf("HBToHRC(%g): %v", tt.hb, err)
			}
			if math.Abs(hrc-tt.hrc) > tolerance {
				t.Errorf("HBToHRC(%g) = %g, want %g", tt.hb, hrc, tt.hrc)
			}
		})
	}
}

func TestHardnessInterpolation(t *testing.T) {
	// halfway between HRC 20 (HB 226) and HRC 21 (HB 231)
	hb, err := mechanical.HRCToHB(20.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(hb-228.5) > tolerance {
		t.Errorf("HRCToHB(20.5) = %g, want 228.5", hb)
	}
}

func TestHardnessConversionRange(t *testing.T) {
	if _, err := mechanical.HRCToHB(19.9); err == nil {
		t.Error("expected error below HRC 20")
	}
	if _, err := mechanical.HRCToHB(55.1); err == nil {
		t.Error("expected error above HRC 55")
	}
	if _, err := mechanical.HBToHRC(225); err == nil {
		t.Error("expected error below HB 226")
	}
	if _, err := mechanical.HBToHRC(546); err == nil {
		t.Error("expected error above HB 545")
	}
}

func TestYieldStrength(t *testing.T) {
	got, err := mechanical.YieldStrength(25000, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-250) > tolerance {
		t.Errorf("YieldStrength(25000, 100) = %g, want 250", got)
	}
	if _, err := mechanical.YieldStrength(100, 0); err == nil {
		t.Error("expected error for zero area")
	}
}

func TestDuctilityMeasures(t *testing.T) {
	elong, err := mechanical.PercentElongation(50, 62.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(elong-25) > tolerance {
		t.Errorf("PercentElongation(50, 62.5) = %g, want 25", elong)
	}

	ra, err := mechanical.PercentReductionArea(100, 75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(ra-25) > tolerance {
		t.Errorf("PercentReductionArea(100, 75) = %g, want 25", ra)
	}

	if _, err := mechanical.PercentElongation(0, 10); err == nil {
		t.Error("expected error for zero gauge length")
	}
}

func TestTrueStressStrainRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		engStress float64
		engStrain float64
	}{
		{name: "small strain", engStress: 400, engStrain: 0.02},
		{name: "large strain", engStress: 550, engStrain: 0.35},
		{name: "compressive", engStress: -300, engStrain: -0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trueS, err := mechanical.TrueStress(tt.engStress, tt.engStrain)
			if err != nil {
				t.Fatalf("TrueStress: %v", err)
			}
			back, err := mechanical.EngineeringStress(trueS, tt.engStrain)
			if err != nil {
				t.Fatalf("EngineeringStress: %v", err)
			}
			if math.Abs(back-tt.engStress) > 1e-9*math.Abs(tt.engStress) {
				t.Errorf("stress round trip: got %g, want %g", back, tt.engStress)
			}

			trueE, err := mechanical.TrueStrain(tt.engStrain)
			if err != nil {
				t.Fatalf("TrueStrain: %v", err)
			}
			if got := mechanical.EngineeringStrain(trueE); math.Abs(got-tt.engStrain) > tolerance {
				t.Errorf("strain round trip: got %g, want %g", got, tt.engStrain)
			}
		})
	}

	if _, err := mechanical.TrueStrain(-1); err == nil {
		t.Error("expected error at engineering strain -1")
	}
}

func TestModulusOfResilience(t *testing.T) {
	// 250² / (2 × 200000) = 0.15625
	got, err := mechanical.ModulusOfResilience(250, 200000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.15625) > tolerance {
		t.Errorf("ModulusOfResilience(250, 200000) = %g, want 0.15625", got)
	}
	if _, err := mechanical.ModulusOfResilience(250, 0); err == nil {
		t.Error("expected error for zero modulus")
	}
}

func TestBasquinRoundTrip(t *testing.T) {
	const (
		fatigueCoeff = 900.0
		b            = -0.085
		cycles       = 1e6
	)
	amp, err := mechanical.BasquinAmplitude(fatigueCoeff, cycles, b)
	if err != nil {
		t.Fatalf("BasquinAmplitude: %v", err)
	}
	if amp <= 0 || amp >= fatigueCoeff {
		t.Fatalf("amplitude %g outside (0, %g)", amp, fatigueCoeff)
	}

	life, err := mechanical.BasquinLife(amp, fatigueCoeff, b)
	if err != nil {
		t.Fatalf("BasquinLife: %v", err)
	}
	if math.Abs(life-cycles) > 1e-3*cycles {
		t.Errorf("Basquin round trip: got %g cycles, want %g", life, cycles)
	}

	if _, err := mechanical.BasquinLife(100, 900, 0.085); err == nil {
		t.Error("expected error for positive exponent")
	}
}

func TestCharpyToughness(t *testing.T) {
	got, err := mechanical.CharpyToughness(120, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1.5) > tolerance {
		t.Errorf("CharpyToughness(120, 80) = %g, want 1.5", got)
	}
	if _, err := mechanical.CharpyToughness(120, -1); err == nil {
		t.Error("expected error for negative area")
	}
}
