package finance

import (
	"math"
	"testing"
)

func TestCRFKnownValue(t *testing.T) {
	got := CRF(0.08, 15)
	if math.Abs(got-0.1168) > 0.00005 {
		t.Errorf("CRF(0.08, 15) = %.6f, want ~0.1168", got)
	}
}

func TestCRFZeroRate(t *testing.T) {
	for _, n := range []int{1, 10, 40} {
		if got := CRF(0, n); got != 1/float64(n) {
			t.Errorf("CRF(0, %d) = %v, want %v", n, got, 1/float64(n))
		}
	}
}

func TestCRFZeroTerm(t *testing.T) {
	if got := CRF(0.05, 0); got != 0 {
		t.Errorf("CRF at 0 term = %v, want 0", got)
	}
}

func TestCRFMatchesAnnuity(t *testing.T) {
	// $1M at 5% for 30 years is ~$65,051 per year.
	annual := 1_000_000 * CRF(0.05, 30)
	if math.Abs(annual-65051) > 100 {
		t.Errorf("annuity = $%.0f, want ~$65,051", annual)
	}
}

func TestAnnualize(t *testing.T) {
	got := Annualize(1000, 0, 10, 0.02)
	if math.Abs(got-120) > 1e-9 {
		t.Errorf("Annualize = %v, want 120", got)
	}
}

func TestReplacementYears(t *testing.T) {
	got := ReplacementYears(7, 20)
	if len(got) != 2 || got[0] != 7 || got[1] != 14 {
		t.Errorf("ReplacementYears(7, 20) = %v, want [7 14]", got)
	}
	if got := ReplacementYears(10, 20); len(got) != 1 || got[0] != 10 {
		t.Errorf("ReplacementYears(10, 20) = %v, want [10]", got)
	}
	if got := ReplacementYears(20, 20); len(got) != 0 {
		t.Errorf("ReplacementYears(20, 20) = %v, want none", got)
	}
	if got := ReplacementYears(0, 20); got != nil {
		t.Errorf("ReplacementYears(0, 20) = %v, want nil", got)
	}
}

func TestReplacementNPV(t *testing.T) {
	got := ReplacementNPV(1000, 0.08, 7, 20)
	want := 1000/math.Pow(1.08, 7) + 1000/math.Pow(1.08, 14)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ReplacementNPV = %v, want %v", got, want)
	}
}
