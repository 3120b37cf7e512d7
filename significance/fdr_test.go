package significance

import (
	"math"
	"math/rand"
	"testing"
)

func TestBenjaminiHochberg(t *testing.T) {
	for _, v := range []struct {
		P        []float64
		Rejected []bool
		Adjusted []float64
	}{
		{
			P:        []float64{0.01, 0.04, 0.03, 0.005},
			Rejected: []bool{true, true, true, true},
			Adjusted: []float64{0.02, 0.04, 0.04, 0.02},
		},
		{
			P:        []float64{0.01, 0.02, 0.03, 0.5},
			Rejected: []bool{true, true, true, false},
			Adjusted: []float64{0.04, 0.04, 0.04, 0.5},
		},
		{
			P:        []float64{0.04, 0.045, 0.9},
			Rejected: []bool{false, false, false},
			Adjusted: []float64{0.0675, 0.0675, 0.9},
		},
		{
			P:        []float64{1, 1, 1},
			Rejected: []bool{false, false, false},
			Adjusted: []float64{1, 1, 1},
		},
	} {
		rejected, adjusted := BenjaminiHochberg(v.P, 0.05)
		for i := range v.P {
			if rejected[i] != v.Rejected[i] {
				t.Errorf("P %v: position %d expected rejected=%v, got %v", v.P, i, v.Rejected[i], rejected[i])
			}
			if math.Abs(adjusted[i]-v.Adjusted[i]) > 1e-12 {
				t.Errorf("P %v: position %d expected adjusted %v, got %v", v.P, i, v.Adjusted[i], adjusted[i])
			}
		}
	}
}

func TestBenjaminiHochbergEmpty(t *testing.T) {
	rejected, adjusted := BenjaminiHochberg(nil, 0.05)
	if len(rejected) != 0 || len(adjusted) != 0 {
		t.Errorf("Expected empty output, got %v %v", rejected, adjusted)
	}
}

// Correction can only ever reject fewer hypotheses than the raw p-values would.
func TestBenjaminiHochbergNeverLessConservative(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(50)
		p := make([]float64, n)
		for i := range p {
			// Skew toward small values so that some trials reject
			p[i] = math.Pow(rng.Float64(), 3)
		}

		rejected, adjusted := BenjaminiHochberg(p, 0.05)

		nRejected, nRaw := 0, 0
		for i := range p {
			if rejected[i] {
				nRejected++
			}
			if p[i] <= 0.05 {
				nRaw++
			}
			if adjusted[i] < p[i]-1e-12 {
				t.Fatalf("Adjusted p-value %v is below the raw p-value %v", adjusted[i], p[i])
			}
			if rejected[i] != (adjusted[i] <= 0.05) {
				t.Fatalf("Rejection (%v) disagrees with adjusted p-value %v", rejected[i], adjusted[i])
			}
		}

		if nRejected > nRaw {
			t.Fatalf("Rejected %d hypotheses but only %d raw p-values were <= 0.05", nRejected, nRaw)
		}
	}
}
