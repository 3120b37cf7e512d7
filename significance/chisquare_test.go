package significance

import (
	"math"
	"testing"
)

type pvalueExpectation struct {
	CountA, CountB, TotalA, TotalB int64

	Stat float64
	P    float64
}

// Truth values from a Yates-corrected 2x2 chi square test of independence.
var pvalueExamples = []pvalueExpectation{
	{100, 50, 105, 55, 0.533795093795, 0.465015678784},
	{5, 5, 105, 55, 0.533795093795, 0.465015678784},
	{10, 20, 1000, 1000, 2.74111675127, 0.0977964004767},
	{0, 7, 1000, 1000, 5.16092036413, 0.0231006526941},
	{25, 31, 54, 54, 0.927197802198, 0.335592134578},
	{500, 100, 10000, 10000, 273.541237113, 1.91924453717e-61},
}

func TestChiSquare2x2(t *testing.T) {
	for _, v := range pvalueExamples {
		stat, ok := ChiSquare2x2([2][2]float64{
			{float64(v.CountA), float64(v.TotalA - v.CountA)},
			{float64(v.CountB), float64(v.TotalB - v.CountB)},
		})
		if !ok {
			t.Fatalf("Statistic unexpectedly undefined for %+v", v)
		}
		if math.Abs(stat-v.Stat) > 1e-6 {
			t.Fatalf("\nError with input: %+v\nStat: %.12f\nExpected: %.12f\n", v, stat, v.Stat)
		}
	}
}

func TestPValue(t *testing.T) {
	for _, v := range pvalueExamples {
		p := PValue(v.CountA, v.CountB, v.TotalA, v.TotalB)
		if math.Abs(p-v.P)/v.P > 1e-6 {
			t.Fatalf("\nError with input: %+v\nP: %.12g\nExpected: %.12g\n", v, p, v.P)
		}

		// The memoized path must agree with itself
		if again := PValue(v.CountA, v.CountB, v.TotalA, v.TotalB); again != p {
			t.Fatalf("Repeated call for %+v gave %v then %v", v, p, again)
		}
	}
}

func TestPValueEdgeCases(t *testing.T) {
	if p := PValue(0, 0, 100, 100); p != 1.0 {
		t.Errorf("Both counts zero: expected P=1 exactly, got %v", p)
	}

	// Sample A has no reads at all, so the expected table has a zero row.
	if p := PValue(0, 5, 0, 100); p != 1.0 {
		t.Errorf("Zero total: expected P=1, got %v", p)
	}

	// Each sample consists of this gene only, so the expected table has a
	// zero column.
	if p := PValue(10, 20, 10, 20); p != 1.0 {
		t.Errorf("Single-gene samples: expected P=1, got %v", p)
	}
}

func TestPValuePanicsOnImpossibleTotals(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic when a count exceeds its total")
		}
	}()

	PValue(50, 1, 10, 100)
}
