package significance

import (
	"math"
	"sort"
)

// BenjaminiHochberg controls the false discovery rate at alpha across a family
// of p-values. rejected[i] is true when the null hypothesis for pvalues[i] is
// rejected; adjusted[i] is the corresponding BH-adjusted p-value. Both are in
// the order of pvalues.
func BenjaminiHochberg(pvalues []float64, alpha float64) (rejected []bool, adjusted []float64) {
	n := len(pvalues)
	rejected = make([]bool, n)
	adjusted = make([]float64, n)

	if n == 0 {
		return
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return pvalues[order[i]] < pvalues[order[j]] })

	// Step up: find the largest rank whose p-value is under its threshold.
	// Everything at or below that rank is rejected.
	cutoff := -1
	for rank, idx := range order {
		if pvalues[idx] <= float64(rank+1)/float64(n)*alpha {
			cutoff = rank
		}
	}
	for rank := 0; rank <= cutoff; rank++ {
		rejected[order[rank]] = true
	}

	// Adjusted p-values are monotone, so take the running minimum from the
	// least significant end.
	runningMin := 1.0
	for rank := n - 1; rank >= 0; rank-- {
		idx := order[rank]
		runningMin = math.Min(runningMin, pvalues[idx]*float64(n)/float64(rank+1))
		adjusted[idx] = runningMin
	}

	return
}
