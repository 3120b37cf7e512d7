package significance

import (
	"fmt"
	"math"

	"github.com/BenLubar/memoize"
	"gonum.org/v1/gonum/stat/distuv"
)

// Many genes share the same small counts, so the same tables come up
// repeatedly within a run.
var memoizedPValue = memoize.Memoize(pValue)

var chiSquared1 = distuv.ChiSquared{K: 1}

// PValue tests whether a gene's share of reads differs between two samples.
// The gene had countA of totalA reads in one sample and countB of totalB in
// the other. Genes with no reads in either sample have P=1.
func PValue(countA, countB, totalA, totalB int64) float64 {
	if countA > totalA || countB > totalB {
		panic(fmt.Sprintf("gene count exceeds the sample total: %d/%d, %d/%d", countA, totalA, countB, totalB))
	}

	return memoizedPValue.(func(int64, int64, int64, int64) float64)(countA, countB, totalA, totalB)
}

func pValue(countA, countB, totalA, totalB int64) float64 {
	if countA == 0 && countB == 0 {
		return 1.0
	}

	stat, ok := ChiSquare2x2([2][2]float64{
		{float64(countA), float64(totalA - countA)},
		{float64(countB), float64(totalB - countB)},
	})
	if !ok {
		return 1.0
	}

	return chiSquared1.Survival(stat)
}

// ChiSquare2x2 returns the chi square statistic (1 degree of freedom) for
// independence of the rows and columns of a 2x2 contingency table, with Yates'
// continuity correction: each observed cell is moved toward its expectation by
// at most 0.5. If any expected cell is zero the statistic is undefined and ok
// is false.
func ChiSquare2x2(obs [2][2]float64) (stat float64, ok bool) {
	rows := [2]float64{obs[0][0] + obs[0][1], obs[1][0] + obs[1][1]}
	cols := [2]float64{obs[0][0] + obs[1][0], obs[0][1] + obs[1][1]}
	N := rows[0] + rows[1]

	if N == 0 {
		return 0, false
	}

	for i := range obs {
		for j := range obs[i] {
			expected := rows[i] * cols[j] / N
			if expected == 0 {
				return 0, false
			}

			diff := expected - obs[i][j]
			corrected := obs[i][j] + math.Copysign(math.Min(0.5, math.Abs(diff)), diff)

			stat += math.Pow(corrected-expected, 2) / expected
		}
	}

	return stat, true
}
