// Package significance tests each gene shared by two samples for a
// difference in read counts and corrects for multiple testing.
package significance

import (
	"fmt"

	"github.com/carbocation/readcounts/counttable"
)

// DefaultAlpha is the false discovery rate used when none is chosen.
const DefaultAlpha = 0.05

// Result holds one entry per gene present in both samples, in the order of
// the first sample's genes. All slices have the same length.
type Result struct {
	Genes   []string
	CountsA []int64
	CountsB []int64
	PValues []float64

	// Rejected is true where the null hypothesis of no difference is rejected
	// after FDR correction, i.e., the gene is significant.
	Rejected []bool

	// Adjusted holds the Benjamini-Hochberg adjusted p-values.
	Adjusted []float64

	// Missing lists the genes that could not be paired.
	Missing []MissingGene

	TotalA, TotalB int64
	Alpha          float64
}

func (r *Result) Len() int {
	return len(r.Genes)
}

// NSignificant counts the genes whose null hypothesis was rejected.
func (r *Result) NSignificant() int {
	n := 0
	for _, v := range r.Rejected {
		if v {
			n++
		}
	}

	return n
}

// Compare tests every gene of a that is also in b with a chi square test of
// its count against each sample's total, then applies Benjamini-Hochberg
// correction at alpha.
func Compare(a, b *counttable.Table, alpha float64) (*Result, error) {
	if !(alpha > 0 && alpha < 1) {
		return nil, fmt.Errorf("alpha must be between 0 and 1, got %v", alpha)
	}

	// Totals include genes that can't be paired.
	out := &Result{
		TotalA:  a.Total(),
		TotalB:  b.Total(),
		Alpha:   alpha,
		Missing: MissingGenes(a, b),
	}

	for _, gene := range a.Genes() {
		countB, exists := b.Get(gene)
		if !exists {
			continue
		}
		countA, _ := a.Get(gene)

		out.Genes = append(out.Genes, gene)
		out.CountsA = append(out.CountsA, countA)
		out.CountsB = append(out.CountsB, countB)
		out.PValues = append(out.PValues, PValue(countA, countB, out.TotalA, out.TotalB))
	}

	out.Rejected, out.Adjusted = BenjaminiHochberg(out.PValues, alpha)

	return out, nil
}
