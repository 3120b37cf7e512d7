package significance

import (
	"encoding/csv"
	"io"

	"github.com/gocarina/gocsv"
)

// GeneResult is one row of the per-gene results table.
type GeneResult struct {
	Gene        string  `csv:"gene"`
	CountA      int64   `csv:"count_a"`
	CountB      int64   `csv:"count_b"`
	PValue      float64 `csv:"pvalue"`
	PAdjusted   float64 `csv:"padj"`
	Significant bool    `csv:"significant"`
}

func (r *Result) Rows() []*GeneResult {
	out := make([]*GeneResult, 0, r.Len())
	for i, gene := range r.Genes {
		out = append(out, &GeneResult{
			Gene:        gene,
			CountA:      r.CountsA[i],
			CountB:      r.CountsB[i],
			PValue:      r.PValues[i],
			PAdjusted:   r.Adjusted[i],
			Significant: r.Rejected[i],
		})
	}

	return out
}

// WriteTSV writes the per-gene results as a tab-delimited table with a header.
func (r *Result) WriteTSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	rows := r.Rows()
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
