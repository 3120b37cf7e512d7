package counttable

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary holds a few descriptive numbers for a sample.
type Summary struct {
	Name   string
	Genes  int
	Total  int64
	Median float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: %d genes, %d total reads, median %.1f reads per gene", s.Name, s.Genes, s.Total, s.Median)
}

func (t *Table) Summary() (Summary, error) {
	out := Summary{
		Name:  t.Name,
		Genes: t.Len(),
		Total: t.Total(),
	}

	if t.Len() == 0 {
		return out, nil
	}

	values := make(stats.Float64Data, 0, t.Len())
	for _, gene := range t.genes {
		values = append(values, float64(t.counts[gene]))
	}

	median, err := stats.Median(values)
	if err != nil {
		return out, err
	}
	out.Median = median

	return out, nil
}
