package significance

import (
	"fmt"

	"github.com/carbocation/readcounts/counttable"
)

// MissingGene records a gene that was counted in one sample but is absent
// from the other, and so cannot be compared.
type MissingGene struct {
	Gene string

	// MissingFrom names the sample that lacks the gene.
	MissingFrom string
}

func (m MissingGene) String() string {
	return fmt.Sprintf("Gene %s was not found in %s.", m.Gene, m.MissingFrom)
}

// MissingGenes returns the genes of a that are absent from b, in a's order,
// followed by the genes of b that are absent from a, in b's order.
func MissingGenes(a, b *counttable.Table) []MissingGene {
	var out []MissingGene

	for _, gene := range a.Genes() {
		if !b.Has(gene) {
			out = append(out, MissingGene{Gene: gene, MissingFrom: b.Name})
		}
	}

	for _, gene := range b.Genes() {
		if !a.Has(gene) {
			out = append(out, MissingGene{Gene: gene, MissingFrom: a.Name})
		}
	}

	return out
}
