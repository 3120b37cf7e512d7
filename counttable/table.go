// Package counttable loads per-gene read counts for a single sample.
package counttable

// Table maps gene identifiers to read counts for one sample. Genes are kept in
// the order in which they were first seen in the input, so that anything
// iterating over a Table is deterministic.
type Table struct {
	// Name identifies the sample, usually by the path it was read from.
	Name string

	genes  []string
	counts map[string]int64
}

func New(name string) *Table {
	return &Table{
		Name:   name,
		counts: make(map[string]int64),
	}
}

// Set records the count for gene. If the gene was already present, the new
// count replaces the old one but the gene keeps its original position.
func (t *Table) Set(gene string, count int64) {
	if _, exists := t.counts[gene]; !exists {
		t.genes = append(t.genes, gene)
	}
	t.counts[gene] = count
}

func (t *Table) Get(gene string) (int64, bool) {
	v, exists := t.counts[gene]
	return v, exists
}

func (t *Table) Has(gene string) bool {
	_, exists := t.counts[gene]
	return exists
}

// Genes returns the gene identifiers in input order.
func (t *Table) Genes() []string {
	out := make([]string, len(t.genes))
	copy(out, t.genes)
	return out
}

func (t *Table) Len() int {
	return len(t.genes)
}

// Total is the sum of the counts of every gene in the table.
func (t *Table) Total() int64 {
	var total int64
	for _, v := range t.counts {
		total += v
	}

	return total
}
