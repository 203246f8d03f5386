package dsg

import (
	"fmt"
	"io"
)

// MaximalSet stores DenseSubGraphs such that no element is superseded by
// any other, i.e. it implies no duplicates. The supersede relation is
// full (sources ⊇ and centers ⊇) unless onlyCentersMaximality is set, in
// which case only centers are compared — used when mining cliques only,
// so the set stays maximal in centers.
//
// As documented at spec level: centers-only supersedence is asymmetric
// with respect to sources, so two DSGs with equal centers but different
// sources are treated as duplicates, losing the source distinction. This
// is intentional, preserved behaviour, not a bug.
type MaximalSet struct {
	dsgs                  []DenseSubGraph
	onlyCentersMaximality bool
}

// NewMaximalSet returns an empty set. asClique selects centers-only
// supersedence.
func NewMaximalSet(asClique bool) *MaximalSet {
	return &MaximalSet{onlyCentersMaximality: asClique}
}

// Insert adds d if it is not superseded by any existing element,
// evicting every existing element d supersedes. Returns whether d was
// inserted.
func (m *MaximalSet) Insert(d DenseSubGraph) bool {
	for _, existing := range m.dsgs {
		if m.supersede(existing, d) {
			return false
		}
	}

	kept := m.dsgs[:0]
	for _, existing := range m.dsgs {
		if !m.supersede(d, existing) {
			kept = append(kept, existing)
		}
	}
	m.dsgs = append(kept, d)
	return true
}

func (m *MaximalSet) supersede(candidate, d DenseSubGraph) bool {
	if m.onlyCentersMaximality {
		return candidate.Centers.Includes(d.Centers)
	}
	return candidate.Sources.Includes(d.Sources) && candidate.Centers.Includes(d.Centers)
}

// All returns the set's elements. The returned slice must not be
// mutated by callers.
func (m *MaximalSet) All() []DenseSubGraph { return m.dsgs }

// Len returns the number of elements in the set.
func (m *MaximalSet) Len() int { return len(m.dsgs) }

// Empty reports whether the set has no elements.
func (m *MaximalSet) Empty() bool { return len(m.dsgs) == 0 }

// Dump writes one DenseSubGraph per line to w. In centers-only mode,
// only the centers set is written per line (the set is being treated as
// a clique collection); otherwise the full DSG is written, with a
// trailing description marker for as-clique/biclique entries when
// includeDescriptions is set.
func (m *MaximalSet) Dump(w io.Writer, includeDescriptions bool) error {
	for _, d := range m.dsgs {
		var line string
		if m.onlyCentersMaximality {
			line = setString(d.Centers)
		} else {
			line = d.String()
			if includeDescriptions && !d.Clique() && !d.Generic() {
				line += "  ## " + d.Description()
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func setString(s VertexSet) string {
	var out string
	for i, v := range s.Sorted() {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%d", v)
	}
	return out
}
