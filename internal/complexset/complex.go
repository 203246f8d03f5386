// Package complexset turns mined DenseSubGraphs into predicted protein
// complexes, scores their overlap, and filters near-duplicates.
package complexset

import (
	"github.com/bio-odsg/odsgminer/internal/dsg"
)

// Complex is a predicted protein complex: the flat set of proteins it
// contains, with no further sources/centers distinction.
type Complex struct {
	Proteins dsg.VertexSet
}

// FromDenseSubGraph builds a Complex from a mined DenseSubGraph. When
// treatAsClique is true, only the centers are kept (the subgraph is
// being reported as a clique); otherwise centers and sources are
// unified into one set.
func FromDenseSubGraph(d dsg.DenseSubGraph, treatAsClique bool) Complex {
	proteins := d.Centers.Clone()
	if !treatAsClique {
		proteins = dsg.Union(proteins, d.Sources)
	}
	return Complex{Proteins: proteins}
}

// Size is the number of proteins in c.
func (c Complex) Size() int { return c.Proteins.Len() }

// Empty reports whether c has no proteins.
func (c Complex) Empty() bool { return c.Proteins.Len() == 0 }

// OverlapScore returns OS(a, b) = |a ∩ b|² / (|a| · |b|), the similarity
// measure used both to decide whether two predicted complexes match a
// reference set and to drive near-duplicate filtering.
func OverlapScore(a, b Complex) float64 {
	if a.Empty() || b.Empty() {
		return 0
	}
	overlap := dsg.IntersectionCount(a.Proteins, b.Proteins)
	return float64(overlap*overlap) / float64(a.Size()*b.Size())
}

// Matched reports whether candidate overlaps at least one member of
// complexes with a score >= minOverlapScore.
func Matched(candidate Complex, complexes []Complex, minOverlapScore float64) bool {
	for _, c := range complexes {
		if OverlapScore(candidate, c) >= minOverlapScore {
			return true
		}
	}
	return false
}
