package dsg

import (
	"fmt"
	"strings"

	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

// DenseSubGraph is a pair of Vertex sets (sources, centers) plus an
// optional density scalar. Classification against sources/centers is
// derived, never stored.
type DenseSubGraph struct {
	Sources VertexSet
	Centers VertexSet

	Density    float64
	HasDensity bool
}

// New builds a DenseSubGraph from explicit sources and centers sets.
func New(sources, centers VertexSet) DenseSubGraph {
	return DenseSubGraph{Sources: sources, Centers: centers}
}

// NewSingleCenter builds a DenseSubGraph whose centers set is the
// singleton {center}, matching the (sources, Vertex) constructor used
// when seeding the miner's walk from one dag node.
func NewSingleCenter(sources VertexSet, center ppigraph.Vertex) DenseSubGraph {
	return DenseSubGraph{Sources: sources, Centers: NewVertexSet(center)}
}

// Equal reports whether d and other have identical sources and centers.
func (d DenseSubGraph) Equal(other DenseSubGraph) bool {
	return d.Sources.Equal(other.Sources) && d.Centers.Equal(other.Centers)
}

// ArcsCount is |sources| * |centers|.
func (d DenseSubGraph) ArcsCount() int {
	return d.Sources.Len() * d.Centers.Len()
}

// Merge intersects d's sources with other's sources and unions d's
// centers with other's centers, returning the result. It does not
// mutate d or other.
func (d DenseSubGraph) Merge(other DenseSubGraph) DenseSubGraph {
	return DenseSubGraph{
		Sources: Intersect(d.Sources, other.Sources),
		Centers: Union(d.Centers, other.Centers),
	}
}

// Clique reports whether sources == centers.
func (d DenseSubGraph) Clique() bool {
	return d.Sources.Equal(d.Centers)
}

// AsClique reports whether centers ⊂ sources, strictly.
func (d DenseSubGraph) AsClique() bool {
	return !d.Clique() && d.Sources.Includes(d.Centers)
}

// BiClique reports whether sources and centers are disjoint.
func (d DenseSubGraph) BiClique() bool {
	return IntersectionCount(d.Sources, d.Centers) == 0
}

// Generic reports whether d is none of clique, as-clique, or biclique.
func (d DenseSubGraph) Generic() bool {
	return !d.Clique() && !d.AsClique() && !d.BiClique()
}

// Description names d's classification, used to annotate non-clique,
// non-generic dumps (as-clique / biclique) with a trailing marker.
func (d DenseSubGraph) Description() string {
	switch {
	case d.Clique():
		return "clique"
	case d.AsClique():
		return "as-clique"
	case d.BiClique():
		return "biclique"
	default:
		return "generic"
	}
}

// String renders d per the serialization contract: centers first
// (space-separated ascending vertex ids); if sources != centers or d is
// empty, append " <--- " then sources. A lone set (no arrow) denotes a
// clique.
func (d DenseSubGraph) String() string {
	var b strings.Builder
	writeSet(&b, d.Centers)
	if d.Sources.Len() == 0 || !d.Sources.Equal(d.Centers) {
		b.WriteString(" <--- ")
		writeSet(&b, d.Sources)
	}
	return b.String()
}

func writeSet(b *strings.Builder, s VertexSet) {
	for i, v := range s.Sorted() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "%d", v)
	}
}
