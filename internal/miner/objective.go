package miner

import (
	"github.com/bio-odsg/odsgminer/internal/dsg"
	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

// minDensityMass is the combined |centers|+|sources| below which every
// density formula is suppressed to 0 — a candidate that small carries no
// statistical weight.
const minDensityMass = 5

// Objective decides which of two candidate DenseSubGraphs the miner's
// traveling-path walk should keep, and optionally when to stop walking
// early because no better candidate can be found.
type Objective interface {
	// Better reports whether cand should replace cur as the walk's
	// current best.
	Better(cur, cand dsg.DenseSubGraph) bool
	// Best reports whether cur is good enough to stop walking further.
	Best(cur dsg.DenseSubGraph) bool
	// RequiresCliques reports whether this objective only ever accepts
	// clique-shaped results, i.e. it is the AsClique objective.
	RequiresCliques() bool
}

// AsClique grows centers towards sources until they're equal, i.e. it
// hunts for cliques. It is the only objective compatible with the
// cliquesOnly mining mode.
type AsClique struct{}

func (AsClique) Better(cur, cand dsg.DenseSubGraph) bool {
	return cand.Sources.Includes(cand.Centers)
}

func (AsClique) Best(cur dsg.DenseSubGraph) bool {
	return cur.Sources.Len() == cur.Centers.Len()
}

func (AsClique) RequiresCliques() bool { return true }

// Legacy prefers whichever candidate has the larger arc count, with no
// early stop.
type Legacy struct{}

func (Legacy) Better(cur, cand dsg.DenseSubGraph) bool {
	return cand.ArcsCount() > cur.ArcsCount()
}

func (Legacy) Best(dsg.DenseSubGraph) bool { return false }

func (Legacy) RequiresCliques() bool { return false }

// MaxIntersection prefers whichever candidate's sources and centers
// overlap the most. Ties keep the candidate (>=, not a strict >): the
// walk relies on the viability filter, not a strict improvement test, to
// reject a further merge that would shrink sources to nothing useful.
type MaxIntersection struct{}

func (MaxIntersection) Better(cur, cand dsg.DenseSubGraph) bool {
	return dsg.IntersectionCount(cand.Centers, cand.Sources) >= dsg.IntersectionCount(cur.Centers, cur.Sources)
}

func (MaxIntersection) Best(dsg.DenseSubGraph) bool { return false }

func (MaxIntersection) RequiresCliques() bool { return false }

// SimpleEdgeDensity prefers the candidate with the higher average edge
// weight over centers×sources pairs (excluding self-pairs) present in
// the edge map.
type SimpleEdgeDensity struct{ Edges *ppigraph.EdgeMap }

func (o SimpleEdgeDensity) Better(cur, cand dsg.DenseSubGraph) bool {
	return weightSum(o.Edges, cand.Centers, cand.Sources, true) > weightSum(o.Edges, cur.Centers, cur.Sources, true)
}

func (SimpleEdgeDensity) Best(dsg.DenseSubGraph) bool { return false }

func (SimpleEdgeDensity) RequiresCliques() bool { return false }

// FullEdgeDensity prefers the candidate with the higher average edge
// weight over all pairs within centers ∪ sources present in the edge
// map.
type FullEdgeDensity struct{ Edges *ppigraph.EdgeMap }

func (o FullEdgeDensity) Better(cur, cand dsg.DenseSubGraph) bool {
	return fullWeightSum(o.Edges, cand.Centers, cand.Sources, true) > fullWeightSum(o.Edges, cur.Centers, cur.Sources, true)
}

func (FullEdgeDensity) Best(dsg.DenseSubGraph) bool { return false }

func (FullEdgeDensity) RequiresCliques() bool { return false }

// SimpleDegreeDensity prefers the candidate with the higher total
// centers×sources weight normalized by |centers ∪ sources|.
type SimpleDegreeDensity struct{ Edges *ppigraph.EdgeMap }

func (o SimpleDegreeDensity) Better(cur, cand dsg.DenseSubGraph) bool {
	return degreeDensity(o.Edges, cand) > degreeDensity(o.Edges, cur)
}

func (SimpleDegreeDensity) Best(dsg.DenseSubGraph) bool { return false }

func (SimpleDegreeDensity) RequiresCliques() bool { return false }

func degreeDensity(edges *ppigraph.EdgeMap, d dsg.DenseSubGraph) float64 {
	union := dsg.Union(d.Centers, d.Sources)
	if union.Len() == 0 {
		return 0
	}
	return weightSum(edges, d.Centers, d.Sources, false) / float64(union.Len())
}

// FullDegreeDensity prefers the candidate with the higher total weight
// over all pairs within centers ∪ sources, normalized by |centers ∪
// sources|. fullWeightSum already performs this normalization when
// computed unaveraged.
type FullDegreeDensity struct{ Edges *ppigraph.EdgeMap }

func (o FullDegreeDensity) Better(cur, cand dsg.DenseSubGraph) bool {
	return fullWeightSum(o.Edges, cand.Centers, cand.Sources, false) > fullWeightSum(o.Edges, cur.Centers, cur.Sources, false)
}

func (FullDegreeDensity) Best(dsg.DenseSubGraph) bool { return false }

func (FullDegreeDensity) RequiresCliques() bool { return false }

// DegreeAndEdge (the unweighted "simple degree density" form) prefers
// the candidate with the higher |centers|*|sources| / |centers ∪
// sources|, ignoring edge weights entirely.
type DegreeAndEdge struct{}

func (DegreeAndEdge) Better(cur, cand dsg.DenseSubGraph) bool {
	return uSimpleDegreeDensity(cand) > uSimpleDegreeDensity(cur)
}

func (DegreeAndEdge) Best(dsg.DenseSubGraph) bool { return false }

func (DegreeAndEdge) RequiresCliques() bool { return false }

func uSimpleDegreeDensity(d dsg.DenseSubGraph) float64 {
	if d.Centers.Len()+d.Sources.Len() < minDensityMass {
		return 0
	}
	union := dsg.Union(d.Centers, d.Sources)
	if union.Len() == 0 {
		return 0
	}
	return float64(d.Centers.Len()*d.Sources.Len()) / float64(union.Len())
}

// weightSum sums the edge weight of every (c, s) pair with c ∈ centers,
// s ∈ sources, c != s, present in edges. When average is true it
// divides by the number of such present pairs rather than returning the
// raw sum. Suppressed to 0 when |centers|+|sources| < minDensityMass.
func weightSum(edges *ppigraph.EdgeMap, centers, sources dsg.VertexSet, average bool) float64 {
	if centers.Len()+sources.Len() < minDensityMass {
		return 0
	}
	var sum float64
	var count int
	for c := range centers {
		for s := range sources {
			if c == s {
				continue
			}
			if edges.HasEdge(c, s) {
				sum += edges.Weight(c, s)
				count++
			}
		}
	}
	if average {
		if count == 0 {
			return 0
		}
		return sum / float64(count)
	}
	return sum
}

// fullWeightSum sums the edge weight of every unordered pair within
// centers ∪ sources present in edges. When average is true it divides
// by the number of present pairs; otherwise it divides by the union's
// size, matching the unweighted "degree density" normalization.
// Suppressed to 0 when |centers|+|sources| < minDensityMass.
func fullWeightSum(edges *ppigraph.EdgeMap, centers, sources dsg.VertexSet, average bool) float64 {
	if centers.Len()+sources.Len() < minDensityMass {
		return 0
	}
	union := dsg.Union(centers, sources).Sorted()
	var sum float64
	var count int
	for i, u := range union {
		for _, v := range union[i+1:] {
			if edges.HasEdge(u, v) {
				sum += edges.Weight(u, v)
				count++
			}
		}
	}
	if average {
		if count == 0 {
			return 0
		}
		return sum / float64(count)
	}
	if len(union) == 0 {
		return 0
	}
	return sum / float64(len(union))
}
