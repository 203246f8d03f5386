package miner

import (
	"github.com/bio-odsg/odsgminer/internal/dag"
	"github.com/bio-odsg/odsgminer/internal/dsg"
)

// Traveler decides which parent a dag node travels to next while the
// miner walks from a node towards its roots. Travelers are deterministic
// and never cycle, since they only ever move to a parent.
type Traveler interface {
	Next(n *dag.Node) *dag.Node
}

// AnyParent always takes the first parent in list order. Kept as a
// baseline for comparison against the more selective travelers.
type AnyParent struct{}

func (AnyParent) Next(n *dag.Node) *dag.Node {
	parents := n.Parents()
	if len(parents) == 0 {
		return nil
	}
	return parents[0]
}

// DeepestParent takes the first parent whose MaxDepth is exactly
// n.MaxDepth()-1, i.e. a parent on a longest path to n.
type DeepestParent struct{}

func (DeepestParent) Next(n *dag.Node) *dag.Node {
	for _, p := range n.Parents() {
		if p.MaxDepth() == n.MaxDepth()-1 {
			return p
		}
	}
	return nil
}

// SharingMostVertexesParent takes the parent maximizing the number of
// shared inlink vertexes with n, ties broken by list order. It
// short-circuits as soon as a parent shares every one of n's vertexes.
type SharingMostVertexesParent struct{}

func (SharingMostVertexesParent) Next(n *dag.Node) *dag.Node {
	parents := n.Parents()
	if len(parents) == 0 {
		return nil
	}

	nodeSet := dsg.VertexSet(n.VertexesSet())
	var best *dag.Node
	bestCount := -1
	for _, p := range parents {
		shared := dsg.IntersectionCount(dsg.VertexSet(p.VertexesSet()), nodeSet)
		if shared > bestCount {
			best = p
			bestCount = shared
			if shared == nodeSet.Len() {
				return best
			}
		}
	}
	return best
}
