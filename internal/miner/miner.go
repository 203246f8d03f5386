// Package miner implements the traveling-path mining routine that turns
// a PrefixDag into a MaximalSet of DenseSubGraphs.
package miner

import (
	"fmt"

	"github.com/bio-odsg/odsgminer/internal/dag"
	"github.com/bio-odsg/odsgminer/internal/dsg"
	"github.com/bio-odsg/odsgminer/internal/ferrors"
)

// Miner walks every non-root node of a PrefixDag along its cached
// traveling path, keeping whichever candidate its Objective prefers, and
// collects the surviving results into a MaximalSet.
type Miner struct {
	traveler    Traveler
	objective   Objective
	cliquesOnly bool
	minArcs     int
}

// New builds a Miner. It returns an InvalidState error if cliquesOnly is
// set but objective isn't AsClique, since only AsClique ever converges
// on a clique.
func New(traveler Traveler, objective Objective, cliquesOnly bool, minArcs int) (*Miner, error) {
	if cliquesOnly && !objective.RequiresCliques() {
		return nil, ferrors.New(ferrors.InvalidState, "miner: cliquesOnly requires the AsClique objective")
	}
	return &Miner{traveler: traveler, objective: objective, cliquesOnly: cliquesOnly, minArcs: minArcs}, nil
}

// Mine runs the preparation pass and the per-node walk over d, returning
// the resulting MaximalSet. Its size never exceeds d.NodesCount().
func (m *Miner) Mine(d *dag.PrefixDag) (*dsg.MaximalSet, error) {
	m.prepare(d)

	result := dsg.NewMaximalSet(m.cliquesOnly)

	for _, n := range d.Nodes() {
		if n.IsRoot() {
			continue
		}

		cur := m.walk(n)

		if cur.Centers.Len() == 1 || cur.Sources.Len() <= 1 || cur.ArcsCount() < m.minArcs {
			continue
		}

		result.Insert(cur)
	}

	return result, nil
}

// prepare caches each node's traveling-path successor. A non-root node
// without one is a programmer error: the traveler contract requires
// every non-root to name a parent.
func (m *Miner) prepare(d *dag.PrefixDag) {
	for _, n := range d.Nodes() {
		next := m.traveler.Next(n)
		if next == nil && !n.IsRoot() {
			ferrors.Panic(fmt.Sprintf("miner: traveler returned no next node for non-root label %d", n.Label))
		}
		n.SetTravelingNext(next)
	}
}

// walk builds the DenseSubGraph for n by following its traveling path,
// merging in each visited node's own (vertexes, label) pair and keeping
// whichever the objective prefers, stopping early when the objective
// reports its current best is good enough.
//
// A candidate that would fail the same shape test applied to the final
// result (single center, or one or fewer sources) is never accepted:
// without this a raw metric can still favor a degenerate merge against a
// root carrying a tiny inlink set, pulling the walk somewhere it can
// never recover a usable result from.
func (m *Miner) walk(n *dag.Node) dsg.DenseSubGraph {
	cur := dsg.NewSingleCenter(dsg.VertexSet(n.VertexesSet()), n.Label)

	for p := n.TravelingNext(); p != nil; p = p.TravelingNext() {
		cand := dsg.NewSingleCenter(dsg.VertexSet(p.VertexesSet()), p.Label).Merge(cur)
		if viable(cand) && m.objective.Better(cur, cand) {
			cur = cand
		}
		if m.objective.Best(cur) {
			break
		}
	}

	return cur
}

func viable(d dsg.DenseSubGraph) bool {
	return d.Centers.Len() != 1 && d.Sources.Len() > 1
}
