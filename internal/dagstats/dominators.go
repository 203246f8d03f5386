// Package dagstats computes optional diagnostic statistics over a built
// PrefixDag. Nothing here is consulted by the miner; it exists purely
// to give operators visibility into how a DAG's mining paths converge.
package dagstats

import (
	"sort"

	"gonum.org/v1/gonum/graph/flow"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/bio-odsg/odsgminer/internal/dag"
	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

// syntheticRoot is the node id standing in for a fabricated single root
// above the dag's (possibly many) actual roots. Vertex ids from
// dataset.Mapping start at 1, so 0 never collides with a real label.
const syntheticRoot ppigraph.Vertex = 0

// DominatorGroup is one immediate-dominator subtree: a root label and
// every label it dominates (i.e. every node whose only path from the
// dag's roots passes through it).
type DominatorGroup struct {
	Root      ppigraph.Vertex
	Dominated []ppigraph.Vertex
	NodeCount int
}

// DominatorReport summarizes a dag's dominator tree as one group per
// top-level subtree, largest first.
type DominatorReport struct {
	Groups []DominatorGroup
}

// Dominators computes d's dominator tree (rooted at a fabricated node
// above all of d's actual roots, mirroring a multi-root forest as a
// single tree) and groups nodes by the top-level subtree they fall
// under. An empty dag yields an empty report.
func Dominators(d *dag.PrefixDag) DominatorReport {
	if d.Empty() {
		return DominatorReport{}
	}

	g := simple.NewDirectedGraph()
	g.AddNode(simple.Node(int64(syntheticRoot)))
	for _, n := range d.Nodes() {
		g.AddNode(simple.Node(int64(n.Label)))
	}
	for _, r := range d.Roots() {
		g.SetEdge(simple.Edge{F: simple.Node(int64(syntheticRoot)), T: simple.Node(int64(r.Label))})
	}
	for _, n := range d.Nodes() {
		for _, c := range n.Children() {
			g.SetEdge(simple.Edge{F: simple.Node(int64(n.Label)), T: simple.Node(int64(c.Label))})
		}
	}

	dt := flow.Dominators(g.Node(int64(syntheticRoot)), g)

	var groups []DominatorGroup
	for _, top := range dt.DominatedBy(dt.Root().ID()) {
		groups = append(groups, buildGroup(&dt, ppigraph.Vertex(top.ID())))
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].NodeCount > groups[j].NodeCount })

	return DominatorReport{Groups: groups}
}

func buildGroup(dt *flow.DominatorTree, root ppigraph.Vertex) DominatorGroup {
	var dominated []ppigraph.Vertex
	frontier := dt.DominatedBy(int64(root))
	for i := 0; i < len(frontier); i++ {
		label := ppigraph.Vertex(frontier[i].ID())
		dominated = append(dominated, label)
		frontier = append(frontier, dt.DominatedBy(int64(label))...)
	}

	return DominatorGroup{
		Root:      root,
		Dominated: dominated,
		NodeCount: len(dominated) + 1,
	}
}
