// Package dag builds a PrefixDag — a topologically-ordered collection of
// labeled nodes with parent/child relations and cached per-node depth —
// from a mineable graph or cluster, as the structure the miner walks.
package dag

import (
	"sort"

	"github.com/bio-odsg/odsgminer/internal/ppigraph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Source is anything a PrefixDag can be built from: a mineable Graph or
// a partition.Cluster, both of which expose their entries as an ordered
// key sequence plus a List lookup.
type Source interface {
	Keys() []ppigraph.Vertex
	List(ppigraph.Vertex) []ppigraph.Vertex
}

// PrefixDag is a collection of Nodes plus a topologically sorted
// nodeCache, the roots subset, and the maximum maxDepth seen.
type PrefixDag struct {
	nodeCache       []*Node
	roots           []*Node
	maxNodeMaxDepth int
	Edges           *ppigraph.EdgeMap
}

// Build constructs a PrefixDag by walking src's entries in src.Keys()
// order. sortedByVertex should be true only when the caller guarantees
// src's adjacency lists were produced from a graph whose mineability
// ordering was ByID (or that was constructed already sorted): this lets
// construction skip the generic topological sort, reusing ascending
// label order directly.
func Build(src Source, sortedByVertex bool, edges *ppigraph.EdgeMap) *PrefixDag {
	nodes := make(map[ppigraph.Vertex]*Node)
	var creationOrder []ppigraph.Vertex
	nonInitial := make(map[ppigraph.Vertex]bool)

	getOrCreate := func(label ppigraph.Vertex) *Node {
		n, ok := nodes[label]
		if !ok {
			n = newNode(label)
			nodes[label] = n
			creationOrder = append(creationOrder, label)
		}
		return n
	}

	for _, v := range src.Keys() {
		list := src.List(v)
		for i, u := range list {
			node := getOrCreate(u)
			node.vertexes[v] = struct{}{}

			if i > 0 {
				nonInitial[u] = true
				prev := getOrCreate(list[i-1])
				prev.addChild(node)
			}
		}
	}

	d := &PrefixDag{Edges: edges}

	for _, label := range creationOrder {
		if !nonInitial[label] {
			d.roots = append(d.roots, nodes[label])
		}
	}

	if sortedByVertex {
		d.nodeCache = sortedByLabel(nodes)
	} else {
		d.nodeCache = topoSort(nodes)
	}

	d.updateMaxDepths()

	return d
}

func sortedByLabel(nodes map[ppigraph.Vertex]*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// topoSort performs a generic topological sort over the dag's arcs using
// gonum's graph/topo package, for the case where the source graph's
// ordering was not known to already put nodes in label order.
func topoSort(nodes map[ppigraph.Vertex]*Node) []*Node {
	g := simple.NewDirectedGraph()
	for label := range nodes {
		g.AddNode(simple.Node(int64(label)))
	}
	for label, n := range nodes {
		for _, c := range n.children {
			g.SetEdge(simple.Edge{F: simple.Node(int64(label)), T: simple.Node(int64(c.Label))})
		}
	}

	sorted, err := topo.Sort(g)
	if err != nil {
		panic("dag: source graph is not acyclic: " + err.Error())
	}

	out := make([]*Node, len(sorted))
	for i, gn := range sorted {
		out[i] = nodes[ppigraph.Vertex(gn.ID())]
	}
	return out
}

func (d *PrefixDag) updateMaxDepths() {
	for _, n := range d.nodeCache {
		if n.IsRoot() {
			n.maxDepth = 1
			continue
		}
		best := 0
		for _, p := range n.parents {
			if p.maxDepth > best {
				best = p.maxDepth
			}
		}
		n.maxDepth = best + 1
		if n.maxDepth > d.maxNodeMaxDepth {
			d.maxNodeMaxDepth = n.maxDepth
		}
	}
	for _, r := range d.roots {
		if r.maxDepth > d.maxNodeMaxDepth {
			d.maxNodeMaxDepth = r.maxDepth
		}
	}
}

// Nodes returns the dag's nodes in topological order: every node's
// parents precede it.
func (d *PrefixDag) Nodes() []*Node { return d.nodeCache }

// Roots returns the subset of nodes with no parents.
func (d *PrefixDag) Roots() []*Node { return d.roots }

// MaxDepth returns the maximum Node.MaxDepth() seen across the dag.
func (d *PrefixDag) MaxDepth() int { return d.maxNodeMaxDepth }

// NodesCount returns the number of nodes in the dag.
func (d *PrefixDag) NodesCount() int { return len(d.nodeCache) }

// ArcsCount returns the total number of parent->child arcs.
func (d *PrefixDag) ArcsCount() int {
	n := 0
	for _, node := range d.nodeCache {
		n += len(node.children)
	}
	return n
}

// Empty reports whether the dag has no nodes.
func (d *PrefixDag) Empty() bool { return len(d.nodeCache) == 0 }
