package dag

import "github.com/bio-odsg/odsgminer/internal/ppigraph"

// Node is one entity of a PrefixDag. Nodes are owned exclusively by
// their containing PrefixDag; callers never construct one directly.
type Node struct {
	// Label is the node's adjacency-list owner in the source graph.
	Label ppigraph.Vertex

	vertexes map[ppigraph.Vertex]struct{}
	children []*Node
	parents  []*Node
	maxDepth int

	// travelingNext is mutable state written only by the miner during
	// its preparation pass. The miner takes no lock; cmd/odsgminer holds
	// a per-cluster keyed lock around each Miner.Mine call.
	travelingNext *Node
}

func newNode(label ppigraph.Vertex) *Node {
	return &Node{Label: label, vertexes: make(map[ppigraph.Vertex]struct{})}
}

// Vertexes returns the node's inlinks: every source-graph key whose
// adjacency list contains this node's label.
func (n *Node) Vertexes() []ppigraph.Vertex {
	out := make([]ppigraph.Vertex, 0, len(n.vertexes))
	for v := range n.vertexes {
		out = append(out, v)
	}
	return out
}

// VertexesSet exposes the inlink set directly for callers (miner,
// objective functions) that need set operations without a conversion
// to/from a slice on every access.
func (n *Node) VertexesSet() map[ppigraph.Vertex]struct{} { return n.vertexes }

// Children returns the node's children, in the order they were linked.
func (n *Node) Children() []*Node { return n.children }

// Parents returns the node's parents, in the order they were linked.
func (n *Node) Parents() []*Node { return n.parents }

// MaxDepth returns the length of the longest path from any root to this
// node, plus one. Roots have MaxDepth 1.
func (n *Node) MaxDepth() int { return n.maxDepth }

// IsRoot reports whether the node has no parents.
func (n *Node) IsRoot() bool { return len(n.parents) == 0 }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// TravelingNext returns the node's cached mining-path successor, set by
// the miner's preparation pass. Nil for roots and for any node before
// preparation has run.
func (n *Node) TravelingNext() *Node { return n.travelingNext }

// SetTravelingNext is for use only by the miner package.
func (n *Node) SetTravelingNext(next *Node) { n.travelingNext = next }

func (n *Node) isChildOf(other *Node) bool {
	for _, p := range n.parents {
		if p == other {
			return true
		}
	}
	return false
}

// addChild links n as a parent of child, maintaining the symmetric
// parents/children invariant with no duplicates.
func (n *Node) addChild(child *Node) {
	if child.isChildOf(n) {
		return
	}
	n.children = append(n.children, child)
	child.parents = append(child.parents, n)
}
