package dag

import (
	"testing"

	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

type fakeSource struct {
	keys  []ppigraph.Vertex
	lists map[ppigraph.Vertex][]ppigraph.Vertex
}

func (f *fakeSource) Keys() []ppigraph.Vertex                   { return f.keys }
func (f *fakeSource) List(v ppigraph.Vertex) []ppigraph.Vertex { return f.lists[v] }

func buildFromGraph(t *testing.T, adjacency map[ppigraph.Vertex][]ppigraph.Vertex) *PrefixDag {
	t.Helper()
	g := ppigraph.New(adjacency)
	g.MakeMineable(ppigraph.ByID, 0)
	return Build(g, true, nil)
}

func TestBuildS1TrivialClique(t *testing.T) {
	// S1: 1: 2 3 / 2: 1 3 / 3: 1 2 -> after mineability, each list gains
	// its self-loop and is sorted ascending.
	d := buildFromGraph(t, map[ppigraph.Vertex][]ppigraph.Vertex{
		1: {2, 3},
		2: {1, 3},
		3: {1, 2},
	})

	if d.NodesCount() != 3 {
		t.Fatalf("expected 3 nodes, got %d", d.NodesCount())
	}

	// node 1 is the start of list(1) = [1,2,3]; node 1 never appears at
	// a non-initial position across any list, so it's the sole root.
	if len(d.Roots()) != 1 || d.Roots()[0].Label != 1 {
		t.Fatalf("expected node 1 as the sole root, got %v", d.Roots())
	}

	for _, n := range d.Nodes() {
		if n.IsRoot() && n.MaxDepth() != 1 {
			t.Errorf("root %d has MaxDepth %d, want 1", n.Label, n.MaxDepth())
		}
		if !n.IsRoot() && n.MaxDepth() == 1 {
			t.Errorf("non-root %d has MaxDepth 1", n.Label)
		}
	}
}

func TestBuildTopologicalOrderRespectsParents(t *testing.T) {
	d := buildFromGraph(t, map[ppigraph.Vertex][]ppigraph.Vertex{
		1: {2, 3},
		2: {1, 3},
		3: {1, 2},
	})

	position := make(map[ppigraph.Vertex]int)
	for i, n := range d.Nodes() {
		position[n.Label] = i
	}
	for _, n := range d.Nodes() {
		for _, p := range n.Parents() {
			if position[p.Label] >= position[n.Label] {
				t.Errorf("parent %d does not precede child %d in nodeCache", p.Label, n.Label)
			}
		}
	}
}

func TestBuildGenericTopoSortFallback(t *testing.T) {
	// Force the non-sorted-by-vertex path by using a fakeSource whose
	// key order is not ascending by label.
	src := &fakeSource{
		keys: []ppigraph.Vertex{3, 1, 2},
		lists: map[ppigraph.Vertex][]ppigraph.Vertex{
			3: {1, 2, 3},
			1: {1, 3},
			2: {2, 3},
		},
	}
	d := Build(src, false, nil)

	position := make(map[ppigraph.Vertex]int)
	for i, n := range d.Nodes() {
		position[n.Label] = i
	}
	for _, n := range d.Nodes() {
		for _, p := range n.Parents() {
			if position[p.Label] >= position[n.Label] {
				t.Errorf("parent %d does not precede child %d", p.Label, n.Label)
			}
		}
	}
}

func TestBuildRootDemotion(t *testing.T) {
	// node 3 starts list(1) at position 0 (root candidate)... but also
	// appears at a non-initial position in list(2), so it must not end
	// up a root.
	src := &fakeSource{
		keys: []ppigraph.Vertex{1, 2},
		lists: map[ppigraph.Vertex][]ppigraph.Vertex{
			1: {3, 4},
			2: {4, 3},
		},
	}
	d := Build(src, true, nil)

	for _, r := range d.Roots() {
		if r.Label == 3 {
			t.Fatalf("node 3 should have been demoted from roots, roots=%v", d.Roots())
		}
	}
}
