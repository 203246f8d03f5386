package ppigraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMakeMineableSelfLoopAndSort(t *testing.T) {
	g := New(map[Vertex][]Vertex{
		1: {2, 3},
		2: {1, 3},
		3: {1, 2},
	})
	g.MakeMineable(ByID, 0)

	if !g.IsMineable() {
		t.Fatal("expected graph to be mineable")
	}

	want := map[Vertex][]Vertex{
		1: {1, 2, 3},
		2: {1, 2, 3},
		3: {1, 2, 3},
	}
	for v, list := range want {
		if diff := cmp.Diff(list, g.List(v)); diff != "" {
			t.Errorf("list(%d) mismatch (-want +got):\n%s", v, diff)
		}
	}
}

func TestMakeMineableDropsTrivialLists(t *testing.T) {
	// S2 shape: two non-trivial lists pointing at two proteins with
	// empty lists of their own.
	g := New(map[Vertex][]Vertex{
		1: {3, 4},
		2: {3, 4},
		3: {},
		4: {},
	})
	g.MakeMineable(ByID, 0)

	if g.List(3) != nil || g.List(4) != nil {
		t.Fatalf("expected trivial lists for 3 and 4 to be dropped, got %v %v", g.List(3), g.List(4))
	}

	want := map[Vertex][]Vertex{
		1: {1, 3, 4},
		2: {2, 3, 4},
	}
	for v, list := range want {
		if diff := cmp.Diff(list, g.List(v)); diff != "" {
			t.Errorf("list(%d) mismatch (-want +got):\n%s", v, diff)
		}
	}
}

func TestMakeMineableIsIdempotent(t *testing.T) {
	g := New(map[Vertex][]Vertex{1: {2}, 2: {1}})
	g.MakeMineable(ByID, 0)
	before := g.List(1)

	g.MakeMineable(ByID, 0)
	if diff := cmp.Diff(before, g.List(1)); diff != "" {
		t.Errorf("second makeMineable call changed list(1) (-before +after):\n%s", diff)
	}
}

func TestByFrequencyOrdering(t *testing.T) {
	g := New(map[Vertex][]Vertex{
		1: {2, 3, 4},
		2: {1},
		3: {1},
		4: {1},
	})
	g.MakeMineable(ByFrequency, 0)

	// vertex 1 appears in every list (freq 4, after self-loop insertion
	// it also appears in its own list); 2,3,4 each appear twice (in
	// list(1) and, after self-loop insertion, in their own list).
	// Within list(1), entries are ordered by descending frequency of the
	// *outlink* vertex, then ascending id; 1 itself has the highest
	// frequency so it sorts first, followed by 2,3,4 in id order (tied
	// frequency).
	got := g.List(1)
	if len(got) == 0 || got[0] != 1 {
		t.Fatalf("expected self-vertex first under ByFrequency, got %v", got)
	}
}

func TestIsSortedByVertexReflectsChosenOrdering(t *testing.T) {
	byID := New(map[Vertex][]Vertex{1: {2, 3}, 2: {1, 3}, 3: {1, 2}})
	byID.MakeMineable(ByID, 0)
	if !byID.IsSortedByVertex() {
		t.Error("expected a graph mineable under ByID to report IsSortedByVertex")
	}

	byFreq := New(map[Vertex][]Vertex{1: {2, 3, 4}, 2: {1}, 3: {1}, 4: {1}})
	byFreq.MakeMineable(ByFrequency, 0)
	if byFreq.IsSortedByVertex() {
		t.Error("expected a graph mineable under ByFrequency to report !IsSortedByVertex")
	}

	pre := NewSorted(map[Vertex][]Vertex{1: {2, 3}, 2: {1, 3}, 3: {1, 2}})
	if !pre.IsSortedByVertex() {
		t.Error("expected a NewSorted graph to report IsSortedByVertex even before MakeMineable")
	}
}

func TestEdgeMapCanonicalKey(t *testing.T) {
	m := NewEdgeMap()
	m.AddEdge(5, 2, 0.75)

	if got := m.Weight(2, 5); got != 0.75 {
		t.Errorf("Weight(2,5) = %v, want 0.75", got)
	}
	if got := m.Weight(5, 2); got != 0.75 {
		t.Errorf("Weight(5,2) = %v, want 0.75", got)
	}
	if got := m.Weight(1, 9); got != 0 {
		t.Errorf("Weight for missing edge = %v, want 0", got)
	}
}

func TestRandomPermutationOrderingIsSeeded(t *testing.T) {
	adjacency := map[Vertex][]Vertex{
		1: {2, 3, 4, 5},
		2: {1},
		3: {1},
		4: {1},
		5: {1},
	}

	g1 := New(adjacency)
	g1.MakeMineable(ByRandomPermutation, 42)

	g2 := New(adjacency)
	g2.MakeMineable(ByRandomPermutation, 42)

	if diff := cmp.Diff(g1.List(1), g2.List(1), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("same seed produced different orderings (-g1 +g2):\n%s", diff)
	}
}
