package miner

import (
	"testing"

	"github.com/bio-odsg/odsgminer/internal/dag"
	"github.com/bio-odsg/odsgminer/internal/dsg"
	"github.com/bio-odsg/odsgminer/internal/ferrors"
	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

func buildMineableDag(t *testing.T, adjacency map[ppigraph.Vertex][]ppigraph.Vertex) *dag.PrefixDag {
	t.Helper()
	g := ppigraph.New(adjacency)
	g.MakeMineable(ppigraph.ByID, 0)
	return dag.Build(g, true, nil)
}

// TestMineTrivialClique reproduces the trivial-clique scenario: a
// triangle whose mined set contains exactly one DSG, the full clique.
func TestMineTrivialClique(t *testing.T) {
	d := buildMineableDag(t, map[ppigraph.Vertex][]ppigraph.Vertex{
		1: {2, 3},
		2: {1, 3},
		3: {1, 2},
	})

	m, err := New(DeepestParent{}, AsClique{}, true, 1)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	result, err := m.Mine(d)
	if err != nil {
		t.Fatalf("Mine() error: %v", err)
	}

	if result.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", result.Len())
	}
	want := dsg.New(dsg.NewVertexSet(1, 2, 3), dsg.NewVertexSet(1, 2, 3))
	if !result.All()[0].Equal(want) {
		t.Errorf("mined DSG = %v, want %v", result.All()[0], want)
	}
}

// TestMineBiclique reproduces the biclique scenario: two nodes whose
// shared inlinks form a biclique under MaxIntersection.
func TestMineBiclique(t *testing.T) {
	d := buildMineableDag(t, map[ppigraph.Vertex][]ppigraph.Vertex{
		1: {3, 4},
		2: {3, 4},
		3: {},
		4: {},
	})

	m, err := New(DeepestParent{}, MaxIntersection{}, false, 1)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	result, err := m.Mine(d)
	if err != nil {
		t.Fatalf("Mine() error: %v", err)
	}

	if result.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", result.Len())
	}
	got := result.All()[0]
	if !got.Sources.Equal(dsg.NewVertexSet(1, 2)) {
		t.Errorf("Sources = %v, want {1,2}", got.Sources)
	}
	if !got.Centers.Equal(dsg.NewVertexSet(3, 4)) {
		t.Errorf("Centers = %v, want {3,4}", got.Centers)
	}
	if !got.BiClique() {
		t.Error("expected biclique classification")
	}
}

func TestNewRejectsCliquesOnlyWithoutAsClique(t *testing.T) {
	_, err := New(AnyParent{}, Legacy{}, true, 1)
	if err == nil {
		t.Fatal("expected error for cliquesOnly without AsClique objective")
	}
	if !ferrors.Is(err, ferrors.InvalidState) {
		t.Errorf("error kind = %v, want InvalidState", err)
	}
}

func TestWeightedObjectivePreference(t *testing.T) {
	edges := ppigraph.NewEdgeMap()
	edges.AddEdge(3, 1, 0.3)
	edges.AddEdge(3, 2, 0.3)
	edges.AddEdge(4, 1, 0.3)
	edges.AddEdge(4, 2, 0.3)
	edges.AddEdge(5, 1, 0.5)
	edges.AddEdge(5, 2, 0.5)
	edges.AddEdge(5, 3, 0.5)
	edges.AddEdge(4, 3, 0.5)

	cur := dsg.New(dsg.NewVertexSet(1, 2), dsg.NewVertexSet(3, 4))
	cand := dsg.New(dsg.NewVertexSet(1, 2, 3), dsg.NewVertexSet(3, 4, 5))

	simpleEdge := SimpleEdgeDensity{Edges: edges}
	if !simpleEdge.Better(cur, cand) {
		t.Error("SimpleEdgeDensity: expected cand to be preferred")
	}

	legacy := Legacy{}
	if !legacy.Better(cur, cand) {
		t.Error("Legacy: expected cand to be preferred (more arcs)")
	}

	asClique := AsClique{}
	if asClique.Better(cur, cand) {
		t.Error("AsClique: expected neither to be preferred (no subset relation)")
	}
}
