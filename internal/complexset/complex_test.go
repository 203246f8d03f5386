package complexset

import (
	"strings"
	"testing"

	"github.com/bio-odsg/odsgminer/internal/dsg"
	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

func complexOf(ids ...ppigraph.Vertex) Complex {
	return Complex{Proteins: dsg.NewVertexSet(ids...)}
}

func TestOverlapScorePerfectMatch(t *testing.T) {
	a := complexOf(1, 2, 3)
	b := complexOf(1, 2, 3)
	if got := OverlapScore(a, b); got != 1.0 {
		t.Errorf("OverlapScore() = %v, want 1.0", got)
	}
}

func TestOverlapScoreDisjoint(t *testing.T) {
	a := complexOf(1, 2)
	b := complexOf(3, 4)
	if got := OverlapScore(a, b); got != 0 {
		t.Errorf("OverlapScore() = %v, want 0", got)
	}
}

func TestOverlapScorePartial(t *testing.T) {
	a := complexOf(1, 2, 3, 4)
	b := complexOf(3, 4, 5, 6)
	// |intersection|=2, so 2*2 / (4*4) = 4/16 = 0.25
	if got := OverlapScore(a, b); got != 0.25 {
		t.Errorf("OverlapScore() = %v, want 0.25", got)
	}
}

func TestFromDenseSubGraphAsClique(t *testing.T) {
	d := dsg.New(dsg.NewVertexSet(1, 2, 3), dsg.NewVertexSet(1, 2))
	c := FromDenseSubGraph(d, true)
	if c.Size() != 2 {
		t.Errorf("got size %d, want 2 (centers only)", c.Size())
	}
}

func TestFromDenseSubGraphUnified(t *testing.T) {
	d := dsg.New(dsg.NewVertexSet(1, 2, 3), dsg.NewVertexSet(1, 2))
	c := FromDenseSubGraph(d, false)
	if c.Size() != 3 {
		t.Errorf("got size %d, want 3 (sources ∪ centers)", c.Size())
	}
}

func TestSetNoFilteringKeepsAll(t *testing.T) {
	s := NewSet(NoFiltering, 0.8)
	s.Add(complexOf(1, 2, 3))
	s.Add(complexOf(1, 2, 3))
	if s.Len() != 2 {
		t.Errorf("got %d complexes, want 2", s.Len())
	}
}

// {1,2,3} and {1,2,3,4} score 3*3 / (3*4) = 0.75, so the filtering tests
// below use a 0.7 threshold for the pair to count as near-duplicates.

func TestSetKeepBiggestDropsSmaller(t *testing.T) {
	s := NewSet(KeepBiggest, 0.7)
	s.Add(complexOf(1, 2, 3))
	s.Add(complexOf(1, 2, 3, 4))
	if s.Len() != 1 {
		t.Fatalf("got %d complexes, want 1", s.Len())
	}
	if s.Complexes()[0].Size() != 4 {
		t.Errorf("kept complex has size %d, want 4 (the bigger one)", s.Complexes()[0].Size())
	}
}

func TestSetKeepBiggestIgnoresSmallerReplacement(t *testing.T) {
	s := NewSet(KeepBiggest, 0.7)
	s.Add(complexOf(1, 2, 3, 4))
	s.Add(complexOf(1, 2, 3))
	if s.Len() != 1 {
		t.Fatalf("got %d complexes, want 1", s.Len())
	}
	if s.Complexes()[0].Size() != 4 {
		t.Errorf("kept complex has size %d, want 4 (the original bigger one)", s.Complexes()[0].Size())
	}
}

func TestSetMergeUnionCombines(t *testing.T) {
	s := NewSet(MergeUnion, 0.7)
	s.Add(complexOf(1, 2, 3))
	s.Add(complexOf(1, 2, 3, 4))
	if s.Len() != 1 {
		t.Fatalf("got %d complexes, want 1", s.Len())
	}
	if s.Complexes()[0].Size() != 4 {
		t.Errorf("merged complex has size %d, want 4", s.Complexes()[0].Size())
	}
}

func TestSetBelowThresholdKeepsBothSeparate(t *testing.T) {
	s := NewSet(MergeUnion, 0.8)
	s.Add(complexOf(1, 2, 3, 4))
	s.Add(complexOf(5, 6, 7, 8))
	if s.Len() != 2 {
		t.Errorf("got %d complexes, want 2 (disjoint, below threshold)", s.Len())
	}
}

func TestWriteResolvesNames(t *testing.T) {
	names := map[ppigraph.Vertex]string{1: "proteinA", 2: "proteinB"}
	resolve := func(v ppigraph.Vertex) (string, bool) {
		n, ok := names[v]
		return n, ok
	}

	var buf strings.Builder
	if err := Write(&buf, []Complex{complexOf(1, 2)}, resolve); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if got := buf.String(); got != "proteinA proteinB\n" {
		t.Errorf("Write() = %q, want %q", got, "proteinA proteinB\n")
	}
}

func TestWriteFallsBackToNumericID(t *testing.T) {
	resolve := func(ppigraph.Vertex) (string, bool) { return "", false }

	var buf strings.Builder
	if err := Write(&buf, []Complex{complexOf(42)}, resolve); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if got := buf.String(); got != "42\n" {
		t.Errorf("Write() = %q, want %q", got, "42\n")
	}
}
