package dataset

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

func TestReadAssignsIdsAndBuildsAdjacency(t *testing.T) {
	mapping := NewMapping()
	r := strings.NewReader("a b 0.5\nb c\n")

	d, cache, err := Read(r, mapping, true)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !cache.Empty() {
		t.Fatalf("unexpected parse errors: %v", cache.All())
	}

	a, _ := mapping.ID("a")
	b, _ := mapping.ID("b")
	c, _ := mapping.ID("c")

	if a == 0 || b == 0 || c == 0 {
		t.Fatalf("expected all three proteins assigned ids, got a=%d b=%d c=%d", a, b, c)
	}

	if !d.Edges.HasEdge(a, b) || d.Edges.Weight(a, b) != 0.5 {
		t.Errorf("expected edge a-b with weight 0.5")
	}
	if !d.Edges.HasEdge(b, c) || d.Edges.Weight(b, c) != 1.0 {
		t.Errorf("expected edge b-c with default weight 1.0")
	}

	want := map[ppigraph.Vertex][]ppigraph.Vertex{
		a: {b},
		b: {a, c},
		c: {b},
	}
	less := func(x, y ppigraph.Vertex) bool { return x < y }
	if diff := cmp.Diff(want, d.Adjacency, cmpopts.SortSlices(less)); diff != "" {
		t.Errorf("Adjacency mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPartitionedSplitsOnBlankAndHash(t *testing.T) {
	mapping := NewMapping()
	r := strings.NewReader("a b\nb c\n#\nd e\n\nf g\n")

	clusters, _, err := ReadPartitioned(r, mapping, false)
	if err != nil {
		t.Fatalf("ReadPartitioned() error: %v", err)
	}
	if len(clusters) != 3 {
		t.Fatalf("got %d clusters, want 3", len(clusters))
	}
	// a-b and b-c share b, so the first cluster has 3 vertexes.
	want := []int{3, 2, 2}
	for i, c := range clusters {
		if len(c.Adjacency) != want[i] {
			t.Errorf("cluster %d has %d vertexes, want %d", i, len(c.Adjacency), want[i])
		}
	}
}

func TestReadPartitionedFlushesFinalClusterWithoutTerminator(t *testing.T) {
	mapping := NewMapping()
	r := strings.NewReader("a b\n")

	clusters, _, err := ReadPartitioned(r, mapping, false)
	if err != nil {
		t.Fatalf("ReadPartitioned() error: %v", err)
	}
	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1 (final cluster should be flushed at EOF)", len(clusters))
	}
}

func TestReadRecordsMalformedLineWithoutAborting(t *testing.T) {
	mapping := NewMapping()
	r := strings.NewReader("a b\nmalformed\nc d\n")

	d, cache, err := Read(r, mapping, false)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if cache.Empty() {
		t.Fatal("expected a recorded parse error for the malformed line")
	}
	if len(d.Adjacency) != 4 {
		t.Errorf("got %d vertexes, want 4 (malformed line skipped, others still parsed)", len(d.Adjacency))
	}
}

func TestReadMappingDetectsDuplicates(t *testing.T) {
	_, err := ReadMapping(strings.NewReader("a 1\nb 2\na 3\n"))
	if err == nil {
		t.Fatal("expected error for duplicated protein name")
	}

	_, err = ReadMapping(strings.NewReader("a 1\nb 1\n"))
	if err == nil {
		t.Fatal("expected error for duplicated id")
	}
}

func TestReadMappingIgnoresCommentsAndBlankLines(t *testing.T) {
	m, err := ReadMapping(strings.NewReader("# header\n\na 1\nb 2\n"))
	if err != nil {
		t.Fatalf("ReadMapping() error: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("got %d entries, want 2", m.Len())
	}
}

func TestResolveOrAssignStartsAfterMappingMax(t *testing.T) {
	m, err := ReadMapping(strings.NewReader("a 5\n"))
	if err != nil {
		t.Fatalf("ReadMapping() error: %v", err)
	}
	got := m.ResolveOrAssign("new")
	if got != 6 {
		t.Errorf("ResolveOrAssign() = %d, want 6", got)
	}
}
