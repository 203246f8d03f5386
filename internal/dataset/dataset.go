// Package dataset reads the PPI interaction dataset format ("proteinA
// proteinB [weight]") and the protein name/id mapping format, building
// the adjacency and edge-weight data the rest of the pipeline operates
// on.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bio-odsg/odsgminer/internal/ferrors"
	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

const defaultWeight = "1.0"

// Dataset is one PPI interaction graph: its undirected adjacency (not
// yet made mineable) and the edge weights backing it.
type Dataset struct {
	Adjacency map[ppigraph.Vertex][]ppigraph.Vertex
	Edges     *ppigraph.EdgeMap
}

func newDataset() *Dataset {
	return &Dataset{
		Adjacency: make(map[ppigraph.Vertex][]ppigraph.Vertex),
		Edges:     ppigraph.NewEdgeMap(),
	}
}

type builder struct {
	sets  map[ppigraph.Vertex]map[ppigraph.Vertex]struct{}
	edges *ppigraph.EdgeMap
}

func newBuilder() *builder {
	return &builder{
		sets:  make(map[ppigraph.Vertex]map[ppigraph.Vertex]struct{}),
		edges: ppigraph.NewEdgeMap(),
	}
}

func (b *builder) addEdge(left, right ppigraph.Vertex, weight float64) {
	if b.sets[left] == nil {
		b.sets[left] = make(map[ppigraph.Vertex]struct{})
	}
	if b.sets[right] == nil {
		b.sets[right] = make(map[ppigraph.Vertex]struct{})
	}
	b.sets[left][right] = struct{}{}
	b.sets[right][left] = struct{}{}
	b.edges.AddEdge(left, right, weight)
}

func (b *builder) empty() bool { return len(b.sets) == 0 }

func (b *builder) build() *Dataset {
	d := newDataset()
	d.Edges = b.edges
	for v, neighbors := range b.sets {
		list := make([]ppigraph.Vertex, 0, len(neighbors))
		for n := range neighbors {
			list = append(list, n)
		}
		d.Adjacency[v] = list
	}
	return d
}

// Read parses a single (non-partitioned) dataset from r, resolving
// protein names against mapping (assigning new ids to unknown proteins
// as they're encountered). When weighted is false, every edge is given
// the default weight "1.0" even if a third column is present.
func Read(r io.Reader, mapping *Mapping, weighted bool) (*Dataset, *ParseErrorCache, error) {
	datasets, cache, err := readClusters(r, mapping, weighted, false)
	if err != nil {
		return nil, cache, err
	}
	if len(datasets) == 0 {
		return newDataset(), cache, nil
	}
	return datasets[0], cache, nil
}

// ReadPartitioned parses a dataset file where a blank line or a line
// starting with '#' both ends the current cluster and begins a new one,
// returning one Dataset per cluster. The final cluster is flushed at EOF
// even without a trailing terminator line.
func ReadPartitioned(r io.Reader, mapping *Mapping, weighted bool) ([]*Dataset, *ParseErrorCache, error) {
	return readClusters(r, mapping, weighted, true)
}

func readClusters(r io.Reader, mapping *Mapping, weighted, partitioned bool) ([]*Dataset, *ParseErrorCache, error) {
	cache := NewParseErrorCache(64)

	var clusters []*Dataset
	cur := newBuilder()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			if partitioned {
				if !cur.empty() {
					clusters = append(clusters, cur.build())
				}
				cur = newBuilder()
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			cache.Add(lineNo, fmt.Sprintf("expected \"proteinA proteinB [weight]\", got %q", line))
			continue
		}

		weightStr := defaultWeight
		if weighted && len(fields) >= 3 {
			weightStr = fields[2]
		}
		weight, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			cache.Add(lineNo, fmt.Sprintf("bad weight %q", weightStr))
			continue
		}

		left := mapping.ResolveOrAssign(fields[0])
		right := mapping.ResolveOrAssign(fields[1])
		cur.addEdge(left, right, weight)
	}
	if err := scanner.Err(); err != nil {
		return nil, cache, ferrors.Wrap(ferrors.IoError, "reading dataset file", err)
	}

	if !cur.empty() {
		clusters = append(clusters, cur.build())
	}

	return clusters, cache, nil
}
