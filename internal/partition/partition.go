// Package partition turns a mineable Graph into a sequence of Clusters
// under one of three strategies: none (single cluster), grouping by
// initial outlink, or grouping by MinHash signature.
package partition

import (
	"fmt"
	"sort"

	"github.com/bio-odsg/odsgminer/internal/minhash"
	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

// Strategy selects a partitioning scheme.
type Strategy int

const (
	None Strategy = iota
	ByInitialOutlink
	BySignature
)

// Partitioner emits a deterministic sequence of clusters over a mineable
// graph. Next returns nil once the stream is exhausted.
type Partitioner struct {
	graph    *ppigraph.Graph
	pending  []*Cluster
	position int
}

// New builds a Partitioner for graph under strategy. graph must already
// be mineable; New panics otherwise (an InvalidState condition per the
// core's failure model — see internal/ferrors).
func New(graph *ppigraph.Graph, strategy Strategy) *Partitioner {
	if !graph.IsMineable() {
		panic("partition: graph is not mineable")
	}

	p := &Partitioner{graph: graph}
	switch strategy {
	case None:
		p.pending = partitionNone(graph)
	case ByInitialOutlink:
		p.pending = partitionByInitialOutlink(graph)
	case BySignature:
		p.pending = partitionBySignature(graph)
	default:
		panic(fmt.Sprintf("partition: unknown strategy %d", strategy))
	}
	return p
}

// Next returns the next cluster with arcsCount >= minArcs, greedily
// merging consecutive emitted micro-clusters until that threshold is met
// or the stream is exhausted. It returns nil once there is nothing left
// to emit, including on every subsequent call after that point.
func (p *Partitioner) Next(minArcs int) *Cluster {
	var acc *Cluster
	for {
		next := p.getNext()
		if next == nil {
			return acc
		}
		acc = merge(acc, next)
		if acc.ArcsCount() >= minArcs {
			return acc
		}
	}
}

func (p *Partitioner) getNext() *Cluster {
	if p.position >= len(p.pending) {
		return nil
	}
	c := p.pending[p.position]
	p.position++
	return c
}

func partitionNone(g *ppigraph.Graph) []*Cluster {
	if g.Empty() {
		return nil
	}
	return []*Cluster{{graph: g, keys: append([]ppigraph.Vertex{}, g.Keys()...)}}
}

func partitionByInitialOutlink(g *ppigraph.Graph) []*Cluster {
	buckets := make(map[ppigraph.Vertex][]ppigraph.Vertex)
	for _, v := range g.Keys() {
		list := g.List(v)
		if len(list) == 0 {
			continue
		}
		first := list[0]
		buckets[first] = append(buckets[first], v)
	}
	return clustersFromBucketsVertexKeyed(g, buckets)
}

// partitionBySignature groups adjacency lists via minhash.Group's loose
// per-component grouping contract: a cluster is the set of list-indices
// sharing one signature component value, groups of size < 2 dropped. A
// vertex can surface in more than one cluster (once per component it
// shares a value in) and a vertex whose list never matches another's on
// any component contributes no cluster at all.
func partitionBySignature(g *ppigraph.Graph) []*Cluster {
	keys := g.Keys()
	lists := make([][]ppigraph.Vertex, len(keys))
	for i, v := range keys {
		lists[i] = g.List(v)
	}

	groups := minhash.Group(lists)
	clusters := make([]*Cluster, 0, len(groups))
	for _, idxs := range groups {
		vks := make([]ppigraph.Vertex, len(idxs))
		for i, idx := range idxs {
			vks[i] = keys[idx]
		}
		sort.Slice(vks, func(i, j int) bool { return vks[i] < vks[j] })
		clusters = append(clusters, &Cluster{graph: g, keys: vks})
	}
	sort.Slice(clusters, func(i, j int) bool { return clusters[i].keys[0] < clusters[j].keys[0] })
	return clusters
}

func clustersFromBucketsVertexKeyed(g *ppigraph.Graph, buckets map[ppigraph.Vertex][]ppigraph.Vertex) []*Cluster {
	vks := make([]ppigraph.Vertex, 0, len(buckets))
	for k := range buckets {
		vks = append(vks, k)
	}
	sort.Slice(vks, func(i, j int) bool { return vks[i] < vks[j] })

	out := make([]*Cluster, len(vks))
	for i, k := range vks {
		keys := buckets[k]
		sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
		out[i] = &Cluster{graph: g, keys: keys}
	}
	return out
}
