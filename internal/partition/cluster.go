package partition

import "github.com/bio-odsg/odsgminer/internal/ppigraph"

// Cluster is a non-owning view over a subset of a parent Graph's
// adjacency-list entries. The parent graph must outlive every Cluster
// built from it.
type Cluster struct {
	graph *ppigraph.Graph
	keys  []ppigraph.Vertex
}

// Keys returns the cluster's adjacency-list keys, in the order they were
// collected by the partitioner.
func (c *Cluster) Keys() []ppigraph.Vertex { return c.keys }

// List returns the adjacency list for v from the parent graph, or nil if
// v is not part of this cluster.
func (c *Cluster) List(v ppigraph.Vertex) []ppigraph.Vertex {
	for _, k := range c.keys {
		if k == v {
			return c.graph.List(v)
		}
	}
	return nil
}

// ListsCount returns the number of adjacency-list entries in the
// cluster.
func (c *Cluster) ListsCount() int { return len(c.keys) }

// ArcsCount returns the total number of (vertex, outlink) pairs across
// the cluster's entries.
func (c *Cluster) ArcsCount() int {
	n := 0
	for _, k := range c.keys {
		n += len(c.graph.List(k))
	}
	return n
}

// SourceGraph exposes the parent graph the cluster was built from.
func (c *Cluster) SourceGraph() *ppigraph.Graph { return c.graph }

// Empty reports whether the cluster has no entries.
func (c *Cluster) Empty() bool { return len(c.keys) == 0 }

func merge(a, b *Cluster) *Cluster {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &Cluster{graph: a.graph, keys: append(append([]ppigraph.Vertex{}, a.keys...), b.keys...)}
}
