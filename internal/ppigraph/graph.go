// Package ppigraph implements the mineable adjacency-list graph at the
// bottom of the mining pipeline: a Vertex-keyed set of AdjacencyLists that
// becomes mineable once self-loops are inserted, trivial lists are
// dropped, and every remaining list is sorted under a chosen Ordering.
package ppigraph

import (
	"fmt"
	"math/rand"
	"sort"
)

// Vertex identifies a protein in the network. Totally ordered.
type Vertex uint32

// Mineability tracks how far a Graph has progressed through the mining
// preparation lifecycle. It only ever advances.
type Mineability int

const (
	Raw Mineability = iota
	SelfLooped
	Sorted
)

func (m Mineability) String() string {
	switch m {
	case Raw:
		return "raw"
	case SelfLooped:
		return "self-looped"
	case Sorted:
		return "sorted"
	default:
		return "unknown"
	}
}

// Ordering selects the total order imposed on each adjacency list during
// makeMineable.
type Ordering int

const (
	ByID Ordering = iota
	ByFrequency
	ByRandomPermutation
)

// Graph is a Vertex -> AdjacencyList mapping. keys preserves a stable
// iteration order over the map, which becomes the canonical order once
// the graph is mineable (Dag construction walks entries in this order).
type Graph struct {
	lists       map[Vertex][]Vertex
	keys        []Vertex
	mineability Mineability
	sortedByID  bool // true if the caller asserts the input arrived pre-sorted by Vertex
	sortedByOrd bool // true once MakeMineable has run with order == ByID
	seed        int64
}

// New builds a Graph from raw adjacency-list input. Lists must not
// duplicate entries within themselves; the graph does not itself detect
// duplicates (matching the source's documented undefined-behaviour
// contract), but callers reading from a dataset file should validate
// first (see internal/dataset).
func New(adjacency map[Vertex][]Vertex) *Graph {
	g := &Graph{
		lists: make(map[Vertex][]Vertex, len(adjacency)),
		keys:  make([]Vertex, 0, len(adjacency)),
	}
	for v, list := range adjacency {
		cp := make([]Vertex, len(list))
		copy(cp, list)
		g.lists[v] = cp
		g.keys = append(g.keys, v)
	}
	sort.Slice(g.keys, func(i, j int) bool { return g.keys[i] < g.keys[j] })
	return g
}

// NewSorted is like New but records that the caller already sorted every
// adjacency list by ascending Vertex, letting makeMineable skip the
// VertexFrequencyComparer pass entirely.
func NewSorted(adjacency map[Vertex][]Vertex) *Graph {
	g := New(adjacency)
	g.sortedByID = true
	return g
}

func contains(list []Vertex, v Vertex) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// RebuildExceptSorting performs the self-loop insertion and trivial-list
// trimming step only, without sorting. Exposed so frequency-based
// orderings can be computed against the trimmed graph.
func (g *Graph) RebuildExceptSorting() {
	if g.mineability >= SelfLooped {
		return
	}

	for _, v := range g.keys {
		list := g.lists[v]
		if len(list) >= 1 && !contains(list, v) {
			if g.sortedByID {
				idx := sort.Search(len(list), func(i int) bool { return list[i] > v })
				list = append(list, 0)
				copy(list[idx+1:], list[idx:])
				list[idx] = v
			} else {
				list = append(list, v)
			}
			g.lists[v] = list
		}
	}

	kept := g.keys[:0]
	for _, v := range g.keys {
		if len(g.lists[v]) <= 1 {
			delete(g.lists, v)
			continue
		}
		kept = append(kept, v)
	}
	g.keys = kept

	g.mineability = SelfLooped
}

// MakeMineable is the idempotent transition into the Sorted mineability
// state: self-loop + trim (via RebuildExceptSorting) followed by sorting
// every remaining list under order. seed is only consulted for
// ByRandomPermutation; it is a property of this call, never a process
// global.
func (g *Graph) MakeMineable(order Ordering, seed int64) {
	if g.IsMineable() {
		return
	}

	if g.sortedByID {
		g.RebuildExceptSorting()
		g.mineability = Sorted
		return
	}

	g.RebuildExceptSorting()

	var less func(a, b Vertex) bool
	switch order {
	case ByID:
		less = func(a, b Vertex) bool { return a < b }
		g.sortedByOrd = true
	case ByFrequency:
		less = g.frequencyComparer()
	case ByRandomPermutation:
		less = g.randomPermutationComparer(seed)
	default:
		panic(fmt.Sprintf("ppigraph: unknown ordering %d", order))
	}

	for _, v := range g.keys {
		list := g.lists[v]
		sort.Slice(list, func(i, j int) bool { return less(list[i], list[j]) })
	}

	g.seed = seed
	g.mineability = Sorted
}

func (g *Graph) frequencyComparer() func(a, b Vertex) bool {
	freq := make(map[Vertex]int)
	for _, v := range g.keys {
		for _, u := range g.lists[v] {
			freq[u]++
		}
	}
	return func(a, b Vertex) bool {
		fa, fb := freq[a], freq[b]
		if fa != fb {
			return fa > fb
		}
		return a < b
	}
}

func (g *Graph) randomPermutationComparer(seed int64) func(a, b Vertex) bool {
	seen := make(map[Vertex]struct{})
	var all []Vertex
	for _, v := range g.keys {
		for _, u := range g.lists[v] {
			if _, ok := seen[u]; !ok {
				seen[u] = struct{}{}
				all = append(all, u)
			}
		}
	}

	perm := make(map[Vertex]Vertex, len(all))
	for _, v := range all {
		perm[v] = v
	}

	values := make([]Vertex, len(all))
	for i, v := range all {
		values[i] = perm[v]
	}

	rng := rand.New(rand.NewSource(seed))
	for i := len(values) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
	for i, v := range all {
		perm[v] = values[i]
	}

	return func(a, b Vertex) bool { return perm[a] < perm[b] }
}

// IsMineable reports whether the graph has reached the Sorted state.
func (g *Graph) IsMineable() bool { return g.mineability == Sorted }

// IsSortedByVertex reports whether the graph's adjacency lists are
// currently in ascending-Vertex order: either the caller asserted this
// via NewSorted, or MakeMineable has run with the ByID ordering.
func (g *Graph) IsSortedByVertex() bool { return g.sortedByID || g.sortedByOrd }

// Mineability returns the graph's current lifecycle state.
func (g *Graph) Mineability() Mineability { return g.mineability }

// ArcsCount returns the total number of (vertex, outlink) pairs.
func (g *Graph) ArcsCount() int {
	n := 0
	for _, list := range g.lists {
		n += len(list)
	}
	return n
}

// NodesCount returns the number of distinct vertexes appearing anywhere
// in any adjacency list (O(arcs)), which is not necessarily the same as
// ListsCount.
func (g *Graph) NodesCount() int {
	seen := make(map[Vertex]struct{})
	for _, v := range g.keys {
		seen[v] = struct{}{}
		for _, u := range g.lists[v] {
			seen[u] = struct{}{}
		}
	}
	return len(seen)
}

// ListsCount returns the number of adjacency-list entries (map keys).
func (g *Graph) ListsCount() int { return len(g.keys) }

// Empty reports whether the graph has no adjacency-list entries left.
func (g *Graph) Empty() bool { return len(g.keys) == 0 }

// Keys returns the graph's entries in canonical iteration order. Once the
// graph is mineable with a ByID (or pre-sorted) ordering this order is
// itself a valid topological order for Dag construction.
func (g *Graph) Keys() []Vertex { return g.keys }

// List returns the adjacency list for v, or nil if v is not a key.
func (g *Graph) List(v Vertex) []Vertex { return g.lists[v] }
