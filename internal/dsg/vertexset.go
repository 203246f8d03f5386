// Package dsg implements DenseSubGraph values and the MaximalSet
// container that keeps them maximal under a configurable supersede
// relation.
package dsg

import (
	"sort"

	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

// VertexSet is a set of Vertex values.
type VertexSet map[ppigraph.Vertex]struct{}

// NewVertexSet builds a VertexSet from the given values.
func NewVertexSet(vs ...ppigraph.Vertex) VertexSet {
	s := make(VertexSet, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// Clone returns a shallow copy of s.
func (s VertexSet) Clone() VertexSet {
	cp := make(VertexSet, len(s))
	for v := range s {
		cp[v] = struct{}{}
	}
	return cp
}

// Contains reports whether v is a member of s.
func (s VertexSet) Contains(v ppigraph.Vertex) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members of s.
func (s VertexSet) Len() int { return len(s) }

// Sorted returns s's members in ascending order.
func (s VertexSet) Sorted() []ppigraph.Vertex {
	out := make([]ppigraph.Vertex, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether s and other have exactly the same members.
func (s VertexSet) Equal(other VertexSet) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Includes reports whether s is a superset of other (s ⊇ other).
func (s VertexSet) Includes(other VertexSet) bool {
	if len(other) > len(s) {
		return false
	}
	for v := range other {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// Intersect returns the intersection of a and b.
func Intersect(a, b VertexSet) VertexSet {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	out := make(VertexSet, len(small))
	for v := range small {
		if large.Contains(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Union returns the union of a and b.
func Union(a, b VertexSet) VertexSet {
	out := make(VertexSet, len(a)+len(b))
	for v := range a {
		out[v] = struct{}{}
	}
	for v := range b {
		out[v] = struct{}{}
	}
	return out
}

// IntersectionCount returns |a ∩ b| without allocating the intersection
// set, for callers (objectives, travelers) that only need the count.
func IntersectionCount(a, b VertexSet) int {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	n := 0
	for v := range small {
		if large.Contains(v) {
			n++
		}
	}
	return n
}
