// Package minhash implements the signature-based pre-clustering stage:
// a compact polynomial hash over 2-shingles of an adjacency list's
// decimal-string entries, producing a small per-list signature, and a
// grouping step over those signatures.
package minhash

import (
	"strconv"

	"github.com/bio-odsg/odsgminer/internal/ppigraph"
)

// hashParams is one (F, A, B) triple for the polynomial hash family
// h <- F; h <- (h*A) XOR (c*B) applied byte by byte.
type hashParams struct {
	F, A, B uint32
}

// defaultParams mirrors the two parameter triples used to build a
// 2-component signature in the source material; additional components
// can be supplied by callers wanting k > 2.
var defaultParams = []hashParams{
	{F: 59, A: 7, B: 13},
	{F: 81, A: 7, B: 17},
}

func hashString(s string, p hashParams) uint32 {
	h := p.F
	for i := 0; i < len(s); i++ {
		h = (h * p.A) ^ (uint32(s[i]) * p.B)
	}
	return h
}

// Signature is the tuple of k minimum hash values for one adjacency
// list, one per hashParams component.
type Signature []uint32

// Sign computes the Signature of list using the default two-component
// parameter set. Lists of length < 2 contribute no shingles and yield a
// zero-value Signature (all components absent/zero).
func Sign(list []ppigraph.Vertex) Signature {
	return SignWith(list, defaultParams)
}

// SignWith computes a Signature using a caller-supplied parameter set,
// letting callers choose k independently of the package default.
func SignWith(list []ppigraph.Vertex, params []hashParams) Signature {
	sig := make(Signature, len(params))

	if len(list) < 2 {
		return sig
	}

	decimal := make([]string, len(list))
	for i, v := range list {
		decimal[i] = strconv.FormatUint(uint64(v), 10)
	}

	for i, p := range params {
		var min uint32 = ^uint32(0)
		found := false
		for j := 0; j < len(decimal)-1; j++ {
			shingle := decimal[j] + decimal[j+1]
			h := hashString(shingle, p)
			if !found || h < min {
				min = h
				found = true
			}
		}
		if found {
			sig[i] = min
		}
	}
	return sig
}

// Group computes signatures for every list in lists (in the given
// order) and returns, for each component index, groups of list-indices
// sharing the same non-zero-shingle-count signature value at that
// component. Only groups of size >= 2 are emitted, matching the
// "signature-partitioning" contract: a cluster is the set of indices
// sharing one signature component value.
func Group(lists [][]ppigraph.Vertex) [][]int {
	return GroupWith(lists, defaultParams)
}

// GroupWith is Group parameterised over an explicit hash-parameter set.
func GroupWith(lists [][]ppigraph.Vertex, params []hashParams) [][]int {
	sigs := make([]Signature, len(lists))
	for i, list := range lists {
		if len(list) >= 2 {
			sigs[i] = SignWith(list, params)
		}
	}

	var groups [][]int
	for component := range params {
		byValue := make(map[uint32][]int)
		for i, list := range lists {
			if len(list) < 2 {
				continue
			}
			v := sigs[i][component]
			byValue[v] = append(byValue[v], i)
		}
		for _, idxs := range byValue {
			if len(idxs) > 1 {
				groups = append(groups, idxs)
			}
		}
	}
	return groups
}
