package complexset

// SimilarityFiltering selects how near-duplicate predicted complexes are
// treated when added to a Set.
type SimilarityFiltering int

const (
	// NoFiltering keeps every complex, however similar to others.
	NoFiltering SimilarityFiltering = iota
	// KeepBiggest keeps only the larger of two complexes that are too
	// similar to each other (the ClusterBFS behavior).
	KeepBiggest
	// MergeUnion unions two complexes that are too similar into one
	// (the clusterONE behavior).
	MergeUnion
)

const defaultSimilarityThreshold = 0.8

// Set is a deduplicating collection of predicted complexes. The zero
// value is not usable; construct with NewSet.
type Set struct {
	filtering SimilarityFiltering
	threshold float64
	complexes []Complex
}

// NewSet returns an empty Set using the given filtering mode and
// similarity threshold. A non-positive threshold falls back to 0.8.
func NewSet(filtering SimilarityFiltering, threshold float64) *Set {
	if threshold <= 0 {
		threshold = defaultSimilarityThreshold
	}
	return &Set{filtering: filtering, threshold: threshold}
}

// Add inserts candidate into s, applying s's filtering mode against the
// most similar complex already present. candidate must not be empty.
func (s *Set) Add(candidate Complex) {
	if s.filtering == NoFiltering {
		s.complexes = append(s.complexes, candidate)
		return
	}

	mostSimilar := -1
	maxScore := -1.0
	for i, c := range s.complexes {
		score := OverlapScore(c, candidate)
		if score > maxScore {
			mostSimilar = i
			maxScore = score
		}
	}

	if mostSimilar == -1 || maxScore < s.threshold {
		s.complexes = append(s.complexes, candidate)
		return
	}

	switch s.filtering {
	case KeepBiggest:
		if candidate.Size() > s.complexes[mostSimilar].Size() {
			s.complexes[mostSimilar] = candidate
		}
	case MergeUnion:
		merged := Complex{Proteins: s.complexes[mostSimilar].Proteins.Clone()}
		for v := range candidate.Proteins {
			merged.Proteins[v] = struct{}{}
		}
		s.complexes[mostSimilar] = merged
	}
}

// Complexes returns the complexes currently held by s.
func (s *Set) Complexes() []Complex {
	return s.complexes
}

// Len returns the number of complexes currently held by s.
func (s *Set) Len() int { return len(s.complexes) }
