package vector

import (
	"errors"
	"math"
	"sort"
	"sync"
)

// IndexTypeFlatL2 names the only index layout currently implemented:
// exhaustive scan over L2 distances. Reported by the stats endpoint.
const IndexTypeFlatL2 = "FlatL2"

var (
	// ErrDimensionMismatch is returned when a vector of the wrong
	// dimensionality is added to or searched against the index.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrEmptyIndex is returned by Search when the index holds no vectors.
	ErrEmptyIndex = errors.New("vector index is empty")
)

// Hit is a single search result: the document ID of a stored vector and its
// similarity to the query.
type Hit struct {
	// ID is the document identifier supplied at Add time.
	ID int64

	// Distance is the L2 distance between the query and the stored vector.
	Distance float64

	// Score is 1/(1+Distance); 1.0 means identical embeddings.
	Score float64
}

// Index is a flat (brute-force) L2 similarity index. Every stored vector is
// scanned on each search, which is exact and plenty fast for knowledge bases
// in the tens of thousands of chunks.
//
// All methods are safe for concurrent use.
type Index struct {
	mu   sync.RWMutex
	dim  int
	ids  []int64
	vecs [][]float32
}

// NewIndex creates an empty index for vectors of the given dimensionality.
func NewIndex(dim int) *Index {
	return &Index{dim: dim}
}

// Dimension returns the index dimensionality.
func (idx *Index) Dimension() int {
	return idx.dim
}

// Len returns the number of stored vectors.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.ids)
}

// Add stores vec under id. The caller must not mutate vec afterwards.
func (idx *Index) Add(id int64, vec []float32) error {
	if len(vec) != idx.dim {
		return ErrDimensionMismatch
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.ids = append(idx.ids, id)
	idx.vecs = append(idx.vecs, vec)
	return nil
}

// Search returns the k stored vectors nearest to query, most similar first.
// Fewer than k hits are returned when the index holds fewer vectors.
func (idx *Index) Search(query []float32, k int) ([]Hit, error) {
	if len(query) != idx.dim {
		return nil, ErrDimensionMismatch
	}
	if k <= 0 {
		return nil, nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.ids) == 0 {
		return nil, ErrEmptyIndex
	}

	hits := make([]Hit, 0, len(idx.ids))
	for i, vec := range idx.vecs {
		dist := l2Distance(query, vec)
		hits = append(hits, Hit{
			ID:       idx.ids[i],
			Distance: dist,
			Score:    1 / (1 + dist),
		})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// Clear removes every stored vector.
func (idx *Index) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.ids = nil
	idx.vecs = nil
}

// Restore replaces the index contents with those of other. Both indexes must
// share the same dimensionality; a mismatched restore is ignored with an
// ErrDimensionMismatch.
func (idx *Index) Restore(other *Index) error {
	if other.dim != idx.dim {
		return ErrDimensionMismatch
	}

	other.mu.RLock()
	ids := make([]int64, len(other.ids))
	copy(ids, other.ids)
	vecs := make([][]float32, len(other.vecs))
	copy(vecs, other.vecs)
	other.mu.RUnlock()

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.ids = ids
	idx.vecs = vecs
	return nil
}

func l2Distance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
