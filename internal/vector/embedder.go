// Package vector implements the in-memory similarity index behind the
// knowledge base: deterministic text embeddings, a flat L2 index over them,
// and snapshot persistence between restarts.
package vector

import (
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// Embedder converts text into fixed-dimension vectors. Implementations must
// be deterministic: the same text always yields the same vector, so the
// index can be rebuilt from stored documents at any time.
type Embedder interface {
	Embed(text string) []float32
	Dimension() int
}

// hashingEmbedder maps texts to L2-normalised term-frequency vectors with
// feature hashing: every token (and every adjacent token bigram) is hashed
// into one of Dimension buckets. Purely lexical — no model weights, no
// external calls — which keeps embedding fast and reproducible.
type hashingEmbedder struct {
	dim int
}

// NewHashingEmbedder returns an [Embedder] with the given dimensionality.
// Dimensions below 64 hurt bucket separation noticeably; 256 is the
// production default.
func NewHashingEmbedder(dim int) Embedder {
	if dim <= 0 {
		dim = 256
	}
	return &hashingEmbedder{dim: dim}
}

func (e *hashingEmbedder) Dimension() int {
	return e.dim
}

// Embed tokenises text, accumulates hashed term frequencies for unigrams
// and bigrams, and L2-normalises the result. Empty or non-alphanumeric
// input yields the zero vector.
func (e *hashingEmbedder) Embed(text string) []float32 {
	vec := make([]float32, e.dim)

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	for i, token := range tokens {
		vec[e.bucket(token)]++

		if i > 0 {
			vec[e.bucket(tokens[i-1]+" "+token)]++
		}
	}

	normalize(vec)
	return vec
}

func (e *hashingEmbedder) bucket(token string) int {
	h := fnv.New64a()
	h.Write([]byte(token))
	return int(h.Sum64() % uint64(e.dim))
}

// tokenize lowercases the text and splits it into alphanumeric runs.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// normalize scales vec to unit L2 length in place. The zero vector is left
// untouched.
func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}

	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
}
