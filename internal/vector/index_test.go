// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package vector

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_AddAndSearch(t *testing.T) {
	idx := NewIndex(3)

	require.NoError(t, idx.Add(1, []float32{1, 0, 0}))
	require.NoError(t, idx.Add(2, []float32{0, 1, 0}))
	require.NoError(t, idx.Add(3, []float32{0.9, 0.1, 0}))

	hits, err := idx.Search([]float32{1, 0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)

	assert.Equal(t, int64(1), hits[0].ID)
	assert.Equal(t, int64(3), hits[1].ID)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-9)
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestIndex_SearchEmpty(t *testing.T) {
	idx := NewIndex(3)

	_, err := idx.Search([]float32{1, 0, 0}, 5)
	assert.ErrorIs(t, err, ErrEmptyIndex)
}

func TestIndex_DimensionMismatch(t *testing.T) {
	idx := NewIndex(3)

	assert.ErrorIs(t, idx.Add(1, []float32{1, 0}), ErrDimensionMismatch)

	_, err := idx.Search([]float32{1, 0}, 1)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestIndex_SearchReturnsAtMostStored(t *testing.T) {
	idx := NewIndex(2)
	require.NoError(t, idx.Add(1, []float32{1, 0}))

	hits, err := idx.Search([]float32{1, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestIndex_Clear(t *testing.T) {
	idx := NewIndex(2)
	require.NoError(t, idx.Add(1, []float32{1, 0}))

	idx.Clear()

	assert.Zero(t, idx.Len())
	_, err := idx.Search([]float32{1, 0}, 1)
	assert.ErrorIs(t, err, ErrEmptyIndex)
}

func TestIndex_Restore(t *testing.T) {
	source := NewIndex(2)
	require.NoError(t, source.Add(1, []float32{1, 0}))
	require.NoError(t, source.Add(2, []float32{0, 1}))

	idx := NewIndex(2)
	require.NoError(t, idx.Add(99, []float32{0.5, 0.5}))

	require.NoError(t, idx.Restore(source))
	assert.Equal(t, 2, idx.Len())

	hits, err := idx.Search([]float32{0, 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits[0].ID)
}

func TestIndex_RestoreDimensionMismatch(t *testing.T) {
	idx := NewIndex(2)
	other := NewIndex(3)

	assert.ErrorIs(t, idx.Restore(other), ErrDimensionMismatch)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.snapshot")

	idx := NewIndex(2)
	require.NoError(t, idx.Add(1, []float32{1, 0}))
	require.NoError(t, idx.Add(2, []float32{0, 1}))
	require.NoError(t, idx.SaveSnapshot(path))

	loaded, err := LoadSnapshot(path, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())

	hits, err := loaded.Search([]float32{1, 0}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits[0].ID)
}

func TestSnapshot_MissingFile(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.snapshot"), 2)
	assert.Error(t, err)
}

func TestHashingEmbedder_DeterministicAndNormalized(t *testing.T) {
	emb := NewHashingEmbedder(64)

	first := emb.Embed("fever and cough")
	second := emb.Embed("fever and cough")
	assert.Equal(t, first, second)

	var norm float64
	for _, v := range first {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, norm, 1e-5)
}

func TestHashingEmbedder_SimilarTextsAreCloser(t *testing.T) {
	emb := NewHashingEmbedder(128)

	fever := emb.Embed("fever high temperature chills")
	feverish := emb.Embed("fever temperature chills sweating")
	unrelated := emb.Embed("broken ankle swelling bruise")

	near := l2Distance(fever, feverish)
	far := l2Distance(fever, unrelated)

	assert.Less(t, near, far)
}

func TestHashingEmbedder_EmptyText(t *testing.T) {
	emb := NewHashingEmbedder(16)

	vec := emb.Embed("")
	require.Len(t, vec, 16)

	for _, v := range vec {
		assert.Zero(t, v)
	}
}
