package vector

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// snapshot is the on-disk representation of an [Index].
type snapshot struct {
	Dimension int
	IDs       []int64
	Vectors   [][]float32
}

// SaveSnapshot persists the index to path atomically: the snapshot is
// written to a temp file in the same directory and renamed over the target,
// so a crash mid-write never corrupts an existing snapshot.
func (idx *Index) SaveSnapshot(path string) error {
	idx.mu.RLock()
	snap := snapshot{
		Dimension: idx.dim,
		IDs:       append([]int64(nil), idx.ids...),
		Vectors:   append([][]float32(nil), idx.vecs...),
	}
	idx.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "index-*.gob")
	if err != nil {
		return fmt.Errorf("error creating snapshot temp file: %w", err)
	}

	if err := gob.NewEncoder(tmp).Encode(snap); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("error encoding snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error closing snapshot temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error replacing snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot restores an index previously written by [Index.SaveSnapshot].
// A snapshot with a different dimensionality than dim is rejected so a
// VECTOR_DIMENSION change forces a rebuild from the documents table.
func LoadSnapshot(path string, dim int) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening snapshot: %w", err)
	}
	defer f.Close()

	var snap snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("error decoding snapshot: %w", err)
	}

	if snap.Dimension != dim {
		return nil, fmt.Errorf("%w: snapshot has %d, configured %d", ErrDimensionMismatch, snap.Dimension, dim)
	}
	if len(snap.IDs) != len(snap.Vectors) {
		return nil, fmt.Errorf("corrupt snapshot: %d ids vs %d vectors", len(snap.IDs), len(snap.Vectors))
	}

	idx := NewIndex(snap.Dimension)
	idx.ids = snap.IDs
	idx.vecs = snap.Vectors
	return idx, nil
}
