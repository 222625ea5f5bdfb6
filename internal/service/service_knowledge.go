// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/metrics"
	"github.com/medichat/go-medichat/internal/store"
	"github.com/medichat/go-medichat/internal/vector"
	"github.com/medichat/go-medichat/models"
)

// knowledgeService is the concrete implementation of KnowledgeService.
//
// Chunk text and metadata live in the documents table; embeddings live in an
// in-memory flat L2 index keyed by document id. The index is a cache: it can
// always be rebuilt from the table, and is optionally persisted to a snapshot
// file between restarts.
type knowledgeService struct {
	docRepo      store.DocumentRepository
	embedder     vector.Embedder
	index        *vector.Index
	snapshotPath string
	metrics      *metrics.Metrics
	logger       *logger.Logger
}

// NewKnowledgeService constructs a KnowledgeService over the given document
// repository and vector index. snapshotPath may be empty to disable snapshot
// persistence.
func NewKnowledgeService(docRepo store.DocumentRepository, embedder vector.Embedder, index *vector.Index,
	snapshotPath string, m *metrics.Metrics, logger *logger.Logger) KnowledgeService {
	return &knowledgeService{
		docRepo:      docRepo,
		embedder:     embedder,
		index:        index,
		snapshotPath: snapshotPath,
		metrics:      m,
		logger:       logger,
	}
}

// AddDocuments persists the given chunks and adds their embeddings to the
// index. Chunks with empty text are skipped. Returns the stored documents
// with server-assigned ids.
func (k *knowledgeService) AddDocuments(ctx context.Context, docs []models.Document) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	stored := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if strings.TrimSpace(doc.Text) == "" {
			continue
		}

		created, err := k.docRepo.CreateDocument(ctx, doc)
		if err != nil {
			log.Err(err).Str("source", doc.Source).Msg("document creation ended with error")
			return stored, fmt.Errorf("document creation ended with error: %w", err)
		}

		if err = k.index.Add(created.ID, k.embedder.Embed(created.Text)); err != nil {
			return stored, fmt.Errorf("indexing document %d ended with error: %w", created.ID, err)
		}

		stored = append(stored, created)
	}

	k.metrics.KnowledgeDocuments.Set(float64(k.index.Len()))
	return stored, nil
}

// Search embeds the query and returns the k nearest chunks with their
// similarity scores. An empty index yields an empty result, not an error.
func (k *knowledgeService) Search(ctx context.Context, query string, topK int) ([]models.SearchResult, error) {
	hits, err := k.index.Search(k.embedder.Embed(query), topK)
	if err != nil {
		if errors.Is(err, vector.ErrEmptyIndex) {
			return nil, nil
		}
		return nil, fmt.Errorf("index search ended with error: %w", err)
	}

	ids := make([]int64, len(hits))
	scoreByID := make(map[int64]float64, len(hits))
	for i, hit := range hits {
		ids[i] = hit.ID
		scoreByID[hit.ID] = hit.Score
	}

	docs, err := k.docRepo.GetDocumentsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching searched documents ended with error: %w", err)
	}

	results := make([]models.SearchResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, models.SearchResult{Document: doc, Score: scoreByID[doc.ID]})
	}
	return results, nil
}

func (k *knowledgeService) List(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	docs, err := k.docRepo.ListDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing documents ended with error: %w", err)
	}
	return docs, nil
}

// Clear removes every document from storage, resets the index, and deletes
// the on-disk snapshot so a restart cannot resurrect the cleared vectors.
func (k *knowledgeService) Clear(ctx context.Context) error {
	if err := k.docRepo.DeleteAllDocuments(ctx); err != nil {
		return fmt.Errorf("clearing documents ended with error: %w", err)
	}

	k.index.Clear()
	k.metrics.KnowledgeDocuments.Set(0)

	if k.snapshotPath != "" {
		if err := os.Remove(k.snapshotPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing index snapshot ended with error: %w", err)
		}
	}

	logger.FromContext(ctx).Info().Msg("knowledge base cleared")
	return nil
}

func (k *knowledgeService) Stats(ctx context.Context) (models.KnowledgeStats, error) {
	total, err := k.docRepo.CountDocuments(ctx)
	if err != nil {
		return models.KnowledgeStats{}, fmt.Errorf("counting documents ended with error: %w", err)
	}

	return models.KnowledgeStats{
		TotalDocuments:     total,
		EmbeddingDimension: k.index.Dimension(),
		IndexType:          vector.IndexTypeFlatL2,
	}, nil
}

// Rebuild re-embeds every stored document into a fresh index. The live index
// is swapped in place only after the full table has been read.
func (k *knowledgeService) Rebuild(ctx context.Context) error {
	docs, err := k.docRepo.AllDocuments(ctx)
	if err != nil {
		return fmt.Errorf("loading documents for rebuild ended with error: %w", err)
	}

	k.index.Clear()
	for _, doc := range docs {
		if err = k.index.Add(doc.ID, k.embedder.Embed(doc.Text)); err != nil {
			return fmt.Errorf("indexing document %d ended with error: %w", doc.ID, err)
		}
	}

	k.metrics.KnowledgeDocuments.Set(float64(k.index.Len()))
	k.logger.Info().Int("documents", k.index.Len()).Msg("vector index rebuilt")
	return nil
}

// SaveSnapshot writes the current index to the configured snapshot path.
// A no-op when snapshotting is disabled.
func (k *knowledgeService) SaveSnapshot() error {
	if k.snapshotPath == "" {
		return nil
	}

	if err := k.index.SaveSnapshot(k.snapshotPath); err != nil {
		return fmt.Errorf("saving index snapshot ended with error: %w", err)
	}
	return nil
}

// LoadOrRebuild restores the index from its snapshot when one exists and
// matches the configured dimension; otherwise it rebuilds from the documents
// table. Called once at startup.
func (k *knowledgeService) LoadOrRebuild(ctx context.Context) error {
	if k.snapshotPath != "" {
		loaded, err := vector.LoadSnapshot(k.snapshotPath, k.index.Dimension())
		switch {
		case err == nil:
			if err = k.index.Restore(loaded); err != nil {
				return fmt.Errorf("restoring index snapshot ended with error: %w", err)
			}
			k.metrics.KnowledgeDocuments.Set(float64(k.index.Len()))
			k.logger.Info().Int("documents", k.index.Len()).Msg("vector index restored from snapshot")
			return nil
		case errors.Is(err, os.ErrNotExist):
			// first start, fall through to rebuild
		default:
			k.logger.Err(err).Str("path", k.snapshotPath).Msg("snapshot unusable, rebuilding index")
		}
	}

	return k.Rebuild(ctx)
}
