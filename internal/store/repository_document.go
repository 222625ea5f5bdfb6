package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/models"
)

// defaultListLimit caps document listings when the caller does not supply a
// limit of its own.
const defaultListLimit = 100

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. Listing queries are assembled with squirrel because
// the filter combination (source, category, paging) varies per request.
type documentRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateDocument persists one knowledge-base chunk and returns it with the
// server-assigned ID and CreatedAt. The ID is what the vector index stores
// alongside the chunk's embedding.
func (r *documentRepository) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(doc.TableName()).
		Columns("text", "source", "category", "filename", "chunk").
		Values(doc.Text, doc.Source, doc.Category, doc.Filename, doc.Chunk).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("error building insert")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&doc.ID, &doc.CreatedAt); err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Msg("error: scanning error")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

// GetDocumentsByIDs fetches the chunks with the given IDs. The result keeps
// the order of ids, so vector search ranking survives the fetch; IDs with no
// matching row are silently skipped (the index may briefly reference rows
// that a concurrent clear removed).
func (r *documentRepository) GetDocumentsByIDs(ctx context.Context, ids []int64) ([]models.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := r.builder.
		Select(documentColumns...).
		From(models.Document{}.TableName()).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	docs, err := r.queryDocuments(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]models.Document, len(docs))
	for _, doc := range docs {
		byID[doc.ID] = doc
	}

	ordered := make([]models.Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := byID[id]; ok {
			ordered = append(ordered, doc)
		}
	}
	return ordered, nil
}

// ListDocuments returns chunks matching the filter, oldest first.
func (r *documentRepository) ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	builder := r.builder.
		Select(documentColumns...).
		From(models.Document{}.TableName()).
		OrderBy("id").
		Limit(limit).
		Offset(filter.Offset)

	if filter.Source != "" {
		builder = builder.Where(sq.Eq{"source": filter.Source})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryDocuments(ctx, query, args...)
}

// AllDocuments returns every stored chunk, oldest first. Used to rebuild the
// vector index at startup when no usable snapshot exists.
func (r *documentRepository) AllDocuments(ctx context.Context) ([]models.Document, error) {
	query, _, err := r.builder.
		Select(documentColumns...).
		From(models.Document{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryDocuments(ctx, query)
}

// CountDocuments returns the number of stored chunks.
func (r *documentRepository) CountDocuments(ctx context.Context) (int, error) {
	query, _, err := r.builder.
		Select("COUNT(*)").
		From(models.Document{}.TableName()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

// DeleteAllDocuments removes every chunk. Callers are expected to clear the
// vector index in the same operation.
func (r *documentRepository) DeleteAllDocuments(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, _, err := r.builder.
		Delete(models.Document{}.TableName()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		log.Err(err).Str("func", "*documentRepository.DeleteAllDocuments").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *documentRepository) queryDocuments(ctx context.Context, query string, args ...any) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.queryDocuments").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.ID, &doc.Text, &doc.Source, &doc.Category, &doc.Filename, &doc.Chunk, &doc.CreatedAt); err != nil {
			log.Err(err).Str("func", "*documentRepository.queryDocuments").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}
