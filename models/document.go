package models

import "time"

// Document is a single chunk of knowledge-base text together with its
// provenance metadata. Large uploads are split into paragraph chunks before
// storage, so one source file usually maps to several Document rows.
type Document struct {
	// ID is the server-assigned document identifier. It doubles as the
	// vector index key for the chunk's embedding.
	ID int64 `json:"id"`

	// Text is the chunk content that gets embedded and searched.
	Text string `json:"text"`

	// Source describes where the chunk came from
	// (e.g. "general_medical_knowledge", "file_upload", "user_upload").
	Source string `json:"source"`

	// Category is an optional topical label (e.g. "respiratory").
	Category string `json:"category,omitempty"`

	// Filename is the original upload file name, when the chunk came from
	// a file upload.
	Filename string `json:"filename,omitempty"`

	// Chunk is the zero-based position of this chunk within its upload.
	Chunk int `json:"chunk"`

	// CreatedAt is the ingestion timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// Preview returns the first n characters of the chunk text with an ellipsis
// appended when the text was truncated. Used by the document listing.
func (d Document) Preview(n int) string {
	runes := []rune(d.Text)
	if len(runes) <= n {
		return d.Text
	}
	return string(runes[:n]) + "..."
}

// DocumentFilter narrows document listing queries. Zero values mean
// "no constraint"; Limit falls back to a server-side default when zero.
type DocumentFilter struct {
	Source   string
	Category string
	Limit    uint64
	Offset   uint64
}

// SearchResult is a knowledge-base chunk scored against a query.
type SearchResult struct {
	Document Document `json:"document"`

	// Score is the similarity of the chunk to the query, computed as
	// 1/(1+d) where d is the L2 distance between embeddings. Higher is
	// more similar; 1.0 is an exact embedding match.
	Score float64 `json:"similarity_score"`
}

// KnowledgeStats describes the state of the vector index.
type KnowledgeStats struct {
	TotalDocuments     int    `json:"total_documents"`
	EmbeddingDimension int    `json:"embedding_dimension"`
	IndexType          string `json:"index_type"`
}
