package service

import (
	"context"

	"github.com/medichat/go-medichat/models"
)

// AuthService handles user registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)

	CreateToken(userID int64) (models.Token, error)
	ParseToken(tokenString string) (models.Token, error)
}

// KnowledgeService owns the medical knowledge base: the document storage and
// the in-memory vector index built over it.
type KnowledgeService interface {
	// AddDocuments embeds and persists already-chunked documents.
	// Returns the stored documents with server-assigned IDs.
	AddDocuments(ctx context.Context, docs []models.Document) ([]models.Document, error)
	// Search returns the k most similar documents to the query.
	Search(ctx context.Context, query string, k int) ([]models.SearchResult, error)
	List(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (models.KnowledgeStats, error)

	// Rebuild re-embeds every stored document into a fresh index.
	Rebuild(ctx context.Context) error
	// SaveSnapshot persists the current index to the configured path.
	SaveSnapshot() error
	// LoadOrRebuild restores the index from its snapshot, falling back to a
	// full rebuild from storage when the snapshot is missing or stale.
	LoadOrRebuild(ctx context.Context) error
}

// DocumentService turns uploaded files into chunked knowledge documents.
type DocumentService interface {
	ProcessUpload(ctx context.Context, filename, source, category string, data []byte) (models.UploadResponse, error)
}

// ChatService answers medical questions grounded in the knowledge base.
type ChatService interface {
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

// AssessmentService drives the guided symptom assessment conversation.
type AssessmentService interface {
	Start(ctx context.Context) (models.AssessmentResponse, error)
	Answer(ctx context.Context, sessionID, message string) (models.AssessmentResponse, error)
	Summary(ctx context.Context, sessionID string) (models.AssessmentSummary, error)
	List(ctx context.Context) ([]models.SessionBrief, error)
	Delete(ctx context.Context, sessionID string) error
}

// PredictionService maps free-text symptom descriptions to likely conditions.
type PredictionService interface {
	Predict(ctx context.Context, symptoms string) ([]models.DiseasePrediction, error)
}

// TranslationService localizes chat replies, with an offline fallback when
// the external translation API is not configured.
type TranslationService interface {
	// Localize translates english reply text into the target language and
	// returns the text plus the medical disclaimer for that language.
	Localize(ctx context.Context, text, target string) (reply, disclaimer string, err error)
	// Supported reports whether the target language is known.
	Supported(language string) bool
}
