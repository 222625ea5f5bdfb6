package store

import (
	"context"

	"github.com/medichat/go-medichat/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// DocumentRepository persists knowledge-base chunks. The vector index keeps
// only embeddings; the text and metadata live here.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)
	GetDocumentsByIDs(ctx context.Context, ids []int64) ([]models.Document, error)
	ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)
	AllDocuments(ctx context.Context) ([]models.Document, error)
	CountDocuments(ctx context.Context) (int, error)
	DeleteAllDocuments(ctx context.Context) error
}

// SessionStore keeps in-flight assessment sessions. Implementations are
// expected to drop sessions that have been idle longer than the configured
// TTL, either natively (Redis) or via PurgeExpired (memory).
type SessionStore interface {
	Save(ctx context.Context, session models.AssessmentSession) error
	Get(ctx context.Context, sessionID string) (models.AssessmentSession, error)
	Delete(ctx context.Context, sessionID string) error
	List(ctx context.Context) ([]models.AssessmentSession, error)

	// PurgeExpired removes idle sessions and returns how many were dropped.
	PurgeExpired(ctx context.Context) (int, error)
}

// HistoryStore is the terminal client's local chat transcript.
type HistoryStore interface {
	Append(ctx context.Context, turn models.ChatTurn) error
	Recent(ctx context.Context, limit int) ([]models.ChatTurn, error)
	Close() error
}
