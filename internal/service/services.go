package service

import (
	"github.com/medichat/go-medichat/internal/adapter"
	"github.com/medichat/go-medichat/internal/config"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/metrics"
	"github.com/medichat/go-medichat/internal/store"
	"github.com/medichat/go-medichat/internal/vector"
)

type Services struct {
	AuthService        AuthService
	KnowledgeService   KnowledgeService
	DocumentService    DocumentService
	ChatService        ChatService
	AssessmentService  AssessmentService
	PredictionService  PredictionService
	TranslationService TranslationService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Services {
	embedder := vector.NewHashingEmbedder(cfg.Storage.VectorDimension)
	index := vector.NewIndex(embedder.Dimension())

	knowledge := NewKnowledgeService(storages.DocumentRepository, embedder, index,
		cfg.Storage.VectorSnapshotPath, m, logger)

	completion := adapter.NewOpenRouterClient(adapter.OpenRouterConfig{
		BaseURL: cfg.Upstream.OpenRouterBaseURL,
		APIKey:  cfg.Upstream.OpenRouterAPIKey,
		Model:   cfg.Upstream.OpenRouterModel,
		Timeout: cfg.Upstream.Timeout,
	})
	translate := adapter.NewGoogleTranslateClient(adapter.GoogleTranslateConfig{
		APIKey:  cfg.Upstream.GoogleTranslateAPIKey,
		Timeout: cfg.Upstream.Timeout,
	})

	translation := NewTranslationService(translate, m, logger)

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.App, logger),
		KnowledgeService:   knowledge,
		DocumentService:    NewDocumentService(knowledge, logger),
		ChatService:        NewChatService(knowledge, completion, translation, m, logger),
		AssessmentService:  NewAssessmentService(storages.SessionStore, m, logger),
		PredictionService:  NewPredictionService(logger),
		TranslationService: translation,
	}
}
