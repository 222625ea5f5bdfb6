// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package http

import (
	"context"

	"github.com/medichat/go-medichat/internal/config"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/metrics"
	"github.com/medichat/go-medichat/internal/service"
	"github.com/medichat/go-medichat/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	getProfileFn   func(ctx context.Context, userID int64) (models.Profile, error)
	createTokenFn  func(userID int64) (models.Token, error)
	parseTokenFn   func(tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, userID)
	}
	return models.Profile{ID: userID}, nil
}

func (m *mockAuthService) CreateToken(userID int64) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(userID)
	}
	return models.Token{SignedString: "signed-token", UserID: userID}, nil
}

func (m *mockAuthService) ParseToken(tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(tokenString)
	}
	if tokenString == "good-token" {
		return models.Token{UserID: 7}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// ─────────────────────────────────────────────
// Mock: service.KnowledgeService
// ─────────────────────────────────────────────

type mockKnowledgeService struct {
	addDocumentsFn  func(ctx context.Context, docs []models.Document) ([]models.Document, error)
	searchFn        func(ctx context.Context, query string, k int) ([]models.SearchResult, error)
	listFn          func(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)
	clearFn         func(ctx context.Context) error
	statsFn         func(ctx context.Context) (models.KnowledgeStats, error)
	rebuildFn       func(ctx context.Context) error
	saveSnapshotFn  func() error
	loadOrRebuildFn func(ctx context.Context) error
}

func (m *mockKnowledgeService) AddDocuments(ctx context.Context, docs []models.Document) ([]models.Document, error) {
	if m.addDocumentsFn != nil {
		return m.addDocumentsFn(ctx, docs)
	}
	return docs, nil
}

func (m *mockKnowledgeService) Search(ctx context.Context, query string, k int) ([]models.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, k)
	}
	return nil, nil
}

func (m *mockKnowledgeService) List(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockKnowledgeService) Clear(ctx context.Context) error {
	if m.clearFn != nil {
		return m.clearFn(ctx)
	}
	return nil
}

func (m *mockKnowledgeService) Stats(ctx context.Context) (models.KnowledgeStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return models.KnowledgeStats{}, nil
}

func (m *mockKnowledgeService) Rebuild(ctx context.Context) error {
	if m.rebuildFn != nil {
		return m.rebuildFn(ctx)
	}
	return nil
}

func (m *mockKnowledgeService) SaveSnapshot() error {
	if m.saveSnapshotFn != nil {
		return m.saveSnapshotFn()
	}
	return nil
}

func (m *mockKnowledgeService) LoadOrRebuild(ctx context.Context) error {
	if m.loadOrRebuildFn != nil {
		return m.loadOrRebuildFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.DocumentService
// ─────────────────────────────────────────────

type mockDocumentService struct {
	processUploadFn func(ctx context.Context, filename, source, category string, data []byte) (models.UploadResponse, error)
}

func (m *mockDocumentService) ProcessUpload(ctx context.Context, filename, source, category string, data []byte) (models.UploadResponse, error) {
	if m.processUploadFn != nil {
		return m.processUploadFn(ctx, filename, source, category, data)
	}
	return models.UploadResponse{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.ChatService
// ─────────────────────────────────────────────

type mockChatService struct {
	chatFn func(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

func (m *mockChatService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if m.chatFn != nil {
		return m.chatFn(ctx, req)
	}
	return models.ChatResponse{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.AssessmentService
// ─────────────────────────────────────────────

type mockAssessmentService struct {
	startFn   func(ctx context.Context) (models.AssessmentResponse, error)
	answerFn  func(ctx context.Context, sessionID, message string) (models.AssessmentResponse, error)
	summaryFn func(ctx context.Context, sessionID string) (models.AssessmentSummary, error)
	listFn    func(ctx context.Context) ([]models.SessionBrief, error)
	deleteFn  func(ctx context.Context, sessionID string) error
}

func (m *mockAssessmentService) Start(ctx context.Context) (models.AssessmentResponse, error) {
	if m.startFn != nil {
		return m.startFn(ctx)
	}
	return models.AssessmentResponse{}, nil
}

func (m *mockAssessmentService) Answer(ctx context.Context, sessionID, message string) (models.AssessmentResponse, error) {
	if m.answerFn != nil {
		return m.answerFn(ctx, sessionID, message)
	}
	return models.AssessmentResponse{}, nil
}

func (m *mockAssessmentService) Summary(ctx context.Context, sessionID string) (models.AssessmentSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, sessionID)
	}
	return models.AssessmentSummary{}, nil
}

func (m *mockAssessmentService) List(ctx context.Context) ([]models.SessionBrief, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockAssessmentService) Delete(ctx context.Context, sessionID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, sessionID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.PredictionService
// ─────────────────────────────────────────────

type mockPredictionService struct {
	predictFn func(ctx context.Context, symptoms string) ([]models.DiseasePrediction, error)
}

func (m *mockPredictionService) Predict(ctx context.Context, symptoms string) ([]models.DiseasePrediction, error) {
	if m.predictFn != nil {
		return m.predictFn(ctx, symptoms)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestHandler(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.KnowledgeService == nil {
		services.KnowledgeService = &mockKnowledgeService{}
	}
	if services.DocumentService == nil {
		services.DocumentService = &mockDocumentService{}
	}
	if services.ChatService == nil {
		services.ChatService = &mockChatService{}
	}
	if services.AssessmentService == nil {
		services.AssessmentService = &mockAssessmentService{}
	}
	if services.PredictionService == nil {
		services.PredictionService = &mockPredictionService{}
	}

	cfg := config.StructuredConfig{}
	cfg.App.TokenExpireMinutes = 30
	cfg.App.Version = "test"

	return NewHandler(services, metrics.NewNop(), cfg, logger.Nop())
}
