// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package service

import (
	"context"

	"github.com/medichat/go-medichat/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFn func(ctx context.Context, login string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findUserByLoginFn != nil {
		return m.findUserByLoginFn(ctx, login)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.DocumentRepository
// ─────────────────────────────────────────────

type mockDocumentRepository struct {
	createDocumentFn     func(ctx context.Context, doc models.Document) (models.Document, error)
	getDocumentsByIDsFn  func(ctx context.Context, ids []int64) ([]models.Document, error)
	listDocumentsFn      func(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)
	allDocumentsFn       func(ctx context.Context) ([]models.Document, error)
	countDocumentsFn     func(ctx context.Context) (int, error)
	deleteAllDocumentsFn func(ctx context.Context) error
}

func (m *mockDocumentRepository) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	if m.createDocumentFn != nil {
		return m.createDocumentFn(ctx, doc)
	}
	return doc, nil
}

func (m *mockDocumentRepository) GetDocumentsByIDs(ctx context.Context, ids []int64) ([]models.Document, error) {
	if m.getDocumentsByIDsFn != nil {
		return m.getDocumentsByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockDocumentRepository) ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	if m.listDocumentsFn != nil {
		return m.listDocumentsFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockDocumentRepository) AllDocuments(ctx context.Context) ([]models.Document, error) {
	if m.allDocumentsFn != nil {
		return m.allDocumentsFn(ctx)
	}
	return nil, nil
}

func (m *mockDocumentRepository) CountDocuments(ctx context.Context) (int, error) {
	if m.countDocumentsFn != nil {
		return m.countDocumentsFn(ctx)
	}
	return 0, nil
}

func (m *mockDocumentRepository) DeleteAllDocuments(ctx context.Context) error {
	if m.deleteAllDocumentsFn != nil {
		return m.deleteAllDocumentsFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: adapter.CompletionClient
// ─────────────────────────────────────────────

type mockCompletionClient struct {
	completeFn   func(ctx context.Context, prompt string) (string, error)
	model        string
	isConfigured bool
}

func (m *mockCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, prompt)
	}
	return "", nil
}

func (m *mockCompletionClient) Model() string {
	if m.model == "" {
		return "test-model"
	}
	return m.model
}

func (m *mockCompletionClient) Configured() bool { return m.isConfigured }

// ─────────────────────────────────────────────
// Mock: adapter.TranslateClient
// ─────────────────────────────────────────────

type mockTranslateClient struct {
	translateFn  func(ctx context.Context, text, source, target string) (string, error)
	isConfigured bool
}

func (m *mockTranslateClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	if m.translateFn != nil {
		return m.translateFn(ctx, text, source, target)
	}
	return text, nil
}

func (m *mockTranslateClient) Configured() bool { return m.isConfigured }
