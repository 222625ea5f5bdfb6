// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/metrics"
	"github.com/medichat/go-medichat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatService(repo *mockDocumentRepository, completion *mockCompletionClient,
	translate *mockTranslateClient) ChatService {
	m := metrics.NewNop()
	knowledge := newTestKnowledgeService(repo, "")
	translation := NewTranslationService(translate, m, logger.Nop())
	return NewChatService(knowledge, completion, translation, m, logger.Nop())
}

func TestChat_RetrievesContextIntoPrompt(t *testing.T) {
	docsByID := map[int64]models.Document{
		1: {ID: 1, Text: "Fever is a temporary rise in body temperature, often caused by infection.", Source: "general_medical_knowledge"},
	}
	repo := &mockDocumentRepository{
		createDocumentFn: func(ctx context.Context, doc models.Document) (models.Document, error) {
			doc.ID = 1
			return doc, nil
		},
		getDocumentsByIDsFn: func(ctx context.Context, ids []int64) ([]models.Document, error) {
			return []models.Document{docsByID[ids[0]]}, nil
		},
	}

	var seenPrompt string
	completion := &mockCompletionClient{
		isConfigured: true,
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			seenPrompt = prompt
			return "Fever is usually caused by infection. Consult a doctor if it persists.", nil
		},
	}

	svc := newTestChatService(repo, completion, &mockTranslateClient{})

	// seed the index through the knowledge service the chat service holds
	_, err := svc.(*chatService).knowledge.AddDocuments(context.Background(), []models.Document{docsByID[1]})
	require.NoError(t, err)

	got, err := svc.Chat(context.Background(), models.ChatRequest{Message: "why do I have a fever?"})

	require.NoError(t, err)
	assert.Contains(t, seenPrompt, "Fever is a temporary rise in body temperature")
	assert.Contains(t, seenPrompt, "why do I have a fever?")
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Sources, 1)
	assert.Equal(t, int64(1), got.Sources[0].DocumentID)
	assert.NotEmpty(t, got.Disclaimer)
}

func TestChat_EmptyKnowledgeBaseStillAnswers(t *testing.T) {
	completion := &mockCompletionClient{
		isConfigured: true,
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			return "General advice: rest and hydrate.", nil
		},
	}

	svc := newTestChatService(&mockDocumentRepository{}, completion, &mockTranslateClient{})
	got, err := svc.Chat(context.Background(), models.ChatRequest{Message: "I feel unwell"})

	require.NoError(t, err)
	assert.Equal(t, "General advice: rest and hydrate.", got.Reply)
	assert.Empty(t, got.Sources)
}

func TestChat_BlankMessage(t *testing.T) {
	svc := newTestChatService(&mockDocumentRepository{}, &mockCompletionClient{isConfigured: true}, &mockTranslateClient{})

	_, err := svc.Chat(context.Background(), models.ChatRequest{Message: "  "})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestChat_UpstreamNotConfigured(t *testing.T) {
	svc := newTestChatService(&mockDocumentRepository{}, &mockCompletionClient{}, &mockTranslateClient{})

	_, err := svc.Chat(context.Background(), models.ChatRequest{Message: "hello"})

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestChat_UpstreamFailure(t *testing.T) {
	completion := &mockCompletionClient{
		isConfigured: true,
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("upstream answered 502")
		},
	}

	svc := newTestChatService(&mockDocumentRepository{}, completion, &mockTranslateClient{})
	_, err := svc.Chat(context.Background(), models.ChatRequest{Message: "hello"})

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestChat_TranslatesReply(t *testing.T) {
	completion := &mockCompletionClient{
		isConfigured: true,
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			return "Drink water and rest.", nil
		},
	}
	translate := &mockTranslateClient{
		isConfigured: true,
		translateFn: func(ctx context.Context, text, source, target string) (string, error) {
			assert.Equal(t, "en", source)
			assert.Equal(t, "hi", target)
			return "पानी पिएं और आराम करें।", nil
		},
	}

	svc := newTestChatService(&mockDocumentRepository{}, completion, translate)
	got, err := svc.Chat(context.Background(), models.ChatRequest{Message: "I have a fever", Language: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "पानी पिएं और आराम करें।", got.Reply)
	assert.Equal(t, "hi", got.Language)
	assert.Contains(t, got.Disclaimer, "चिकित्सा")
}

func TestChat_UnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	completion := &mockCompletionClient{
		isConfigured: true,
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			return "Rest well.", nil
		},
	}

	svc := newTestChatService(&mockDocumentRepository{}, completion, &mockTranslateClient{})
	got, err := svc.Chat(context.Background(), models.ChatRequest{Message: "hello", Language: "fr"})

	require.NoError(t, err)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "Rest well.", got.Reply)
}
