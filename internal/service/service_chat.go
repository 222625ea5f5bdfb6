// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/medichat/go-medichat/internal/adapter"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/metrics"
	"github.com/medichat/go-medichat/models"
)

// contextTopK is how many knowledge-base chunks are retrieved into the model
// prompt for each chat turn.
const contextTopK = 3

// sourcePreviewRunes bounds the chunk preview returned with each source.
const sourcePreviewRunes = 160

// chatService is the concrete implementation of ChatService. Each chat turn
// is retrieval-augmented: the knowledge base is searched for the most similar
// chunks, the chunks are folded into the prompt, and the upstream completion
// produces the reply, which is then localized.
type chatService struct {
	knowledge   KnowledgeService
	completion  adapter.CompletionClient
	translation TranslationService
	metrics     *metrics.Metrics
	logger      *logger.Logger
}

// NewChatService constructs a ChatService over the given knowledge base,
// completion client and translation service.
func NewChatService(knowledge KnowledgeService, completion adapter.CompletionClient,
	translation TranslationService, m *metrics.Metrics, logger *logger.Logger) ChatService {
	return &chatService{
		knowledge:   knowledge,
		completion:  completion,
		translation: translation,
		metrics:     m,
		logger:      logger,
	}
}

// Chat answers one user message.
//
// Returns ErrInvalidDataProvided for a blank message and
// ErrUpstreamUnavailable when the completion upstream has no credentials or
// fails to answer.
func (c *chatService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	log := logger.FromContext(ctx)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return models.ChatResponse{}, ErrInvalidDataProvided
	}
	if !c.completion.Configured() {
		return models.ChatResponse{}, fmt.Errorf("%w: completion api key not configured", ErrUpstreamUnavailable)
	}

	language := req.Language
	if language == "" || !c.translation.Supported(language) {
		language = "en"
	}

	results, err := c.knowledge.Search(ctx, message, contextTopK)
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("context retrieval ended with error: %w", err)
	}

	reply, err := c.completion.Complete(ctx, buildPrompt(message, results))
	if err != nil {
		c.metrics.UpstreamRequestsTotal.WithLabelValues("openrouter", "error").Inc()
		log.Err(err).Msg("completion request ended with error")
		return models.ChatResponse{}, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err)
	}
	c.metrics.UpstreamRequestsTotal.WithLabelValues("openrouter", "ok").Inc()

	localized, disclaimer, err := c.translation.Localize(ctx, reply, language)
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("reply localization ended with error: %w", err)
	}

	c.metrics.ChatRequestsTotal.WithLabelValues(language).Inc()

	return models.ChatResponse{
		Reply:      localized,
		Model:      c.completion.Model(),
		Language:   language,
		Sources:    contextSources(results),
		Disclaimer: disclaimer,
	}, nil
}

// buildPrompt folds the retrieved chunks and the user question into a single
// instruction prompt for the completion model.
func buildPrompt(message string, results []models.SearchResult) string {
	var sb strings.Builder

	sb.WriteString("You are a helpful medical information assistant. ")
	sb.WriteString("Answer the user's question using the context below when relevant. ")
	sb.WriteString("Be concise and factual. Always remind the user to consult a healthcare professional for diagnosis or treatment.\n")

	if len(results) > 0 {
		sb.WriteString("\nContext:\n")
		for i, result := range results {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, result.Document.Text))
		}
	}

	sb.WriteString("\nQuestion: ")
	sb.WriteString(message)
	return sb.String()
}

func contextSources(results []models.SearchResult) []models.ContextSource {
	if len(results) == 0 {
		return nil
	}

	sources := make([]models.ContextSource, len(results))
	for i, result := range results {
		sources[i] = models.ContextSource{
			DocumentID: result.Document.ID,
			Source:     result.Document.Source,
			Preview:    result.Document.Preview(sourcePreviewRunes),
			Score:      result.Score,
		}
	}
	return sources
}
