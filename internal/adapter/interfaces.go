package adapter

import (
	"context"

	"github.com/medichat/go-medichat/models"
)

// CompletionClient produces chat completions from an upstream LLM provider.
type CompletionClient interface {
	// Complete sends a single-turn prompt and returns the assistant reply text.
	Complete(ctx context.Context, prompt string) (string, error)
	// Model reports the model identifier requests are routed to.
	Model() string
	// Configured reports whether the client holds credentials to reach the upstream.
	Configured() bool
}

// TranslateClient translates text between languages via an external API.
type TranslateClient interface {
	// Translate converts text from the source language to the target language.
	// Language codes are ISO 639-1 ("en", "hi", "mr").
	Translate(ctx context.Context, text, source, target string) (string, error)
	// Configured reports whether the client holds credentials to reach the upstream.
	Configured() bool
}

// ServerAdapter is the terminal client's view of the medichat server API.
type ServerAdapter interface {
	Register(ctx context.Context, user models.User) (models.Token, error)
	Login(ctx context.Context, user models.User) (models.Token, error)
	Profile(ctx context.Context) (models.Profile, error)
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	SetToken(token string)
	Token() string
}
