package models

// ChatRequest is the inbound payload of the chat endpoint.
type ChatRequest struct {
	// Message is the user's symptom description or question.
	Message string `json:"message"`

	// Language selects the reply language ("en", "hi", "mr").
	// Empty means English.
	Language string `json:"language,omitempty"`
}

// ContextSource identifies one knowledge-base chunk that was fed into the
// model prompt, so clients can show where an answer came from.
type ContextSource struct {
	DocumentID int64   `json:"document_id"`
	Source     string  `json:"source"`
	Preview    string  `json:"preview"`
	Score      float64 `json:"similarity_score"`
}

// ChatResponse is the outbound payload of the chat endpoint.
type ChatResponse struct {
	// Reply is the assistant's answer, already translated when a
	// non-English language was requested.
	Reply string `json:"reply"`

	// Model is the upstream model identifier that produced the reply.
	Model string `json:"model"`

	// Language is the language the reply was delivered in.
	Language string `json:"language"`

	// Sources lists the knowledge-base chunks used as prompt context.
	Sources []ContextSource `json:"sources,omitempty"`

	// Disclaimer is the localized medical disclaimer that accompanies
	// every reply.
	Disclaimer string `json:"disclaimer"`
}
