package models

// ErrorResponse is the uniform JSON error envelope returned by handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AssessmentResponse is the envelope returned by every assessment endpoint.
// Exactly one of Question or Assessment is set: Question while the flow is
// still collecting answers, Assessment once it has completed.
type AssessmentResponse struct {
	SessionID  string             `json:"session_id"`
	Question   *Question          `json:"question,omitempty"`
	Assessment *AssessmentSummary `json:"assessment,omitempty"`
	IsComplete bool               `json:"is_complete"`
}

// AssessmentRequest is the inbound payload of the respond and reset
// assessment endpoints.
type AssessmentRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Response  string `json:"response,omitempty"`
}

// SessionBrief is a compact session descriptor used by the session listing.
type SessionBrief struct {
	SessionID      string         `json:"session_id"`
	CurrentStep    AssessmentStep `json:"current_step"`
	PrimarySymptom string         `json:"primary_symptom,omitempty"`
	IsComplete     bool           `json:"is_complete"`
}

// SessionListResponse wraps the active session listing.
type SessionListResponse struct {
	Sessions []SessionBrief `json:"sessions"`
	Total    int            `json:"total"`
}

// UploadRequest is the inbound payload of the plain-text document upload.
type UploadRequest struct {
	Text     string `json:"text"`
	Source   string `json:"source,omitempty"`
	Category string `json:"category,omitempty"`
}

// UploadResponse reports the outcome of a document ingestion.
type UploadResponse struct {
	Message         string `json:"message"`
	ChunksProcessed int    `json:"chunks_processed"`
	TotalDocuments  int    `json:"total_documents"`
}

// DocumentPreview is a single entry of the document listing: full metadata
// but only a short text preview.
type DocumentPreview struct {
	ID          int64  `json:"id"`
	Source      string `json:"source"`
	Category    string `json:"category,omitempty"`
	Filename    string `json:"filename,omitempty"`
	TextPreview string `json:"text_preview"`
}

// DocumentListResponse wraps the document listing.
type DocumentListResponse struct {
	TotalDocuments int               `json:"total_documents"`
	Documents      []DocumentPreview `json:"documents"`
}

// SearchResponse wraps knowledge-base search results together with the
// query that produced them.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Query   string         `json:"query"`
}

// PredictResponse wraps the rule-based disease predictions for a set of
// reported symptoms.
type PredictResponse struct {
	Symptoms    []string            `json:"symptoms"`
	Predictions []DiseasePrediction `json:"predictions"`
}

// ServiceBanner is returned by the root endpoint.
type ServiceBanner struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
