package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/utils"
	"github.com/medichat/go-medichat/models"
)

// maxUploadBytes bounds a single document upload.
const maxUploadBytes = 10 << 20 // 10 MiB

// documentPreviewRunes bounds the text preview in the document listing.
const documentPreviewRunes = 200

// defaultSearchTopK is how many results the knowledge search returns when
// the client does not ask for a specific count.
const defaultSearchTopK = 5

// uploadDocument ingests a multipart file upload ("file" form field) into
// the knowledge base.
func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeBadRequest(w, r, err, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, r, err, "missing `file` form field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		writeServiceError(w, r, err, "reading upload ended with error")
		return
	}
	if len(data) > maxUploadBytes {
		writeBadRequest(w, r, nil, "file exceeds the 10 MiB upload limit")
		return
	}

	resp, err := h.services.DocumentService.ProcessUpload(r.Context(),
		header.Filename, r.FormValue("source"), r.FormValue("category"), data)
	if err != nil {
		writeServiceError(w, r, err, "document ingestion ended with error")
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

// uploadText ingests a raw text passage sent as JSON.
func (h *Handler) uploadText(w http.ResponseWriter, r *http.Request) {
	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, err, "invalid JSON was passed")
		return
	}

	resp, err := h.services.DocumentService.ProcessUpload(r.Context(),
		"inline.txt", req.Source, req.Category, []byte(req.Text))
	if err != nil {
		writeServiceError(w, r, err, "text ingestion ended with error")
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) searchDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeBadRequest(w, r, nil, "missing `query` parameter")
		return
	}

	topK := defaultSearchTopK
	if raw := r.URL.Query().Get("top_k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeBadRequest(w, r, err, "invalid `top_k` parameter")
			return
		}
		topK = parsed
	}

	results, err := h.services.KnowledgeService.Search(r.Context(), query, topK)
	if err != nil {
		writeServiceError(w, r, err, "knowledge search ended with error")
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	utils.WriteJSON(w, models.SearchResponse{Results: results, Query: query}, http.StatusOK)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	filter := models.DocumentFilter{
		Source:   r.URL.Query().Get("source"),
		Category: r.URL.Query().Get("category"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeBadRequest(w, r, err, "invalid `limit` parameter")
			return
		}
		filter.Limit = parsed
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeBadRequest(w, r, err, "invalid `offset` parameter")
			return
		}
		filter.Offset = parsed
	}

	docs, err := h.services.KnowledgeService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "document listing ended with error")
		return
	}

	previews := make([]models.DocumentPreview, len(docs))
	for i, doc := range docs {
		previews[i] = models.DocumentPreview{
			ID:          doc.ID,
			Source:      doc.Source,
			Category:    doc.Category,
			Filename:    doc.Filename,
			TextPreview: doc.Preview(documentPreviewRunes),
		}
	}

	utils.WriteJSON(w, models.DocumentListResponse{
		TotalDocuments: len(previews),
		Documents:      previews,
	}, http.StatusOK)
}

func (h *Handler) clearDocuments(w http.ResponseWriter, r *http.Request) {
	if err := h.services.KnowledgeService.Clear(r.Context()); err != nil {
		writeServiceError(w, r, err, "knowledge base clearing ended with error")
		return
	}

	logger.FromRequest(r).Info().Msg("knowledge base cleared by request")
	utils.WriteJSON(w, map[string]string{"message": "knowledge base cleared"}, http.StatusOK)
}

func (h *Handler) knowledgeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.KnowledgeService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "knowledge stats ended with error")
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
