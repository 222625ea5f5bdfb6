package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/medichat/go-medichat/internal/utils"
	"github.com/medichat/go-medichat/models"
)

func (h *Handler) startAssessment(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.AssessmentService.Start(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "assessment start ended with error")
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) respondAssessment(w http.ResponseWriter, r *http.Request) {
	var req models.AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, err, "invalid JSON was passed")
		return
	}

	resp, err := h.services.AssessmentService.Answer(r.Context(), req.SessionID, req.Response)
	if err != nil {
		writeServiceError(w, r, err, "assessment answer ended with error")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) listAssessmentSessions(w http.ResponseWriter, r *http.Request) {
	briefs, err := h.services.AssessmentService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "assessment session listing ended with error")
		return
	}

	utils.WriteJSON(w, models.SessionListResponse{
		Sessions: briefs,
		Total:    len(briefs),
	}, http.StatusOK)
}

func (h *Handler) assessmentSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	summary, err := h.services.AssessmentService.Summary(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, r, err, "assessment summary ended with error")
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) deleteAssessmentSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.services.AssessmentService.Delete(r.Context(), sessionID); err != nil {
		writeServiceError(w, r, err, "assessment session deletion ended with error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
