package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/medichat/go-medichat/internal/utils"
	"github.com/medichat/go-medichat/models"
)

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, err, "invalid JSON was passed")
		return
	}

	reply, err := h.services.ChatService.Chat(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "chat turn ended with error")
		return
	}

	utils.WriteJSON(w, reply, http.StatusOK)
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	symptoms := r.URL.Query().Get("symptoms")

	predictions, err := h.services.PredictionService.Predict(r.Context(), symptoms)
	if err != nil {
		writeServiceError(w, r, err, "disease prediction ended with error")
		return
	}

	reported := make([]string, 0)
	for _, part := range strings.Split(symptoms, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			reported = append(reported, trimmed)
		}
	}

	utils.WriteJSON(w, models.PredictResponse{
		Symptoms:    reported,
		Predictions: predictions,
	}, http.StatusOK)
}
