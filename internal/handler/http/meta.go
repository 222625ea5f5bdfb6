package http

import (
	"net/http"

	"github.com/medichat/go-medichat/internal/utils"
	"github.com/medichat/go-medichat/models"
)

func (h *Handler) banner(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ServiceBanner{
		Message: "Medical Chatbot API is running",
		Version: h.cfg.App.Version,
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "healthy"}, http.StatusOK)
}
