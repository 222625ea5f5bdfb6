package http

import (
	"encoding/json"
	"net/http"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/utils"
	"github.com/medichat/go-medichat/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeBadRequest(w, r, err, "invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeServiceError(w, r, err, "user registration ended with error")
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Str("login", registeredUser.Login).Msg("user registered")

	h.writeTokenResponse(w, r, registeredUser.UserID, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeBadRequest(w, r, err, "invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeServiceError(w, r, err, "user login ended with error")
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user logged in")

	h.writeTokenResponse(w, r, foundUser.UserID, http.StatusOK)
}

// writeTokenResponse issues a fresh JWT for userID and writes the bearer
// token envelope. The token travels in the JSON body and in the
// Authorization response header.
func (h *Handler) writeTokenResponse(w http.ResponseWriter, r *http.Request, userID int64, status int) {
	token, err := h.services.AuthService.CreateToken(userID)
	if err != nil {
		writeServiceError(w, r, err, "token creation ended with error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
		ExpiresIn:   int64(h.cfg.App.TokenDuration().Seconds()),
	}, status)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	profile, err := h.services.AuthService.GetProfile(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err, "profile lookup ended with error")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}
