package http

import (
	"errors"
	"net/http"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/service"
	"github.com/medichat/go-medichat/internal/store"
	"github.com/medichat/go-medichat/internal/utils"
	"github.com/medichat/go-medichat/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUnsupportedFileType:     http.StatusUnsupportedMediaType,
	service.ErrEmptyDocument:           http.StatusBadRequest,
	service.ErrUpstreamUnavailable:     http.StatusServiceUnavailable,
	service.ErrSessionNotFound:         http.StatusNotFound,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrDocumentNotFound:   http.StatusNotFound,
	store.ErrSessionNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the JSON error envelope and
// the status mapped from the error chain. Internal errors are masked: the
// client sees only the generic status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger.FromRequest(r).Err(err).Msg(msg)

	status := statusFromError(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: detail}, status)
}

// writeBadRequest answers a malformed inbound payload.
func writeBadRequest(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger.FromRequest(r).Err(err).Msg(msg)
	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, http.StatusBadRequest)
}
