package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

const (
	msgBadRequest    = "Bad Request."
	msgRequestFailed = "Request failed."
	msgSuccess       = "Request successful."
	msgTaken         = "Email/Username address already taken."
	msgNoQuery       = "No query present in request."
	msgInvalidBody   = "Invalid request body."
	msgTimeLayout    = "Jan 02 2006, 03:04 PM"
)

type messageResponse struct {
	Message string `json:"message"`
}

var successResponse = messageResponse{Message: msgSuccess}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps service errors onto status codes and client messages.
// Unexpected errors are logged and hidden behind a generic message.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		notFound   *domain.NotFoundError
		denied     *domain.DeniedError
		validation *domain.ValidationError
	)

	switch {
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusBadRequest, msgBadRequest)
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, validation.Message())
	case errors.As(err, &denied):
		writeError(w, http.StatusForbidden, denied.Message)
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, msgTaken)
	case errors.Is(err, domain.ErrMissingQuery):
		writeError(w, http.StatusBadRequest, msgNoQuery)
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, msgRequestFailed)
	}
}
