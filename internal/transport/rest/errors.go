package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/quecocino-backend/internal/domain"
)

type errorResponse struct {
	Error     string       `json:"error"`
	Retryable bool         `json:"retryable,omitempty"`
	Fields    []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleError maps domain error kinds to HTTP statuses and short messages.
// Internal details are logged, never returned.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: "invalid request"}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "profile not found")
	case errors.Is(err, domain.ErrStoreRejected):
		log.WarnContext(r.Context(), "store rejected request", slog.String("error", err.Error()))
		writeError(w, http.StatusForbidden, "profile access was denied")
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.ErrorContext(r.Context(), "store unavailable", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", "1")
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error:     "profile service is temporarily unavailable",
			Retryable: true,
		})
	case errors.Is(err, domain.ErrProviderUnavailable):
		log.ErrorContext(r.Context(), "identity provider unavailable", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:     "sign-in provider is temporarily unavailable",
			Retryable: true,
		})
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
