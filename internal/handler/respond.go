package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rngenius/rngenius-go/internal/apperr"
)

// errorBody is the uniform error response shape.
type errorBody struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a domain error onto an HTTP status and the
// {field, message} body. Unknown errors become an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		slog.Error("unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Field: "server", Message: "Internal server error"})
		return
	}

	writeJSON(w, statusForKind(appErr.Kind), errorBody{Field: appErr.Field, Message: appErr.Message})
}

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindDomainRule:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindAuthorization:
		return http.StatusForbidden
	case apperr.KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// decodeBody decodes a JSON request body with a 1MB cap.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Field: "request", Message: "Request body too large"})
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Field: "request", Message: "Invalid request body"})
		return false
	}

	return true
}
