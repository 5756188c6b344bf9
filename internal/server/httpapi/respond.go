package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/refurnish/authcore/internal/common"
)

// Client-facing error messages. Credential failures use one fixed message for
// every cause so responses cannot be used for account enumeration.
const (
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidToken       = "Invalid token"
	msgForbidden          = "forbidden"
	msgNotFound           = "not found"
	msgInternal           = "internal error"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the core error taxonomy onto HTTP statuses. Validation and
// credential errors are returned verbatim; everything unexpected is logged in
// full and surfaced as an opaque 500.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrDuplicateEmail):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: common.ErrDuplicateEmail.Error()})
	case errors.Is(err, common.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: msgInvalidCredentials})
	case errors.Is(err, common.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: msgInvalidToken})
	case errors.Is(err, common.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: msgForbidden})
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: msgNotFound})
	default:
		s.logger.Error(ctx, "request failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternal})
	}
}
