package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"adpaas/internal/core/domain"
)

type errorBody struct {
	Error   string   `json:"error,omitempty"`
	Missing []string `json:"missing,omitempty"`
	Fields  []string `json:"fields,omitempty"`
	// Reason and Message are only filled for ?debug=1 in debug mode.
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps use case errors onto status codes. Anything unrecognised
// is logged and reported as 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *domain.ValidationError
		terr *domain.TransitionError
	)
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: "request not ready", Missing: verr.Missing})
	case errors.As(err, &terr):
		writeJSON(w, http.StatusConflict, errorBody{Error: terr.Error()})
	case errors.Is(err, domain.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "request not found"})
	case errors.Is(err, domain.ErrNoOrganization):
		writeJSON(w, http.StatusForbidden, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrExportUnavailable):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		body := errorBody{Error: "internal error"}
		if h.debug && r.URL.Query().Get("debug") == "1" {
			body = errorBody{Reason: reason(err), Message: err.Error()}
		}
		writeJSON(w, http.StatusInternalServerError, body)
	}
}

func reason(err error) string {
	if errors.Is(err, domain.ErrLayoutOverflow) {
		return "PDF_GENERATION_ERROR"
	}
	return "INTERNAL_ERROR"
}
