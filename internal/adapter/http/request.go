package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"adpaas/internal/core/domain"
	"adpaas/internal/core/workflow"
)

const maxBodyBytes = 1 << 20

// handleCatalog returns the static tables the request form is built from.
func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCatalog(h.svc.Catalog()))
}

// handleValidate reports readiness of an unsaved payload without storing it.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toReadiness(h.svc.Check(r.Context(), req)))
}

// handleSaveDraft creates a draft on POST /requests and updates one on
// PUT /requests/{id}. It answers 201 for a new request and 200 otherwise.
func (h *Handler) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	isNew := req.ID == uuid.Nil
	out, err := h.svc.SaveDraft(r.Context(), sessionFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if isNew {
		status = http.StatusCreated
	}
	writeJSON(w, status, toResponse(*out))
}

// handleSubmit saves the payload and submits it in one step. The target is
// the path id, the body id or a new request, in that order.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	out, err := h.svc.Submit(r.Context(), sessionFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*out))
}

// handleGet returns the request with its derived state.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.Get(r.Context(), sessionFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toView(view))
}

// handleEvents returns the audit log in ascending order.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	events, err := h.svc.Events(r.Context(), sessionFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEvents(events))
}

// handleReview applies {"action": "approve" | "reject" | "ask_fix"}.
func (h *Handler) handleReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body reviewBody
	if !h.decode(w, r, &body) {
		return
	}
	out, err := h.svc.Review(r.Context(), sessionFrom(r.Context()), id, workflow.Action(body.Action))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*out))
}

func (h *Handler) handleApproveOutside(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	out, err := h.svc.ApproveOutside(r.Context(), sessionFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*out))
}

func (h *Handler) handleRevokeOutside(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	out, err := h.svc.RevokeOutside(r.Context(), sessionFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(*out))
}

// decodeRequest reads a request payload and applies the path id when the
// route has one.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (domain.Request, bool) {
	var body requestBody
	if !h.decode(w, r, &body) {
		return domain.Request{}, false
	}
	req := body.toDomain()
	if chi.URLParam(r, "id") != "" {
		id, ok := pathID(w, r)
		if !ok {
			return domain.Request{}, false
		}
		req.ID = id
	}
	return req, true
}

// decode parses the JSON body into dst and runs its validation tags.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
			}
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid payload", Fields: fields})
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid payload"})
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request id"})
		return uuid.Nil, false
	}
	return id, true
}
