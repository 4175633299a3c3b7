package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"

	"adpaas/internal/core/port"
)

// handleExport serves the request form, or the approval document when
// ?kind=approval is given.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	kind := port.ExportKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = port.ExportRequestForm
	}
	h.serveExport(w, r, kind)
}

// handleApprovalPDF serves the approval document.
func (h *Handler) handleApprovalPDF(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, r, port.ExportApproval)
}

func (h *Handler) serveExport(w http.ResponseWriter, r *http.Request, kind port.ExportKind) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	file, err := h.svc.Export(r.Context(), sessionFrom(r.Context()), id, kind)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(file.Data); err != nil {
		h.logger.ErrorContext(r.Context(), "write export", "error", err)
	}
}
