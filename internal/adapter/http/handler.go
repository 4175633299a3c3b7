package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"adpaas/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the request use case, the token verifier and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc      port.RequestUseCase
	verifier *Verifier
	logger   *slog.Logger
	validate *validator.Validate
	// debug lets ?debug=1 expose internal error details.
	debug  bool
	router chi.Router
}

// Option customises a Handler.
type Option func(*Handler)

// WithDebug allows error details in responses to requests with ?debug=1.
func WithDebug(on bool) Option {
	return func(h *Handler) { h.debug = on }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.RequestUseCase, verifier *Verifier, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc:      svc,
		verifier: verifier,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, o := range opts {
		o(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.traceRequests)
	r.Use(h.accessLog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/catalog", h.handleCatalog)
		r.Post("/requests/validate", h.handleValidate)
		r.Post("/requests", h.handleSaveDraft)
		r.Post("/requests/submit", h.handleSubmit)

		r.Route("/requests/{id}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleSaveDraft)
			r.Post("/submit", h.handleSubmit)
			r.Get("/events", h.handleEvents)
			r.Post("/review", h.handleReview)
			r.Post("/outside-approval", h.handleApproveOutside)
			r.Delete("/outside-approval", h.handleRevokeOutside)
			r.Get("/export", h.handleExport)
			r.Get("/approval.pdf", h.handleApprovalPDF)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
