package port

import (
	"context"

	"github.com/google/uuid"

	"adpaas/internal/core/domain"
	"adpaas/internal/core/validate"
	"adpaas/internal/core/workflow"
)

// RequestUseCase defines the business operations on campaign requests. It
// is the primary port into the application domain. Every mutation returns
// the new canonical state of the request so callers never need to re-read.
type RequestUseCase interface {
	// Catalog returns the funnel, KPI and channel tables the form offers.
	Catalog() Catalog
	// Check computes readiness of an unsaved request without touching
	// storage.
	Check(ctx context.Context, req domain.Request) validate.Report
	// SaveDraft creates the request when req.ID is zero and updates it
	// otherwise. Invalid KPI rows are dropped rather than stored.
	SaveDraft(ctx context.Context, sess domain.Session, req domain.Request) (*domain.Request, error)
	// Submit stores the request and moves it to submitted. It fails with a
	// *domain.ValidationError and writes nothing when the request is not
	// ready.
	Submit(ctx context.Context, sess domain.Session, req domain.Request) (*domain.Request, error)
	// Review applies a reviewer decision: approve, reject or ask_fix.
	Review(ctx context.Context, sess domain.Session, id uuid.UUID, action workflow.Action) (*domain.Request, error)
	// ApproveOutside records an approval obtained outside the system.
	ApproveOutside(ctx context.Context, sess domain.Session, id uuid.UUID) (*domain.Request, error)
	// RevokeOutside undoes the latest outside approval.
	RevokeOutside(ctx context.Context, sess domain.Session, id uuid.UUID) (*domain.Request, error)
	// Get returns the request together with the state derived from it.
	// Requests the actor may not read are reported as domain.ErrNotFound.
	Get(ctx context.Context, sess domain.Session, id uuid.UUID) (*RequestView, error)
	// Events returns the audit log of a readable request.
	Events(ctx context.Context, sess domain.Session, id uuid.UUID) ([]domain.AuditEvent, error)
	// Export renders the request form or the approval document.
	Export(ctx context.Context, sess domain.Session, id uuid.UUID, kind ExportKind) (*ExportFile, error)
}

// RequestView is a request plus everything derived from it for display.
type RequestView struct {
	Request         domain.Request
	Events          []domain.AuditEvent
	Outside         domain.OutsideApproval
	Readiness       validate.Report
	ScheduleSummary string
	// EstimatedTotal is nil when the budget cannot be projected.
	EstimatedTotal *float64
	CanMutate      bool
	CanReview      bool
}

// ExportKind selects which document Export renders.
type ExportKind string

const (
	ExportRequestForm ExportKind = "request_form"
	ExportApproval    ExportKind = "approval"
)

// ExportFile is a rendered document ready to be served.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Catalog is the static rule data the request form is built from.
type Catalog struct {
	Funnels     []CatalogFunnel
	KPIs        []CatalogKPI
	Channels    []domain.ChannelType
	Platforms   []string
	BudgetUnits []domain.BudgetUnit
	Genders     []domain.Gender
}

// CatalogFunnel lists what one funnel stage allows.
type CatalogFunnel struct {
	Funnel      domain.Funnel
	Objectives  []string
	KPIs        []domain.KpiType
	Recommended []domain.KpiType
	// SalesKPIs is the narrowed set used when the objective is Sales.
	SalesKPIs []domain.KpiType
}

// CatalogKPI lists the operators and units one KPI type allows.
type CatalogKPI struct {
	Type            domain.KpiType
	Operators       []domain.Operator
	Units           []domain.Unit
	DefaultOperator domain.Operator
	DefaultUnit     domain.Unit
}
