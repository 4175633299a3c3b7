package usecase

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"adpaas/internal/core/document"
	"adpaas/internal/core/domain"
	"adpaas/internal/core/kpi"
	"adpaas/internal/core/port"
	"adpaas/internal/core/schedule"
	"adpaas/internal/core/validate"
	"adpaas/internal/core/workflow"
)

const untitled = "Untitled"

// RequestUseCase implements port.RequestUseCase. Every mutation runs in a
// single repository transaction: the request row is locked, the workflow
// guards are evaluated against the locked state and only then is anything
// written.
type RequestUseCase struct {
	repo     port.RequestRepository
	auth     port.Authorizer
	renderer port.Renderer

	loc    *time.Location
	now    func() time.Time
	tracer trace.Tracer
}

// Option customises a RequestUseCase.
type Option func(*RequestUseCase)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(u *RequestUseCase) { u.now = now }
}

// WithLocation sets the timezone printed timestamps are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(u *RequestUseCase) {
		if loc != nil {
			u.loc = loc
		}
	}
}

// NewRequestUseCase wires the use case to its ports.
func NewRequestUseCase(repo port.RequestRepository, auth port.Authorizer, renderer port.Renderer, opts ...Option) *RequestUseCase {
	u := &RequestUseCase{
		repo:     repo,
		auth:     auth,
		renderer: renderer,
		loc:      time.UTC,
		now:      time.Now,
		tracer:   otel.Tracer("adpaas/internal/adapter/usecase"),
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

var _ port.RequestUseCase = (*RequestUseCase)(nil)

// Catalog assembles the static rule tables.
func (u *RequestUseCase) Catalog() port.Catalog {
	c := port.Catalog{
		Channels:    slices.Clone(domain.ChannelTypes),
		Platforms:   slices.Clone(domain.PlatformPresets),
		BudgetUnits: slices.Clone(domain.BudgetUnits),
		Genders:     slices.Clone(domain.Genders),
	}
	for _, f := range domain.Funnels {
		cf := port.CatalogFunnel{
			Funnel:      f,
			Objectives:  f.Objectives(),
			KPIs:        kpi.Allowed(f, ""),
			Recommended: kpi.Recommended(f, ""),
		}
		if f.AllowsObjective(domain.ObjectiveSales) {
			cf.SalesKPIs = kpi.Allowed(f, domain.ObjectiveSales)
		}
		c.Funnels = append(c.Funnels, cf)
	}
	for _, t := range kpi.Types() {
		op, unit := kpi.Defaults(t)
		c.KPIs = append(c.KPIs, port.CatalogKPI{
			Type:            t,
			Operators:       kpi.Operators(t),
			Units:           kpi.Units(t),
			DefaultOperator: op,
			DefaultUnit:     unit,
		})
	}
	return c
}

// Check runs the readiness validator.
func (u *RequestUseCase) Check(ctx context.Context, req domain.Request) validate.Report {
	_, span := u.tracer.Start(ctx, "RequestUseCase.Check")
	defer span.End()
	rep := validate.Request(req)
	span.SetAttributes(attribute.Int("request.missing", len(rep.Missing)))
	return rep
}

// SaveDraft stores req without requiring it to be ready.
func (u *RequestUseCase) SaveDraft(ctx context.Context, sess domain.Session, req domain.Request) (_ *domain.Request, err error) {
	ctx, span := u.tracer.Start(ctx, "RequestUseCase.SaveDraft")
	defer func() { finish(span, err) }()
	return u.store(ctx, sess, req, workflow.ActionSaveDraft)
}

// Submit stores req and moves it to submitted.
func (u *RequestUseCase) Submit(ctx context.Context, sess domain.Session, req domain.Request) (_ *domain.Request, err error) {
	ctx, span := u.tracer.Start(ctx, "RequestUseCase.Submit")
	defer func() { finish(span, err) }()
	return u.store(ctx, sess, req, workflow.ActionSubmit)
}

// Review applies approve, reject or ask_fix.
func (u *RequestUseCase) Review(ctx context.Context, sess domain.Session, id uuid.UUID, action workflow.Action) (_ *domain.Request, err error) {
	ctx, span := u.tracer.Start(ctx, "RequestUseCase.Review", trace.WithAttributes(
		attribute.String("request.id", id.String()),
		attribute.String("request.action", string(action)),
	))
	defer func() { finish(span, err) }()
	if !action.IsReview() {
		return nil, &domain.TransitionError{Action: string(action), Reason: "not a review decision"}
	}
	return u.transition(ctx, sess, id, action)
}

// ApproveOutside marks a submitted request approved outside the system.
func (u *RequestUseCase) ApproveOutside(ctx context.Context, sess domain.Session, id uuid.UUID) (_ *domain.Request, err error) {
	ctx, span := u.tracer.Start(ctx, "RequestUseCase.ApproveOutside", trace.WithAttributes(
		attribute.String("request.id", id.String()),
	))
	defer func() { finish(span, err) }()
	return u.transition(ctx, sess, id, workflow.ActionApproveOutside)
}

// RevokeOutside returns an outside-approved request to submitted.
func (u *RequestUseCase) RevokeOutside(ctx context.Context, sess domain.Session, id uuid.UUID) (_ *domain.Request, err error) {
	ctx, span := u.tracer.Start(ctx, "RequestUseCase.RevokeOutside", trace.WithAttributes(
		attribute.String("request.id", id.String()),
	))
	defer func() { finish(span, err) }()
	return u.transition(ctx, sess, id, workflow.ActionRevokeOutside)
}

// Get loads a readable request and derives its display state.
func (u *RequestUseCase) Get(ctx context.Context, sess domain.Session, id uuid.UUID) (_ *port.RequestView, err error) {
	ctx, span := u.tracer.Start(ctx, "RequestUseCase.Get", trace.WithAttributes(
		attribute.String("request.id", id.String()),
	))
	defer func() { finish(span, err) }()

	req, perm, err := u.read(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	events, err := u.repo.ListEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &port.RequestView{
		Request:         *req,
		Events:          events,
		Outside:         domain.FoldOutsideApproval(events),
		Readiness:       validate.Request(*req),
		ScheduleSummary: schedule.Summarize(req.Schedule),
		CanMutate:       perm.mutate,
		CanReview:       perm.review,
	}
	if total, ok := req.EstimatedTotalBudget(); ok {
		view.EstimatedTotal = &total
	}
	return view, nil
}

// Events returns the audit log of a readable request.
func (u *RequestUseCase) Events(ctx context.Context, sess domain.Session, id uuid.UUID) (_ []domain.AuditEvent, err error) {
	ctx, span := u.tracer.Start(ctx, "RequestUseCase.Events", trace.WithAttributes(
		attribute.String("request.id", id.String()),
	))
	defer func() { finish(span, err) }()

	if _, _, err = u.read(ctx, sess, id); err != nil {
		return nil, err
	}
	return u.repo.ListEvents(ctx, id)
}

// Export renders the request form once the request left draft, or the
// approval document once it is approved.
func (u *RequestUseCase) Export(ctx context.Context, sess domain.Session, id uuid.UUID, kind port.ExportKind) (_ *port.ExportFile, err error) {
	ctx, span := u.tracer.Start(ctx, "RequestUseCase.Export", trace.WithAttributes(
		attribute.String("request.id", id.String()),
		attribute.String("export.kind", string(kind)),
	))
	defer func() { finish(span, err) }()

	req, _, err := u.read(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	var (
		approved bool
		filename string
	)
	switch kind {
	case port.ExportRequestForm:
		if req.Status == domain.StatusDraft {
			return nil, domain.ErrExportUnavailable
		}
		filename = fmt.Sprintf("adpaas-request-%s.pdf", req.ID)
	case port.ExportApproval:
		if req.Status != domain.StatusApproved {
			return nil, domain.ErrExportUnavailable
		}
		approved = true
		filename = fmt.Sprintf("adpaas-approval-%s.pdf", req.ID)
	default:
		return nil, domain.ErrExportUnavailable
	}

	var buf bytes.Buffer
	in := document.Input{Request: *req, Approved: approved, PrintedAt: u.now(), Location: u.loc}
	if err = u.renderer.Render(ctx, in, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", kind, err)
	}
	span.SetAttributes(attribute.Int("export.bytes", buf.Len()))
	return &port.ExportFile{Filename: filename, ContentType: document.ContentType, Data: buf.Bytes()}, nil
}

type permissions struct {
	mutate bool
	review bool
}

func (p permissions) any() bool { return p.mutate || p.review }

func (u *RequestUseCase) permissions(ctx context.Context, id, actor uuid.UUID) (permissions, error) {
	var (
		p   permissions
		err error
	)
	if p.mutate, err = u.auth.CanMutate(ctx, id, actor); err != nil {
		return p, err
	}
	if p.review, err = u.auth.CanReview(ctx, id, actor); err != nil {
		return p, err
	}
	return p, nil
}

// read loads a request outside any transaction. Requests the actor has no
// relation to are reported as not found.
func (u *RequestUseCase) read(ctx context.Context, sess domain.Session, id uuid.UUID) (*domain.Request, permissions, error) {
	if !sess.Authenticated() {
		return nil, permissions{}, domain.ErrUnauthenticated
	}
	req, err := u.repo.GetRequest(ctx, id)
	if err != nil {
		return nil, permissions{}, err
	}
	if req == nil {
		return nil, permissions{}, domain.ErrNotFound
	}
	perm, err := u.permissions(ctx, id, sess.ActorID)
	if err != nil {
		return nil, permissions{}, err
	}
	if !perm.any() {
		return nil, permissions{}, domain.ErrNotFound
	}
	return req, perm, nil
}

// lock loads and locks an existing request inside tx and fills the
// capability part of the workflow context.
func (u *RequestUseCase) lock(ctx context.Context, tx port.RequestTx, sess domain.Session, id uuid.UUID) (*domain.Request, workflow.Context, error) {
	cur, err := tx.LockRequest(ctx, id)
	if err != nil {
		return nil, workflow.Context{}, err
	}
	if cur == nil {
		return nil, workflow.Context{}, domain.ErrNotFound
	}
	perm, err := u.permissions(ctx, id, sess.ActorID)
	if err != nil {
		return nil, workflow.Context{}, err
	}
	if !perm.any() {
		return nil, workflow.Context{}, domain.ErrNotFound
	}
	return cur, workflow.Context{Status: cur.Status, CanMutate: perm.mutate, CanReview: perm.review}, nil
}

// organization resolves which organization a new request belongs to.
func (u *RequestUseCase) organization(ctx context.Context, sess domain.Session) (uuid.UUID, error) {
	org := sess.OrgID
	if org == uuid.Nil {
		var err error
		if org, err = u.auth.DefaultOrg(ctx, sess.ActorID); err != nil {
			return uuid.Nil, err
		}
		if org == uuid.Nil {
			return uuid.Nil, domain.ErrNoOrganization
		}
	}
	ok, err := u.auth.CanCreate(ctx, org, sess.ActorID)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, domain.ErrNoOrganization
	}
	return org, nil
}

// store is the shared body of SaveDraft and Submit.
func (u *RequestUseCase) store(ctx context.Context, sess domain.Session, req domain.Request, action workflow.Action) (*domain.Request, error) {
	if !sess.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	var out *domain.Request
	err := u.repo.WithinTx(ctx, func(ctx context.Context, tx port.RequestTx) error {
		var (
			cur  *domain.Request
			wctx workflow.Context
			err  error
		)
		if req.ID == uuid.Nil {
			org, err := u.organization(ctx, sess)
			if err != nil {
				return err
			}
			req.ID, req.OrgID, req.CreatedBy = uuid.New(), org, sess.ActorID
			wctx.IsNew = true
		} else if cur, wctx, err = u.lock(ctx, tx, sess, req.ID); err != nil {
			return err
		}

		rep := validate.Request(req)
		wctx.Action = action
		if action == workflow.ActionSubmit {
			wctx.Missing = rep.Missing
		}
		t, err := workflow.Plan(wctx)
		if err != nil {
			return err
		}

		now := u.now()
		next := canonical(req, cur, rep, now)
		next.Status = t.To
		if t.StampSubmitted && next.SubmittedAt == nil {
			next.SubmittedAt = &now
		}

		if err := tx.UpsertRequest(ctx, next); err != nil {
			return err
		}
		if t.ReplaceChildren {
			if err := writeChildren(ctx, tx, next); err != nil {
				return err
			}
		}
		if err := tx.AppendEvent(ctx, domain.AuditEvent{
			RequestID: next.ID,
			Type:      t.Event,
			Actor:     sess.ActorID,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		out = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// transition applies a status-only action to an existing request.
func (u *RequestUseCase) transition(ctx context.Context, sess domain.Session, id uuid.UUID, action workflow.Action) (*domain.Request, error) {
	if !sess.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	var out *domain.Request
	err := u.repo.WithinTx(ctx, func(ctx context.Context, tx port.RequestTx) error {
		cur, wctx, err := u.lock(ctx, tx, sess, id)
		if err != nil {
			return err
		}
		wctx.Action = action
		if action == workflow.ActionRevokeOutside {
			if wctx.Events, err = tx.ListEvents(ctx, id); err != nil {
				return err
			}
		}
		t, err := workflow.Plan(wctx)
		if err != nil {
			return err
		}
		if err := tx.UpdateStatus(ctx, id, t.To); err != nil {
			return err
		}
		if err := tx.AppendEvent(ctx, domain.AuditEvent{
			RequestID: id,
			Type:      t.Event,
			Actor:     sess.ActorID,
			CreatedAt: u.now(),
		}); err != nil {
			return err
		}
		cur.Status = t.To
		out = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func writeChildren(ctx context.Context, tx port.RequestTx, req domain.Request) error {
	if err := tx.ReplaceKpis(ctx, req.ID, req.KPIs); err != nil {
		return err
	}
	if err := tx.ReplaceSchedule(ctx, req.ID, req.Schedule); err != nil {
		return err
	}
	if err := tx.UpsertAudience(ctx, req.ID, req.Audience); err != nil {
		return err
	}
	return tx.ReplaceChannels(ctx, req.ID, req.Channels)
}

// canonical normalises the payload into the form that is stored. Ownership
// fields come from the locked row when there is one.
func canonical(req domain.Request, cur *domain.Request, rep validate.Report, now time.Time) domain.Request {
	next := req
	if cur != nil {
		next.OrgID, next.CreatedBy, next.CreatedAt = cur.OrgID, cur.CreatedBy, cur.CreatedAt
		next.SubmittedAt = cur.SubmittedAt
	} else {
		next.CreatedAt = now
		next.SubmittedAt = nil
	}

	next.CampaignName = strings.TrimSpace(req.CampaignName)
	if next.CampaignName == "" {
		next.CampaignName = untitled
	}
	next.Platform = strings.TrimSpace(req.Platform)
	next.Objective = strings.TrimSpace(req.Objective)
	next.Notes = strings.TrimSpace(req.Notes)
	next.FinalURL = rep.FinalURL

	next.Locations = cleanStrings(req.Locations)
	next.Languages = cleanStrings(req.Languages)
	next.Channels = domain.CleanChannels(req.Channels)
	if !next.Audience.Gender.Valid() {
		next.Audience.Gender = domain.GenderAll
	}

	next.KPIs = kpi.Filter(req.KPIs, req.Funnel, next.Objective)
	next.Schedule = make([]domain.ScheduleRange, 0, len(req.Schedule))
	for _, r := range req.Schedule {
		if schedule.CheckRange(r) == nil {
			next.Schedule = append(next.Schedule, r)
		}
	}
	return next
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
