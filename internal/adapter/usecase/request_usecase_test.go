package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpaas/internal/core/document"
	"adpaas/internal/core/domain"
	"adpaas/internal/core/port"
	"adpaas/internal/core/port/mocks"
	"adpaas/internal/core/validate"
	"adpaas/internal/core/workflow"
)

var (
	actorID = uuid.MustParse("6f1c7a3e-2b1d-4c55-9a0e-1d2f3a4b5c6d")
	orgID   = uuid.MustParse("0b8e1f52-77a4-4f0b-8c1e-9d2a3b4c5d6e")
	reqID   = uuid.MustParse("c3a9d1e0-5f2b-4a7c-8e6d-1b2c3d4e5f60")
	clock   = time.Date(2025, 10, 1, 9, 30, 0, 0, time.UTC)
	sess    = domain.Session{ActorID: actorID, OrgID: orgID}
)

func f64(v float64) *float64 { return &v }

type fixture struct {
	uc       *RequestUseCase
	repo     *mocks.MockRequestRepository
	tx       *mocks.MockRequestTx
	auth     *mocks.MockAuthorizer
	renderer *mocks.MockRenderer
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:     mocks.NewMockRequestRepository(t),
		tx:       mocks.NewMockRequestTx(t),
		auth:     mocks.NewMockAuthorizer(t),
		renderer: mocks.NewMockRenderer(t),
	}
	f.repo.EXPECT().
		WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, port.RequestTx) error) error {
			return fn(ctx, f.tx)
		}).
		Maybe()
	f.uc = NewRequestUseCase(f.repo, f.auth, f.renderer, WithClock(func() time.Time { return clock }))
	return f
}

func (f *fixture) allow(mutate, review bool) {
	f.auth.EXPECT().CanMutate(mock.Anything, reqID, actorID).Return(mutate, nil)
	f.auth.EXPECT().CanReview(mock.Anything, reqID, actorID).Return(review, nil)
}

// readyRequest passes every readiness check.
func readyRequest() domain.Request {
	return domain.Request{
		CampaignName: "Cafe Ladprao opening",
		Funnel:       domain.FunnelAwareness,
		Objective:    "Reach",
		KPIs: []domain.KpiRow{{
			Type:     domain.KpiImpressions,
			Operator: domain.OpGreaterOrEqual,
			Target:   f64(50000),
			Unit:     domain.UnitPer7D,
			Method:   "ad platform report",
		}},
		Channels:    []domain.Channel{{Type: domain.ChannelFacebook}},
		BudgetValue: f64(1000),
		BudgetUnit:  domain.BudgetPerDay,
		Locations:   []string{"Bangkok"},
		URLProtocol: "https://",
		URLRest:     "example.com/landing",
	}
}

func stored(status domain.Status) *domain.Request {
	r := readyRequest()
	r.ID, r.OrgID, r.CreatedBy = reqID, orgID, actorID
	r.Status = status
	r.CreatedAt = clock.Add(-24 * time.Hour)
	return &r
}

func TestSubmitWithoutKPIsWritesNothing(t *testing.T) {
	f := newFixture(t)
	f.tx.EXPECT().LockRequest(mock.Anything, reqID).Return(stored(domain.StatusDraft), nil)
	f.allow(true, false)

	req := readyRequest()
	req.ID = reqID
	req.KPIs = nil

	out, err := f.uc.Submit(context.Background(), sess, req)
	require.Error(t, err)
	assert.Nil(t, out)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{validate.MsgKPI}, verr.Missing)
	f.tx.AssertNotCalled(t, "UpsertRequest", mock.Anything, mock.Anything)
	f.tx.AssertNotCalled(t, "AppendEvent", mock.Anything, mock.Anything)
}

func TestSubmitNewRequestWritesEverything(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().CanCreate(mock.Anything, orgID, actorID).Return(true, nil)

	var (
		saved domain.Request
		event domain.AuditEvent
	)
	f.tx.EXPECT().UpsertRequest(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r domain.Request) error { saved = r; return nil })
	f.tx.EXPECT().ReplaceKpis(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.tx.EXPECT().ReplaceSchedule(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.tx.EXPECT().UpsertAudience(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.tx.EXPECT().ReplaceChannels(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.tx.EXPECT().AppendEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, e domain.AuditEvent) error { event = e; return nil })

	out, err := f.uc.Submit(context.Background(), sess, readyRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, out.ID)
	assert.Equal(t, domain.StatusSubmitted, out.Status)
	assert.Equal(t, orgID, out.OrgID)
	assert.Equal(t, actorID, out.CreatedBy)
	assert.Equal(t, "https://example.com/landing", out.FinalURL)
	require.NotNil(t, out.SubmittedAt)
	assert.Equal(t, clock, *out.SubmittedAt)
	assert.True(t, out.KPIs[0].IsPrimary)

	assert.Equal(t, *out, saved)
	assert.Equal(t, domain.EventSubmitted, event.Type)
	assert.Equal(t, out.ID, event.RequestID)
	assert.Equal(t, actorID, event.Actor)
}

func TestResubmitKeepsFirstSubmittedAt(t *testing.T) {
	f := newFixture(t)
	first := clock.Add(-72 * time.Hour)
	cur := stored(domain.StatusNeedsChanges)
	cur.SubmittedAt = &first
	f.tx.EXPECT().LockRequest(mock.Anything, reqID).Return(cur, nil)
	f.allow(true, false)
	f.tx.EXPECT().UpsertRequest(mock.Anything, mock.Anything).Return(nil)
	f.tx.EXPECT().ReplaceKpis(mock.Anything, reqID, mock.Anything).Return(nil)
	f.tx.EXPECT().ReplaceSchedule(mock.Anything, reqID, mock.Anything).Return(nil)
	f.tx.EXPECT().UpsertAudience(mock.Anything, reqID, mock.Anything).Return(nil)
	f.tx.EXPECT().ReplaceChannels(mock.Anything, reqID, mock.Anything).Return(nil)
	f.tx.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil)

	req := readyRequest()
	req.ID = reqID
	req.CreatedBy = uuid.New()

	out, err := f.uc.Submit(context.Background(), sess, req)
	require.NoError(t, err)
	assert.Equal(t, first, *out.SubmittedAt)
	assert.Equal(t, actorID, out.CreatedBy)
	assert.Equal(t, cur.CreatedAt, out.CreatedAt)
}

func TestSubmitApprovedRequestIsIllegal(t *testing.T) {
	f := newFixture(t)
	f.tx.EXPECT().LockRequest(mock.Anything, reqID).Return(stored(domain.StatusApproved), nil)
	f.allow(true, false)

	req := readyRequest()
	req.ID = reqID
	req.KPIs = nil

	_, err := f.uc.Submit(context.Background(), sess, req)
	var terr *domain.TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, domain.StatusApproved, terr.From)
}

func TestSaveDraftDropsInvalidKPIs(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().CanCreate(mock.Anything, orgID, actorID).Return(true, nil)

	var kpis []domain.KpiRow
	f.tx.EXPECT().UpsertRequest(mock.Anything, mock.Anything).Return(nil)
	f.tx.EXPECT().ReplaceKpis(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, rows []domain.KpiRow) error { kpis = rows; return nil })
	f.tx.EXPECT().ReplaceSchedule(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.tx.EXPECT().UpsertAudience(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.tx.EXPECT().ReplaceChannels(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.tx.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil)

	req := readyRequest()
	req.CampaignName = "  "
	req.KPIs = append([]domain.KpiRow{{Type: domain.KpiCPM, Operator: domain.OpLessOrEqual, Method: "x"}}, req.KPIs...)
	req.Schedule = []domain.ScheduleRange{
		{Day: domain.Weekday(1), StartMinute: 540, EndMinute: 1080},
		{Day: domain.Weekday(2), StartMinute: 600, EndMinute: 600},
	}

	out, err := f.uc.SaveDraft(context.Background(), sess, req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, out.Status)
	assert.Equal(t, "Untitled", out.CampaignName)
	assert.Nil(t, out.SubmittedAt)
	require.Len(t, kpis, 1)
	assert.Equal(t, domain.KpiImpressions, kpis[0].Type)
	assert.Equal(t, 0, kpis[0].Index)
	assert.Len(t, out.Schedule, 1)
}

func TestSaveDraftWithoutOrganization(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().DefaultOrg(mock.Anything, actorID).Return(uuid.Nil, nil)

	_, err := f.uc.SaveDraft(context.Background(), domain.Session{ActorID: actorID}, readyRequest())
	assert.ErrorIs(t, err, domain.ErrNoOrganization)
}

func TestUnauthenticatedFailsClosed(t *testing.T) {
	f := newFixture(t)
	anon := domain.Session{}

	_, err := f.uc.SaveDraft(context.Background(), anon, readyRequest())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = f.uc.Review(context.Background(), anon, reqID, workflow.ActionApprove)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = f.uc.Export(context.Background(), anon, reqID, port.ExportApproval)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestReviewByNonReviewerFails(t *testing.T) {
	f := newFixture(t)
	f.tx.EXPECT().LockRequest(mock.Anything, reqID).Return(stored(domain.StatusSubmitted), nil)
	f.allow(true, false)

	_, err := f.uc.Review(context.Background(), sess, reqID, workflow.ActionApprove)
	var terr *domain.TransitionError
	require.ErrorAs(t, err, &terr)
	f.tx.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewOutcomes(t *testing.T) {
	cases := []struct {
		action workflow.Action
		status domain.Status
		event  domain.EventType
	}{
		{workflow.ActionApprove, domain.StatusApproved, domain.EventApprove},
		{workflow.ActionReject, domain.StatusRejected, domain.EventReject},
		{workflow.ActionAskFix, domain.StatusNeedsChanges, domain.EventAskFix},
	}
	for _, tc := range cases {
		t.Run(string(tc.action), func(t *testing.T) {
			f := newFixture(t)
			f.tx.EXPECT().LockRequest(mock.Anything, reqID).Return(stored(domain.StatusSubmitted), nil)
			f.allow(false, true)
			f.tx.EXPECT().UpdateStatus(mock.Anything, reqID, tc.status).Return(nil)
			f.tx.EXPECT().AppendEvent(mock.Anything, domain.AuditEvent{
				RequestID: reqID, Type: tc.event, Actor: actorID, CreatedAt: clock,
			}).Return(nil)

			out, err := f.uc.Review(context.Background(), sess, reqID, tc.action)
			require.NoError(t, err)
			assert.Equal(t, tc.status, out.Status)
		})
	}
}

func TestReviewRejectsNonReviewAction(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Review(context.Background(), sess, reqID, workflow.ActionSubmit)
	var terr *domain.TransitionError
	assert.ErrorAs(t, err, &terr)
}

func TestApproveOutsideFromDraftFails(t *testing.T) {
	f := newFixture(t)
	f.tx.EXPECT().LockRequest(mock.Anything, reqID).Return(stored(domain.StatusDraft), nil)
	f.allow(true, false)

	_, err := f.uc.ApproveOutside(context.Background(), sess, reqID)
	var terr *domain.TransitionError
	assert.ErrorAs(t, err, &terr)
}

func TestApproveOutsideByCreator(t *testing.T) {
	f := newFixture(t)
	f.tx.EXPECT().LockRequest(mock.Anything, reqID).Return(stored(domain.StatusSubmitted), nil)
	f.allow(true, false)
	f.tx.EXPECT().UpdateStatus(mock.Anything, reqID, domain.StatusApproved).Return(nil)
	f.tx.EXPECT().AppendEvent(mock.Anything, mock.MatchedBy(func(e domain.AuditEvent) bool {
		return e.Type == domain.EventApproveOutside
	})).Return(nil)

	out, err := f.uc.ApproveOutside(context.Background(), sess, reqID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, out.Status)
}

func TestRevokeOutside(t *testing.T) {
	outside := domain.AuditEvent{RequestID: reqID, Type: domain.EventApproveOutside, Actor: actorID}
	approve := domain.AuditEvent{RequestID: reqID, Type: domain.EventApprove, Actor: uuid.New()}

	t.Run("active outside approval", func(t *testing.T) {
		f := newFixture(t)
		f.tx.EXPECT().LockRequest(mock.Anything, reqID).Return(stored(domain.StatusApproved), nil)
		f.allow(true, false)
		f.tx.EXPECT().ListEvents(mock.Anything, reqID).Return([]domain.AuditEvent{outside}, nil)
		f.tx.EXPECT().UpdateStatus(mock.Anything, reqID, domain.StatusSubmitted).Return(nil)
		f.tx.EXPECT().AppendEvent(mock.Anything, mock.Anything).Return(nil)

		out, err := f.uc.RevokeOutside(context.Background(), sess, reqID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSubmitted, out.Status)
	})

	t.Run("reviewer approved afterwards", func(t *testing.T) {
		f := newFixture(t)
		f.tx.EXPECT().LockRequest(mock.Anything, reqID).Return(stored(domain.StatusApproved), nil)
		f.allow(true, false)
		f.tx.EXPECT().ListEvents(mock.Anything, reqID).Return([]domain.AuditEvent{outside, approve}, nil)

		_, err := f.uc.RevokeOutside(context.Background(), sess, reqID)
		var terr *domain.TransitionError
		assert.ErrorAs(t, err, &terr)
	})

	t.Run("no outside approval", func(t *testing.T) {
		f := newFixture(t)
		f.tx.EXPECT().LockRequest(mock.Anything, reqID).Return(stored(domain.StatusApproved), nil)
		f.allow(false, true)
		f.tx.EXPECT().ListEvents(mock.Anything, reqID).Return([]domain.AuditEvent{approve}, nil)

		_, err := f.uc.RevokeOutside(context.Background(), sess, reqID)
		var terr *domain.TransitionError
		assert.ErrorAs(t, err, &terr)
	})
}

func TestGetHidesStrangersRequest(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetRequest(mock.Anything, reqID).Return(stored(domain.StatusSubmitted), nil)
	f.allow(false, false)

	_, err := f.uc.Get(context.Background(), sess, reqID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetMissingRequest(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetRequest(mock.Anything, reqID).Return(nil, nil)

	_, err := f.uc.Get(context.Background(), sess, reqID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetDerivesView(t *testing.T) {
	f := newFixture(t)
	req := stored(domain.StatusApproved)
	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)
	req.ProjectStart, req.ProjectEnd = &start, &end
	req.Schedule = []domain.ScheduleRange{{Day: domain.Weekday(1), StartMinute: 540, EndMinute: 1080}}
	events := []domain.AuditEvent{
		{ID: 1, RequestID: reqID, Type: domain.EventSubmitted, Actor: actorID},
		{ID: 2, RequestID: reqID, Type: domain.EventApproveOutside, Actor: actorID, CreatedAt: clock},
	}
	f.repo.EXPECT().GetRequest(mock.Anything, reqID).Return(req, nil)
	f.allow(true, false)
	f.repo.EXPECT().ListEvents(mock.Anything, reqID).Return(events, nil)

	view, err := f.uc.Get(context.Background(), sess, reqID)
	require.NoError(t, err)
	assert.True(t, view.CanMutate)
	assert.False(t, view.CanReview)
	assert.True(t, view.Outside.Active)
	assert.Equal(t, actorID, view.Outside.By)
	assert.True(t, view.Readiness.Ready())
	assert.NotEmpty(t, view.ScheduleSummary)
	require.NotNil(t, view.EstimatedTotal)
	assert.InDelta(t, 31000, *view.EstimatedTotal, 1e-9)
}

func TestExport(t *testing.T) {
	cases := []struct {
		name     string
		status   domain.Status
		kind     port.ExportKind
		filename string
		approved bool
	}{
		{"request form", domain.StatusSubmitted, port.ExportRequestForm, "adpaas-request-" + reqID.String() + ".pdf", false},
		{"request form of approved", domain.StatusApproved, port.ExportRequestForm, "adpaas-request-" + reqID.String() + ".pdf", false},
		{"approval", domain.StatusApproved, port.ExportApproval, "adpaas-approval-" + reqID.String() + ".pdf", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetRequest(mock.Anything, reqID).Return(stored(tc.status), nil)
			f.allow(true, false)
			f.renderer.EXPECT().Render(mock.Anything, mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, in document.Input, w io.Writer) error {
					assert.Equal(t, tc.approved, in.Approved)
					assert.Equal(t, clock, in.PrintedAt)
					_, err := io.WriteString(w, "%PDF-1.3")
					return err
				})

			file, err := f.uc.Export(context.Background(), sess, reqID, tc.kind)
			require.NoError(t, err)
			assert.Equal(t, tc.filename, file.Filename)
			assert.Equal(t, "application/pdf", file.ContentType)
			assert.Equal(t, []byte("%PDF-1.3"), file.Data)
		})
	}
}

func TestExportUnavailable(t *testing.T) {
	cases := []struct {
		name   string
		status domain.Status
		kind   port.ExportKind
	}{
		{"request form of draft", domain.StatusDraft, port.ExportRequestForm},
		{"approval of submitted", domain.StatusSubmitted, port.ExportApproval},
		{"approval of rejected", domain.StatusRejected, port.ExportApproval},
		{"unknown kind", domain.StatusApproved, port.ExportKind("invoice")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetRequest(mock.Anything, reqID).Return(stored(tc.status), nil)
			f.allow(false, true)

			_, err := f.uc.Export(context.Background(), sess, reqID, tc.kind)
			assert.ErrorIs(t, err, domain.ErrExportUnavailable)
		})
	}
}

func TestExportRenderFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetRequest(mock.Anything, reqID).Return(stored(domain.StatusApproved), nil)
	f.allow(true, true)
	f.renderer.EXPECT().Render(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrLayoutOverflow)

	_, err := f.uc.Export(context.Background(), sess, reqID, port.ExportApproval)
	assert.True(t, errors.Is(err, domain.ErrLayoutOverflow))
}

func TestCatalog(t *testing.T) {
	c := newFixture(t).uc.Catalog()
	require.Len(t, c.Funnels, len(domain.Funnels))
	for _, f := range c.Funnels {
		assert.NotEmpty(t, f.KPIs, f.Funnel)
		assert.NotEmpty(t, f.Objectives, f.Funnel)
		if f.Funnel == domain.FunnelConversion {
			assert.NotContains(t, f.SalesKPIs, domain.KpiLeads)
			assert.Contains(t, f.SalesKPIs, domain.KpiROAS)
		} else {
			assert.Empty(t, f.SalesKPIs)
		}
	}
	for _, k := range c.KPIs {
		assert.Contains(t, k.Operators, k.DefaultOperator, k.Type)
		assert.Contains(t, k.Units, k.DefaultUnit, k.Type)
	}
	assert.Contains(t, c.Channels, domain.ChannelOther)
}
