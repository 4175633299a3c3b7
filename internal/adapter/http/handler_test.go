package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpaas/internal/config/configs"
	"adpaas/internal/core/domain"
	"adpaas/internal/core/port"
	"adpaas/internal/core/port/mocks"
	"adpaas/internal/core/validate"
	"adpaas/internal/core/workflow"
)

const secret = "test-secret"

var (
	actorID = uuid.MustParse("6f1c7a3e-2b1d-4c55-9a0e-1d2f3a4b5c6d")
	orgID   = uuid.MustParse("0b8e1f52-77a4-4f0b-8c1e-9d2a3b4c5d6e")
	reqID   = uuid.MustParse("c3a9d1e0-5f2b-4a7c-8e6d-1b2c3d4e5f60")
)

func newTestHandler(t *testing.T, opts ...Option) (*Handler, *mocks.MockRequestUseCase) {
	svc := mocks.NewMockRequestUseCase(t)
	v := NewVerifier(configs.Auth{JWTSecret: secret, Cookie: "sb-access-token"})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, v, logger, opts...), svc
}

func sign(t *testing.T, key string, claims accessClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return tok
}

func validClaims() accessClaims {
	return accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		OrgID: orgID.String(),
	}
}

func do(t *testing.T, h *Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Authorization", "Bearer "+sign(t, secret, validClaims()))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

var wantSession = domain.Session{ActorID: actorID, OrgID: orgID}

func storedRequest(status domain.Status) *domain.Request {
	return &domain.Request{
		ID:           reqID,
		OrgID:        orgID,
		CreatedBy:    actorID,
		CampaignName: "Cafe Ladprao opening",
		Funnel:       domain.FunnelAwareness,
		Objective:    "Reach",
		Status:       status,
		FinalURL:     "https://example.com/landing",
	}
}

func TestVerifier(t *testing.T) {
	v := NewVerifier(configs.Auth{JWTSecret: secret})

	sess, err := v.Verify(sign(t, secret, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, wantSession, sess)

	t.Run("wrong key", func(t *testing.T) {
		_, err := v.Verify(sign(t, "other", validClaims()))
		assert.ErrorIs(t, err, errInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		c := validClaims()
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		_, err := v.Verify(sign(t, secret, c))
		assert.ErrorIs(t, err, errInvalidToken)
	})
	t.Run("no expiry", func(t *testing.T) {
		c := validClaims()
		c.ExpiresAt = nil
		_, err := v.Verify(sign(t, secret, c))
		assert.ErrorIs(t, err, errInvalidToken)
	})
	t.Run("subject not a uuid", func(t *testing.T) {
		c := validClaims()
		c.Subject = "alice"
		_, err := v.Verify(sign(t, secret, c))
		assert.ErrorIs(t, err, errInvalidToken)
	})
	t.Run("audience mismatch", func(t *testing.T) {
		v := NewVerifier(configs.Auth{JWTSecret: secret, Audience: "adpaas"})
		c := validClaims()
		c.Audience = jwt.ClaimStrings{"someone-else"}
		_, err := v.Verify(sign(t, secret, c))
		assert.ErrorIs(t, err, errInvalidToken)
	})
}

func TestTokenFromCookie(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Events(mock.Anything, wantSession, reqID).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/"+reqID.String()+"/events", nil)
	req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: sign(t, secret, validClaims())})
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestInvalidTokenIsRejected(t *testing.T) {
	h, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/"+reqID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, "other", validClaims()))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAnonymousReachesUseCase(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Get(mock.Anything, domain.Session{}, reqID).Return(nil, domain.ErrUnauthenticated)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/"+reqID.String(), nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCatalog(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Catalog().Return(port.Catalog{
		Funnels:  []port.CatalogFunnel{{Funnel: domain.FunnelAwareness, Objectives: []string{"Reach"}}},
		Channels: []domain.ChannelType{domain.ChannelFacebook, domain.ChannelOther},
	})

	rec := do(t, h, http.MethodGet, "/api/v1/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	channels := body["channels"].([]any)
	assert.Equal(t, "Facebook Ads", channels[0].(map[string]any)["label"])
	assert.Equal(t, "Other", channels[1].(map[string]any)["label"])
}

func TestValidate(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		Check(mock.Anything, mock.MatchedBy(func(r domain.Request) bool { return r.CampaignName == "ab" })).
		Return(validate.Report{Missing: []string{validate.MsgCampaignName}})

	rec := do(t, h, http.MethodPost, "/api/v1/requests/validate", map[string]any{"campaign_name": "ab"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ready":false,"missing":["`+validate.MsgCampaignName+`"],"final_url":""}`, rec.Body.String())
}

func TestSaveDraftCreates(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		SaveDraft(mock.Anything, wantSession, mock.MatchedBy(func(r domain.Request) bool {
			return r.ID == uuid.Nil && len(r.KPIs) == 1 && r.KPIs[0].Index == 0 &&
				r.ProjectStart != nil && r.ProjectStart.Day() == 1
		})).
		Return(storedRequest(domain.StatusDraft), nil)

	rec := do(t, h, http.MethodPost, "/api/v1/requests", map[string]any{
		"campaign_name": "Cafe Ladprao opening",
		"project_start": "2025-10-01",
		"kpis":          []map[string]any{{"type": "Impressions", "operator": ">=", "target": 50000, "unit": "PER_7D", "method": "report"}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, reqID.String(), body["id"])
	assert.Equal(t, "draft", body["status"])
	assert.Equal(t, "https://", body["url_protocol"])
	assert.Equal(t, "example.com/landing", body["url_rest"])
}

func TestSaveDraftUpdatesPathID(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		SaveDraft(mock.Anything, wantSession, mock.MatchedBy(func(r domain.Request) bool { return r.ID == reqID })).
		Return(storedRequest(domain.StatusDraft), nil)

	rec := do(t, h, http.MethodPut, "/api/v1/requests/"+reqID.String(), map[string]any{"campaign_name": "x"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMalformedPayload(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/requests", map[string]any{
		"schedule": []map[string]any{{"day": 9, "start_minute": 0, "end_minute": 60}},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["fields"])

	rec = do(t, h, http.MethodPost, "/api/v1/requests", map[string]any{"url_protocol": "ftp://"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/requests/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitNotReady(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Submit(mock.Anything, wantSession, mock.Anything).
		Return(nil, &domain.ValidationError{Missing: []string{validate.MsgKPI}})

	rec := do(t, h, http.MethodPost, "/api/v1/requests/"+reqID.String()+"/submit", map[string]any{})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, []any{validate.MsgKPI}, decodeBody(t, rec)["missing"])
}

func TestReview(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Review(mock.Anything, wantSession, reqID, workflow.ActionAskFix).
		Return(storedRequest(domain.StatusNeedsChanges), nil)

	rec := do(t, h, http.MethodPost, "/api/v1/requests/"+reqID.String()+"/review", map[string]any{"action": "ask_fix"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "needs_changes", decodeBody(t, rec)["status"])

	rec = do(t, h, http.MethodPost, "/api/v1/requests/"+reqID.String()+"/review", map[string]any{"action": "submit"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOutsideApprovalRoutes(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().ApproveOutside(mock.Anything, wantSession, reqID).
		Return(nil, &domain.TransitionError{From: domain.StatusDraft, Action: "approve_outside_pdf", Reason: "outside approval requires a submitted request"})
	svc.EXPECT().RevokeOutside(mock.Anything, wantSession, reqID).
		Return(storedRequest(domain.StatusSubmitted), nil)

	rec := do(t, h, http.MethodPost, "/api/v1/requests/"+reqID.String()+"/outside-approval", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/requests/"+reqID.String()+"/outside-approval", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "submitted", decodeBody(t, rec)["status"])
}

func TestGetView(t *testing.T) {
	h, svc := newTestHandler(t)
	total := 31000.0
	at := time.Date(2025, 10, 2, 3, 0, 0, 0, time.UTC)
	svc.EXPECT().Get(mock.Anything, wantSession, reqID).Return(&port.RequestView{
		Request:        *storedRequest(domain.StatusApproved),
		Outside:        domain.OutsideApproval{Active: true, By: actorID, At: at},
		EstimatedTotal: &total,
		CanMutate:      true,
	}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/requests/"+reqID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, 31000.0, body["estimated_total_budget"])
	outside := body["outside_approval"].(map[string]any)
	assert.Equal(t, true, outside["active"])
	assert.Equal(t, actorID.String(), outside["by"])
}

func TestGetNotFound(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Get(mock.Anything, wantSession, reqID).Return(nil, domain.ErrNotFound)

	rec := do(t, h, http.MethodGet, "/api/v1/requests/"+reqID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportPDF(t *testing.T) {
	h, svc := newTestHandler(t)
	file := &port.ExportFile{
		Filename:    "adpaas-approval-" + reqID.String() + ".pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.3 test"),
	}
	svc.EXPECT().Export(mock.Anything, wantSession, reqID, port.ExportApproval).Return(file, nil).Twice()

	for _, path := range []string{"/approval.pdf", "/export?kind=approval"} {
		rec := do(t, h, http.MethodGet, "/api/v1/requests/"+reqID.String()+path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Equal(t, `inline; filename="`+file.Filename+`"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "no-store, max-age=0", rec.Header().Get("Cache-Control"))
		assert.Equal(t, file.Data, rec.Body.Bytes())
	}
}

func TestExportDefaultsToRequestForm(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Export(mock.Anything, wantSession, reqID, port.ExportRequestForm).
		Return(nil, domain.ErrExportUnavailable)

	rec := do(t, h, http.MethodGet, "/api/v1/requests/"+reqID.String()+"/export", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInternalErrorDetails(t *testing.T) {
	boom := io.ErrUnexpectedEOF

	t.Run("hidden by default", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().Export(mock.Anything, wantSession, reqID, port.ExportApproval).Return(nil, boom)

		rec := do(t, h, http.MethodGet, "/api/v1/requests/"+reqID.String()+"/approval.pdf?debug=1", nil)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
	})

	t.Run("shown in debug mode", func(t *testing.T) {
		h, svc := newTestHandler(t, WithDebug(true))
		svc.EXPECT().Export(mock.Anything, wantSession, reqID, port.ExportApproval).Return(nil, boom)

		rec := do(t, h, http.MethodGet, "/api/v1/requests/"+reqID.String()+"/approval.pdf?debug=1", nil)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", body["reason"])
		assert.Equal(t, boom.Error(), body["message"])
	})
}
