package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpaas/internal/core/domain"
)

func TestPlanAllowedTransitions(t *testing.T) {
	outside := []domain.AuditEvent{
		{Type: domain.EventSubmitted},
		{Type: domain.EventApproveOutside},
	}
	tests := []struct {
		name  string
		ctx   Context
		to    domain.Status
		event domain.EventType
	}{
		{"save new draft", Context{Action: ActionSaveDraft, IsNew: true}, domain.StatusDraft, domain.EventSaveDraft},
		{"save draft", Context{Action: ActionSaveDraft, Status: domain.StatusDraft, CanMutate: true}, domain.StatusDraft, domain.EventSaveDraft},
		{"save keeps needs_changes", Context{Action: ActionSaveDraft, Status: domain.StatusNeedsChanges, CanMutate: true}, domain.StatusNeedsChanges, domain.EventSaveDraft},
		{"submit new", Context{Action: ActionSubmit, IsNew: true}, domain.StatusSubmitted, domain.EventSubmitted},
		{"resubmit after fix", Context{Action: ActionSubmit, Status: domain.StatusNeedsChanges, CanMutate: true}, domain.StatusSubmitted, domain.EventSubmitted},
		{"approve", Context{Action: ActionApprove, Status: domain.StatusSubmitted, CanReview: true}, domain.StatusApproved, domain.EventApprove},
		{"reject", Context{Action: ActionReject, Status: domain.StatusSubmitted, CanReview: true}, domain.StatusRejected, domain.EventReject},
		{"ask fix", Context{Action: ActionAskFix, Status: domain.StatusSubmitted, CanReview: true}, domain.StatusNeedsChanges, domain.EventAskFix},
		{"outside by creator", Context{Action: ActionApproveOutside, Status: domain.StatusSubmitted, CanMutate: true}, domain.StatusApproved, domain.EventApproveOutside},
		{"outside by reviewer", Context{Action: ActionApproveOutside, Status: domain.StatusSubmitted, CanReview: true}, domain.StatusApproved, domain.EventApproveOutside},
		{"revoke outside", Context{Action: ActionRevokeOutside, Status: domain.StatusApproved, CanMutate: true, Events: outside}, domain.StatusSubmitted, domain.EventRevokeOutside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Plan(tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.to, tr.To)
			assert.Equal(t, tt.event, tr.Event)
		})
	}
}

func TestPlanSubmitFlags(t *testing.T) {
	tr, err := Plan(Context{Action: ActionSubmit, Status: domain.StatusDraft, CanMutate: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, tr.From)
	assert.True(t, tr.StampSubmitted)
	assert.True(t, tr.ReplaceChildren)

	tr, err = Plan(Context{Action: ActionApprove, Status: domain.StatusSubmitted, CanReview: true})
	require.NoError(t, err)
	assert.False(t, tr.StampSubmitted)
	assert.False(t, tr.ReplaceChildren)
}

func TestPlanSubmitNotReady(t *testing.T) {
	_, err := Plan(Context{Action: ActionSubmit, IsNew: true, Missing: []string{"add at least one ad location"}})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"add at least one ad location"}, verr.Missing)
}

func TestPlanRejectsIllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
	}{
		{"review by non reviewer", Context{Action: ActionApprove, Status: domain.StatusSubmitted, CanMutate: true}},
		{"review a draft", Context{Action: ActionReject, Status: domain.StatusDraft, CanReview: true}},
		{"review a new request", Context{Action: ActionAskFix, IsNew: true, CanReview: true}},
		{"edit submitted", Context{Action: ActionSaveDraft, Status: domain.StatusSubmitted, CanMutate: true}},
		{"edit approved", Context{Action: ActionSaveDraft, Status: domain.StatusApproved, CanMutate: true}},
		{"edit by stranger", Context{Action: ActionSaveDraft, Status: domain.StatusDraft, CanReview: true}},
		{"resubmit rejected", Context{Action: ActionSubmit, Status: domain.StatusRejected, CanMutate: true, Missing: []string{"x"}}},
		{"outside from draft", Context{Action: ActionApproveOutside, Status: domain.StatusDraft, CanMutate: true}},
		{"outside by stranger", Context{Action: ActionApproveOutside, Status: domain.StatusSubmitted}},
		{"revoke without outside approval", Context{Action: ActionRevokeOutside, Status: domain.StatusApproved, CanReview: true,
			Events: []domain.AuditEvent{{Type: domain.EventApprove}}}},
		{"revoke from submitted", Context{Action: ActionRevokeOutside, Status: domain.StatusSubmitted, CanMutate: true,
			Events: []domain.AuditEvent{{Type: domain.EventApproveOutside}}}},
		{"unknown action", Context{Action: "archive", Status: domain.StatusDraft, CanMutate: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Plan(tt.ctx)
			var terr *domain.TransitionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, string(tt.ctx.Action), terr.Action)
			assert.NotEmpty(t, terr.Reason)
		})
	}
}

func TestRevokeAfterReviewerApproval(t *testing.T) {
	actor := uuid.New()
	at := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	events := []domain.AuditEvent{
		{Type: domain.EventSubmitted, Actor: actor, CreatedAt: at},
		{Type: domain.EventApproveOutside, Actor: actor, CreatedAt: at.Add(time.Hour)},
		{Type: domain.EventApprove, Actor: uuid.New(), CreatedAt: at.Add(2 * time.Hour)},
	}
	g := CanRevokeOutside(Context{Action: ActionRevokeOutside, Status: domain.StatusApproved, CanMutate: true, Events: events})
	assert.False(t, g.Allowed)

	// A fresh outside approval after the reviewer one can be revoked again.
	events = append(events, domain.AuditEvent{Type: domain.EventApproveOutside, Actor: actor, CreatedAt: at.Add(3 * time.Hour)})
	g = CanRevokeOutside(Context{Action: ActionRevokeOutside, Status: domain.StatusApproved, CanMutate: true, Events: events})
	assert.True(t, g.Allowed)
}

func TestIllegalSubmitWinsOverReadiness(t *testing.T) {
	_, err := Plan(Context{Action: ActionSubmit, Status: domain.StatusSubmitted, CanMutate: true, Missing: []string{"x"}})
	var verr *domain.ValidationError
	assert.False(t, errors.As(err, &verr))
	var terr *domain.TransitionError
	assert.ErrorAs(t, err, &terr)
}

func TestIsReview(t *testing.T) {
	for _, a := range ReviewActions {
		assert.True(t, a.IsReview())
	}
	assert.False(t, ActionSubmit.IsReview())
}
