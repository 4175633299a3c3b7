// Package workflow decides which status changes a request may make.
// Guards are pure functions: they look at a Context and never touch storage.
package workflow

import (
	"fmt"

	"adpaas/internal/core/domain"
)

// Action is something an actor asks to do with a request.
type Action string

const (
	ActionSaveDraft      Action = "save_draft"
	ActionSubmit         Action = "submit"
	ActionApprove        Action = "approve"
	ActionReject         Action = "reject"
	ActionAskFix         Action = "ask_fix"
	ActionApproveOutside Action = "approve_outside_pdf"
	ActionRevokeOutside  Action = "revoke_approve_outside_pdf"
)

// ReviewActions are the decisions only a reviewer can take.
var ReviewActions = []Action{ActionApprove, ActionReject, ActionAskFix}

// IsReview reports whether a is one of ReviewActions.
func (a Action) IsReview() bool {
	return a == ActionApprove || a == ActionReject || a == ActionAskFix
}

// Context is everything a guard needs to know about one attempted action.
type Context struct {
	Action Action
	// Status is ignored when IsNew is set.
	Status    domain.Status
	IsNew     bool
	CanMutate bool
	CanReview bool
	// Missing is the readiness report of the payload being submitted.
	Missing []string
	// Events is the request's audit log in ascending order.
	Events []domain.AuditEvent
}

// Transition is the effect an allowed action has on the stored request.
type Transition struct {
	From  domain.Status
	To    domain.Status
	Event domain.EventType
	// StampSubmitted asks the caller to set SubmittedAt if it is still unset.
	StampSubmitted bool
	// ReplaceChildren asks the caller to rewrite KPI, schedule, audience and
	// channel rows from the payload.
	ReplaceChildren bool
}

// GuardResult is the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

func allow() GuardResult { return GuardResult{Allowed: true} }

func deny(format string, args ...any) GuardResult {
	return GuardResult{Reason: fmt.Sprintf(format, args...)}
}

// Plan evaluates the guards for c.Action and returns the transition to apply.
// State and role guards run before readiness, so an illegal submit reports a
// *domain.TransitionError even when the payload is also incomplete.
func Plan(c Context) (Transition, error) {
	from := c.Status
	if c.IsNew {
		from = ""
	}
	var (
		g GuardResult
		t = Transition{From: from}
	)
	switch c.Action {
	case ActionSaveDraft:
		g = CanSaveDraft(c)
		t.To, t.Event, t.ReplaceChildren = domain.StatusDraft, domain.EventSaveDraft, true
		if !c.IsNew && c.Status == domain.StatusNeedsChanges {
			t.To = domain.StatusNeedsChanges
		}
	case ActionSubmit:
		g = CanSubmit(c)
		t.To, t.Event = domain.StatusSubmitted, domain.EventSubmitted
		t.StampSubmitted, t.ReplaceChildren = true, true
	case ActionApprove, ActionReject, ActionAskFix:
		g = CanReview(c)
		t.To, t.Event = reviewOutcome(c.Action)
	case ActionApproveOutside:
		g = CanApproveOutside(c)
		t.To, t.Event = domain.StatusApproved, domain.EventApproveOutside
	case ActionRevokeOutside:
		g = CanRevokeOutside(c)
		t.To, t.Event = domain.StatusSubmitted, domain.EventRevokeOutside
	default:
		g = deny("unknown action")
	}
	if !g.Allowed {
		return Transition{}, &domain.TransitionError{From: from, Action: string(c.Action), Reason: g.Reason}
	}
	if c.Action == ActionSubmit && len(c.Missing) > 0 {
		return Transition{}, &domain.ValidationError{Missing: c.Missing}
	}
	return t, nil
}

func reviewOutcome(a Action) (domain.Status, domain.EventType) {
	switch a {
	case ActionApprove:
		return domain.StatusApproved, domain.EventApprove
	case ActionReject:
		return domain.StatusRejected, domain.EventReject
	default:
		return domain.StatusNeedsChanges, domain.EventAskFix
	}
}

// CanSaveDraft allows the creator to save a new request or one still in
// draft or needs_changes.
func CanSaveDraft(c Context) GuardResult {
	if !c.IsNew && !c.Status.Editable() {
		return deny("request in status %s can no longer be edited", c.Status)
	}
	if !c.IsNew && !c.CanMutate {
		return deny("only the creator can edit this request")
	}
	return allow()
}

// CanSubmit has the same state and role rules as CanSaveDraft. Readiness is
// checked separately by Plan.
func CanSubmit(c Context) GuardResult {
	if !c.IsNew && !c.Status.Editable() {
		return deny("request in status %s cannot be submitted", c.Status)
	}
	if !c.IsNew && !c.CanMutate {
		return deny("only the creator can submit this request")
	}
	return allow()
}

// CanReview allows a reviewer to decide on a submitted request.
func CanReview(c Context) GuardResult {
	if c.IsNew || c.Status != domain.StatusSubmitted {
		return deny("only submitted requests can be reviewed")
	}
	if !c.CanReview {
		return deny("actor is not a reviewer for this organization")
	}
	return allow()
}

// CanApproveOutside records an approval obtained outside the system. Either
// the creator or a reviewer may do this, but only on a submitted request.
func CanApproveOutside(c Context) GuardResult {
	if c.IsNew || c.Status != domain.StatusSubmitted {
		return deny("outside approval requires a submitted request")
	}
	if !c.CanMutate && !c.CanReview {
		return deny("actor may not approve this request")
	}
	return allow()
}

// CanRevokeOutside undoes an outside approval. It is refused once a reviewer
// has approved the request after that outside approval.
func CanRevokeOutside(c Context) GuardResult {
	if c.IsNew || c.Status != domain.StatusApproved {
		return deny("only approved requests can have an outside approval revoked")
	}
	if !c.CanMutate && !c.CanReview {
		return deny("actor may not revoke approval of this request")
	}
	oa := domain.FoldOutsideApproval(c.Events)
	if !oa.Active {
		return deny("request has no active outside approval")
	}
	if oa.ReviewerApprovedAfter {
		return deny("a reviewer approved the request after the outside approval")
	}
	return allow()
}
