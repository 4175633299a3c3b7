package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType tags an audit event.
type EventType string

const (
	EventSaveDraft      EventType = "save_draft"
	EventSubmitted      EventType = "submitted"
	EventApprove        EventType = "approve"
	EventAskFix         EventType = "ask_fix"
	EventReject         EventType = "reject"
	EventApproveOutside EventType = "approve_outside_pdf"
	EventRevokeOutside  EventType = "revoke_approve_outside_pdf"
)

// AuditEvent is an append-only record of an action on a request.
type AuditEvent struct {
	ID        int64
	RequestID uuid.UUID
	Type      EventType
	Actor     uuid.UUID
	CreatedAt time.Time
}

// OutsideApproval is the state derived from the event log for approvals
// recorded outside the reviewer workflow.
type OutsideApproval struct {
	Active bool
	By     uuid.UUID
	At     time.Time
	// ReviewerApprovedAfter is set when a reviewer approve event follows the
	// latest outside approval.
	ReviewerApprovedAfter bool
}

// FoldOutsideApproval replays events in ascending order. The counter goes up
// on approve_outside_pdf and down on revoke_approve_outside_pdf, never below
// zero. An approval is active while the counter is positive.
func FoldOutsideApproval(events []AuditEvent) OutsideApproval {
	var (
		n   int
		out OutsideApproval
	)
	for _, e := range events {
		switch e.Type {
		case EventApproveOutside:
			n++
			out.By, out.At = e.Actor, e.CreatedAt
			out.ReviewerApprovedAfter = false
		case EventRevokeOutside:
			n = max(0, n-1)
		case EventApprove:
			out.ReviewerApprovedAfter = true
		}
	}
	out.Active = n > 0
	if !out.Active {
		out.By, out.At = uuid.Nil, time.Time{}
	}
	return out
}
