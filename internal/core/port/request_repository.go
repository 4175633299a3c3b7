package port

import (
	"context"

	"github.com/google/uuid"

	"adpaas/internal/core/domain"
)

// RequestRepository defines the persistence layer for campaign requests. It
// is an outbound port in hexagonal architecture. Reads outside a transaction
// see committed state only; every write goes through WithinTx.
type RequestRepository interface {
	// GetRequest returns the request with all child collections loaded, or
	// nil when no such request exists.
	GetRequest(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	// ListEvents returns the audit log of a request in ascending order.
	ListEvents(ctx context.Context, id uuid.UUID) ([]domain.AuditEvent, error)
	// WithinTx runs fn in one transaction. The transaction commits when fn
	// returns nil and rolls back otherwise, so a failed child write leaves
	// nothing behind.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx RequestTx) error) error
}

// RequestTx is the set of operations available inside a transaction.
type RequestTx interface {
	// LockRequest loads the request and holds a row lock on it until the
	// transaction ends. It returns nil when the request does not exist.
	LockRequest(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	// ListEvents returns the audit log of a request in ascending order.
	ListEvents(ctx context.Context, id uuid.UUID) ([]domain.AuditEvent, error)
	// UpsertRequest writes the main request row. The creator and creation
	// time of an existing row are never changed.
	UpsertRequest(ctx context.Context, req domain.Request) error
	// ReplaceKpis deletes every KPI row of the request and inserts rows.
	ReplaceKpis(ctx context.Context, requestID uuid.UUID, rows []domain.KpiRow) error
	// ReplaceSchedule deletes every schedule range of the request and
	// inserts ranges.
	ReplaceSchedule(ctx context.Context, requestID uuid.UUID, ranges []domain.ScheduleRange) error
	// UpsertAudience writes the single audience row of the request.
	UpsertAudience(ctx context.Context, requestID uuid.UUID, audience domain.Audience) error
	// ReplaceChannels deletes every channel of the request and inserts
	// channels in order.
	ReplaceChannels(ctx context.Context, requestID uuid.UUID, channels []domain.Channel) error
	// UpdateStatus changes only the status column.
	UpdateStatus(ctx context.Context, requestID uuid.UUID, status domain.Status) error
	// AppendEvent adds an entry to the audit log.
	AppendEvent(ctx context.Context, event domain.AuditEvent) error
}
