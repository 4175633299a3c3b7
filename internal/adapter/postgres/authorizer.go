package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpaas/internal/core/port"
)

// Authorizer implements port.Authorizer over the org_members table. Only
// active memberships count. Owners and approvers review; the creator of a
// request and any owner may edit it.
type Authorizer struct {
	pool *pgxpool.Pool
}

// NewAuthorizer returns an authorizer backed by pool.
func NewAuthorizer(pool *pgxpool.Pool) *Authorizer {
	return &Authorizer{pool: pool}
}

var _ port.Authorizer = (*Authorizer)(nil)

// CanReview reports whether actor is an active owner or approver of the
// request's organization.
func (a *Authorizer) CanReview(ctx context.Context, requestID, actor uuid.UUID) (bool, error) {
	return a.exists(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM ad_requests r
            JOIN org_members m ON m.org_id = r.org_id
            WHERE r.id = $1 AND m.user_id = $2 AND m.status = 'active' AND m.role IN ('owner', 'approver'))`,
		requestID, actor)
}

// CanMutate reports whether actor created the request or owns its
// organization, with an active membership either way.
func (a *Authorizer) CanMutate(ctx context.Context, requestID, actor uuid.UUID) (bool, error) {
	return a.exists(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM ad_requests r
            JOIN org_members m ON m.org_id = r.org_id
            WHERE r.id = $1 AND m.user_id = $2 AND m.status = 'active'
              AND (r.created_by = $2 OR m.role = 'owner'))`,
		requestID, actor)
}

// CanCreate reports whether actor is an active member of the organization.
func (a *Authorizer) CanCreate(ctx context.Context, orgID, actor uuid.UUID) (bool, error) {
	return a.exists(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM org_members
            WHERE org_id = $1 AND user_id = $2 AND status = 'active')`,
		orgID, actor)
}

// DefaultOrg returns the actor's default organization, falling back to the
// oldest active membership. It returns uuid.Nil when there is none.
func (a *Authorizer) DefaultOrg(ctx context.Context, actor uuid.UUID) (uuid.UUID, error) {
	var org uuid.UUID
	err := a.pool.QueryRow(ctx, `
        SELECT org_id FROM org_members
        WHERE user_id = $1 AND status = 'active'
        ORDER BY is_default DESC, created_at
        LIMIT 1`, actor).Scan(&org)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("default org: %w", err)
	}
	return org, nil
}

func (a *Authorizer) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var ok bool
	if err := a.pool.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("authorize: %w", err)
	}
	return ok, nil
}
