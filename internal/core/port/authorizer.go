package port

import (
	"context"

	"github.com/google/uuid"
)

// Authorizer answers capability questions for an actor. The use case treats
// every answer as an opaque predicate; membership rules live behind it.
type Authorizer interface {
	// CanReview reports whether actor may approve, reject or send back the
	// request.
	CanReview(ctx context.Context, requestID, actor uuid.UUID) (bool, error)
	// CanMutate reports whether actor may edit and submit the request.
	CanMutate(ctx context.Context, requestID, actor uuid.UUID) (bool, error)
	// CanCreate reports whether actor may open new requests in the
	// organization.
	CanCreate(ctx context.Context, orgID, actor uuid.UUID) (bool, error)
	// DefaultOrg returns the organization new requests of actor belong to,
	// or uuid.Nil when the actor has none.
	DefaultOrg(ctx context.Context, actor uuid.UUID) (uuid.UUID, error)
}
