package domain

import "github.com/google/uuid"

// Session identifies who is acting and in which organization. The HTTP layer
// builds it from the bearer token and passes it into every use case call.
// A zero ActorID means the caller is unauthenticated.
type Session struct {
	ActorID uuid.UUID
	OrgID   uuid.UUID
}

// Authenticated reports whether the session carries an actor.
func (s Session) Authenticated() bool {
	return s.ActorID != uuid.Nil
}
