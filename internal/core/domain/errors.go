package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound covers both a missing request and one the actor may not
	// read; callers cannot tell the two apart.
	ErrNotFound          = errors.New("request not found")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrNoOrganization    = errors.New("actor has no organization")
	ErrExportUnavailable = errors.New("export not available for request status")
	ErrLayoutOverflow    = errors.New("layout overflow: row does not fit on an empty page")
)

// ValidationError lists the requirements a request still misses.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("request not ready: %s", strings.Join(e.Missing, "; "))
}

// TransitionError rejects a status change the workflow does not permit.
type TransitionError struct {
	From   Status
	Action string
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal transition %q from %q: %s", e.Action, e.From, e.Reason)
}
