// Package trips holds the trip persistence layer and the reconciliation
// engine that keeps a session's saved trips, live recommendations and
// fallback catalog consistent with each other.
package trips

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned for any repository operation performed
	// without a signed-in identity.
	ErrNotAuthenticated = errors.New("trips: not authenticated")

	// ErrNotFound is returned when a delete target does not exist under the
	// identity's scope.
	ErrNotFound = errors.New("trips: trip not found")
)

// PersistenceError wraps a backend read/write failure. Callers see their
// in-memory state unchanged whenever one of these is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("trips: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func persistenceErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
