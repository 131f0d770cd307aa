package core

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned when a navigation or selection event arrives for
// a user with no active search session.
var ErrNoSession = errors.New("no active search session")

// InvalidIndexError reports a selection index outside the bounds of the
// current result set.
type InvalidIndexError struct {
	Index int
	Count int
}

// Error implements the error interface.
func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid result index %d (page has %d results)", e.Index, e.Count)
}

// RemoteError wraps any upstream HTTP failure or transport error from the
// catalog. Status is the HTTP status code when the server responded with a
// non-success status, 0 otherwise; Cause carries the underlying transport or
// decode error when there is one.
type RemoteError struct {
	Op     string // "search" or "detail"
	Status int
	Cause  error
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: upstream returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *RemoteError) Unwrap() error { return e.Cause }
