package services

import (
	"errors"
	"fmt"

	"github.com/AbhiraajV/credate/internal/models"
)

var (
	// ErrNotFound covers both a genuinely absent row and a row the caller
	// may not see; read paths return it for either so existence never leaks.
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("not authorized")
	ErrSelfRequest  = errors.New("cannot request access to your own report")
)

// ValidationError rejects malformed input before anything is written.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateRequestError signals an existing access request for the same
// (report, requester) pair. Status is the existing request's current state
// so the caller can display it.
type DuplicateRequestError struct {
	Status models.RequestStatus
}

func (e *DuplicateRequestError) Error() string {
	return fmt.Sprintf("access request already exists with status %s", e.Status)
}

// InvalidTransitionError signals an approve/deny on a request that already
// left PENDING.
type InvalidTransitionError struct {
	Status models.RequestStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("request is not pending, current status is %s", e.Status)
}
