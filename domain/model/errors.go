package model

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds returned by usecases. Validation errors are detected before any
// mutation; an operation that fails with one of these has had no effect.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

// IntegrityError reports either a mid-cascade store failure (Completed lists
// the steps that already took effect and will not be rolled back) or a
// discovered invariant violation (Completed empty). It is surfaced to the
// caller for reconciliation, never retried.
type IntegrityError struct {
	Op        string
	Completed []string
	Err       error
}

func (e *IntegrityError) Error() string {
	if len(e.Completed) == 0 {
		return fmt.Sprintf("%s: integrity fault: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: integrity fault after [%s]: %v", e.Op, strings.Join(e.Completed, ", "), e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}
