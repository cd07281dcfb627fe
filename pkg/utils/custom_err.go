package utils

import (
	"errors"
	"fmt"
)

// Error kinds. Services wrap these with a user-facing message via the *f
// constructors; controllers map them to HTTP codes with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrBadRequest    = errors.New("bad request")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrDatabaseError = errors.New("database error")
)

type ServiceError struct {
	kind    error
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func (e *ServiceError) Unwrap() error { return e.kind }

func NotFoundf(format string, args ...any) error {
	return &ServiceError{kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func BadRequestf(format string, args ...any) error {
	return &ServiceError{kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...any) error {
	return &ServiceError{kind: ErrForbidden, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) error {
	return &ServiceError{kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}
