// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")

	// Auth-related errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
)

// classError carries a caller-facing message while unwrapping to one of
// the sentinel errors above, so handlers can branch with errors.Is
// without parsing messages.
type classError struct {
	class error
	msg   string
}

func (e *classError) Error() string { return e.msg }
func (e *classError) Unwrap() error { return e.class }

// NotFound reports a missing row or missing referenced row.
func NotFound(resource string) error {
	return &classError{class: ErrNotFound, msg: fmt.Sprintf("%s not found", resource)}
}

// Invalid reports a request that failed presence or enum validation.
func Invalid(message string) error {
	return &classError{class: ErrInvalidInput, msg: message}
}

// Conflict reports a write refused by a guard: dependent rows exist,
// duplicate user identity, or the protected admin account.
func Conflict(message string) error {
	return &classError{class: ErrConflict, msg: message}
}
