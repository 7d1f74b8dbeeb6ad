package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error so controllers can pick the HTTP status without
// inspecting message text.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindAuth
	KindRetryable
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindRetryable:
		return "retryable"
	default:
		return "service"
	}
}

// Error is the single error type crossing the service boundary.
type Error struct {
	Kind    Kind
	Field   string // set for validation errors
	Message string
	Err     error // internal cause, logged but never returned to clients
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %s)", e.Kind, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Auth deliberately carries one generic message so callers cannot tell a
// missing account from a bad password.
func Auth() *Error {
	return &Error{Kind: KindAuth, Message: "invalid email or password"}
}

func Retryable(message string, err error) *Error {
	return &Error{Kind: KindRetryable, Message: message, Err: err}
}

func Service(message string, err error) *Error {
	return &Error{Kind: KindService, Message: message, Err: err}
}

// KindOf reports the kind of err, or KindService for anything untyped.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindService
}

func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
