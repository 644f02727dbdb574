package exception

import (
	"errors"
	"fmt"
)

// Kind discriminates application errors.
type Kind string

const (
	KindRoute      Kind = "route_error"
	KindValidation Kind = "validation_error"
	KindNotFound   Kind = "not_found_error"
	KindData       Kind = "data_error"
	KindRateLimit  Kind = "rate_limit_error"
)

// IsRequestError reports whether the kind belongs to the request error family.
// NotFound is the "no result" member of that family.
func (k Kind) IsRequestError() bool {
	switch k {
	case KindRoute, KindValidation, KindNotFound:
		return true
	default:
		return false
	}
}

// ApplicationError handles application level errors.
type ApplicationError struct {
	Kind       Kind
	Message    string
	StatusCode int
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	if e.Kind != targetErr.Kind || e.Message != targetErr.Message {
		return false
	}

	// a bare sentinel matches every error built from it with WithCause
	if targetErr.Cause == nil {
		return true
	}

	return e.Cause == targetErr.Cause
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// WithCause returns a copy of the error wrapping cause.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause

	return e
}

// KindOf returns the kind of the first ApplicationError in the chain, or "" if none.
func KindOf(err error) Kind {
	var appErr ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return ""
}
