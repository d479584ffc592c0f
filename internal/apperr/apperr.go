// Package apperr defines the error taxonomy of the cost engine. Every error
// raised by a service operation is one of four kinds; the HTTP layer maps
// the kind to a status code and translates the message key.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure.
type Kind int

const (
	// KindValidation means a required field is missing, blank, non-positive,
	// or exceeds a length bound.
	KindValidation Kind = iota
	// KindNotFound means a referenced ingredient, recipe, or association
	// does not exist in the store.
	KindNotFound
	// KindConflict means an association already exists (create) or does not
	// exist (update) for the given pair.
	KindConflict
	// KindUnexpected wraps a lower-layer failure with a stable message,
	// never leaking internal detail to the caller.
	KindUnexpected
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Error is a classified operation failure carrying an i18n message key.
type Error struct {
	Kind Kind
	// MessageKey is the i18n key of the user-facing message.
	MessageKey string
	// Err is the wrapped cause, if any. It is logged, never serialized.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.MessageKey, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.MessageKey)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation creates a validation error with the given message key.
func Validation(messageKey string) *Error {
	return &Error{Kind: KindValidation, MessageKey: messageKey}
}

// NotFound creates a not-found error with the given message key.
func NotFound(messageKey string) *Error {
	return &Error{Kind: KindNotFound, MessageKey: messageKey}
}

// Conflict creates a conflict error with the given message key.
func Conflict(messageKey string) *Error {
	return &Error{Kind: KindConflict, MessageKey: messageKey}
}

// Unexpected wraps a lower-layer failure under a stable message key.
func Unexpected(messageKey string, err error) *Error {
	return &Error{Kind: KindUnexpected, MessageKey: messageKey, Err: err}
}

// Wrap classifies err. Errors that are already classified pass through
// unchanged; anything else becomes an unexpected error under messageKey.
func Wrap(messageKey string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return Unexpected(messageKey, err)
}

// KindOf returns the kind of err, defaulting to KindUnexpected for
// unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// MessageKeyOf returns the message key of err, or the empty string for
// unclassified errors.
func MessageKeyOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.MessageKey
	}
	return ""
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
