package entity

import (
	"errors"
	"strings"
)

// ErrorKind classifies an error for translation into an HTTP response.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindAuth       ErrorKind = "auth"
	KindForbidden  ErrorKind = "forbidden"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindConnection ErrorKind = "connection"
	KindUnknown    ErrorKind = "unknown"
)

// AppError is an error with a user-facing message and a kind.
// Err holds the underlying cause and is never shown to clients.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAuthError(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewConnectionError(message string, err error) *AppError {
	return &AppError{Kind: KindConnection, Message: message, Err: err}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Kind: KindUnknown, Message: message, Err: err}
}

// FieldViolation is a single failed constraint on a named field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every violated constraint of an input, in field order.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, " ")
}

// Set records msg for field, replacing an earlier violation of the same field.
func (e *ValidationError) Set(field, msg string) {
	for i := range e.Violations {
		if e.Violations[i].Field == field {
			e.Violations[i].Message = msg
			return
		}
	}
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: msg})
}

// Has reports whether field has a recorded violation.
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns nil when no violation was recorded.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

// KindOf reports the kind of err, KindUnknown when it carries none.
func KindOf(err error) ErrorKind {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return KindValidation
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}
