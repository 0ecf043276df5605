// Package apperr defines the error kinds shared by every service and their HTTP mapping.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrStorage      = errors.New("storage failure")
)

// Error carries a human readable message together with its kind.
type Error struct {
	kind  error
	msg   string
	field string
	cause error
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Is(target error) bool { return target == e.kind }

func (e *Error) Unwrap() error { return e.cause }

// Kind returns the sentinel the error was built with.
func (e *Error) Kind() error { return e.kind }

// Field names the offending input field of a validation error, if any.
func (e *Error) Field() string { return e.field }

func newErr(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func NotFound(entity string, id uint) error {
	return newErr(ErrNotFound, fmt.Sprintf("%s with id %d not found", entity, id))
}

func NotFoundf(format string, args ...any) error {
	return newErr(ErrNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) error {
	return newErr(ErrConflict, fmt.Sprintf(format, args...))
}

func Forbidden(msg string) error {
	return newErr(ErrForbidden, msg)
}

func Unauthorized(msg string) error {
	return newErr(ErrUnauthorized, msg)
}

func Validation(field, msg string) error {
	e := newErr(ErrValidation, msg)
	e.field = field
	return e
}

// Storage wraps a failure of the object storage collaborator.
func Storage(cause error, format string, args ...any) error {
	e := newErr(ErrStorage, fmt.Sprintf(format, args...))
	e.cause = cause
	return e
}

// FromDB translates store errors that carry domain meaning.
func FromDB(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		e := newErr(ErrConflict, fmt.Sprintf(format, args...))
		e.cause = err
		return e
	}
	return err
}

// HTTPStatus maps an error to the status code the API answers with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrStorage):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// IsKnown reports whether err carries one of the domain kinds.
func IsKnown(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
