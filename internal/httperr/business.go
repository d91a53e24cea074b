package httperr

import (
	"errors"
	"strings"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ValidationError reports user-correctable input problems.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation_error: " + e.Reason
	}
	return "validation_error: " + e.Reason + " (" + strings.Join(e.Fields, ", ") + ")"
}

func ErrValidation(reason string, fields ...string) error {
	return ValidationError{Fields: fields, Reason: reason}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

var (
	ErrNotFound           = ErrBusiness("not_found")
	ErrInvalidCredentials = ErrBusiness("invalid_credentials")
	ErrUnauthorized       = ErrBusiness("unauthorized")
)

func IsNotFound(err error) bool           { return errors.Is(err, ErrNotFound) }

// NotFoundError names the missing resource. It matches ErrNotFound.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string        { return e.Resource + " not_found" }
func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

func ErrNotFoundFor(resource string) error {
	return NotFoundError{Resource: resource}
}
func IsInvalidCredentials(err error) bool { return errors.Is(err, ErrInvalidCredentials) }
func IsUnauthorized(err error) bool       { return errors.Is(err, ErrUnauthorized) }

// StorageError wraps a backend failure. The cause is for logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "storage_error: " + e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

func ErrStorage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// NotificationError means a mail could not be delivered. It never undoes
// the write that triggered it.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string { return "notification_error: " + e.Err.Error() }
func (e *NotificationError) Unwrap() error { return e.Err }

func ErrNotification(err error) error {
	return &NotificationError{Err: err}
}

func IsNotification(err error) bool {
	var ne *NotificationError
	return errors.As(err, &ne)
}
