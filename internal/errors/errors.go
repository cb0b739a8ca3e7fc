package errors

import (
	"errors"
	"fmt"
	"time"
)

type Code string

const (
	CodeInvalidInput  Code = "INVALID_ARGUMENT"
	CodeForbidden     Code = "PERMISSION_DENIED"
	CodeNotFound      Code = "NOT_FOUND"
	CodeQuotaExceeded Code = "RESOURCE_EXHAUSTED"
	CodeUnavailable   Code = "UNAVAILABLE"
	CodeInternal      Code = "INTERNAL"
)

// AppError is the typed failure every service operation returns.
type AppError struct {
	Code    Code
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// QuotaExceededError carries what a client needs for an upgrade prompt.
type QuotaExceededError struct {
	Operation string
	Tier      string
	Limit     int
	Used      int
	ResetAt   time.Time
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s quota exceeded for tier %q: %d/%d used", e.Operation, e.Tier, e.Used, e.Limit)
}

func New(code Code, message string) error {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) error {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func InvalidInput(msg string) error { return New(CodeInvalidInput, msg) }

func Forbidden(msg string) error { return New(CodeForbidden, msg) }

func NotFound(msg string) error { return New(CodeNotFound, msg) }

// Unavailable wraps a storage or dependency failure.
func Unavailable(msg string, cause error) error { return Wrap(CodeUnavailable, msg, cause) }

// CodeOf reports the taxonomy code of err, or CodeInternal for foreign errors.
func CodeOf(err error) Code {
	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return CodeQuotaExceeded
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// IsCode is a shorthand for CodeOf(err) == code.
func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
