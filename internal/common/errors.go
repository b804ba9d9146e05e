package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies failures so callers can pick a fallback.
type ErrorKind string

const (
	KindConfiguration ErrorKind = "CONFIGURATION_ERROR"
	KindAuth          ErrorKind = "AUTH_ERROR"
	KindValidation    ErrorKind = "VALIDATION_ERROR"
	KindNotFound      ErrorKind = "NOT_FOUND"
	KindStore         ErrorKind = "STORE_ERROR"
	KindGateway       ErrorKind = "GATEWAY_ERROR"
	KindConflict      ErrorKind = "CONFLICT"
)

// AppError is the error type returned across service boundaries.
type AppError struct {
	Kind    ErrorKind
	Message string
	Field   string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Recoverable reports whether the session can continue after this error.
// Only configuration errors are fatal.
func (e *AppError) Recoverable() bool {
	return e.Kind != KindConfiguration
}

func NewConfigurationError(message string) *AppError {
	return &AppError{Kind: KindConfiguration, Message: message}
}

func NewAuthError(message string, err error) *AppError {
	return &AppError{Kind: KindAuth, Message: message, Err: err}
}

func NewValidationError(field, message string) *AppError {
	return &AppError{Kind: KindValidation, Field: field, Message: message}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func NewStoreError(operation string, err error) *AppError {
	return &AppError{Kind: KindStore, Message: "failed to " + operation, Err: err}
}

// NewGatewayError keeps the processor message verbatim.
func NewGatewayError(err error) *AppError {
	return &AppError{Kind: KindGateway, Err: err}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// KindOf returns the kind of the first AppError in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// IsRecoverable treats unclassified errors as recoverable.
func IsRecoverable(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Recoverable()
	}
	return true
}

// HTTPStatus maps an error to the status code the API answers with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
