package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Domain errors
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"

	// Application errors
	ErrorTypeInternal       ErrorType = "INTERNAL"
	ErrorTypeTimeout        ErrorType = "TIMEOUT"
	ErrorTypePartialFailure ErrorType = "PARTIAL_FAILURE"

	// Infrastructure errors
	ErrorTypeCollaborator ErrorType = "COLLABORATOR"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Code       string                 `json:"code,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCode adds an error code
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// WithDetails adds error details
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// Constructor functions for common error types

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "unauthorized"
	}
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = "forbidden"
	}
	return &AppError{
		Type:       ErrorTypeForbidden,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(operation string) *AppError {
	return &AppError{
		Type:       ErrorTypeTimeout,
		Message:    fmt.Sprintf("operation '%s' timed out", operation),
		HTTPStatus: http.StatusRequestTimeout,
	}
}

// NewCollaboratorError creates an error for a failed row-store or identity
// provider call. The operation name identifies which underlying call failed.
func NewCollaboratorError(operation string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeCollaborator,
		Message:    fmt.Sprintf("store operation '%s' failed", operation),
		Cause:      err,
		HTTPStatus: http.StatusBadGateway,
	}
}

// PartialFailureError reports a multi-step operation that stopped after
// completing some but not all of its steps. The state it describes is real:
// everything up to LastCompletedStep has been committed to the row store and
// will not be rolled back. Callers are expected to inspect the error,
// re-fetch, and retry the whole operation (every step is idempotent given
// correct ordering).
type PartialFailureError struct {
	// Operation is the logical operation that failed, e.g. "delete_category".
	Operation string
	// LastCompletedStep names the last step that fully committed.
	LastCompletedStep string
	// AffectedIDs lists the row ids mutated before the failure.
	AffectedIDs []string
	// RemainingIDs lists the row ids the failed step never reached.
	RemainingIDs []string
	// Cause is the underlying collaborator error.
	Cause error
}

// Error implements the error interface
func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("PARTIAL_FAILURE: %s stopped after step %s (%d applied, %d remaining): %v",
		e.Operation, e.LastCompletedStep, len(e.AffectedIDs), len(e.RemainingIDs), e.Cause)
}

// Unwrap returns the underlying error
func (e *PartialFailureError) Unwrap() error {
	return e.Cause
}

// NewPartialFailureError creates a partial failure error
func NewPartialFailureError(operation, lastCompletedStep string, cause error) *PartialFailureError {
	return &PartialFailureError{
		Operation:         operation,
		LastCompletedStep: lastCompletedStep,
		Cause:             cause,
	}
}

// WithAffected records the ids mutated before the failure
func (e *PartialFailureError) WithAffected(ids []string) *PartialFailureError {
	e.AffectedIDs = ids
	return e
}

// WithRemaining records the ids the failed step never reached
func (e *PartialFailureError) WithRemaining(ids []string) *PartialFailureError {
	e.RemainingIDs = ids
	return e
}

// GetAppError extracts an AppError from an error chain, or returns nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// GetPartialFailure extracts a PartialFailureError from an error chain, or returns nil
func GetPartialFailure(err error) *PartialFailureError {
	var pf *PartialFailureError
	if errors.As(err, &pf) {
		return pf
	}
	return nil
}

// IsNotFound reports whether the error chain contains a not-found error
func IsNotFound(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidation reports whether the error chain contains a validation error
func IsValidation(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}
