// Package errors provides the unified application error type for the
// Trend Trails server. Every error that crosses a service boundary is an
// *AppError carrying a machine-readable code and an HTTP status mapping;
// internal detail and causes never reach the response body.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code this error maps to.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error. Never serialized.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// --- Constructors ---

// NotFound creates an AppError for a resource that was not found.
func NotFound(resource string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"resource": resource},
	}
}

// AlreadyExists creates an AppError for a resource that already exists.
func AlreadyExists(resource string) *AppError {
	return &AppError{
		Code: ErrCodeAlreadyExists, Message: fmt.Sprintf("A %s with these details already exists.", resource),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"resource": resource},
	}
}

// InvalidCredentials creates an AppError for a failed password check.
// The message does not reveal whether the email or the password was wrong.
func InvalidCredentials() *AppError {
	return &AppError{
		Code: ErrCodeInvalidCredentials, Message: "Invalid email or password.",
		HTTPStatus: http.StatusBadRequest,
	}
}

// Unauthorized creates an AppError for a request that failed authentication.
func Unauthorized(reason string) *AppError {
	if reason == "" {
		reason = "Authentication required."
	}
	return &AppError{
		Code: ErrCodeUnauthorized, Message: reason,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates an AppError for a request the caller may not perform.
func Forbidden(reason string) *AppError {
	if reason == "" {
		reason = "You don't have permission to perform this action."
	}
	return &AppError{
		Code: ErrCodeForbidden, Message: reason,
		HTTPStatus: http.StatusForbidden,
	}
}

// InvalidToken creates an AppError for an access token that failed verification.
func InvalidToken() *AppError {
	return &AppError{
		Code: ErrCodeInvalidToken, Message: "Invalid authentication token. Please log in again.",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// InvalidExternalToken creates an AppError for a federated identity token
// that failed verification against the external provider.
func InvalidExternalToken(provider string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidExternalToken, Message: fmt.Sprintf("Invalid %s token.", provider),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"provider": provider},
	}
}

// ExternalRegistrationFailed creates an AppError wrapping an identity
// creation failure during federated signup.
func ExternalRegistrationFailed(provider string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeExternalRegistration, Message: fmt.Sprintf("Could not create an account from the %s identity.", provider),
		HTTPStatus: http.StatusUnauthorized,
		Details:    map[string]any{"provider": provider},
		Cause:      cause,
	}
}

// Validation creates an AppError for invalid input.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// MissingField creates an AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"field": field},
	}
}

// NotificationFailed creates an AppError for a failed outbound email.
func NotificationFailed(kind string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeNotification, Message: fmt.Sprintf("Could not send the %s email. Please try again.", kind),
		HTTPStatus: http.StatusBadGateway,
		Details:    map[string]any{"kind": kind},
		Cause:      cause,
	}
}

// DatabaseError creates an AppError for a storage failure.
func DatabaseError(cause error) *AppError {
	return &AppError{
		Code: ErrCodeDatabaseError, Message: "A database error occurred. Please try again.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// Internal creates an AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again or contact support.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}
