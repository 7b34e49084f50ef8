package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates the resource already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Authentication/Authorization errors
const (
	// ErrCodeInvalidCredentials indicates an email/password mismatch.
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	// ErrCodeUnauthorized indicates the request failed authentication.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeForbidden indicates the caller may not perform the operation.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
	// ErrCodeInvalidToken indicates the access token failed verification.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	// ErrCodeInvalidExternalToken indicates a federated identity token
	// failed verification against the external provider.
	ErrCodeInvalidExternalToken ErrorCode = "INVALID_EXTERNAL_TOKEN"
	// ErrCodeExternalRegistration indicates identity creation failed
	// during federated signup.
	ErrCodeExternalRegistration ErrorCode = "EXTERNAL_REGISTRATION_FAILED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeNotification indicates an outbound email could not be sent.
	ErrCodeNotification ErrorCode = "NOTIFICATION_FAILED"
	// ErrCodeDatabaseError indicates a storage failure.
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
