package errors

import (
	"net/http"

	"guestbook/internal/domain/entity"
	"guestbook/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// User-facing messages returned by the wishes API.
const (
	MsgMissingFields       = "Missing invitationId, name, nameKey, or message"
	MsgMissingInvitationID = "Missing invitationId"
	MsgNameTooLong         = "Name is too long"
	MsgNameKeyTooLong      = "nameKey is too long"
	MsgMessageTooLong      = "Message is too long"
	MsgInvalidNameKey      = "Invalid nameKey"
	MsgInvalidJSON         = "Invalid JSON"
	MsgAlreadyPosted       = "already-posted"
	MsgTryAgain            = "Something went wrong, please try again"
)

// Predefined error types
var (
	ErrInvalidJSON = NewBaseError(
		http.StatusBadRequest,
		"INVALID_JSON",
		MsgInvalidJSON,
		"",
	)

	ErrMissingInvitationID = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		MsgMissingInvitationID,
		"",
	)

	ErrInvalidGuestPass = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_GUEST_PASS",
		"Invalid guest pass",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests, please slow down",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		MsgTryAgain,
		"",
	)
)

// ValidationError reports client input that failed a field-level check.
// It never reaches the store.
type ValidationError struct {
	field   string
	message string
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{field: field, message: message}
}

func (e *ValidationError) Error() string {
	return e.message
}

// Field returns the offending request field
func (e *ValidationError) Field() string {
	return e.field
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

func (e *ValidationError) Message() string {
	return e.message
}

func (e *ValidationError) Details() string {
	return e.field
}

// WishConflictError is returned when the guest already left a wish on the invitation.
// Existing is the stored wish, or nil when it could not be fetched.
type WishConflictError struct {
	Existing *entity.Wish
}

// NewWishConflictError creates a conflict carrying the existing wish
func NewWishConflictError(existing *entity.Wish) *WishConflictError {
	return &WishConflictError{Existing: existing}
}

func (e *WishConflictError) Error() string {
	if e.Existing == nil {
		return "wish already posted"
	}

	return "wish already posted: " + e.Existing.ID
}

func (e *WishConflictError) HTTPCode() int {
	return http.StatusConflict
}

func (e *WishConflictError) ErrorCode() string {
	return "ALREADY_POSTED"
}

func (e *WishConflictError) Message() string {
	return MsgAlreadyPosted
}

func (e *WishConflictError) Details() string {
	return ""
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying store error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return MsgTryAgain
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
