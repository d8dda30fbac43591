package errors

import (
	"net/http"

	"mediahub/internal/errors"
)

// Kind classifies an AppError independently of its specific code.
type Kind string

const (
	KindValidation       Kind = "VALIDATION"
	KindUnauthorized     Kind = "UNAUTHORIZED"
	KindForbidden        Kind = "FORBIDDEN"
	KindNotFound         Kind = "NOT_FOUND"
	KindInvalidOperation Kind = "INVALID_OPERATION"
	KindTooManyRequests  Kind = "TOO_MANY_REQUESTS"
	KindInternal         Kind = "INTERNAL"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Is matches any BaseError with the same business code, so errors derived through WithDetails still match.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
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
	copied := *e
	copied.details = details

	return &copied
}

// WithMessage returns a copy carrying a different user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	copied := *e
	copied.message = message

	return &copied
}

// KindOf returns the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// Predefined error types
var (
	// Generic categories
	ErrValidationFailed = NewBaseError(KindValidation, http.StatusBadRequest,
		"VALIDATION_FAILED", "All fields are required", "")

	ErrUnauthorized = NewBaseError(KindUnauthorized, http.StatusUnauthorized,
		"UNAUTHORIZED", "Unauthorized Request", "")

	ErrForbidden = NewBaseError(KindForbidden, http.StatusForbidden,
		"FORBIDDEN", "You are not allowed to modify this resource", "")

	ErrNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"NOT_FOUND", "Resource not found", "")

	ErrInvalidOperation = NewBaseError(KindInvalidOperation, http.StatusBadRequest,
		"INVALID_OPERATION", "Operation not allowed", "")

	ErrInternalError = NewBaseError(KindInternal, http.StatusInternalServerError,
		"INTERNAL_ERROR", "Internal Server Error", "")

	// Identity
	ErrIdentityNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"USER_NOT_FOUND", "User doesn't exist", "")

	ErrIdentityAlreadyExists = NewBaseError(KindValidation, http.StatusConflict,
		"USER_ALREADY_EXISTS", "User with email or username already exists", "")

	ErrInvalidUsername = NewBaseError(KindValidation, http.StatusBadRequest,
		"INVALID_USERNAME", "Username must be between 3 and 100 characters", "")

	ErrInvalidFullName = NewBaseError(KindValidation, http.StatusBadRequest,
		"INVALID_FULLNAME", "Full name must be between 3 and 100 characters", "")

	ErrInvalidEmail = NewBaseError(KindValidation, http.StatusBadRequest,
		"INVALID_EMAIL", "Invalid email format", "")

	ErrMissingIdentifier = NewBaseError(KindValidation, http.StatusBadRequest,
		"MISSING_IDENTIFIER", "Username or Email is required", "")

	ErrAvatarRequired = NewBaseError(KindValidation, http.StatusBadRequest,
		"AVATAR_REQUIRED", "Avatar file is required", "")

	ErrChannelNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"CHANNEL_NOT_FOUND", "Channel does not exist", "")

	// Credentials and sessions
	ErrInvalidCredentials = NewBaseError(KindUnauthorized, http.StatusUnauthorized,
		"INVALID_CREDENTIALS", "Invalid User Credentials", "")

	ErrInvalidOldPassword = NewBaseError(KindValidation, http.StatusBadRequest,
		"INVALID_OLD_PASSWORD", "Invalid Old Password", "")

	ErrAccessTokenInvalid = NewBaseError(KindUnauthorized, http.StatusUnauthorized,
		"ACCESS_TOKEN_INVALID", "Invalid Access Token", "")

	ErrRefreshTokenMissing = NewBaseError(KindUnauthorized, http.StatusUnauthorized,
		"REFRESH_TOKEN_MISSING", "Unauthorized Request", "")

	ErrRefreshTokenInvalid = NewBaseError(KindUnauthorized, http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID", "Invalid Refresh Token", "")

	ErrRefreshTokenReused = NewBaseError(KindUnauthorized, http.StatusUnauthorized,
		"REFRESH_TOKEN_REUSED", "Refresh Token is expired or used", "")

	ErrTooManyLoginAttempts = NewBaseError(KindTooManyRequests, http.StatusTooManyRequests,
		"TOO_MANY_LOGIN_ATTEMPTS", "Too many login attempts, try again later", "")

	ErrPasswordHashFailed = NewBaseError(KindInternal, http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED", "Failed to process password", "")

	ErrPasswordStrength = NewBaseError(KindValidation, http.StatusBadRequest,
		"PASSWORD_STRENGTH", "Invalid password", "")

	ErrPasswordForbiddenWords = NewBaseError(KindValidation, http.StatusBadRequest,
		"PASSWORD_FORBIDDEN_WORDS", "Password contains forbidden words or patterns", "")

	ErrTokenIssueFailed = NewBaseError(KindInternal, http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED", "Something went wrong while generating refresh and access token", "")

	// Resources
	ErrVideoNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"VIDEO_NOT_FOUND", "Video not found", "")

	ErrVideoNotVisible = NewBaseError(KindForbidden, http.StatusForbidden,
		"VIDEO_NOT_VISIBLE", "You are not authorized to view this video", "")

	ErrVideoFilesRequired = NewBaseError(KindValidation, http.StatusBadRequest,
		"VIDEO_FILES_REQUIRED", "Both video and thumbnail files are required", "")

	ErrCommentNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"COMMENT_NOT_FOUND", "Comment not found", "")

	ErrPlaylistNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"PLAYLIST_NOT_FOUND", "Playlist not found", "")

	ErrVideoAlreadyInPlaylist = NewBaseError(KindInvalidOperation, http.StatusBadRequest,
		"VIDEO_ALREADY_IN_PLAYLIST", "Video already in playlist", "")

	// Relations
	ErrSelfSubscription = NewBaseError(KindInvalidOperation, http.StatusBadRequest,
		"SELF_SUBSCRIPTION", "You cannot subscribe to yourself", "")

	ErrInvalidRelationKind = NewBaseError(KindValidation, http.StatusBadRequest,
		"INVALID_RELATION_KIND", "Unknown relation kind", "")

	ErrToggleConflict = NewBaseError(KindInternal, http.StatusInternalServerError,
		"TOGGLE_CONFLICT", "Could not settle relation state, please retry", "")

	ErrInvalidQRCode = NewBaseError(KindValidation, http.StatusBadRequest,
		"INVALID_QR_CODE", "Invalid QR code", "")

	// Storage
	ErrUploadFailed = NewBaseError(KindInternal, http.StatusInternalServerError,
		"UPLOAD_FAILED", "Error in uploading file", "")
)

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

// Unwrap exposes the driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
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
	return "Internal Server Error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
