package errors

import (
	"errors"
	"fmt"
)

// Error code constants surfaced through both the CLI and MCP interfaces.
const (
	CodeAuthFailed        = "AUTH_FAILED"
	CodeChallengeRequired = "CHALLENGE_REQUIRED"
	CodeSessionExpired    = "SESSION_EXPIRED"
	CodeRateLimited       = "RATE_LIMITED"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidParams     = "INVALID_PARAMS"
	CodeUpstreamError     = "UPSTREAM_ERROR"
	CodeConfigInvalid     = "CONFIG_INVALID"
)

// Error represents a linkedin-mcp error with a code and message.
// It implements the error interface and supports error wrapping.
type Error struct {
	wrapped error
	Code    string
	Message string
}

// Error returns the error message, implementing the error interface.
func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, supporting errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// New creates a new linkedin-mcp error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new linkedin-mcp error that wraps an underlying error.
func Wrap(code string, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		wrapped: err,
	}
}

// Code extracts the error code from an error.
// Returns an empty string if the error is not a linkedin-mcp error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var liErr *Error
	if errors.As(err, &liErr) {
		return liErr.Code
	}
	return ""
}

// Is checks if an error has a specific error code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// Convenience constructors for each error code

// AuthFailed creates an AUTH_FAILED error.
func AuthFailed(account string) *Error {
	return New(CodeAuthFailed, fmt.Sprintf("authentication failed for %q", account))
}

// ChallengeRequired creates a CHALLENGE_REQUIRED error.
func ChallengeRequired() *Error {
	return New(CodeChallengeRequired, "LinkedIn requires a security challenge, complete it in a browser and log in again")
}

// SessionExpired creates a SESSION_EXPIRED error.
func SessionExpired() *Error {
	return New(CodeSessionExpired, "cached session is no longer valid")
}

// RateLimited creates a RATE_LIMITED error.
func RateLimited(endpoint string) *Error {
	return New(CodeRateLimited, fmt.Sprintf("LinkedIn rate-limited request to %s", endpoint))
}

// NotFound creates a NOT_FOUND error for an entity.
func NotFound(kind, id string) *Error {
	return New(CodeNotFound, fmt.Sprintf("%s %q not found", kind, id))
}

// InvalidParams creates an INVALID_PARAMS error.
func InvalidParams(message string) *Error {
	return New(CodeInvalidParams, message)
}

// UpstreamError creates an UPSTREAM_ERROR wrapping the underlying cause.
func UpstreamError(endpoint string, err error) *Error {
	return Wrap(CodeUpstreamError, fmt.Sprintf("request to %s failed", endpoint), err)
}

// UpstreamStatus creates an UPSTREAM_ERROR for an unexpected HTTP status.
func UpstreamStatus(endpoint string, status int) *Error {
	return New(CodeUpstreamError, fmt.Sprintf("request to %s returned status %d", endpoint, status))
}

// ConfigInvalid creates a CONFIG_INVALID error wrapping the underlying cause.
func ConfigInvalid(err error) *Error {
	return Wrap(CodeConfigInvalid, "invalid configuration", err)
}
