package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies HTTP client errors.
type ErrorCode int

const (
	// ErrCodeNetwork indicates a connection or transport failure.
	ErrCodeNetwork ErrorCode = iota
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout
	// ErrCodeInvalidURL indicates malformed request construction.
	ErrCodeInvalidURL
	// ErrCodeInvalidResponse indicates a response that is not what the
	// request contract expects (e.g. a non-SSE body on a stream request).
	ErrCodeInvalidResponse
	// ErrCodeHTTP indicates the remote rejected the request with a
	// non-success status code.
	ErrCodeHTTP
	// ErrCodeUnauthorized indicates an authentication or authorization
	// failure. Both 401 and 403 collapse into this code.
	ErrCodeUnauthorized
	// ErrCodeDecoding indicates a payload that did not match the expected
	// structure.
	ErrCodeDecoding
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeNetwork:
		return "network"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeInvalidURL:
		return "invalid_url"
	case ErrCodeInvalidResponse:
		return "invalid_response"
	case ErrCodeHTTP:
		return "http"
	case ErrCodeUnauthorized:
		return "unauthorized"
	case ErrCodeDecoding:
		return "decoding"
	default:
		return "unknown"
	}
}

// Error is a structured HTTP client error with classification.
type Error struct {
	// StatusCode is the HTTP status code (0 for connection-level errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Body is the original response body (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a connection/transport error.
func NewNetworkError(err error) *Error {
	return &Error{
		Code:    ErrCodeNetwork,
		Message: err.Error(),
		Err:     err,
	}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{
		Code:    ErrCodeTimeout,
		Message: err.Error(),
		Err:     err,
	}
}

// NewInvalidURLError creates a request-construction error.
func NewInvalidURLError(msg string) *Error {
	return &Error{
		Code:    ErrCodeInvalidURL,
		Message: msg,
	}
}

// NewInvalidResponseError creates an unexpected-response error.
func NewInvalidResponseError(msg string) *Error {
	return &Error{
		Code:    ErrCodeInvalidResponse,
		Message: msg,
	}
}

// NewHTTPError creates an error for a non-success status code.
func NewHTTPError(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeHTTP,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// NewUnauthorizedError creates an authentication/authorization error.
func NewUnauthorizedError(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeUnauthorized,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// NewDecodingError creates a payload-decoding error.
func NewDecodingError(err error, targetType string) *Error {
	return &Error{
		Code:    ErrCodeDecoding,
		Message: fmt.Sprintf("decode into %s: %v", targetType, err),
		Err:     err,
	}
}

// IsNetwork checks if an error is a connection/transport error.
func IsNetwork(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNetwork
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsHTTP checks if an error is a remote rejection with a status code.
func IsHTTP(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeHTTP
}

// IsUnauthorized checks if an error is an auth failure (401 or 403).
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeUnauthorized
}

// IsDecoding checks if an error is a decoding error.
func IsDecoding(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDecoding
}
