package signalrgb

import (
	"errors"
	"fmt"
)

// Sentinel errors usable with errors.Is. The concrete error types below
// carry the detail; these exist so callers can branch on the category
// without digging into the structs.
var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrConnectionFailed is matched by every ConnectionError.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrClientClosed is returned by operations on a closed client.
	ErrClientClosed = errors.New("client is closed")

	// ErrInvalidConfig is returned when the client configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConnectionError is a network-level failure: connection refused, DNS
// failure, or a timeout before the service produced a response.
type ConnectionError struct {
	// Op is the request that failed, e.g. "GET /api/v1/lighting".
	Op string
	// Err is the underlying transport error.
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection failed during %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *ConnectionError) Is(target error) bool { return target == ErrConnectionFailed }

// APIError is a non-2xx response, a non-OK envelope status, or a 2xx
// response whose body could not be parsed. Every error entry the service
// reported is retained; Message carries the first entry's detail.
type APIError struct {
	// StatusCode is the HTTP status, or 0 when the failure was not
	// HTTP-level (e.g. a malformed success body).
	StatusCode int
	// Message is the primary human-readable description.
	Message string
	// Errors are the server-reported error entries, if any.
	Errors []APIErrorDetail
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error: %s", e.Message)
}

// Code returns the first server-reported error code, if any.
func (e *APIError) Code() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Code
	}
	return ""
}

// NotFoundError reports that a resource could not be resolved: an unknown
// effect ID or name, an unknown preset or layout, or an HTTP 404.
type NotFoundError struct {
	// Resource describes what was looked up, e.g. `effect "Rainbow Wave"`.
	Resource string
	// Errors are the server-reported error entries, when the lookup
	// reached the service.
	Errors []APIErrorDetail
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports a client-side precondition violation. No request
// is issued when validation fails.
type ValidationError struct {
	// Field is the rejected input, e.g. "brightness".
	Field string
	// Message explains the constraint.
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsNotFound reports whether err is a resource-not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConnectionError reports whether err is a network-level failure.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnectionFailed)
}

// IsAPIError reports whether err is a server-reported API failure.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
