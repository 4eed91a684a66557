package mixto

import (
	"fmt"
	"strings"
)

// ConfigurationError is returned by New when host or API key cannot be
// resolved from the explicit config, the environment, or the config file.
type ConfigurationError struct {
	Missing []string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("mixto: configuration error: %s", e.Cause)
	}
	return fmt.Sprintf("mixto: configuration error: missing %s", strings.Join(e.Missing, ", "))
}

// Unwrap returns the underlying cause, if any.
func (e *ConfigurationError) Unwrap() error { return e.Cause }

// APIError is the base error type for all non-2xx API responses.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mixto: %s (HTTP %d)", e.Message, e.Status)
}

// HTTPStatus returns the status code the server responded with, or 0 for
// transport-level failures.
func (e *APIError) HTTPStatus() int { return e.Status }

// ValidationError is returned when the server responds with 400.
type ValidationError struct{ *APIError }

// AuthenticationError is returned when the server responds with 401 or 403.
type AuthenticationError struct{ *APIError }

// NotFoundError is returned when the server responds with 404.
type NotFoundError struct{ *APIError }

// RateLimitError is returned when the server responds with 429.
type RateLimitError struct {
	*APIError
	// RetryAfter is the number of seconds to wait before retrying, if the
	// server provided a Retry-After header.
	RetryAfter *float64
}

// ServiceUnavailableError is returned when the server responds with 503.
type ServiceUnavailableError struct{ *APIError }

// ConnectionError is returned on network failures, DNS errors, or timeouts.
type ConnectionError struct {
	*APIError
	Cause error
}

// Unwrap returns the underlying cause.
func (e *ConnectionError) Unwrap() error { return e.Cause }

func newAPIError(message string, status int) *APIError {
	return &APIError{Message: message, Status: status}
}

// mapHTTPError maps an HTTP status code and error body to the appropriate
// typed error.
func mapHTTPError(status int, message string, retryAfterSec *float64) error {
	switch status {
	case 400:
		return &ValidationError{newAPIError(message, status)}
	case 401, 403:
		return &AuthenticationError{newAPIError(message, status)}
	case 404:
		return &NotFoundError{newAPIError(message, status)}
	case 429:
		return &RateLimitError{APIError: newAPIError(message, status), RetryAfter: retryAfterSec}
	case 503:
		return &ServiceUnavailableError{newAPIError(message, status)}
	default:
		return newAPIError(message, status)
	}
}
