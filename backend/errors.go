package backend

import (
	"errors"
	"fmt"
)

// ErrUnreachable reports that the booking backend could not be reached at
// all (connection refused, DNS failure, timeout).
var ErrUnreachable = errors.New("booking backend unreachable")

// APIError is a non-2xx response from the booking backend. Message carries
// the backend's own message verbatim when one was present in the body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("backend: status %d", e.Status)
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}
	return false
}

func IsNotFound(err error) bool     { return IsStatus(err, 404) }
func IsUnauthorized(err error) bool { return IsStatus(err, 401) }
func IsValidation(err error) bool   { return IsStatus(err, 400) }

// IsMethodUnsupported reports the responses older backend deployments give
// for endpoints they predate.
func IsMethodUnsupported(err error) bool {
	return IsStatus(err, 404) || IsStatus(err, 405)
}
