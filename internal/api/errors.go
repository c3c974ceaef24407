// internal/api/errors.go
package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a fault from the backend: a non-2xx response carrying
// whatever message the server supplied. Network-level faults are wrapped
// fmt.Errorf errors instead.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsNotFound reports whether the error is a backend not-found fault. Views
// render this as an explicit "not found" state, not an exception.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
