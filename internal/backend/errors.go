package backend

import (
	"errors"
	"fmt"
)

// APIError is the backend's error body. Timestamp and Path are optional;
// Message may be empty when the backend returned something undecodable.
type APIError struct {
	StatusCode int    `json:"status"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp,omitempty"`
	Path       string `json:"path,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// AsAPIError unwraps err into an *APIError if there is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Message converts any client error into the string a page renders inline:
// the server-supplied message when present, the fallback otherwise.
func Message(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && fallback == "" {
		return err.Error()
	}
	return fallback
}
