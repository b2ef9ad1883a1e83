package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a server-reported failure: the backend answered, but with a
// non-2xx status. Message carries the server's own "message" (or "error")
// body field verbatim when present, so validation text reaches the user
// unchanged. Transport failures are plain wrapped errors, never APIError.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// NotFound reports whether the server said the resource does not exist,
// e.g. a delete re-issued for an already-deleted tag.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// errorBody is the failure envelope shape used across backend revisions.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// newAPIError builds an APIError from a non-2xx response body. Bodies that
// are not JSON (proxies, HTML error pages) fall back to the generic
// status-based message.
func newAPIError(statusCode int, body []byte) *APIError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return &APIError{StatusCode: statusCode, Message: eb.Message}
		}
		if eb.Error != "" {
			return &APIError{StatusCode: statusCode, Message: eb.Error}
		}
	}
	return &APIError{StatusCode: statusCode}
}
