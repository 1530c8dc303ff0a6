package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRequestFailed is the generic sentinel wrapped by every APIError
	// that has no more specific classification.
	ErrRequestFailed = errors.New("apiclient: request failed")

	// ErrUnauthorized marks a 401 response. The host application is
	// expected to sign the user out globally; see Client's
	// WithOnUnauthorized hook.
	ErrUnauthorized = errors.New("apiclient: unauthorized")

	// ErrNotFound marks a 404 response. For some endpoints this is an
	// expected state rather than a hard failure (e.g. document insights
	// that have not been generated yet), so callers match it with
	// errors.Is instead of treating every error as fatal.
	ErrNotFound = errors.New("apiclient: resource not found")

	// ErrDecodeResponse is returned when a 2xx response body cannot be
	// decoded into the caller-provided value.
	ErrDecodeResponse = errors.New("apiclient: failed to decode response")
)

// APIError describes a non-2xx HTTP response. Transport-level failures
// (connection refused, timeout) are not APIErrors; they surface as
// wrapped errors from the underlying http.Client.
type APIError struct {
	StatusCode int
	Message    string

	sentinel error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("apiclient: server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("apiclient: server returned %d", e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.sentinel }

func newAPIError(statusCode int, message string) *APIError {
	e := &APIError{StatusCode: statusCode, Message: message, sentinel: ErrRequestFailed}
	switch statusCode {
	case http.StatusUnauthorized:
		e.sentinel = ErrUnauthorized
	case http.StatusNotFound:
		e.sentinel = ErrNotFound
	}
	return e
}
