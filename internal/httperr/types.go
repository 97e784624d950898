// Package httperr provides the typed errors raised at the HTTP boundary
// and their classification for retry policies.
package httperr

import "fmt"

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: 500 Internal Server Error, network timeouts.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail immediately without retry.
	// Examples: 400 Bad Request, 404 Not Found.
	Irrecoverable
)

func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// RequestError is returned when the API answers with a non-2xx status.
// Snippet holds the beginning of the response body when one was readable.
type RequestError struct {
	Operation  string
	StatusCode int
	Status     string
	Snippet    string
}

func (e *RequestError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("%s: request failed %d %s: %s", e.Operation, e.StatusCode, e.Status, e.Snippet)
	}
	return fmt.Sprintf("%s: request failed %d %s", e.Operation, e.StatusCode, e.Status)
}

// Category classifies the failure for retry purposes: 5xx and the
// timeout-ish 4xx codes (408, 429) are recoverable, every other 4xx is
// not.
func (e *RequestError) Category() ErrorCategory {
	switch {
	case e.StatusCode == 408 || e.StatusCode == 429:
		return Recoverable
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return Irrecoverable
	default:
		return Recoverable
	}
}

// UnexpectedContentTypeError is returned when JSON was expected but the
// response carried a different content type. The usual cause is a base
// URL pointing at a static-file server that answers with index.html.
type UnexpectedContentTypeError struct {
	URL         string
	ContentType string
	Snippet     string
}

func (e *UnexpectedContentTypeError) Error() string {
	return fmt.Sprintf(
		"expected JSON from %s but received content-type %q; response snippet: %s (check that the API base URL points at the API, not a static-file server)",
		e.URL, e.ContentType, e.Snippet)
}

// Misconfiguration never heals on retry.
func (e *UnexpectedContentTypeError) Category() ErrorCategory { return Irrecoverable }
