package httperr

import "errors"

// categorized is implemented by errors that carry their own retry
// classification.
type categorized interface {
	Category() ErrorCategory
}

// IsIrrecoverable reports whether err should not be retried.
// Errors without a classification are treated as recoverable, since
// network-level failures may be transient.
func IsIrrecoverable(err error) bool {
	var c categorized
	if errors.As(err, &c) {
		return c.Category() == Irrecoverable
	}
	return false
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.StatusCode == 404
}
