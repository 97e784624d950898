package client

import (
	"github.com/Ralchuu/personaltrainer-client/internal/httperr"
	"github.com/Ralchuu/personaltrainer-client/internal/temporal"
	"github.com/Ralchuu/personaltrainer-client/internal/types"
)

// Error types re-exported so callers compare against a single package.
type (
	// RequestError is returned for any non-2xx API response.
	RequestError = httperr.RequestError

	// UnexpectedContentTypeError is returned when JSON was expected but
	// the response carried another content type, usually a base URL
	// pointing at a static-file server.
	UnexpectedContentTypeError = httperr.UnexpectedContentTypeError

	// ValidationError is returned before a create/update when a required
	// form field is missing.
	ValidationError = types.ValidationError
)

// ErrNoDate marks an absent or unparsable training date. It is recovered
// locally (skip or placeholder), never surfaced to users.
var ErrNoDate = temporal.ErrNoDate

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool { return httperr.IsNotFound(err) }
