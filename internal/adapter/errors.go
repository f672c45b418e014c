package adapter

import (
	"errors"
	"fmt"
)

// ErrRemoteFetch is matched by every error FetchNamespace returns.
var ErrRemoteFetch = errors.New("remote fetch failed")

var (
	// ErrNotModified is returned for 304, which the config server sends when
	// the forwarded release key is still current.
	ErrNotModified = fmt.Errorf("%w: not modified", ErrRemoteFetch)

	ErrBadRequest          = fmt.Errorf("%w: bad request", ErrRemoteFetch)
	ErrUnauthorized        = fmt.Errorf("%w: unauthorized", ErrRemoteFetch)
	ErrForbidden           = fmt.Errorf("%w: forbidden", ErrRemoteFetch)
	ErrNotFound            = fmt.Errorf("%w: not found", ErrRemoteFetch)
	ErrInternalServerError = fmt.Errorf("%w: internal server error", ErrRemoteFetch)
	ErrBadGateway          = fmt.Errorf("%w: bad gateway", ErrRemoteFetch)
	ErrServiceUnavailable  = fmt.Errorf("%w: service unavailable", ErrRemoteFetch)
	ErrUnexpectedStatus    = fmt.Errorf("%w: unexpected status", ErrRemoteFetch)

	// ErrInvalidResponse is returned when a 200 response body is not valid
	// JSON.
	ErrInvalidResponse = fmt.Errorf("%w: invalid response body", ErrRemoteFetch)
)
