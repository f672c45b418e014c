package apolloenv

import (
	"github.com/MKhiriev/go-apollo-env/internal/adapter"
	"github.com/MKhiriev/go-apollo-env/internal/service"
	"github.com/MKhiriev/go-apollo-env/internal/store"
	"github.com/MKhiriev/go-apollo-env/internal/validators"
)

var (
	// ErrMissingRequiredField is matched by every request validation failure.
	// The failing field is available through [MissingFieldError].
	ErrMissingRequiredField = validators.ErrMissingRequiredField

	// ErrInvalidConfigServerURL is returned when the config server URL is
	// present but cannot be parsed or has no host.
	ErrInvalidConfigServerURL = service.ErrInvalidConfigServerURL

	// ErrRemoteFetch is matched by every failed request to the config server.
	ErrRemoteFetch = adapter.ErrRemoteFetch

	// ErrNotModified is returned when the config server answers 304 to a
	// cached release key. It also matches [ErrRemoteFetch].
	ErrNotModified = adapter.ErrNotModified

	// ErrFilesystem is matched by every failure to write or load an env file.
	ErrFilesystem = store.ErrFilesystem

	// ErrEmptyFileName is returned when CreateEnvFile or SetEnv is given a
	// blank file name.
	ErrEmptyFileName = store.ErrEmptyFileName
)

// MissingFieldError names the required request field that was absent or
// blank.
type MissingFieldError = validators.MissingFieldError
