package service

import "errors"

var (
	// ErrInvalidConfigServerURL is returned when the config server URL cannot
	// be parsed or has no host.
	ErrInvalidConfigServerURL = errors.New("invalid config server url")
)
