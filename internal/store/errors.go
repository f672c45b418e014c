package store

import "errors"

// Sentinel errors returned by [EnvFileStorage] methods. Callers should use
// [errors.Is] to match against these values; the underlying *fs.PathError
// stays reachable through [errors.As].
var (
	// ErrFilesystem wraps every failure to remove, write or read an env file.
	ErrFilesystem = errors.New("env file filesystem failure")

	// ErrEmptyFileName is returned when an operation is given a blank file
	// name.
	ErrEmptyFileName = errors.New("env file name is empty")
)
