package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidApolloConfigs indicates a missing app id, cluster or server URL.
	ErrInvalidApolloConfigs = errors.New("invalid apollo configuration")
	// ErrInvalidEnvFileConfigs indicates env file creation without a file name.
	ErrInvalidEnvFileConfigs = errors.New("invalid env file configuration")
	// ErrInvalidAdapterConfigs indicates invalid HTTP client settings
	// (for example, a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
