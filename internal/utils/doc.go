// Package utils provides general-purpose helper utilities
// used across different parts of the module: HTTP client initialization
// and working-directory resolution.
package utils
