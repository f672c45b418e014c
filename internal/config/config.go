// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// apollo-env command. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Optional booleans are pointers so that "not set" can be told apart from
// an explicit false while sources are merged.
type StructuredConfig struct {
	// Apollo describes what to fetch from the config server.
	Apollo Apollo `envPrefix:"APOLLO_"`

	// EnvFile controls whether and how the merged configuration is written
	// to an env file and loaded into the process environment.
	EnvFile EnvFile `envPrefix:"ENV_FILE_"`

	// Adapter holds outbound HTTP settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Apollo holds the request descriptor fields.
type Apollo struct {
	// AppID is the application identifier on the config server.
	// Env: APOLLO_APP_ID
	AppID string `env:"APP_ID"`

	// ClusterName is the cluster to read (e.g. "default").
	// Env: APOLLO_CLUSTER
	ClusterName string `env:"CLUSTER"`

	// ConfigServerURL is the base URL of the config service.
	// Env: APOLLO_CONFIG_SERVER_URL
	ConfigServerURL string `env:"CONFIG_SERVER_URL"`

	// Namespaces is a comma-separated list of namespaces, fetched in order.
	// Env: APOLLO_NAMESPACES
	Namespaces []string `env:"NAMESPACES" envSeparator:","`

	// ClientIP is forwarded to the server as the "ip" query parameter.
	// Env: APOLLO_CLIENT_IP
	ClientIP string `env:"CLIENT_IP"`

	// IsCache enables forwarding of ReleaseKey.
	// Env: APOLLO_CACHE
	IsCache *bool `env:"CACHE"`

	// ReleaseKey is the release key sent when IsCache is true.
	// Env: APOLLO_RELEASE_KEY
	ReleaseKey string `env:"RELEASE_KEY"`
}

// EnvFile holds env file materialization settings.
type EnvFile struct {
	// Create enables writing the env file.
	// Env: ENV_FILE_CREATE
	Create *bool `env:"CREATE"`

	// Name is the env file name, relative to BaseDir.
	// Env: ENV_FILE_NAME
	Name string `env:"NAME"`

	// SetEnv loads the written file into the process environment.
	// Defaults to true.
	// Env: ENV_FILE_SET_ENV
	SetEnv *bool `env:"SET_ENV"`

	// BeforeClear removes an existing file before writing.
	// Defaults to true.
	// Env: ENV_FILE_BEFORE_CLEAR
	BeforeClear *bool `env:"BEFORE_CLEAR"`

	// BaseDir is the directory Name is resolved against. Empty means the
	// symlink-resolved working directory.
	// Env: ENV_FILE_BASE_DIR
	BaseDir string `env:"BASE_DIR"`
}

// Adapter holds configuration for the outbound HTTP client.
type Adapter struct {
	// RequestTimeout is the maximum duration of a single request to the
	// config server (e.g. "5s"). Zero selects the client default.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
