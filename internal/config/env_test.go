// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APOLLO_APP_ID":            "demo-app",
		"APOLLO_CLUSTER":           "default",
		"APOLLO_CONFIG_SERVER_URL": "http://apollo:8080",
		"APOLLO_NAMESPACES":        "application,db",
		"APOLLO_CLIENT_IP":         "10.0.0.1",
		"APOLLO_CACHE":             "true",
		"APOLLO_RELEASE_KEY":       "20240101-abc",

		"ENV_FILE_CREATE":       "true",
		"ENV_FILE_NAME":         ".env.remote",
		"ENV_FILE_SET_ENV":      "false",
		"ENV_FILE_BEFORE_CLEAR": "false",
		"ENV_FILE_BASE_DIR":     "/srv/app",

		"ADAPTER_REQUEST_TIMEOUT": "5s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "demo-app", cfg.Apollo.AppID)
	assert.Equal(t, "default", cfg.Apollo.ClusterName)
	assert.Equal(t, "http://apollo:8080", cfg.Apollo.ConfigServerURL)
	assert.Equal(t, []string{"application", "db"}, cfg.Apollo.Namespaces)
	assert.Equal(t, "10.0.0.1", cfg.Apollo.ClientIP)
	require.NotNil(t, cfg.Apollo.IsCache)
	assert.True(t, *cfg.Apollo.IsCache)
	assert.Equal(t, "20240101-abc", cfg.Apollo.ReleaseKey)

	require.NotNil(t, cfg.EnvFile.Create)
	assert.True(t, *cfg.EnvFile.Create)
	assert.Equal(t, ".env.remote", cfg.EnvFile.Name)
	require.NotNil(t, cfg.EnvFile.SetEnv)
	assert.False(t, *cfg.EnvFile.SetEnv)
	require.NotNil(t, cfg.EnvFile.BeforeClear)
	assert.False(t, *cfg.EnvFile.BeforeClear)
	assert.Equal(t, "/srv/app", cfg.EnvFile.BaseDir)

	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APOLLO_APP_ID": "demo-app",
		"ENV_FILE_NAME": ".env",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "demo-app", cfg.Apollo.AppID)
	assert.Empty(t, cfg.Apollo.ClusterName)
	assert.Empty(t, cfg.Apollo.Namespaces)
	assert.Nil(t, cfg.Apollo.IsCache)

	assert.Equal(t, ".env", cfg.EnvFile.Name)
	assert.Nil(t, cfg.EnvFile.Create)
	assert.Nil(t, cfg.EnvFile.SetEnv)
	assert.Nil(t, cfg.EnvFile.BeforeClear)

	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, Apollo{}, cfg.Apollo)
	assert.Equal(t, EnvFile{}, cfg.EnvFile)
	assert.Equal(t, Adapter{}, cfg.Adapter)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{"APOLLO_CACHE": "sometimes"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APOLLO_APP_ID",
		"APOLLO_CLUSTER",
		"APOLLO_CONFIG_SERVER_URL",
		"APOLLO_NAMESPACES",
		"APOLLO_CLIENT_IP",
		"APOLLO_CACHE",
		"APOLLO_RELEASE_KEY",

		"ENV_FILE_CREATE",
		"ENV_FILE_NAME",
		"ENV_FILE_SET_ENV",
		"ENV_FILE_BEFORE_CLEAR",
		"ENV_FILE_BASE_DIR",

		"ADAPTER_REQUEST_TIMEOUT",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
