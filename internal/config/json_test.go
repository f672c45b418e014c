package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"apollo": {
			"app_id": "demo-app",
			"cluster": "default",
			"config_server_url": "http://apollo:8080",
			"namespaces": ["application", "db"],
			"client_ip": "1.2.3.4",
			"cache": true,
			"release_key": "R"
		},
		"env_file": {
			"create": true,
			"name": ".env",
			"set_env": false,
			"base_dir": "/srv"
		},
		"adapter": {
			"request_timeout": "30s"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "demo-app", cfg.Apollo.AppID)
	assert.Equal(t, "default", cfg.Apollo.ClusterName)
	assert.Equal(t, "http://apollo:8080", cfg.Apollo.ConfigServerURL)
	assert.Equal(t, []string{"application", "db"}, cfg.Apollo.Namespaces)
	assert.Equal(t, "1.2.3.4", cfg.Apollo.ClientIP)
	require.NotNil(t, cfg.Apollo.IsCache)
	assert.True(t, *cfg.Apollo.IsCache)
	assert.Equal(t, "R", cfg.Apollo.ReleaseKey)

	require.NotNil(t, cfg.EnvFile.Create)
	assert.True(t, *cfg.EnvFile.Create)
	assert.Equal(t, ".env", cfg.EnvFile.Name)
	require.NotNil(t, cfg.EnvFile.SetEnv)
	assert.False(t, *cfg.EnvFile.SetEnv)
	assert.Nil(t, cfg.EnvFile.BeforeClear)
	assert.Equal(t, "/srv", cfg.EnvFile.BaseDir)

	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_ScalarNamespace(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"apollo":{"namespaces":"db"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, []string{"db"}, cfg.Apollo.Namespaces)
}

func TestParseJSON_InvalidNamespaces(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"apollo":{"namespaces":42}}`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string", `"1m"`, time.Minute, false},
		{"nanoseconds number", `1000000000`, time.Second, false},
		{"invalid string", `"soon"`, 0, true},
		{"invalid json", `{`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
