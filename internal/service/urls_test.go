package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-apollo-env/internal/validators"
	"github.com/MKhiriev/go-apollo-env/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() models.ConfigRequest {
	return models.ConfigRequest{
		AppID:           "app",
		ClusterName:     "default",
		ConfigServerURL: "http://cfg:8080",
	}
}

// ── BuildRemoteURLs ──────────────────────────────────────────────────────────

func TestBuildRemoteURLs_DefaultNamespace(t *testing.T) {
	urls, err := BuildRemoteURLs(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, []string{"http://cfg:8080/configs/app/default/application"}, urls)
}

func TestBuildRemoteURLs_EmptyNamespaceList(t *testing.T) {
	req := validRequest()
	req.Namespaces = []string{}

	urls, err := BuildRemoteURLs(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"http://cfg:8080/configs/app/default/application"}, urls)
}

func TestBuildRemoteURLs_SingleNamespace(t *testing.T) {
	req := validRequest()
	req.Namespaces = models.Namespaces("db")

	urls, err := BuildRemoteURLs(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"http://cfg:8080/configs/app/default/db"}, urls)
}

func TestBuildRemoteURLs_KeepsNamespaceOrder(t *testing.T) {
	req := validRequest()
	req.Namespaces = []string{"a", "b"}

	urls, err := BuildRemoteURLs(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"http://cfg:8080/configs/app/default/a",
		"http://cfg:8080/configs/app/default/b",
	}, urls)
}

func TestBuildRemoteURLs_Query(t *testing.T) {
	tests := []struct {
		name       string
		isCache    bool
		releaseKey string
		clientIP   string
		wantSuffix string
	}{
		{"release key and ip", true, "R", "1.2.3.4", "/application?releaseKey=R&ip=1.2.3.4"},
		{"ip only", false, "", "1.2.3.4", "/application?ip=1.2.3.4"},
		{"release key without cache flag", false, "R", "1.2.3.4", "/application?ip=1.2.3.4"},
		{"cache flag without release key", true, "", "", "/application"},
		{"release key only", true, "R", "", "/application?releaseKey=R"},
		{"neither", false, "", "", "/application"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.IsCache = tt.isCache
			req.ReleaseKey = tt.releaseKey
			req.ClientIP = tt.clientIP

			urls, err := BuildRemoteURLs(context.Background(), req)

			require.NoError(t, err)
			require.Len(t, urls, 1)
			assert.Equal(t, "http://cfg:8080/configs/app/default"+tt.wantSuffix, urls[0])
		})
	}
}

func TestBuildRemoteURLs_QueryOnEveryNamespace(t *testing.T) {
	req := validRequest()
	req.Namespaces = []string{"a", "b"}
	req.ClientIP = "10.0.0.1"

	urls, err := BuildRemoteURLs(context.Background(), req)

	require.NoError(t, err)
	for _, u := range urls {
		assert.Contains(t, u, "?ip=10.0.0.1")
	}
}

func TestBuildRemoteURLs_Escaping(t *testing.T) {
	req := validRequest()
	req.Namespaces = []string{"my ns/x"}
	req.IsCache = true
	req.ReleaseKey = "a&b=c"

	urls, err := BuildRemoteURLs(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "http://cfg:8080/configs/app/default/my%20ns%2Fx?releaseKey=a%26b%3Dc", urls[0])
}

func TestBuildRemoteURLs_MissingFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.ConfigRequest)
		wantField string
	}{
		{"app id", func(r *models.ConfigRequest) { r.AppID = "" }, validators.FieldAppID},
		{"cluster", func(r *models.ConfigRequest) { r.ClusterName = "" }, validators.FieldClusterName},
		{"server url", func(r *models.ConfigRequest) { r.ConfigServerURL = "  " }, validators.FieldConfigServerURL},
		{"app id reported first", func(r *models.ConfigRequest) { *r = models.ConfigRequest{} }, validators.FieldAppID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			urls, err := BuildRemoteURLs(context.Background(), req)

			require.Error(t, err)
			assert.Nil(t, urls)
			assert.ErrorIs(t, err, validators.ErrMissingRequiredField)

			var missing *validators.MissingFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.wantField, missing.Field)
		})
	}
}

func TestBuildRemoteURLs_EnvFileNameNotChecked(t *testing.T) {
	req := validRequest()
	req.Output = models.EnvFile{}

	_, err := BuildRemoteURLs(context.Background(), req)

	assert.NoError(t, err)
}

func TestBuildRemoteURLs_InvalidServerURL(t *testing.T) {
	req := validRequest()
	req.ConfigServerURL = "http://"

	_, err := BuildRemoteURLs(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidConfigServerURL)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"with path", "https://cfg.example.com/apollo/", "https://cfg.example.com/apollo", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
